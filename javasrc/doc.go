// Package javasrc models and renders generated Java constant-holder classes.
//
// A CompilationUnit holds a Package and a single top-level Class. The class
// body is either a flat list of ConstantField values (Fields) or a list of
// InnerClass values (NestedClasses), each of which holds its own fields.
// Rendering is a pure function of the tree: declarations within one field
// list are aligned into columns, bodies are indented by four spaces, and
// every class gets a private no-argument constructor.
//
// Literal formatting is looked up by the field's Java type name in a
// Registry. The default registry knows char, int and String.
package javasrc
