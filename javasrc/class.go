package javasrc

import (
	"fmt"
	"strings"
)

// Body is the content of a top-level class: either Fields or NestedClasses.
type Body interface {
	isBody()
}

// Fields is a flat list of constants, emitted in order.
type Fields []ConstantField

// NestedClasses is a list of static holder classes, emitted in order.
type NestedClasses []*InnerClass

func (Fields) isBody()        {}
func (NestedClasses) isBody() {}

// Class is a public, non-instantiable constant holder.
type Class struct {
	Name    string
	Javadoc string
	Body    Body
}

// NewClass returns a class whose body is the given fields.
func NewClass(name, javadoc string, fields ...ConstantField) *Class {
	return &Class{Name: name, Javadoc: javadoc, Body: Fields(fields)}
}

// NewNestedClass returns a class whose body is the given nested classes.
func NewNestedClass(name, javadoc string, classes ...*InnerClass) *Class {
	return &Class{Name: name, Javadoc: javadoc, Body: NestedClasses(classes)}
}

// AddField appends a constant, turning the body into a field list if it is
// empty. It panics if the class already holds nested classes.
func (c *Class) AddField(f ConstantField) *Class {
	switch b := c.Body.(type) {
	case nil:
		c.Body = Fields{f}
	case Fields:
		c.Body = append(b, f)
	default:
		panic(fmt.Sprintf("class %s holds nested classes; cannot add field %s", c.Name, f.Name))
	}
	return c
}

// AddClass appends a nested class. It panics if the class already holds
// fields.
func (c *Class) AddClass(ic *InnerClass) *Class {
	switch b := c.Body.(type) {
	case nil:
		c.Body = NestedClasses{ic}
	case NestedClasses:
		c.Body = append(b, ic)
	default:
		panic(fmt.Sprintf("class %s holds fields; cannot add class %s", c.Name, ic.Name))
	}
	return c
}

// Render returns the class declaration using the default registry.
func (c *Class) Render() (string, error) {
	return renderClass(defaultRegistry, c)
}

// Validate reports the first error that rendering c would produce.
func (c *Class) Validate() error {
	_, err := c.Render()
	return err
}

// InnerClass is a public static constant holder nested in a Class.
type InnerClass struct {
	Name    string
	Javadoc string
	Fields  []ConstantField
}

// NewInnerClass returns a static nested class holding fields.
func NewInnerClass(name, javadoc string, fields ...ConstantField) *InnerClass {
	return &InnerClass{Name: name, Javadoc: javadoc, Fields: fields}
}

func (ic *InnerClass) AddField(f ConstantField) *InnerClass {
	ic.Fields = append(ic.Fields, f)
	return ic
}

func (ic *InnerClass) Render() (string, error) {
	return renderInnerClass(defaultRegistry, ic.Name, ic)
}

func renderClass(r *Registry, c *Class) (string, error) {
	var body string
	var err error
	switch b := c.Body.(type) {
	case NestedClasses:
		body, err = renderNestedClasses(r, c.Name, b)
	case Fields:
		body, err = formatFields(r, c.Name, b)
	case nil:
		err = &ClassError{Class: c.Name, Err: ErrEmptyFieldList}
	default:
		err = &ClassError{Class: c.Name, Err: fmt.Errorf("unknown body type %T", b)}
	}
	if err != nil {
		return "", err
	}
	if strings.Contains(c.Javadoc, "*/") {
		return "", &ClassError{Class: c.Name, Err: ErrInvalidJavadoc}
	}
	return classDecl("public class", c.Name, c.Javadoc, body), nil
}

func renderNestedClasses(r *Registry, owner string, classes NestedClasses) (string, error) {
	if len(classes) == 0 {
		return "", &ClassError{Class: owner, Err: ErrEmptyFieldList}
	}
	parts := make([]string, 0, len(classes))
	for _, ic := range classes {
		if ic == nil {
			return "", &ClassError{Class: owner, Err: ErrNoClass}
		}
		text, err := renderInnerClass(r, owner+"."+ic.Name, ic)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n"), nil
}

// renderInnerClass renders ic; qualified names it in errors, e.g.
// "Enumerations.SideValues".
func renderInnerClass(r *Registry, qualified string, ic *InnerClass) (string, error) {
	body, err := formatFields(r, qualified, ic.Fields)
	if err != nil {
		return "", err
	}
	if strings.Contains(ic.Javadoc, "*/") {
		return "", &ClassError{Class: qualified, Err: ErrInvalidJavadoc}
	}
	return classDecl("public static class", ic.Name, ic.Javadoc, body), nil
}

func classDecl(keywords, name, javadoc, body string) string {
	var sb strings.Builder
	sb.WriteString("/**\n")
	sb.WriteString(" * " + javadoc + "\n")
	sb.WriteString(" */\n")
	sb.WriteString(keywords + " " + name + " {\n")
	sb.WriteString("\n")
	sb.WriteString(indent(body) + "\n")
	sb.WriteString("\n")
	sb.WriteString(indentStr + "private " + name + "() {\n")
	sb.WriteString(indentStr + "}\n")
	sb.WriteString("\n")
	sb.WriteString("}")
	return sb.String()
}
