package javasrc

import (
	"fmt"
	"path"
	"strings"
	"unicode"
)

// GeneratedBanner is the comment placed after the package declaration of
// every generated file.
const GeneratedBanner = `/*
 * This file has been automatically generated using Philadelphia Code
 * Generator. For more information on Philadelphia Code Generator, see:
 *
 *   https://github.com/paritytrading/philadelphia
 */`

// Package is a Java package declaration.
type Package struct {
	Name string
}

func (p Package) String() string {
	return "package " + p.Name + ";"
}

// Dir returns the directory the package's sources live in, relative to a
// source root.
func (p Package) Dir() string {
	return path.Join(strings.Split(p.Name, ".")...)
}

func (p Package) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPackage)
	}
	for _, part := range strings.Split(p.Name, ".") {
		if !isIdentifier(part) {
			return fmt.Errorf("%w: %q", ErrInvalidPackage, p.Name)
		}
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// CompilationUnit is one generated source file: a package declaration, the
// generated-file banner and a single top-level class.
type CompilationUnit struct {
	Package Package
	Class   *Class
}

func NewCompilationUnit(pkg string, class *Class) *CompilationUnit {
	return &CompilationUnit{Package: Package{Name: pkg}, Class: class}
}

// Path returns the slash-separated path of the unit's source file relative
// to a source root, e.g. "com/example/Example.java".
func (cu *CompilationUnit) Path() string {
	if cu.Class == nil {
		return cu.Package.Dir()
	}
	return path.Join(cu.Package.Dir(), cu.Class.Name+".java")
}

// Render returns the file text using the default registry. The text does
// not end with a newline.
func (cu *CompilationUnit) Render() (string, error) {
	return renderCompilationUnit(defaultRegistry, cu)
}

// Validate reports the first error that rendering cu would produce.
func (cu *CompilationUnit) Validate() error {
	_, err := cu.Render()
	return err
}

func renderCompilationUnit(r *Registry, cu *CompilationUnit) (string, error) {
	if err := cu.Package.Validate(); err != nil {
		return "", err
	}
	if cu.Class == nil {
		return "", fmt.Errorf("package %s: %w", cu.Package.Name, ErrNoClass)
	}
	class, err := renderClass(r, cu.Class)
	if err != nil {
		return "", err
	}
	return cu.Package.String() + "\n\n" + GeneratedBanner + "\n\n" + class, nil
}
