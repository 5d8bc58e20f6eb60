// Package tables reads constant table definitions from YAML and turns them
// into compilation units.
package tables

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/iancoleman/strcase"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/constgen/javasrc"
)

// logger is resolved on each call; the binary registers the backend.
func logger() commonlog.Logger {
	return commonlog.GetLogger("constgen.tables")
}

// Naming controls how field names are rewritten before rendering.
type Naming string

const (
	NamingKeep           Naming = "keep"
	NamingScreamingSnake Naming = "screaming_snake"
	NamingCamel          Naming = "camel"
)

func (n Naming) apply(name string) (string, error) {
	switch n {
	case "", NamingKeep:
		return name, nil
	case NamingScreamingSnake:
		return strcase.ToScreamingSnake(name), nil
	case NamingCamel:
		return strcase.ToCamel(name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNaming, string(n))
}

// Definition is one YAML document: a package and its top-level classes.
// Each class becomes its own compilation unit.
type Definition struct {
	Package string     `yaml:"package"`
	Naming  Naming     `yaml:"naming"`
	Classes []ClassDef `yaml:"classes"`
}

type ClassDef struct {
	Name    string     `yaml:"name"`
	Javadoc string     `yaml:"javadoc"`
	Fields  []FieldDef `yaml:"fields"`
	Classes []ClassDef `yaml:"classes"`
}

type FieldDef struct {
	Type  string `yaml:"type"`
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// Load reads the definitions in the YAML file at path.
func Load(path string) ([]*javasrc.CompilationUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDefinition, err)
	}
	logger().Debugf("loaded %s (%d bytes)", path, len(data))
	units, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return units, nil
}

func Parse(data []byte) ([]*javasrc.CompilationUnit, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads every YAML document from r and returns their compilation
// units in order.
func Decode(r io.Reader) ([]*javasrc.CompilationUnit, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var units []*javasrc.CompilationUnit
	for {
		var def Definition
		err := dec.Decode(&def)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodeDefinition, err)
		}
		more, err := def.CompilationUnits()
		if err != nil {
			return nil, err
		}
		units = append(units, more...)
	}
	return units, nil
}

// CompilationUnits converts d into one compilation unit per top-level class.
func (d *Definition) CompilationUnits() ([]*javasrc.CompilationUnit, error) {
	pkg := javasrc.Package{Name: d.Package}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	units := make([]*javasrc.CompilationUnit, 0, len(d.Classes))
	for _, cd := range d.Classes {
		class, err := d.class(cd)
		if err != nil {
			return nil, fmt.Errorf("package %s: %w", d.Package, err)
		}
		logger().Debugf("class %s.%s", d.Package, class.Name)
		units = append(units, &javasrc.CompilationUnit{Package: pkg, Class: class})
	}
	return units, nil
}

func (d *Definition) class(cd ClassDef) (*javasrc.Class, error) {
	if cd.Name == "" {
		return nil, fmt.Errorf("class: %w", ErrMissingName)
	}
	if len(cd.Fields) > 0 && len(cd.Classes) > 0 {
		return nil, fmt.Errorf("class %s: %w", cd.Name, ErrAmbiguousBody)
	}

	class := &javasrc.Class{Name: cd.Name, Javadoc: cd.Javadoc}
	if len(cd.Classes) > 0 {
		nested := make(javasrc.NestedClasses, 0, len(cd.Classes))
		for _, icd := range cd.Classes {
			ic, err := d.innerClass(cd.Name, icd)
			if err != nil {
				return nil, err
			}
			nested = append(nested, ic)
		}
		class.Body = nested
		return class, nil
	}

	fields, err := d.fields(cd.Name, cd.Fields)
	if err != nil {
		return nil, err
	}
	class.Body = javasrc.Fields(fields)
	return class, nil
}

// innerClass converts a nested class definition. Nesting stops at one
// level.
func (d *Definition) innerClass(owner string, cd ClassDef) (*javasrc.InnerClass, error) {
	if cd.Name == "" {
		return nil, fmt.Errorf("class %s: nested class: %w", owner, ErrMissingName)
	}
	if len(cd.Classes) > 0 {
		return nil, fmt.Errorf("class %s.%s: classes nest one level only", owner, cd.Name)
	}
	fields, err := d.fields(owner+"."+cd.Name, cd.Fields)
	if err != nil {
		return nil, err
	}
	return javasrc.NewInnerClass(cd.Name, cd.Javadoc, fields...), nil
}

func (d *Definition) fields(class string, defs []FieldDef) ([]javasrc.ConstantField, error) {
	fields := make([]javasrc.ConstantField, 0, len(defs))
	for i, fd := range defs {
		if fd.Name == "" {
			return nil, fmt.Errorf("class %s: field %d: %w", class, i, ErrMissingName)
		}
		name, err := d.Naming.apply(fd.Name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, javasrc.ConstantField{Type: fd.Type, Name: name, Value: fd.value()})
	}
	return fields, nil
}

// value returns the raw value, turning an unquoted single digit given for a
// char field back into the character it was written as.
func (fd FieldDef) value() any {
	if n, ok := fd.Value.(int); ok && fd.Type == javasrc.TypeChar && n >= 0 && n <= 9 {
		return string(rune('0' + n))
	}
	return fd.Value
}
