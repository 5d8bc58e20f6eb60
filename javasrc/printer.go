package javasrc

import "io"

// Printer writes rendered source elements to a writer. Nothing is written
// when rendering fails.
type Printer struct {
	w        io.Writer
	registry *Registry
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:        w,
		registry: defaultRegistry,
	}
}

// WithRegistry makes p format literals with r instead of the default
// registry.
func (p *Printer) WithRegistry(r *Registry) *Printer {
	p.registry = r
	return p
}

func (p *Printer) PrintCompilationUnit(cu *CompilationUnit) error {
	text, err := renderCompilationUnit(p.registry, cu)
	if err != nil {
		return err
	}
	return p.write(text)
}

func (p *Printer) PrintClass(c *Class) error {
	text, err := renderClass(p.registry, c)
	if err != nil {
		return err
	}
	return p.write(text)
}

func (p *Printer) PrintInnerClass(ic *InnerClass) error {
	text, err := renderInnerClass(p.registry, ic.Name, ic)
	if err != nil {
		return err
	}
	return p.write(text)
}

// PrintFields writes the aligned declarations of fields. class names the
// owner in errors.
func (p *Printer) PrintFields(class string, fields []ConstantField) error {
	text, err := formatFields(p.registry, class, fields)
	if err != nil {
		return err
	}
	return p.write(text)
}

func (p *Printer) write(s string) error {
	_, err := io.WriteString(p.w, s)
	return err
}

// RenderFields returns the aligned declarations of fields using the default
// registry.
func RenderFields(fields []ConstantField) (string, error) {
	return formatFields(defaultRegistry, "", fields)
}
