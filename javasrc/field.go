package javasrc

import (
	"strings"
	"unicode/utf8"
)

// ConstantField is a single public static final declaration.
type ConstantField struct {
	Type  string
	Name  string
	Value any
}

// Char returns a char constant.
func Char(name string, value rune) ConstantField {
	return ConstantField{Type: TypeChar, Name: name, Value: value}
}

// Int returns an int constant.
func Int(name string, value int64) ConstantField {
	return ConstantField{Type: TypeInt, Name: name, Value: value}
}

// String returns a String constant.
func String(name, value string) ConstantField {
	return ConstantField{Type: TypeString, Name: name, Value: value}
}

// formatFields renders fields as aligned declarations, one per line. Column
// widths are computed over fields alone.
func formatFields(r *Registry, class string, fields []ConstantField) (string, error) {
	if len(fields) == 0 {
		return "", &ClassError{Class: class, Err: ErrEmptyFieldList}
	}

	typeWidth, nameWidth := 0, 0
	for _, f := range fields {
		typeWidth = max(typeWidth, utf8.RuneCountInString(f.Type))
		nameWidth = max(nameWidth, utf8.RuneCountInString(f.Name))
	}

	var sb strings.Builder
	for i, f := range fields {
		literal, err := r.Format(f.Type, f.Value)
		if err != nil {
			return "", &FieldError{Class: class, Field: f.Name, Type: f.Type, Err: err}
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("public static final ")
		sb.WriteString(padRight(f.Type, typeWidth))
		sb.WriteByte(' ')
		sb.WriteString(padRight(f.Name, nameWidth))
		sb.WriteString(" = ")
		sb.WriteString(literal)
		sb.WriteByte(';')
	}
	return sb.String(), nil
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
