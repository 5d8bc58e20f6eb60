package javasrc

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderFieldsAlignment(t *testing.T) {
	fields := []ConstantField{
		Int("ONE", 1),
		Int("TWO_HUNDRED", 200),
		String("NAME", "x"),
		Char("C", 'c'),
	}

	got, err := RenderFields(fields)
	if err != nil {
		t.Fatalf("RenderFields error: %v", err)
	}

	expected := strings.Join([]string{
		"public static final int    ONE         = 1;",
		"public static final int    TWO_HUNDRED = 200;",
		`public static final String NAME        = "x";`,
		"public static final char   C           = 'c';",
	}, "\n")
	if got != expected {
		t.Errorf("RenderFields =\n%s\nwant\n%s", got, expected)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != len(fields) {
		t.Fatalf("got %d lines, want %d", len(lines), len(fields))
	}
	column := strings.Index(lines[0], "=")
	for i, line := range lines {
		if c := strings.Index(line, "="); c != column {
			t.Errorf("line %d: '=' at column %d, want %d", i, c, column)
		}
		if !strings.Contains(line, " "+fields[i].Name+" ") {
			t.Errorf("line %d = %q, want field %s", i, line, fields[i].Name)
		}
	}
}

func TestRenderFieldsSingle(t *testing.T) {
	got, err := RenderFields([]ConstantField{String("VERSION", "FIX.4.2")})
	if err != nil {
		t.Fatalf("RenderFields error: %v", err)
	}
	if want := `public static final String VERSION = "FIX.4.2";`; got != want {
		t.Errorf("RenderFields = %q, want %q", got, want)
	}
}

func TestRenderFieldsEmpty(t *testing.T) {
	_, err := RenderFields(nil)
	if !errors.Is(err, ErrEmptyFieldList) {
		t.Errorf("error = %v, want ErrEmptyFieldList", err)
	}
}

func TestRenderFieldsUnsupportedType(t *testing.T) {
	var buf strings.Builder
	err := NewPrinter(&buf).PrintFields("Example", []ConstantField{
		Int("ONE", 1),
		{Type: "double", Name: "HALF", Value: 0.5},
	})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("error = %v, want ErrUnsupportedType", err)
	}

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error %v is not a *FieldError", err)
	}
	if fe.Class != "Example" || fe.Field != "HALF" || fe.Type != "double" {
		t.Errorf("FieldError = %+v, want Example.HALF (double)", fe)
	}
	if buf.Len() != 0 {
		t.Errorf("printer wrote %q after an error", buf.String())
	}
}

func TestRenderFieldsMalformedValue(t *testing.T) {
	_, err := RenderFields([]ConstantField{{Type: TypeChar, Name: "BAD", Value: "xy"}})
	if !errors.Is(err, ErrMalformedValue) {
		t.Fatalf("error = %v, want ErrMalformedValue", err)
	}
	if !strings.Contains(err.Error(), "BAD") {
		t.Errorf("error %q does not name the field", err)
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single line", input: "a", expected: "    a"},
		{name: "blank lines stay blank", input: "a\n\nb", expected: "    a\n\n    b"},
		{name: "whitespace-only line untouched", input: "a\n  \nb", expected: "    a\n  \n    b"},
		{name: "trailing newline", input: "a\n", expected: "    a\n"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := indent(tt.input); got != tt.expected {
				t.Errorf("indent(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
