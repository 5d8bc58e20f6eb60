package javasrc

import (
	"errors"
	"testing"
)

func TestFormatLiterals(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		value    any
		expected string
	}{
		{name: "char from string", typ: TypeChar, value: "x", expected: "'x'"},
		{name: "char from rune", typ: TypeChar, value: 'A', expected: "'A'"},
		{name: "char from byte", typ: TypeChar, value: byte('0'), expected: "'0'"},
		{name: "multibyte char", typ: TypeChar, value: "é", expected: "'é'"},
		{name: "int", typ: TypeInt, value: 42, expected: "42"},
		{name: "negative int", typ: TypeInt, value: -1, expected: "-1"},
		{name: "int64", typ: TypeInt, value: int64(1234567), expected: "1234567"},
		{name: "uint16", typ: TypeInt, value: uint16(65535), expected: "65535"},
		{name: "string", typ: TypeString, value: "hello", expected: `"hello"`},
		{name: "empty string", typ: TypeString, value: "", expected: `""`},
		{name: "string is not escaped", typ: TypeString, value: `a"b`, expected: `"a"b"`},
	}

	r := DefaultRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Format(tt.typ, tt.value)
			if err != nil {
				t.Fatalf("Format(%q, %v) error: %v", tt.typ, tt.value, err)
			}
			if got != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.typ, tt.value, got, tt.expected)
			}
			again, _ := r.Format(tt.typ, tt.value)
			if again != got {
				t.Errorf("second Format = %q, want %q", again, got)
			}
		})
	}
}

func TestFormatMalformed(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		value any
	}{
		{name: "char from empty string", typ: TypeChar, value: ""},
		{name: "char from long string", typ: TypeChar, value: "ab"},
		{name: "char from int", typ: TypeChar, value: 1},
		{name: "int from string", typ: TypeInt, value: "1"},
		{name: "int from float", typ: TypeInt, value: 1.5},
		{name: "string from int", typ: TypeString, value: 7},
		{name: "nil string", typ: TypeString, value: nil},
	}

	r := DefaultRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Format(tt.typ, tt.value)
			if !errors.Is(err, ErrMalformedValue) {
				t.Errorf("Format(%q, %v) error = %v, want ErrMalformedValue", tt.typ, tt.value, err)
			}
		})
	}
}

func TestFormatUnsupportedType(t *testing.T) {
	_, err := DefaultRegistry().Format("double", 1.5)
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("error = %v, want ErrUnsupportedType", err)
	}
}

func TestRegistryRegister(t *testing.T) {
	r := DefaultRegistry().Register("long", func(value any) (string, error) {
		s, err := FormatInt(value)
		if err != nil {
			return "", err
		}
		return s + "L", nil
	})

	got, err := r.Format("long", int64(10))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got != "10L" {
		t.Errorf("Format = %q, want %q", got, "10L")
	}

	if _, ok := DefaultRegistry().Lookup("long"); ok {
		t.Error("registering on one registry must not affect new default registries")
	}
}
