package javasrc

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Type tags recognized by the default registry.
const (
	TypeChar   = "char"
	TypeInt    = "int"
	TypeString = "String"
)

// A Formatter renders a raw value as a Java literal.
type Formatter func(value any) (string, error)

// Registry maps Java type names to literal formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// DefaultRegistry returns a registry that knows char, int and String.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TypeChar, FormatChar)
	r.Register(TypeInt, FormatInt)
	r.Register(TypeString, FormatString)
	return r
}

var defaultRegistry = DefaultRegistry()

// Register maps typ to f, replacing any previous formatter for typ.
func (r *Registry) Register(typ string, f Formatter) *Registry {
	r.formatters[typ] = f
	return r
}

// Lookup returns the formatter registered for typ.
func (r *Registry) Lookup(typ string) (Formatter, bool) {
	f, ok := r.formatters[typ]
	return f, ok
}

// Format renders value as a literal of type typ.
func (r *Registry) Format(typ string, value any) (string, error) {
	f, ok := r.Lookup(typ)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
	}
	return f(value)
}

// FormatChar renders a single character in single quotes. The value may be
// a rune, a byte or a string holding exactly one character.
func FormatChar(value any) (string, error) {
	var s string
	switch v := value.(type) {
	case rune:
		s = string(v)
	case byte:
		s = string(rune(v))
	case string:
		s = v
	default:
		return "", fmt.Errorf("%w: char value %v has type %T", ErrMalformedValue, value, value)
	}
	if utf8.RuneCountInString(s) != 1 {
		return "", fmt.Errorf("%w: char value %q is not a single character", ErrMalformedValue, s)
	}
	return "'" + s + "'", nil
}

// FormatInt renders an integer in decimal.
func FormatInt(value any) (string, error) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	}
	return "", fmt.Errorf("%w: int value %v has type %T", ErrMalformedValue, value, value)
}

// FormatString renders a string in double quotes. The content is not
// escaped.
func FormatString(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: String value %v has type %T", ErrMalformedValue, value, value)
	}
	return `"` + s + `"`, nil
}
