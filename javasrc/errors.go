package javasrc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned when a field's type has no registered formatter.
	ErrUnsupportedType = errors.New("unsupported field type")
	// ErrMalformedValue is returned when a value does not fit its field type.
	ErrMalformedValue = errors.New("malformed value")
	// ErrEmptyFieldList is returned when a class has no fields and no nested classes.
	ErrEmptyFieldList = errors.New("empty field list")
	// ErrInvalidJavadoc is returned when a javadoc would terminate its own comment.
	ErrInvalidJavadoc = errors.New("javadoc must not contain \"*/\"")
	// ErrInvalidPackage is returned for an empty or malformed package name.
	ErrInvalidPackage = errors.New("invalid package name")
	// ErrNoClass is returned when a compilation unit or a nested class slot is nil.
	ErrNoClass = errors.New("no class")
)

// FieldError reports which constant of which class could not be rendered.
type FieldError struct {
	Class string
	Field string
	Type  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s (%s): %v", e.Class, e.Field, e.Type, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ClassError reports a problem with a class as a whole.
type ClassError struct {
	Class string
	Err   error
}

func (e *ClassError) Error() string {
	return fmt.Sprintf("class %s: %v", e.Class, e.Err)
}

func (e *ClassError) Unwrap() error {
	return e.Err
}
