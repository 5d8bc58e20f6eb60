package tables

import "errors"

var (
	// ErrReadDefinition is returned when a definition file cannot be read.
	ErrReadDefinition = errors.New("read table definition")
	// ErrDecodeDefinition is returned when YAML decoding fails.
	ErrDecodeDefinition = errors.New("decode table definition")
	// ErrAmbiguousBody is returned when a class declares both fields and classes.
	ErrAmbiguousBody = errors.New("class declares both fields and classes")
	// ErrMissingName is returned when a class or field has no name.
	ErrMissingName = errors.New("missing name")
	// ErrUnknownNaming is returned for an unsupported naming mode.
	ErrUnknownNaming = errors.New("unknown naming mode")
)
