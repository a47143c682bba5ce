package kvns

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every error caused by an invalid argument.
	ErrValidation = errors.New("validation failed")
	// ErrUnsupportedType is returned when a value cannot be produced in the requested type.
	ErrUnsupportedType = errors.New("unsupported type")
)

// ValidationError reports an invalid argument of a namespace operation.
type ValidationError struct {
	Field   string
	Problem string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Problem)
}

// Unwrap allows matching with errors.Is(err, ErrValidation).
func (e ValidationError) Unwrap() error {
	return ErrValidation
}

func errValidation(field, problem string) error {
	return ValidationError{
		Field:   field,
		Problem: problem,
	}
}

// UnsupportedTypeError reports a value type that Get cannot produce.
type UnsupportedTypeError struct {
	Type Type
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type '%s'", e.Type)
}

// Unwrap allows matching with errors.Is(err, ErrUnsupportedType).
func (e UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

func errUnsupportedType(typ Type) error {
	return UnsupportedTypeError{Type: typ}
}
