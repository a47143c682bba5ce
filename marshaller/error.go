package marshaller

import (
	"fmt"
)

// MarshalError is returned when a value cannot be encoded.
type MarshalError struct {
	// Format is the encoding that failed, "json" or "yaml".
	Format string
	parent error
}

func errMarshal(format string, parent error) error {
	if parent == nil {
		return nil
	}

	return MarshalError{Format: format, parent: parent}
}

// Unwrap returns the encoder error.
func (e MarshalError) Unwrap() error {
	return e.parent
}

func (e MarshalError) Error() string {
	return fmt.Sprintf("failed to encode %s: %s", e.Format, e.parent)
}

// UnmarshalError is returned when stored bytes are not a valid document
// in the expected format.
type UnmarshalError struct {
	Format string
	parent error
}

func errUnmarshal(format string, parent error) error {
	if parent == nil {
		return nil
	}

	return UnmarshalError{Format: format, parent: parent}
}

// Unwrap returns the decoder error.
func (e UnmarshalError) Unwrap() error {
	return e.parent
}

func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to decode %s: %s", e.Format, e.parent)
}
