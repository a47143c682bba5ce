package namer

import (
	"errors"
	"fmt"
)

// ErrInvalid is matched by every error returned for a name the backend
// cannot represent.
var ErrInvalid = errors.New("invalid name")

// InvalidKeyError represents a key that cannot be mapped onto a file path.
type InvalidKeyError struct {
	Key     string
	Problem string
}

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key '%s': %s", e.Key, e.Problem)
}

// Unwrap allows matching with errors.Is(err, ErrInvalid).
func (e InvalidKeyError) Unwrap() error {
	return ErrInvalid
}

func errInvalidKey(key string, problem string) error {
	return InvalidKeyError{
		Key:     key,
		Problem: problem,
	}
}

// InvalidNameError represents a namespace name that cannot be mapped onto a directory.
type InvalidNameError struct {
	Name    string
	Problem string
}

func (e InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name '%s': %s", e.Name, e.Problem)
}

// Unwrap allows matching with errors.Is(err, ErrInvalid).
func (e InvalidNameError) Unwrap() error {
	return ErrInvalid
}

func errInvalidName(name string, problem string) error {
	return InvalidNameError{
		Name:    name,
		Problem: problem,
	}
}
