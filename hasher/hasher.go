// Package hasher provides named digest algorithms used to checksum
// namespace dumps.
package hasher

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
)

var (
	// ErrDataIsNil is returned if the passed data is nil.
	ErrDataIsNil = errors.New("data is nil")
	// ErrUnknownAlgorithm is returned by New for an unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)

// Default is the algorithm used for new checksums.
const Default = "sha256"

// Hasher computes a digest of a byte slice.
// Every call starts from a fresh state, so a Hasher can be reused.
type Hasher interface {
	Name() string
	Hash(data []byte) ([]byte, error)
}

type digestHasher struct {
	name    string
	newHash func() hash.Hash
}

// NewSHA256Hasher creates a SHA-256 hasher.
func NewSHA256Hasher() Hasher {
	return digestHasher{name: "sha256", newHash: sha256.New}
}

// NewSHA512Hasher creates a SHA-512 hasher.
func NewSHA512Hasher() Hasher {
	return digestHasher{name: "sha512", newHash: sha512.New}
}

// New returns the hasher registered under name.
func New(name string) (Hasher, error) {
	switch name {
	case "sha256":
		return NewSHA256Hasher(), nil
	case "sha512":
		return NewSHA512Hasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Name implements Hasher.
func (h digestHasher) Name() string {
	return h.name
}

// Hash implements Hasher.
func (h digestHasher) Hash(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	digest := h.newHash()
	_, _ = digest.Write(data) // hash.Hash never returns an error.

	return digest.Sum(nil), nil
}
