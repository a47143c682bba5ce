// Package marshaller provides the codecs used to turn stored bytes into
// values: JSON for values and metadata, YAML for configuration documents.
package marshaller

// Marshaller is a codec for untyped values.
type Marshaller interface {
	Marshal(data any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

// TypedMarshaller is a generic interface for typed marshalling operations.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}
