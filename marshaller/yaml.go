package marshaller

import (
	"gopkg.in/yaml.v3"
)

const formatYAML = "yaml"

// TypedYamlMarshaller is a generic YAML marshaller for typed objects.
type TypedYamlMarshaller[T any] struct{}

var _ TypedMarshaller[struct{}] = TypedYamlMarshaller[struct{}]{}

// NewTypedYamlMarshaller creates a new TypedYamlMarshaller for the specified type.
func NewTypedYamlMarshaller[T any]() TypedYamlMarshaller[T] {
	return TypedYamlMarshaller[T]{}
}

// Marshal serializes the typed data to YAML format.
func (m TypedYamlMarshaller[T]) Marshal(data T) ([]byte, error) {
	marshalled, err := yaml.Marshal(data)
	if err != nil {
		return nil, errMarshal(formatYAML, err)
	}

	return marshalled, nil
}

// UnmarshalInto decodes YAML data over an existing value, keeping fields
// the document does not mention.
func (m TypedYamlMarshaller[T]) UnmarshalInto(data []byte, out *T) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return errUnmarshal(formatYAML, err)
	}

	return nil
}

// Unmarshal deserializes YAML data into a typed object.
func (m TypedYamlMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	if err := m.UnmarshalInto(data, &out); err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}
