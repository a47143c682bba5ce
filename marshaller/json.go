package marshaller

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

const formatJSON = "json"

var errTrailingData = errors.New("unexpected data after top-level value")

// JSONMarshaller encodes values as compact JSON without HTML escaping.
// Numbers decoded into interface values are json.Number, so integers keep
// every digit.
type JSONMarshaller struct{}

var _ Marshaller = JSONMarshaller{}

// NewJSONMarshaller creates a new JSONMarshaller.
func NewJSONMarshaller() JSONMarshaller {
	return JSONMarshaller{}
}

// Marshal implements Marshaller.
func (m JSONMarshaller) Marshal(data any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		return nil, errMarshal(formatJSON, err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// Unmarshal implements Marshaller.
func (m JSONMarshaller) Unmarshal(data []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(out); err != nil {
		return errUnmarshal(formatJSON, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errUnmarshal(formatJSON, errTrailingData)
	}

	return nil
}

// Raw encodes data for storage, mapping a nil value to a nil message.
func (m JSONMarshaller) Raw(data any) (json.RawMessage, error) {
	if data == nil {
		return nil, nil
	}

	encoded, err := m.Marshal(data)
	if err != nil {
		return nil, err
	}

	if bytes.Equal(encoded, []byte("null")) {
		return nil, nil
	}

	return encoded, nil
}

// Decode decodes a stored message into a generic value, mapping an empty
// message to nil.
func (m JSONMarshaller) Decode(raw []byte) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var out any
	if err := m.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// TypedJSONMarshaller is a generic JSON marshaller for typed objects.
type TypedJSONMarshaller[T any] struct{}

var _ TypedMarshaller[struct{}] = TypedJSONMarshaller[struct{}]{}

// NewTypedJSONMarshaller creates a new TypedJSONMarshaller for the specified type.
func NewTypedJSONMarshaller[T any]() TypedJSONMarshaller[T] {
	return TypedJSONMarshaller[T]{}
}

// Marshal serializes the typed data to JSON.
func (m TypedJSONMarshaller[T]) Marshal(data T) ([]byte, error) {
	return JSONMarshaller{}.Marshal(data)
}

// Unmarshal deserializes JSON data into a typed object.
func (m TypedJSONMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, errUnmarshal(formatJSON, err)
	}

	return out, nil
}
