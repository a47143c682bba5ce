package marshaller_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/marshaller"
)

type yamlDoc struct {
	Name  string   `yaml:"name"`
	Value int      `yaml:"value"`
	Tags  []string `yaml:"tags,omitempty"`
}

func TestJSONMarshaller_RawAndDecode(t *testing.T) {
	t.Parallel()

	m := marshaller.NewJSONMarshaller()

	raw, err := m.Raw(map[string]any{"testing": true, "html": "<a&b>", "nested": []any{1.5, "x"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"testing":true,"html":"<a&b>","nested":[1.5,"x"]}`, string(raw))
	assert.Contains(t, string(raw), "<a&b>")

	decoded, err := m.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"testing": true, "html": "<a&b>", "nested": []any{json.Number("1.5"), "x"}}, decoded)
}

func TestJSONMarshaller_LargeIntegers(t *testing.T) {
	t.Parallel()

	m := marshaller.NewJSONMarshaller()

	raw, err := m.Raw(map[string]any{"id": int64(9007199254740993)})
	require.NoError(t, err)
	assert.Equal(t, `{"id":9007199254740993}`, string(raw))

	decoded, err := m.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": json.Number("9007199254740993")}, decoded)

	again, err := m.Raw(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(raw), string(again))
}

func TestJSONMarshaller_TrailingData(t *testing.T) {
	t.Parallel()

	m := marshaller.NewJSONMarshaller()

	_, err := m.Decode([]byte(`{"a":1} {"b":2}`))

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)

	decoded, err := m.Decode([]byte("  7 \n"))
	require.NoError(t, err)
	assert.Equal(t, json.Number("7"), decoded)
}

func TestJSONMarshaller_Null(t *testing.T) {
	t.Parallel()

	m := marshaller.NewJSONMarshaller()

	raw, err := m.Raw(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	var nilMap map[string]any

	raw, err = m.Raw(nilMap)
	require.NoError(t, err)
	assert.Nil(t, raw)

	decoded, err := m.Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, decoded)
}

func TestJSONMarshaller_Errors(t *testing.T) {
	t.Parallel()

	m := marshaller.NewJSONMarshaller()

	_, err := m.Marshal(make(chan int))

	var marshalErr marshaller.MarshalError
	require.ErrorAs(t, err, &marshalErr)

	_, err = m.Decode([]byte("{not json"))

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
}

func TestTypedJSONMarshaller(t *testing.T) {
	t.Parallel()

	type doc struct {
		Expiration int64 `json:"expiration"`
	}

	m := marshaller.NewTypedJSONMarshaller[doc]()

	data, err := m.Marshal(doc{Expiration: 1000})
	require.NoError(t, err)
	assert.JSONEq(t, `{"expiration":1000}`, string(data))

	out, err := m.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), out.Expiration)

	_, err = m.Unmarshal([]byte("]"))
	require.Error(t, err)
}

func TestTypedYamlMarshaller(t *testing.T) {
	t.Parallel()

	m := marshaller.NewTypedYamlMarshaller[yamlDoc]()

	data, err := m.Marshal(yamlDoc{Name: "test", Value: 42, Tags: []string{"a"}})
	require.NoError(t, err)

	out, err := m.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, yamlDoc{Name: "test", Value: 42, Tags: []string{"a"}}, out)

	base := yamlDoc{Name: "keep", Value: 1, Tags: nil}
	require.NoError(t, m.UnmarshalInto([]byte("value: 7\n"), &base))
	assert.Equal(t, "keep", base.Name)
	assert.Equal(t, 7, base.Value)

	_, err = m.Unmarshal([]byte("name: [unterminated"))

	var unmarshalErr marshaller.UnmarshalError
	require.ErrorAs(t, err, &unmarshalErr)
}
