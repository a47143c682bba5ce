package s3

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/kv"
)

func TestASCIIJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ascii", input: `{"a":[1,true,null]}`, expected: `{"a":[1,true,null]}`},
		{name: "latin", input: `"żółw"`, expected: `"\u017c\u00f3\u0142w"`},
		{name: "astral", input: `"😀"`, expected: `"\ud83d\ude00"`},
		{name: "escapes kept", input: `"a\"b\\c"`, expected: `"a\"b\\c"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := asciiJSON([]byte(tc.input))
			assert.Equal(t, tc.expected, got)

			var original, decoded any
			require.NoError(t, json.Unmarshal([]byte(tc.input), &original))
			require.NoError(t, json.Unmarshal([]byte(got), &decoded))
			assert.Equal(t, original, decoded)
		})
	}
}

func TestHeaders_RoundTrip(t *testing.T) {
	t.Parallel()

	headers := encodeHeaders(42, json.RawMessage(`{"k":"ü"}`))
	decoded := decodeHeaders(headers)

	assert.Equal(t, int64(42), decoded.Expiration)
	assert.JSONEq(t, `{"k":"ü"}`, string(decoded.Metadata))
}

func TestDecodeHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		expiration int64
		metadata   json.RawMessage
	}{
		{name: "absent", headers: nil, expiration: kv.NoExpiration, metadata: nil},
		{
			name:       "null metadata",
			headers:    map[string]string{"expiration": "-1", "metadata": "null"},
			expiration: kv.NoExpiration,
			metadata:   nil,
		},
		{
			name:       "mixed case names",
			headers:    map[string]string{"Expiration": " 100 ", "METADATA": "[1]"},
			expiration: 100,
			metadata:   json.RawMessage(`[1]`),
		},
		{
			name:       "garbage",
			headers:    map[string]string{"expiration": "soon", "metadata": "{"},
			expiration: kv.NoExpiration,
			metadata:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := decodeHeaders(tc.headers)
			assert.Equal(t, tc.expiration, got.Expiration)
			assert.Equal(t, tc.metadata, got.Metadata)
		})
	}
}
