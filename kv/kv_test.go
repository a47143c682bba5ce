package kv_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-kvns/kv"
)

func TestEntry_ExpiredAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		expiration int64
		now        int64
		expected   bool
	}{
		{name: "never expires", expiration: kv.NoExpiration, now: 1 << 40, expected: false},
		{name: "before", expiration: 1000, now: 999, expected: false},
		{name: "at expiration", expiration: 1000, now: 1000, expected: false},
		{name: "after", expiration: 1000, now: 1001, expected: true},
		{name: "zero expiration", expiration: 0, now: 1, expected: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			entry := kv.Entry{Value: nil, Expiration: tc.expiration, Metadata: nil}
			assert.Equal(t, tc.expected, entry.ExpiredAt(tc.now))
			assert.Equal(t, tc.expected, entry.Meta("key").ExpiredAt(tc.now))
		})
	}
}

func TestEntry_HasMeta(t *testing.T) {
	t.Parallel()

	assert.False(t, kv.Entry{Value: []byte("v"), Expiration: kv.NoExpiration, Metadata: nil}.HasMeta())
	assert.True(t, kv.Entry{Value: nil, Expiration: 10, Metadata: nil}.HasMeta())
	assert.True(t, kv.Entry{Value: nil, Expiration: kv.NoExpiration, Metadata: json.RawMessage(`{}`)}.HasMeta())
}

func TestEntry_Meta(t *testing.T) {
	t.Parallel()

	entry := kv.Entry{Value: []byte("v"), Expiration: 7, Metadata: json.RawMessage(`[1]`)}

	assert.Equal(t, kv.KeyMeta{Key: "k", Expiration: 7, Metadata: json.RawMessage(`[1]`)}, entry.Meta("k"))
}
