package hasher_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-kvns/hasher"
)

func TestHasher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		algorithm string
		in        []byte
		out       string
	}{
		{"sha256", []byte(""), "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"sha256", []byte("abc"), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{
			"sha512", []byte("abc"),
			"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
				"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
	}

	for _, test := range tests {
		t.Run(test.algorithm+"/"+string(test.in), func(t *testing.T) {
			t.Parallel()

			h, err := hasher.New(test.algorithm)
			require.NoError(t, err)
			assert.Equal(t, test.algorithm, h.Name())

			result, err := h.Hash(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.out, hex.EncodeToString(result))
		})
	}
}

func TestHasher_Reusable(t *testing.T) {
	t.Parallel()

	h := hasher.NewSHA256Hasher()

	first, err := h.Hash([]byte("abc"))
	require.NoError(t, err)

	second, err := h.Hash([]byte("abc"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHasher_Nil(t *testing.T) {
	t.Parallel()

	_, err := hasher.NewSHA512Hasher().Hash(nil)
	require.ErrorIs(t, err, hasher.ErrDataIsNil)
}

func TestNew_Unknown(t *testing.T) {
	t.Parallel()

	_, err := hasher.New("md5")
	require.ErrorIs(t, err, hasher.ErrUnknownAlgorithm)
}
