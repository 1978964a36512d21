package crypto_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cashbox/internal/crypto"
)

// fast keeps the suite quick; production parameters are checked separately.
func fast() *crypto.Hasher { return crypto.NewHasher(crypto.WithIterations(1000)) }

func TestHashVerify_RoundTrip(t *testing.T) {
	h := fast()
	for _, pw := range []string{"secret1", "correct horse battery", "ünïcødé!", "      "} {
		salt, err := h.GenerateSalt()
		require.NoError(t, err)

		hash, err := h.Hash([]byte(pw), salt)
		require.NoError(t, err)

		assert.True(t, h.Verify(hash, []byte(pw), salt), pw)
		assert.False(t, h.Verify(hash, []byte(pw+"x"), salt), pw)
	}
}

func TestVerify_DifferentSaltFails(t *testing.T) {
	h := fast()
	s1, err := h.GenerateSalt()
	require.NoError(t, err)
	s2, err := h.GenerateSalt()
	require.NoError(t, err)

	hash, err := h.Hash([]byte("secret1"), s1)
	require.NoError(t, err)
	assert.False(t, h.Verify(hash, []byte("secret1"), s2))
}

func TestHash_DefaultParameters(t *testing.T) {
	h := crypto.NewHasher()
	salt, err := h.GenerateSalt()
	require.NoError(t, err)

	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, rawSalt, crypto.SaltBytes)

	hash, err := h.Hash([]byte("secret1"), salt)
	require.NoError(t, err)
	rawKey, err := base64.StdEncoding.DecodeString(hash)
	require.NoError(t, err)
	assert.Len(t, rawKey, crypto.KeyBits/8)

	// Same inputs must derive the same key.
	again, err := h.Hash([]byte("secret1"), salt)
	require.NoError(t, err)
	assert.Equal(t, hash, again)
}

func TestGenerateSalt_Unique(t *testing.T) {
	h := fast()
	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		s, err := h.GenerateSalt()
		require.NoError(t, err)
		_, dup := seen[s]
		require.False(t, dup, "duplicate salt after %d draws", i)
		seen[s] = struct{}{}
	}
}

func TestVerify_CorruptSaltIsMismatch(t *testing.T) {
	h := fast()
	_, err := h.Hash([]byte("secret1"), "not*base64")
	require.Error(t, err)

	assert.False(t, h.Verify("", []byte("secret1"), "not*base64"))
	assert.False(t, h.Verify("anything", []byte("secret1"), "not*base64"))
}

func TestVerify_TruncatedHashFails(t *testing.T) {
	h := fast()
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	hash, err := h.Hash([]byte("secret1"), salt)
	require.NoError(t, err)

	assert.False(t, h.Verify(hash[:len(hash)-1], []byte("secret1"), salt))
	assert.False(t, h.Verify(hash+"A", []byte("secret1"), salt))
}

func TestWipe(t *testing.T) {
	b := []byte("secret1")
	crypto.Wipe(b)
	assert.Equal(t, make([]byte, 7), b)
}
