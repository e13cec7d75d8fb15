package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_Roundtrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, h.Verify("s3cret-password", hash))
	assert.False(t, h.Verify("wrong-password", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Verify_BadHash(t *testing.T) {
	h := NewBcryptHasher()

	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
}
