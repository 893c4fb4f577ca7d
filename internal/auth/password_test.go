package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	digest, err := HashPassword("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, "supersecret", digest)

	// Per-call salting: the same plaintext never hashes identically twice.
	second, err := HashPassword("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, digest, second)
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("supersecret")
	require.NoError(t, err)

	require.True(t, CheckPassword("supersecret", digest))
	require.False(t, CheckPassword("wrong", digest))
	require.False(t, CheckPassword("", digest))
	require.False(t, CheckPassword("supersecret", "not-a-bcrypt-digest"))
}
