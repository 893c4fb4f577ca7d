package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Sign(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
}

func TestTokenCodec_Expiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	codec := NewTokenCodec("test-secret")
	codec.now = func() time.Time { return issued }

	token, err := codec.Sign(42, "user@example.com")
	require.NoError(t, err)

	// Still inside the 15 minute window.
	codec.now = func() time.Time { return issued.Add(14 * time.Minute) }
	claims, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.UserID)

	// Past expiry.
	codec.now = func() time.Time { return issued.Add(16 * time.Minute) }
	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Failures(t *testing.T) {
	codec := NewTokenCodec("test-secret")

	token, err := codec.Sign(7, "user@example.com")
	require.NoError(t, err)

	// Wrong secret, tampered token, and garbage all yield the same error.
	other := NewTokenCodec("different-secret")
	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.Verify(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = codec.Verify("")
	require.ErrorIs(t, err, ErrInvalidToken)
}
