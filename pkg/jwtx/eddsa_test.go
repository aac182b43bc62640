package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	signer, err := NewEphemeralSigner("key-1")
	require.NoError(t, err)
	verifier := VerifierFor("test-issuer", signer)

	claims := NewSessionClaims("user-123", "client", "test-issuer", time.Hour, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "client", got.Role)
	require.Equal(t, "test-issuer", got.Issuer)
	require.NotEmpty(t, got.ID, "claims carry a unique jti")
}

func TestVerifyRejections(t *testing.T) {
	signer, err := NewEphemeralSigner("key-1")
	require.NoError(t, err)
	verifier := VerifierFor("test-issuer", signer)

	t.Run("malformed token", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := NewSessionClaims("user-123", "client", "other-issuer", time.Hour, time.Now())
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := NewSessionClaims("user-123", "client", "test-issuer", time.Hour, time.Now().Add(-2*time.Hour))
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("token signed by a different key", func(t *testing.T) {
		other, err := NewEphemeralSigner("key-1") // same kid, different key material
		require.NoError(t, err)

		claims := NewSessionClaims("user-123", "client", "test-issuer", time.Hour, time.Now())
		token, err := other.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})

	t.Run("unknown kid", func(t *testing.T) {
		other, err := NewEphemeralSigner("key-2")
		require.NoError(t, err)

		claims := NewSessionClaims("user-123", "client", "test-issuer", time.Hour, time.Now())
		token, err := other.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(token)
		require.Error(t, err)
	})
}

func TestNewSessionClaims(t *testing.T) {
	now := time.Now()
	claims := NewSessionClaims("user-1", "admin", "iss", 24*time.Hour, now)

	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "admin", claims.Role)
	require.WithinDuration(t, now.Add(24*time.Hour), claims.ExpiresAt.Time, time.Second)

	// Each session gets its own jti.
	other := NewSessionClaims("user-1", "admin", "iss", 24*time.Hour, now)
	require.NotEqual(t, claims.ID, other.ID)
}
