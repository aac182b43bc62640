package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Run("256-bit tokens are 43 chars", func(t *testing.T) {
		token, err := GenerateToken(TokenSize256)
		require.NoError(t, err)
		require.Len(t, token, 43)
	})

	t.Run("512-bit tokens are 86 chars", func(t *testing.T) {
		token, err := GenerateToken(TokenSize512)
		require.NoError(t, err)
		require.Len(t, token, 86)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			token, err := GenerateToken(TokenSize256)
			require.NoError(t, err)
			require.False(t, seen[token], "token collision")
			seen[token] = true
		}
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, FingerprintToken("some-token"), FingerprintToken("some-token"))
	})

	t.Run("distinct inputs give distinct fingerprints", func(t *testing.T) {
		require.NotEqual(t, FingerprintToken("token-a"), FingerprintToken("token-b"))
	})

	t.Run("fingerprint differs from the token", func(t *testing.T) {
		token, err := GenerateToken(TokenSize512)
		require.NoError(t, err)
		require.NotEqual(t, token, FingerprintToken(token))
	})
}
