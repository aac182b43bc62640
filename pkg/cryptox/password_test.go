package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Set up a temporary pepper file for testing
	tmpDir := os.TempDir()
	pepperPath := filepath.Join(tmpDir, "test-pepper")
	SetPepperPath(pepperPath)

	// Clean up pepper file before and after tests
	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"unicode password", "пароль密码"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			// Verify PHC format
			require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"),
				"hash should be in PHC format")

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6, "PHC hash should have 6 parts")
		})
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	// Same password twice must not produce the same hash.
	first, err := HashPassword("password123")
	require.NoError(t, err)
	second, err := HashPassword("password123")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	t.Run("correct password verifies", func(t *testing.T) {
		require.NoError(t, VerifyPassword("correct-password", hash))
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("wrong-password", hash), ErrPasswordMismatch)
	})

	t.Run("malformed hash rejected", func(t *testing.T) {
		require.Error(t, VerifyPassword("correct-password", "not-a-phc-hash"))
	})

	t.Run("empty hash rejected", func(t *testing.T) {
		require.Error(t, VerifyPassword("correct-password", ""))
	})
}
