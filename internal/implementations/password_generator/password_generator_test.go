package passwordgenerator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func TestGeneratedPasswordLength(t *testing.T) {
	// Setup ---
	generator := NewGenerator()

	// Exercise ---
	password := generator.GeneratePassword()

	// Verify ---
	require.Len(t, string(password), PasswordLength)
}

func TestGeneratedPasswordIsAlphanumeric(t *testing.T) {
	// Setup ---
	generator := NewGenerator()

	// Exercise / Verify ---
	for i := 0; i < 100; i++ {
		password := string(generator.GeneratePassword())
		for _, r := range password {
			require.True(t, strings.ContainsRune(charset, r), password)
		}
	}
}

func TestGeneratedPasswordsDiffer(t *testing.T) {
	// Setup ---
	generator := NewGenerator()
	seen := make(map[string]struct{})

	// Exercise ---
	for i := 0; i < 100; i++ {
		seen[string(generator.GeneratePassword())] = struct{}{}
	}

	// Verify ---
	require.Greater(t, len(seen), 1)
}
