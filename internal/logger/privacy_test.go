package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAccountID(t *testing.T) {
	t.Parallel()

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		a := HashAccountID("5f1c0c36-9a3e-4a0f-9d7e-1f2a3b4c5d6e")
		b := HashAccountID("5f1c0c36-9a3e-4a0f-9d7e-1f2a3b4c5d6e")
		require.Equal(t, a, b)
		require.Len(t, a, 8)
	})

	t.Run("differs across accounts", func(t *testing.T) {
		t.Parallel()
		require.NotEqual(t, HashAccountID("account-a"), HashAccountID("account-b"))
	})

	t.Run("does not leak the raw id", func(t *testing.T) {
		t.Parallel()
		require.NotContains(t, HashAccountID("secret-account"), "secret")
	})
}

func TestSanitizeContact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "<empty>"},
		{"short", "0171", "<4 chars>"},
		{"long", "owner@example.com", "own...<17 chars>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, SanitizeContact(tt.input))
		})
	}
}
