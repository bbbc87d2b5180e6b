package token

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHKDFTokenGenerator_RequiresSecret(t *testing.T) {
	_, err := NewHKDFTokenGenerator("")
	assert.Error(t, err)
}

func TestHKDFTokenGenerator_DistinctTokensForSameCoordinates(t *testing.T) {
	gen, err := NewHKDFTokenGenerator("unit-test-secret")
	require.NoError(t, err)

	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := gen.Generate("content-1", 7, issuedAt)
		require.NoError(t, err)
		assert.False(t, seen[tok], "token collision on iteration %d", i)
		seen[tok] = true
	}
}

func TestHKDFTokenGenerator_TokenShape(t *testing.T) {
	gen, err := NewHKDFTokenGenerator("unit-test-secret")
	require.NoError(t, err)

	tok, err := gen.Generate("content-1", 7, time.Now().UTC())
	require.NoError(t, err)

	// 16-byte salt plus 32-byte derived key, hex encoded.
	assert.Len(t, tok, (saltSize+tokenSize)*2)
	_, err = hex.DecodeString(tok)
	assert.NoError(t, err)
}

func TestHKDFTokenGenerator_SecretMatters(t *testing.T) {
	genA, err := NewHKDFTokenGenerator("secret-a")
	require.NoError(t, err)
	genB, err := NewHKDFTokenGenerator("secret-b")
	require.NoError(t, err)

	issuedAt := time.Now().UTC()
	tokA, err := genA.Generate("content-1", 7, issuedAt)
	require.NoError(t, err)
	tokB, err := genB.Generate("content-1", 7, issuedAt)
	require.NoError(t, err)

	assert.NotEqual(t, tokA, tokB)
}
