package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	const key = "test-signing-key"

	token, err := GenerateToken(key, 42, "SALES", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.StaffID)
	assert.Equal(t, "SALES", claims.Role)
}

func TestParseToken_Invalid(t *testing.T) {
	const key = "test-signing-key"

	t.Run("wrong key", func(t *testing.T) {
		token, err := GenerateToken(key, 42, "SALES", time.Hour)
		require.NoError(t, err)

		_, err = ParseToken("another-key", token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateToken(key, 42, "SALES", -time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(key, token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken(key, "not.a.token")
		assert.Error(t, err)
	})
}
