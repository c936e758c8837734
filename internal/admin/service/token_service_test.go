package service

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	service := NewTokenService()
	assert.NotNil(t, service)
	assert.IsType(t, &tokenService{}, service)
}

func TestTokenService_GenerateToken(t *testing.T) {
	service := NewTokenService()

	t.Run("Success_GenerateToken", func(t *testing.T) {
		plainToken, tokenHash, err := service.GenerateToken()

		// Assert no error
		require.NoError(t, err)

		// Assert plain token is a 64-character lowercase hex string of 32 bytes
		decodedBytes, err := hex.DecodeString(plainToken)
		require.NoError(t, err)
		assert.Len(t, decodedBytes, 32, "decoded token should be 32 bytes")
		assert.Equal(t, plainToken, hex.EncodeToString(decodedBytes), "token should be lowercase hex")

		// Assert token hash is valid SHA-256 hex string (64 characters)
		assert.Len(t, tokenHash, 64, "SHA-256 hash should be 64 hex characters")

		// Assert hash matches manually hashed plain token
		expectedHash := sha256.Sum256([]byte(plainToken))
		expectedHashHex := hex.EncodeToString(expectedHash[:])
		assert.Equal(t, expectedHashHex, tokenHash)

		// The stored digest must never equal the raw secret
		assert.NotEqual(t, plainToken, tokenHash)
	})

	t.Run("Success_GenerateUniqueTokens", func(t *testing.T) {
		plainToken1, tokenHash1, err1 := service.GenerateToken()
		require.NoError(t, err1)

		plainToken2, tokenHash2, err2 := service.GenerateToken()
		require.NoError(t, err2)

		// Assert tokens are different
		assert.NotEqual(t, plainToken1, plainToken2, "generated tokens should be unique")
		assert.NotEqual(t, tokenHash1, tokenHash2, "generated hashes should be unique")
	})

	t.Run("Success_NoHashCollisionsAcrossManyTokens", func(t *testing.T) {
		const n = 10000

		seen := make(map[string]struct{}, n)
		for i := 0; i < n; i++ {
			_, tokenHash, err := service.GenerateToken()
			require.NoError(t, err)

			_, dup := seen[tokenHash]
			require.False(t, dup, "hash collision after %d tokens", i)
			seen[tokenHash] = struct{}{}
		}
	})
}

func TestTokenService_HashToken(t *testing.T) {
	service := NewTokenService()

	t.Run("Success_HashToken", func(t *testing.T) {
		plainToken := "test-token-abc123"

		tokenHash := service.HashToken(plainToken)

		// Assert hash is valid SHA-256 hex string (64 characters)
		assert.Len(t, tokenHash, 64, "SHA-256 hash should be 64 hex characters")

		// Assert hash matches expected SHA-256 hash
		expectedHash := sha256.Sum256([]byte(plainToken))
		expectedHashHex := hex.EncodeToString(expectedHash[:])
		assert.Equal(t, expectedHashHex, tokenHash)
	})

	t.Run("Success_ConsistentHashing", func(t *testing.T) {
		plainToken := "consistent-token-xyz789"

		hash1 := service.HashToken(plainToken)
		hash2 := service.HashToken(plainToken)

		// Assert same input produces same hash
		assert.Equal(t, hash1, hash2, "hashing should be deterministic")
	})

	t.Run("Success_DifferentInputsDifferentHashes", func(t *testing.T) {
		assert.NotEqual(t, service.HashToken("token-a"), service.HashToken("token-b"))
	})
}
