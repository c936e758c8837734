package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessToken_Active(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		token    AccessToken
		expected bool
	}{
		{
			name: "active token",
			token: AccessToken{
				ExpiresAt: now.Add(time.Hour),
				Revoked:   false,
			},
			expected: true,
		},
		{
			name: "expired token",
			token: AccessToken{
				ExpiresAt: now.Add(-time.Hour),
				Revoked:   false,
			},
			expected: false,
		},
		{
			name: "expiry instant is not active",
			token: AccessToken{
				ExpiresAt: now,
				Revoked:   false,
			},
			expected: false,
		},
		{
			name: "revoked token before expiry",
			token: AccessToken{
				ExpiresAt: now.Add(time.Hour),
				Revoked:   true,
			},
			expected: false,
		},
		{
			name: "revoked and expired",
			token: AccessToken{
				ExpiresAt: now.Add(-time.Hour),
				Revoked:   true,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.Active(now))
		})
	}
}
