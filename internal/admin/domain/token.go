// Package domain defines core domain models and errors for admin access control.
package domain

import (
	"time"
)

// AccessToken is the persisted record of an issued admin bearer token.
//
// Only the SHA-256 digest of the secret is ever stored; possession of the raw
// token is the sole credential. The record is immutable after creation except
// for the Revoked flag, which only moves from false to true. Records are kept
// after expiry or revocation for audit purposes and are never deleted.
type AccessToken struct {
	TokenHash string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// Active reports whether the token grants access at the given instant.
// A token is active while it is not revoked and now is strictly before ExpiresAt.
func (t *AccessToken) Active(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
