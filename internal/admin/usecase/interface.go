// Package usecase defines business logic interfaces for admin access control.
package usecase

import (
	"context"

	adminDomain "github.com/trivalleytech/site-api/internal/admin/domain"
)

// AccessTokenRepository defines persistence operations for admin access tokens.
// Implementations must support transaction-aware operations via context propagation.
type AccessTokenRepository interface {
	// Create stores a new access token record in the repository.
	Create(ctx context.Context, token *adminDomain.AccessToken) error

	// GetByTokenHash retrieves a record by its hash.
	// Returns ErrAccessTokenNotFound if no record matches.
	GetByTokenHash(ctx context.Context, tokenHash string) (*adminDomain.AccessToken, error)

	// Revoke sets the revoked flag of the matching record. The flag never
	// moves back to false. Returns ErrAccessTokenNotFound if no record matches.
	Revoke(ctx context.Context, tokenHash string) error

	// List returns issued records newest first, for operator audit.
	List(ctx context.Context, offset, limit int) ([]*adminDomain.AccessToken, error)
}

// TokenAuthority defines business logic for minting and revoking admin tokens.
// Issuance is operator-driven and rare; concurrent calls simply produce
// multiple independent valid records.
type TokenAuthority interface {
	// Issue mints a new admin bearer token valid for expiresInDays days.
	// A non-positive expiresInDays falls back to the configured default.
	//
	// Returns the plain token, which is shown exactly once and never persisted
	// in recoverable form. If the record write fails, no token is returned:
	// the caller must not treat an unpersisted token as valid.
	Issue(ctx context.Context, expiresInDays int) (plainToken string, err error)

	// Revoke permanently invalidates the token with the given raw value.
	// Revocation is terminal; nothing in the API un-revokes a record.
	// Returns ErrAccessTokenNotFound if the token matches no record.
	Revoke(ctx context.Context, plainToken string) error

	// List returns issued token records, newest first. Hashes only; the raw
	// secrets are unrecoverable.
	List(ctx context.Context, offset, limit int) ([]*adminDomain.AccessToken, error)
}

// AccessGate decides whether a presented raw token currently grants admin
// access. It is the single verification path for both HTTP middleware and
// operator tooling.
type AccessGate interface {
	// Check reports whether the bearer of rawToken holds valid, non-expired,
	// non-revoked access. An absent or empty token resolves to false without
	// a store query. Store errors and timeouts also resolve to false (fail
	// closed); they are logged, never surfaced.
	Check(ctx context.Context, rawToken string) bool
}
