// Package usecase implements business logic orchestration for admin access control.
package usecase

import (
	"context"
	"fmt"
	"time"

	adminDomain "github.com/trivalleytech/site-api/internal/admin/domain"
	adminService "github.com/trivalleytech/site-api/internal/admin/service"
	"github.com/trivalleytech/site-api/internal/config"
	apperrors "github.com/trivalleytech/site-api/internal/errors"
)

// tokenAuthority implements TokenAuthority for minting and revoking admin tokens.
type tokenAuthority struct {
	config       *config.Config
	tokenRepo    AccessTokenRepository
	tokenService adminService.TokenService
	cache        *ResultCache
}

// Issue mints a new admin bearer token.
//
// This method:
// 1. Generates a 32-byte token from a cryptographically secure source
// 2. Computes the SHA-256 digest of its hex form
// 3. Persists {token_hash, expires_at, revoked: false, created_at}
// 4. Returns the plain token to the caller (only shown once)
//
// The raw token never reaches the store, so a compromise of the store's read
// path cannot yield usable credentials. A failed write is a hard failure: the
// token must not be handed out if its record did not persist.
func (t *tokenAuthority) Issue(ctx context.Context, expiresInDays int) (string, error) {
	if expiresInDays <= 0 {
		expiresInDays = t.config.AdminTokenExpiresInDays
	}
	if expiresInDays <= 0 {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "token lifetime must be positive")
	}

	plainToken, tokenHash, err := t.tokenService.GenerateToken()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	token := &adminDomain.AccessToken{
		TokenHash: tokenHash,
		ExpiresAt: now.Add(time.Duration(expiresInDays) * 24 * time.Hour),
		Revoked:   false,
		CreatedAt: now,
	}

	if err := t.tokenRepo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("failed to persist access token: %w", err)
	}

	return plainToken, nil
}

// Revoke permanently invalidates the presented token and drops any cached
// positive check result for it, so the revocation is visible immediately.
func (t *tokenAuthority) Revoke(ctx context.Context, plainToken string) error {
	tokenHash := t.tokenService.HashToken(plainToken)

	if err := t.tokenRepo.Revoke(ctx, tokenHash); err != nil {
		return err
	}

	if t.cache != nil {
		t.cache.Invalidate(tokenHash)
	}
	return nil
}

// List returns issued token records, newest first.
func (t *tokenAuthority) List(ctx context.Context, offset, limit int) ([]*adminDomain.AccessToken, error) {
	return t.tokenRepo.List(ctx, offset, limit)
}

// NewTokenAuthority creates a new TokenAuthority with the provided dependencies.
// The cache may be nil; when present it is invalidated on revocation so a
// cached positive check cannot outlive the record it was derived from.
func NewTokenAuthority(
	cfg *config.Config,
	tokenRepo AccessTokenRepository,
	tokenService adminService.TokenService,
	cache *ResultCache,
) TokenAuthority {
	return &tokenAuthority{
		config:       cfg,
		tokenRepo:    tokenRepo,
		tokenService: tokenService,
		cache:        cache,
	}
}
