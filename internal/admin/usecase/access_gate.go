package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	adminDomain "github.com/trivalleytech/site-api/internal/admin/domain"
	adminService "github.com/trivalleytech/site-api/internal/admin/service"
	"github.com/trivalleytech/site-api/internal/config"
)

// accessGate implements AccessGate over the access-token store.
type accessGate struct {
	config       *config.Config
	tokenRepo    AccessTokenRepository
	tokenService adminService.TokenService
	cache        *ResultCache
	logger       *slog.Logger
}

// Check decides whether the bearer of rawToken currently holds admin access.
//
// This method:
// 1. Short-circuits to false for an empty token, without touching the store
// 2. Computes the candidate SHA-256 digest
// 3. Consults the positive-result cache
// 4. Looks up the record by digest under a bounded timeout
// 5. Applies the expiry and revocation rules
//
// Every failure path resolves to false rather than an error. This is a
// UI-gating decision: on any uncertainty the privileged surface stays hidden,
// which is indistinguishable from simply not holding a token. Denials and
// store failures are logged for diagnostics only.
func (g *accessGate) Check(ctx context.Context, rawToken string) bool {
	if rawToken == "" {
		return false
	}

	tokenHash := g.tokenService.HashToken(rawToken)

	if g.cache.Get(tokenHash) {
		return true
	}

	if timeout := g.config.AdminGateTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	token, err := g.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, adminDomain.ErrAccessTokenNotFound) {
			g.logger.Debug("access check denied: unknown token")
			return false
		}
		// Store or network failure: fail closed.
		g.logger.Warn("access check failed, denying", slog.Any("error", err))
		return false
	}

	now := time.Now().UTC()
	if !token.Active(now) {
		g.logger.Debug("access check denied: token inactive",
			slog.Bool("revoked", token.Revoked),
			slog.Time("expires_at", token.ExpiresAt),
		)
		return false
	}

	g.cache.Set(tokenHash, token.ExpiresAt)
	return true
}

// NewAccessGate creates a new AccessGate with the provided dependencies.
// The cache may be nil to disable positive-result caching.
func NewAccessGate(
	cfg *config.Config,
	tokenRepo AccessTokenRepository,
	tokenService adminService.TokenService,
	cache *ResultCache,
	logger *slog.Logger,
) AccessGate {
	return &accessGate{
		config:       cfg,
		tokenRepo:    tokenRepo,
		tokenService: tokenService,
		cache:        cache,
		logger:       logger,
	}
}
