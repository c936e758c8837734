package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	adminUseCase "github.com/trivalleytech/site-api/internal/admin/usecase"
)

// RunRevokeAdminToken permanently invalidates an admin bearer token.
// Revocation is terminal; a revoked token can never be reactivated.
//
// Requirements: Database must be migrated and accessible.
func RunRevokeAdminToken(
	ctx context.Context,
	tokenAuthority adminUseCase.TokenAuthority,
	logger *slog.Logger,
	writer io.Writer,
	plainToken string,
) error {
	plainToken = strings.TrimSpace(plainToken)
	if plainToken == "" {
		return fmt.Errorf("token is required")
	}

	logger.Info("revoking admin token")

	if err := tokenAuthority.Revoke(ctx, plainToken); err != nil {
		return fmt.Errorf("failed to revoke admin token: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "Admin token revoked successfully.")

	logger.Info("admin token revoked successfully")

	return nil
}
