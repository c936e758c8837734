package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/trivalleytech/site-api/internal/admin/credential"
	adminUseCase "github.com/trivalleytech/site-api/internal/admin/usecase"
)

// RunLogin verifies an admin token and saves it as the operator credential.
// The token is checked against the store before saving, so an unknown or
// expired token is rejected instead of persisted.
//
// Requirements: Database must be migrated and accessible.
func RunLogin(
	ctx context.Context,
	accessGate adminUseCase.AccessGate,
	store *credential.Store,
	logger *slog.Logger,
	writer io.Writer,
	plainToken string,
) error {
	plainToken = strings.TrimSpace(plainToken)
	if plainToken == "" {
		return fmt.Errorf("token is required")
	}

	if !accessGate.Check(ctx, plainToken) {
		return fmt.Errorf("token was not accepted: it may be unknown, expired, or revoked")
	}

	if err := store.Set(plainToken); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "Logged in. Credential saved to %s\n", store.Path())

	logger.Info("admin credential saved", slog.String("path", store.Path()))

	return nil
}

// RunLogout removes the saved operator credential.
// Removing a credential that does not exist is not an error.
func RunLogout(
	store *credential.Store,
	logger *slog.Logger,
	writer io.Writer,
) error {
	if err := store.Remove(); err != nil {
		return fmt.Errorf("failed to remove credential: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "Logged out.")

	logger.Info("admin credential removed", slog.String("path", store.Path()))

	return nil
}
