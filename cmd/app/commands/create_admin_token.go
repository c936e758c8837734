package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	adminUseCase "github.com/trivalleytech/site-api/internal/admin/usecase"
)

// RunCreateAdminToken mints a new admin bearer token.
// The plain token is printed exactly once; only its digest is stored, so a
// lost token cannot be recovered and a new one must be issued.
//
// Requirements: Database must be migrated and accessible.
func RunCreateAdminToken(
	ctx context.Context,
	tokenAuthority adminUseCase.TokenAuthority,
	logger *slog.Logger,
	writer io.Writer,
	expiresInDays int,
	format string,
) error {
	if expiresInDays <= 0 {
		return fmt.Errorf("expires-in-days must be a positive number, got: %d", expiresInDays)
	}

	logger.Info("creating admin token", slog.Int("expires_in_days", expiresInDays))

	plainToken, err := tokenAuthority.Issue(ctx, expiresInDays)
	if err != nil {
		return fmt.Errorf("failed to create admin token: %w", err)
	}

	expiresAt := time.Now().AddDate(0, 0, expiresInDays)

	if format == "json" {
		outputCreateTokenJSON(plainToken, expiresAt, writer)
	} else {
		outputCreateTokenText(plainToken, expiresAt, writer)
	}

	logger.Info("admin token created successfully", slog.Int("expires_in_days", expiresInDays))

	return nil
}

// outputCreateTokenText outputs the result in human-readable text format.
func outputCreateTokenText(plainToken string, expiresAt time.Time, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nAdmin token created successfully!")
	_, _ = fmt.Fprintf(writer, "Token: %s\n", plainToken)
	_, _ = fmt.Fprintf(writer, "Expires at: %s\n", expiresAt.Format(time.RFC3339))
	_, _ = fmt.Fprintln(writer, "\nIMPORTANT: The token is shown only once. Store it securely.")
}

// outputCreateTokenJSON outputs the result in JSON format for machine consumption.
func outputCreateTokenJSON(plainToken string, expiresAt time.Time, writer io.Writer) {
	result := map[string]string{
		"token":      plainToken,
		"expires_at": expiresAt.Format(time.RFC3339),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
