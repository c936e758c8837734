package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/trivalleytech/site-api/internal/admin/credential"
	adminUseCase "github.com/trivalleytech/site-api/internal/admin/usecase"
)

// RunCheckAccess verifies whether the saved operator credential still grants
// admin access. A credential that no longer passes the gate is removed, so the
// next check does not retry a dead token. Returns an error when access is
// denied so the exit code reflects the result.
//
// Requirements: Database must be migrated and accessible.
func RunCheckAccess(
	ctx context.Context,
	accessGate adminUseCase.AccessGate,
	store *credential.Store,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	plainToken, err := store.Get()
	if err != nil {
		if errors.Is(err, credential.ErrNoCredential) {
			outputCheckAccess(false, format, writer)
			return fmt.Errorf("no saved credential: run the login command first")
		}
		return fmt.Errorf("failed to read credential: %w", err)
	}

	if !accessGate.Check(ctx, plainToken) {
		// Drop the stale credential so a later login starts clean.
		if removeErr := store.Remove(); removeErr != nil {
			logger.Error("failed to remove stale credential", slog.Any("error", removeErr))
		}

		outputCheckAccess(false, format, writer)
		return fmt.Errorf("admin access denied: the saved token is unknown, expired, or revoked")
	}

	outputCheckAccess(true, format, writer)

	return nil
}

// outputCheckAccess outputs the result in the requested format.
func outputCheckAccess(authorized bool, format string, writer io.Writer) {
	if format == "json" {
		result := map[string]bool{
			"authorized": authorized,
		}

		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
			return
		}

		_, _ = fmt.Fprintln(writer, string(jsonBytes))
		return
	}

	if authorized {
		_, _ = fmt.Fprintln(writer, "Admin access granted.")
	} else {
		_, _ = fmt.Fprintln(writer, "Admin access denied.")
	}
}
