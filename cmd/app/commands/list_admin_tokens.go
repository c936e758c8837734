package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	adminDomain "github.com/trivalleytech/site-api/internal/admin/domain"
	adminUseCase "github.com/trivalleytech/site-api/internal/admin/usecase"
)

// RunListAdminTokens lists issued admin token records, newest first.
// Only digests are shown; the raw token values are unrecoverable.
//
// Requirements: Database must be migrated and accessible.
func RunListAdminTokens(
	ctx context.Context,
	tokenAuthority adminUseCase.TokenAuthority,
	logger *slog.Logger,
	writer io.Writer,
	offset, limit int,
	format string,
) error {
	if offset < 0 {
		return fmt.Errorf("offset must not be negative, got: %d", offset)
	}
	if limit <= 0 {
		return fmt.Errorf("limit must be a positive number, got: %d", limit)
	}

	logger.Info("listing admin tokens", slog.Int("offset", offset), slog.Int("limit", limit))

	tokens, err := tokenAuthority.List(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list admin tokens: %w", err)
	}

	if format == "json" {
		outputListTokensJSON(tokens, writer)
	} else {
		outputListTokensText(tokens, writer)
	}

	return nil
}

// outputListTokensText outputs the result in human-readable text format.
func outputListTokensText(tokens []*adminDomain.AccessToken, writer io.Writer) {
	if len(tokens) == 0 {
		_, _ = fmt.Fprintln(writer, "No admin tokens found.")
		return
	}

	now := time.Now()
	for _, token := range tokens {
		status := "active"
		switch {
		case token.Revoked:
			status = "revoked"
		case !now.Before(token.ExpiresAt):
			status = "expired"
		}

		_, _ = fmt.Fprintf(writer, "Token hash: %s\n", token.TokenHash)
		_, _ = fmt.Fprintf(writer, "  Status: %s\n", status)
		_, _ = fmt.Fprintf(writer, "  Created at: %s\n", token.CreatedAt.Format(time.RFC3339))
		_, _ = fmt.Fprintf(writer, "  Expires at: %s\n", token.ExpiresAt.Format(time.RFC3339))
	}
}

// outputListTokensJSON outputs the result in JSON format for machine consumption.
func outputListTokensJSON(tokens []*adminDomain.AccessToken, writer io.Writer) {
	type tokenEntry struct {
		TokenHash string `json:"token_hash"`
		Revoked   bool   `json:"revoked"`
		CreatedAt string `json:"created_at"`
		ExpiresAt string `json:"expires_at"`
	}

	entries := make([]tokenEntry, 0, len(tokens))
	for _, token := range tokens {
		entries = append(entries, tokenEntry{
			TokenHash: token.TokenHash,
			Revoked:   token.Revoked,
			CreatedAt: token.CreatedAt.Format(time.RFC3339),
			ExpiresAt: token.ExpiresAt.Format(time.RFC3339),
		})
	}

	jsonBytes, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
