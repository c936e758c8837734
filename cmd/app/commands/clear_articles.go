package commands

import (
	"context"
	"fmt"
	"log/slog"

	contentUseCase "github.com/trivalleytech/site-api/internal/content/usecase"
)

// RunClearArticles deletes every article.
// Prompts for confirmation unless skipConfirm is set. The deletion runs in a
// single transaction, so a failure leaves all articles in place.
//
// Requirements: Database must be migrated and accessible.
func RunClearArticles(
	ctx context.Context,
	articleUseCase contentUseCase.ArticleUseCase,
	logger *slog.Logger,
	skipConfirm bool,
	format string,
	io IOTuple,
) error {
	if !skipConfirm {
		confirmed, err := promptForConfirmation("Delete ALL articles? This cannot be undone.", io)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(io.Writer, "Aborted.")
			return nil
		}
	}

	logger.Info("clearing articles")

	count, err := articleUseCase.Clear(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear articles: %w", err)
	}

	if format == "json" {
		outputClearJSON("articles", count, io.Writer)
	} else {
		_, _ = fmt.Fprintf(io.Writer, "Successfully deleted %d article(s)\n", count)
	}

	logger.Info("articles cleared", slog.Int64("count", count))

	return nil
}
