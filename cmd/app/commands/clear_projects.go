package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	contentUseCase "github.com/trivalleytech/site-api/internal/content/usecase"
)

// RunClearProjects deletes every project.
// Prompts for confirmation unless skipConfirm is set. The deletion runs in a
// single transaction, so a failure leaves all projects in place.
//
// Requirements: Database must be migrated and accessible.
func RunClearProjects(
	ctx context.Context,
	projectUseCase contentUseCase.ProjectUseCase,
	logger *slog.Logger,
	skipConfirm bool,
	format string,
	io IOTuple,
) error {
	if !skipConfirm {
		confirmed, err := promptForConfirmation("Delete ALL projects? This cannot be undone.", io)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(io.Writer, "Aborted.")
			return nil
		}
	}

	logger.Info("clearing projects")

	count, err := projectUseCase.Clear(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}

	if format == "json" {
		outputClearJSON("projects", count, io.Writer)
	} else {
		_, _ = fmt.Fprintf(io.Writer, "Successfully deleted %d project(s)\n", count)
	}

	logger.Info("projects cleared", slog.Int64("count", count))

	return nil
}

// promptForConfirmation asks the user to confirm a destructive operation.
func promptForConfirmation(message string, io IOTuple) (bool, error) {
	reader := bufio.NewReader(io.Reader)

	_, _ = fmt.Fprintf(io.Writer, "%s Continue? (y/n): ", message)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes", nil
}

// outputClearJSON outputs a deletion count in JSON format for machine consumption.
func outputClearJSON(resource string, count int64, writer io.Writer) {
	result := map[string]interface{}{
		"resource": resource,
		"count":    count,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
