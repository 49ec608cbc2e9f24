package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/leengari/configcheck/internal/checker"
	"github.com/leengari/configcheck/internal/config"
	"github.com/leengari/configcheck/internal/document"
	"github.com/leengari/configcheck/internal/report"
)

// Run loads the configured document, checks its tables and prints the report
// to stdout. Findings are not errors: a nil return means the check completed.
func Run(settings config.Settings, stdout io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	printer := report.NewPrinter(stdout)

	// 1. Load document
	doc, err := document.Load(settings.ConfigPath)
	if err != nil {
		var perr *document.ParseError
		if errors.As(err, &perr) {
			if werr := printer.ParseFailure(perr); werr != nil {
				logger.Error("failed to report parse error", "error", werr)
			}
		}
		return err
	}

	if err := printer.Banner(); err != nil {
		return err
	}

	// 2. Resolve table collection
	tables, err := doc.Tables()
	if err != nil {
		return fmt.Errorf("invalid config document %s: %w", doc.Source, err)
	}

	// 3. Check
	c := checker.New()
	c.AddObserver(checker.NewLoggingObserver(logger))
	warnings := c.CheckArrays(checker.DefaultCollection, tables)

	// 4. Report
	if err := printer.Warnings(warnings); err != nil {
		return err
	}
	if err := printer.Done(); err != nil {
		return err
	}

	logger.Info("config check complete",
		slog.String("path", doc.Source),
		slog.Int("tables", len(tables)),
		slog.Int("warnings", len(warnings)),
	)

	return nil
}
