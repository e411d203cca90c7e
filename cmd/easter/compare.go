package main

import (
	"fmt"
	"time"

	"github.com/nao1215/easterdate/internal/batch"
	"github.com/nao1215/easterdate/internal/model"
	"github.com/nao1215/easterdate/internal/report"
	"github.com/spf13/cobra"
)

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	return newCompareCmd(time.Now)
}

func newCompareCmd(now func() time.Time) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [year]",
		Short: "Compare Orthodox and Western Easter for one year",
		Long: `Compare prints every dating method in use for a year side by side,
and how far Orthodox Easter falls after Western Easter.

The Julian date is a Julian calendar date. Revised Julian and Gregorian dates
are Gregorian calendar dates and can be compared directly.

Examples:
  # This year
  easter compare

  # 2024, as Markdown
  easter compare --markdown 2024`,
		Args: argsBetween(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompareCmd(cmd, args, now)
		},
	}

	addReportFlags(cmd)

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string, now func() time.Time) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	cfg.Year = now().Year()
	if len(args) > 0 {
		if cfg.Year, err = parseYear("year", args[0]); err != nil {
			return err
		}
	}
	if err := model.ValidateYear(cfg.Year); err != nil {
		return err
	}

	logger, err := setupLogger(cmd, cfg)
	if err != nil {
		return err
	}

	row := batch.NewRunner(batch.WithLogger(logger)).Row(cfg.Year)
	if days, ok := row.OrthodoxGap(); ok {
		logger.Debug("orthodox easter gap", "year", cfg.Year, "days", days)
	}

	return writeOutput(cmd, cfg, func(w report.Writer) error {
		if _, err := w.WriteComparison(row); err != nil {
			return fmt.Errorf("failed to write comparison: %w", err)
		}
		return nil
	})
}
