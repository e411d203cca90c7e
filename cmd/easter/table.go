package main

import (
	"fmt"

	"github.com/nao1215/easterdate/internal/batch"
	"github.com/nao1215/easterdate/internal/report"
	"github.com/spf13/cobra"
)

// NewTableCmd creates the table command.
func NewTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table <start-year> <finish-year>",
		Short: "Print Easter dates for a range of years",
		Long: `Table prints the date of Easter Sunday for every year from start to finish.

Each line holds three comma-separated dates:
  julian_date,revised_julian_date,gregorian_date

A field is empty when the method was not yet in use:
  Julian          always
  Gregorian       from 1583
  Revised Julian  from 1924

Examples:
  # CSV to stdout
  easter table 1900 2000

  # CSV with a header row, written to a file
  easter table --header -o dates.csv 1583 2100

  # Markdown report with a summary and a chart
  easter table --markdown 2000 2050`,
		Args: argsBetween(2, 2),
		RunE: runTableCmd,
	}

	cmd.Flags().Bool("header", false, "Print a header row before CSV output")
	addReportFlags(cmd)

	return cmd
}

// runTableCmd executes the table command.
func runTableCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.StartYear, err = parseYear("start year", args[0]); err != nil {
		return err
	}
	if cfg.FinishYear, err = parseYear("finish year", args[1]); err != nil {
		return err
	}

	logger, err := setupLogger(cmd, cfg)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(batch.WithLogger(logger))
	rows, err := runner.Collect(cfg.StartYear, cfg.FinishYear)
	if err != nil {
		return err
	}

	return writeOutput(cmd, cfg, func(w report.Writer) error {
		if _, err := w.WriteTable(report.NewTable(rows)); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
		return nil
	})
}
