package main

import (
	"fmt"
	"time"

	"github.com/nao1215/easterdate/internal/easter"
	"github.com/nao1215/easterdate/internal/model"
	"github.com/nao1215/easterdate/internal/report"
	"github.com/spf13/cobra"
)

// NewDateCmd creates the date command.
func NewDateCmd() *cobra.Command {
	return newDateCmd(time.Now)
}

// newDateCmd creates the date command with the clock used when no year is given.
func newDateCmd(now func() time.Time) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date [year] [method]",
		Short: "Print the date of Easter Sunday for one year",
		Long: `Date prints the date of Easter Sunday for a single year.

With no arguments the current year is used. The method is a code or a name:
  1  julian          (Julian calendar date)
  2  revised-julian  (also: orthodox, milankovic)
  3  gregorian       (also: western, the default)

Years from 326 to 4099 are supported. A method asked for a year before it came
into use is still computed, with a warning.

Examples:
  # Western Easter this year
  easter date

  # Western Easter 2024
  easter date 2024

  # Orthodox Easter 2024 in the Gregorian calendar
  easter date 2024 orthodox

  # Julian calendar date, as JSON
  easter date --json 2024 1`,
		Args: argsBetween(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDateCmd(cmd, args, now)
		},
	}

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")

	return cmd
}

// runDateCmd executes the date command.
func runDateCmd(cmd *cobra.Command, args []string, now func() time.Time) error {
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
	if len(args) > 1 {
		if cfg.Method, err = model.ParseDatingMethod(args[1]); err != nil {
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

	if !cfg.Method.AppliesTo(cfg.Year) {
		logger.Warn("dating method was not in use in this year",
			"year", cfg.Year,
			"method", cfg.Method.String(),
			"first_year", cfg.Method.FirstYear(),
		)
	}

	result := &report.DateResult{
		Method: cfg.Method,
		Date:   easter.Compute(cfg.Year, cfg.Method),
	}
	logger.Debug("easter date computed",
		"year", cfg.Year,
		"method", cfg.Method.String(),
		"date", result.Date.String(),
	)

	return writeOutput(cmd, cfg, func(w report.Writer) error {
		if _, err := w.WriteDate(result); err != nil {
			return fmt.Errorf("failed to write date: %w", err)
		}
		return nil
	})
}
