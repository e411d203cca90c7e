package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nao1215/easterdate/internal/config"
	"github.com/nao1215/easterdate/internal/log"
	"github.com/nao1215/easterdate/internal/report"
	"github.com/spf13/cobra"
)

// argsBetween returns a positional argument validator that reports
// config.ErrInvalidArgumentCount together with the command's usage line.
func argsBetween(minArgs, maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) >= minArgs && len(args) <= maxArgs {
			return nil
		}

		var expected string
		if minArgs == maxArgs {
			expected = fmt.Sprintf("%d", minArgs)
		} else {
			expected = fmt.Sprintf("%d to %d", minArgs, maxArgs)
		}
		return fmt.Errorf("%w: expected %s, received %d\nUsage: %s",
			config.ErrInvalidArgumentCount, expected, len(args), cmd.UseLine())
	}
}

// parseYear converts a positional argument to a year.
func parseYear(name, arg string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", config.ErrNonIntegerYear, name, arg)
	}
	return year, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getConfigFlag retrieves the config file path from the command or its parent.
func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path, err = cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return ""
		}
	}
	return path
}

// buildConfig creates a Config from the configuration file and the flags of
// cmd. Flags given on the command line override the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)
	cfg.ConfigFilePath = getConfigFlag(cmd)

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		f, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.ApplyFile(f); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("json") || flags.Changed("markdown") {
		var err error
		if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
			return nil, err
		}
		if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
			return nil, err
		}
	}

	if flags.Lookup("header") != nil && flags.Changed("header") {
		header, err := flags.GetBool("header")
		if err != nil {
			return nil, err
		}
		cfg.CSVHeader = header
	}

	if flags.Lookup("output") != nil {
		output, err := flags.GetString("output")
		if err != nil {
			return nil, err
		}
		cfg.ReportFile = output
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

// addReportFlags registers the output format flags shared by the
// date, table and compare commands.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")
}

// setupLogger creates the structured logger for cfg, writing to the
// command's error stream.
func setupLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	return log.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.Verbose)
}

// newReportWriter returns the writer for the configured output format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithHeader(cfg.CSVHeader))
	}
}

// writeOutput opens the output destination and passes it to write.
// Output goes to the command's stdout unless cfg.ReportFile is set.
func writeOutput(cmd *cobra.Command, cfg *config.Config, write func(report.Writer) error) (err error) {
	output := cmd.OutOrStdout()

	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, openErr := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if openErr != nil {
			return fmt.Errorf("failed to create output file: %w", openErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		output = f
	}

	return write(newReportWriter(cfg, output))
}
