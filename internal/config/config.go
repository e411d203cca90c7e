package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/easterdate/internal/model"
)

// Default configuration values.
const (
	// DefaultMethod is the dating method used when none is given.
	// Western dating matches the behaviour of most calendars and tools.
	DefaultMethod = model.Gregorian

	// DefaultLogFormat writes human-readable logs to stderr.
	DefaultLogFormat = LogFormatText

	// AppName is the application name used for XDG directory paths.
	AppName = "easter"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Table report formats accepted in the configuration file.
const (
	ReportFormatCSV      = "csv"
	ReportFormatMarkdown = "markdown"
	ReportFormatJSON     = "json"
)

// Config holds the options of a single command invocation.
// It is populated from the configuration file and CLI flags, in that order,
// and passed to the command implementation.
type Config struct {
	// Method is the dating method for single-year queries.
	Method model.DatingMethod

	// Year is the year of a single-year query.
	Year int

	// StartYear and FinishYear bound a table, inclusive.
	StartYear  int
	FinishYear int

	// Verbose enables debug logging.
	Verbose bool

	// LogFormat is "text" or "json".
	LogFormat string

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// JSONReport enables JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// CSVHeader adds a header line to CSV tables.
	CSVHeader bool

	// ReportFile is the output file path.
	// When set, output is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Method:    DefaultMethod,
		LogFormat: DefaultLogFormat,
	}
}

// XDGConfigDir returns the XDG config directory for easter.
// On Linux: ~/.config/easter
// On macOS: ~/Library/Application Support/easter
// On Windows: %APPDATA%\easter
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ApplyFile copies the settings of a configuration file into c.
// Unset fields in the file leave c unchanged.
func (c *Config) ApplyFile(f *File) error {
	if f == nil {
		return nil
	}

	if f.Defaults.Method.IsValid() {
		c.Method = f.Defaults.Method
	}

	if f.Table.Header {
		c.CSVHeader = true
	}

	switch f.Table.Format {
	case "":
	case ReportFormatCSV:
		c.JSONReport, c.MarkdownReport = false, false
	case ReportFormatMarkdown:
		c.JSONReport, c.MarkdownReport = false, true
	case ReportFormatJSON:
		c.JSONReport, c.MarkdownReport = true, false
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidReportFormat, f.Table.Format)
	}

	if f.Log.Format != "" {
		c.LogFormat = f.Log.Format
	}

	return nil
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if !c.Method.IsValid() {
		return fmt.Errorf("%w: got %d", model.ErrMethodOutOfRange, int(c.Method))
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}
