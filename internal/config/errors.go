package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the CLI argument
// parsers. Callers use errors.Is() to tell them apart.
var (
	// ErrInvalidArgumentCount is returned when a command receives the wrong
	// number of positional arguments.
	ErrInvalidArgumentCount = errors.New("invalid number of arguments")

	// ErrNonIntegerYear is returned when a year argument is not an integer.
	ErrNonIntegerYear = errors.New("year must be an integer")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidLogFormat is returned when the log format is neither text nor json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrInvalidReportFormat is returned when the configuration file names an
	// unknown table format.
	ErrInvalidReportFormat = errors.New("invalid report format: must be csv, markdown, or json")
)
