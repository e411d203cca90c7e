package config

import "github.com/nao1215/easterdate/internal/model"

// File represents the structure of the .easter configuration file.
//
//	defaults:
//	  method: orthodox
//	table:
//	  header: true
//	  format: markdown
//	log:
//	  format: json
type File struct {
	// Defaults holds the defaults for single-year queries.
	Defaults Defaults `yaml:"defaults,omitempty"`

	// Table holds the defaults for the table command.
	Table TableSettings `yaml:"table,omitempty"`

	// Log holds logging settings.
	Log LogSettings `yaml:"log,omitempty"`
}

// Defaults holds defaults for single-year queries.
type Defaults struct {
	// Method is the dating method used when none is given on the command line.
	// Accepts a code (1, 2, 3) or a name (julian, orthodox, western, ...).
	Method model.DatingMethod `yaml:"method,omitempty"`
}

// TableSettings holds defaults for the table command.
type TableSettings struct {
	// Header adds a header line to CSV output.
	Header bool `yaml:"header,omitempty"`

	// Format is csv, markdown or json.
	Format string `yaml:"format,omitempty"`
}

// LogSettings holds logging settings.
type LogSettings struct {
	// Format is text or json.
	Format string `yaml:"format,omitempty"`
}
