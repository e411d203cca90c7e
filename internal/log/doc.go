// Package log builds the slog loggers used by the easter command.
//
// Logs are diagnostics only and go to stderr; computed dates always go to
// the command's output stream. Verbose mode lowers the level from Warn to
// Debug.
//
// # Usage
//
//	logger, err := log.New(os.Stderr, "text", verbose)
//	if err != nil {
//	    return err
//	}
//	slog.SetDefault(logger)
package log
