// Package report provides output writers for computed Easter dates.
//
// This package contains writers for different output formats:
//   - SimpleWriter: CSV tables and the classic one-line date format
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for documentation
//
// Writers implement the Writer interface, so the CLI picks one from the
// --json / --markdown flags and hands it the result.
package report
