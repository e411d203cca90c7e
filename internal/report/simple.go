package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/easterdate/internal/model"
)

// csvHeader names the columns of a CSV table.
var csvHeader = []string{"julian_date", "revised_julian_date", "gregorian_date"}

// SimpleWriter outputs plain text: the "YYYY-MM-DD  -OR-  DD Month YYYY" line
// for single dates and comma-delimited rows for tables.
type SimpleWriter struct {
	baseWriter

	// header adds the column names before the first CSV row.
	header bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithHeader configures the writer to emit a CSV header line.
func WithHeader(header bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.header = header
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteDate outputs a date as "2024-03-31  -OR-  31 March 2024".
func (w *SimpleWriter) WriteDate(result *DateResult) (int, error) {
	return fmt.Fprintf(w.output, "%s  -OR-  %s\n", result.Date, result.Date.LongString())
}

// WriteTable outputs one CSV line per year:
// julian_date,revised_julian_date,gregorian_date. Methods not in force for a
// year leave their field empty.
func (w *SimpleWriter) WriteTable(table *Table) (int, error) {
	cw := &countingWriter{w: w.output}
	out := csv.NewWriter(cw)

	if w.header {
		if err := out.Write(csvHeader); err != nil {
			return cw.n, err
		}
	}

	for _, row := range table.Rows {
		record := []string{
			formatDate(row.Julian),
			formatDate(row.RevisedJulian),
			formatDate(row.Gregorian),
		}
		if err := out.Write(record); err != nil {
			return cw.n, err
		}
	}

	out.Flush()
	return cw.n, out.Error()
}

// WriteComparison outputs each applicable method on its own line.
func (w *SimpleWriter) WriteComparison(row model.YearRow) (int, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Easter %d\n", row.Year))
	for _, m := range model.Methods {
		d := row.Date(m)
		if d == nil {
			sb.WriteString(fmt.Sprintf("  %-15s not in force\n", m.DisplayName()))
			continue
		}
		line := fmt.Sprintf("  %-15s %s  %s", m.DisplayName(), d, d.LongString())
		if m == model.Julian {
			line += "  (Julian calendar)"
		}
		sb.WriteString(line + "\n")
	}

	if days, ok := row.OrthodoxGap(); ok {
		sb.WriteString("\n")
		sb.WriteString(gapSentence(days) + "\n")
	}

	return w.output.Write([]byte(sb.String()))
}

// gapSentence describes the distance from Western to Orthodox Easter.
func gapSentence(days int) string {
	switch days {
	case 0:
		return "Orthodox and Western Easter coincide."
	case 7:
		return "Orthodox Easter is 1 week after Western Easter."
	default:
		if days%7 == 0 {
			return fmt.Sprintf("Orthodox Easter is %d weeks after Western Easter.", days/7)
		}
		return fmt.Sprintf("Orthodox Easter is %d days after Western Easter.", days)
	}
}

// countingWriter counts the bytes written through it.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
