package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/easterdate/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// jsonDate is the JSON form of a single-year query.
type jsonDate struct {
	Year   int                `json:"year"`
	Method model.DatingMethod `json:"method"`
	Date   model.EasterDate   `json:"date"`
	Long   string             `json:"long"`
}

// jsonComparison is the JSON form of a comparison.
type jsonComparison struct {
	model.YearRow

	// GapDays is the distance from Western to Orthodox Easter, when both apply.
	GapDays *int `json:"gapDays,omitempty"`

	Coincide bool `json:"coincide"`
}

// WriteDate outputs a single date.
func (w *JSONWriter) WriteDate(result *DateResult) (int, error) {
	return w.writeJSON(jsonDate{
		Year:   result.Date.Year,
		Method: result.Method,
		Date:   result.Date,
		Long:   result.Date.LongString(),
	})
}

// WriteTable outputs the rows as a JSON array.
func (w *JSONWriter) WriteTable(table *Table) (int, error) {
	rows := table.Rows
	if rows == nil {
		rows = []model.YearRow{}
	}
	return w.writeJSON(rows)
}

// WriteComparison outputs the row with the Western/Orthodox gap.
func (w *JSONWriter) WriteComparison(row model.YearRow) (int, error) {
	c := jsonComparison{YearRow: row, Coincide: row.Coincides()}
	if days, ok := row.OrthodoxGap(); ok {
		c.GapDays = &days
	}
	return w.writeJSON(c)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
