package report

import (
	"io"
	"time"

	"github.com/nao1215/easterdate/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// WriteDate outputs the result of a single-year query.
	// Returns the number of bytes written and any error encountered.
	WriteDate(result *DateResult) (int, error)

	// WriteTable outputs the dates of a range of years.
	WriteTable(table *Table) (int, error)

	// WriteComparison outputs every applicable method for one year.
	WriteComparison(row model.YearRow) (int, error)
}

// DateResult is the result of a single-year query.
type DateResult struct {
	Method model.DatingMethod
	Date   model.EasterDate
}

// Table holds the rows of a range of years.
type Table struct {
	Start  int
	Finish int
	Rows   []model.YearRow
}

// NewTable creates a Table from rows, taking the range from the first and
// last rows.
func NewTable(rows []model.YearRow) *Table {
	t := &Table{Rows: rows}
	if len(rows) > 0 {
		t.Start = rows[0].Year
		t.Finish = rows[len(rows)-1].Year
	}
	return t
}

// Summary holds aggregate figures of a table.
type Summary struct {
	// Years is the number of rows.
	Years int

	// Coinciding counts years in which Orthodox and Western Easter fall on the same day.
	Coinciding int

	// Compared counts years in which both Orthodox and Western Easter are computed.
	Compared int

	// WesternByMonth counts Western Easter dates per month.
	WesternByMonth map[time.Month]int
}

// Summarize computes the Summary of the table.
func (t *Table) Summarize() Summary {
	s := Summary{
		Years:          len(t.Rows),
		WesternByMonth: make(map[time.Month]int),
	}
	for _, row := range t.Rows {
		if row.Gregorian != nil {
			s.WesternByMonth[row.Gregorian.Month]++
		}
		if _, ok := row.OrthodoxGap(); ok {
			s.Compared++
			if row.Coincides() {
				s.Coinciding++
			}
		}
	}
	return s
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// formatDate returns the YYYY-MM-DD form of d, or empty when d is nil.
func formatDate(d *model.EasterDate) string {
	if d == nil {
		return ""
	}
	return d.String()
}
