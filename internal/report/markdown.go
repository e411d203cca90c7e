package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nao1215/easterdate/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteDate outputs a single date as a property table.
func (w *MarkdownWriter) WriteDate(result *DateResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(fmt.Sprintf("Easter %d", result.Date.Year))
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Dating Method", result.Method.DisplayName()},
			{"Date", "`" + result.Date.String() + "`"},
			{"Long Form", result.Date.LongString()},
		},
	})
	md.PlainText("")

	if !result.Method.AppliesTo(result.Date.Year) {
		md.Warningf("The %s method was not in force in %d; it applies from %d.",
			result.Method.DisplayName(), result.Date.Year, result.Method.FirstYear())
		md.PlainText("")
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteTable outputs a summary, the per-year table and a chart of Western
// Easter months.
func (w *MarkdownWriter) WriteTable(table *Table) (int, error) {
	md := markdown.NewMarkdown(w.output)
	summary := table.Summarize()

	md.H1(fmt.Sprintf("Easter Dates %d-%d", table.Start, table.Finish))
	md.PlainText("")

	w.writeSummary(md, table, summary)
	w.writeRows(md, table)

	if len(summary.WesternByMonth) > 0 {
		w.writePieChart(md, summary)
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteComparison outputs every method for one year.
func (w *MarkdownWriter) WriteComparison(row model.YearRow) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(fmt.Sprintf("Easter %d", row.Year))
	md.PlainText("")

	rows := make([][]string, 0, len(model.Methods))
	for _, m := range model.Methods {
		d := row.Date(m)
		if d == nil {
			rows = append(rows, []string{m.DisplayName(), "-", "not in force"})
			continue
		}
		calendar := "Gregorian"
		if m == model.Julian {
			calendar = "Julian"
		}
		rows = append(rows, []string{m.DisplayName(), d.LongString(), calendar})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Method", "Date", "Calendar"},
		Rows:   rows,
	})
	md.PlainText("")

	if days, ok := row.OrthodoxGap(); ok {
		if days == 0 {
			md.Tip(gapSentence(days))
		} else {
			md.Note(gapSentence(days))
		}
		md.PlainText("")
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// writeSummary writes the range summary table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, table *Table, summary Summary) {
	md.H2("Summary")
	md.PlainText("")

	coinciding := "-"
	if summary.Compared > 0 {
		coinciding = fmt.Sprintf("%d of %d", summary.Coinciding, summary.Compared)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Range", fmt.Sprintf("%d-%d", table.Start, table.Finish)},
			{"Years", strconv.Itoa(summary.Years)},
			{"Orthodox = Western", coinciding},
		},
	})
	md.PlainText("")

	if table.Start < model.FirstValidGregorianYear {
		md.Note(fmt.Sprintf("Gregorian dates start in %d and Revised Julian dates in %d.",
			model.FirstValidGregorianYear, model.FirstRevisedJulianYear))
		md.PlainText("")
	}
}

// writeRows writes one table row per year.
func (w *MarkdownWriter) writeRows(md *markdown.Markdown, table *Table) {
	md.H2("Dates")
	md.PlainText("")

	rows := make([][]string, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = []string{
			strconv.Itoa(row.Year),
			orDash(formatDate(row.Julian)),
			orDash(formatDate(row.RevisedJulian)),
			orDash(formatDate(row.Gregorian)),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Year", "Julian", "Revised Julian", "Gregorian"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of Western Easter by month.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Western Easter by Month"),
		piechart.WithShowData(true),
	)

	for _, month := range []time.Month{time.March, time.April} {
		if n := summary.WesternByMonth[month]; n > 0 {
			chart.LabelAndIntValue(month.String(), uint64(n))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by [easterdate](https://github.com/nao1215/easterdate)*")
}

// orDash returns s, or "-" when s is empty.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
