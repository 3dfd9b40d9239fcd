// Package format renders machine settings, stepping traces and the
// component catalog as terminal or Markdown tables.
package format

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode maps "ascii"/"text" and "markdown"/"md" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "ascii", "text":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("unknown table format %q", s)
	}
}

// Table collects rows and renders them in the Mode given to NewTable.
type Table struct {
	writer table.Writer
	mode   Mode
}

// NewTable returns an empty table. ASCII tables use light box-drawing lines.
func NewTable(m Mode) *Table {
	w := table.NewWriter()

	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}

	return &Table{writer: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}

	t.writer.AppendHeader(row)
}

// Row appends a data row.
func (t *Table) Row(vals ...any) {
	t.writer.AppendRow(table.Row(vals))
}

// Footer appends a footer row.
func (t *Table) Footer(vals ...any) {
	t.writer.AppendFooter(table.Row(vals))
}

// AlignRight right-aligns the given 1-based columns.
func (t *Table) AlignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, n := range cols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight}
	}

	t.writer.SetColumnConfigs(cfgs)
}

func (t *Table) String() string {
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}

	return t.writer.Render()
}
