// Package format renders command output as terminal or Markdown tables.
// Tables know about the five-axis point so commands can lay out states
// without spelling out the axis columns themselves.
package format

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"dissolve/internal/space"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // box-drawn terminal table
	Markdown             // GitHub-flavoured Markdown
)

// ModeFor picks Markdown when markdown is set and ASCII otherwise.
func ModeFor(markdown bool) Mode {
	if markdown {
		return Markdown
	}
	return ASCII
}

// ColumnAlign specifies the horizontal alignment for a column.
type ColumnAlign int

const (
	AlignDefault ColumnAlign = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// ColumnConfig controls per-column formatting.
type ColumnConfig struct {
	Number   int // 1-based
	Align    ColumnAlign
	MaxWidth int // 0 = unlimited
}

// TableBuilder collects a table and renders it in the Mode it was created with.
type TableBuilder interface {
	Title(title string)
	Header(cols ...string)
	Row(vals ...any)
	Footer(vals ...any)
	// PointHeader writes lead, the five axis labels, then trail as the header.
	PointHeader(lead []string, trail ...string)
	// PointRow writes lead, the coordinates of p, then trail as one row.
	PointRow(lead []any, p space.Point, trail ...any)
	Columns(cfgs ...ColumnConfig)
	String() string
	// WriteTo writes the rendered table and a trailing newline to w.
	WriteTo(w io.Writer) (int64, error)
}

// NewTable returns a TableBuilder that renders in mode m. Headers and
// footers keep the case they were given.
func NewTable(m Mode) TableBuilder {
	w := table.NewWriter()
	if m == ASCII {
		style := table.StyleLight
		style.Format.Header = text.FormatDefault
		style.Format.Footer = text.FormatDefault
		w.SetStyle(style)
	}
	return &tbl{w: w, mode: m}
}

type tbl struct {
	w    table.Writer
	mode Mode
}

func (t *tbl) Title(title string) { t.w.SetTitle(title) }

func (t *tbl) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.w.AppendHeader(row)
}

func (t *tbl) Row(vals ...any)    { t.w.AppendRow(table.Row(vals)) }
func (t *tbl) Footer(vals ...any) { t.w.AppendFooter(table.Row(vals)) }

func (t *tbl) PointHeader(lead []string, trail ...string) {
	cols := make([]string, 0, len(lead)+space.NumAxes+len(trail))
	cols = append(cols, lead...)
	cols = append(cols, PointHeader()...)
	t.Header(append(cols, trail...)...)
}

func (t *tbl) PointRow(lead []any, p space.Point, trail ...any) {
	vals := make([]any, 0, len(lead)+space.NumAxes+len(trail))
	vals = append(vals, lead...)
	vals = append(vals, PointCells(p)...)
	t.Row(append(vals, trail...)...)
}

func (t *tbl) Columns(cfgs ...ColumnConfig) {
	out := make([]table.ColumnConfig, len(cfgs))
	for i, c := range cfgs {
		out[i] = table.ColumnConfig{Number: c.Number, Align: c.Align.text(), WidthMax: c.MaxWidth}
	}
	t.w.SetColumnConfigs(out)
}

func (t *tbl) String() string {
	if t.mode == Markdown {
		return t.w.RenderMarkdown()
	}
	return t.w.Render()
}

func (t *tbl) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintln(w, t.String())
	return int64(n), err
}

func (a ColumnAlign) text() text.Align {
	switch a {
	case AlignLeft:
		return text.AlignLeft
	case AlignCenter:
		return text.AlignCenter
	case AlignRight:
		return text.AlignRight
	}
	return text.AlignDefault
}
