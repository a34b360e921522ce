package table

import (
	"io"
	"maps"
	"slices"
	"strings"
)

// Table is an immutable description of a table. Builder methods return
// updated copies; the receiver is never modified.
type Table struct {
	Rows  []Row
	Style Style

	// MaxColumnWidth caps every column without an entry in MaxColumnWidths.
	// Nil means uncapped.
	MaxColumnWidth *int
	// MaxColumnWidths caps individual columns by index.
	MaxColumnWidths map[int]int

	HasSeparateRows bool // Draw border lines between rows
	HasTopBorder    bool // Draw the line above the first row
	HasBottomBorder bool // Draw the line below the last row
}

// New returns an empty table with the rounded style and every border
// enabled.
func New() Table {
	return Table{
		Style:           Rounded(),
		MaxColumnWidths: map[int]int{},
		HasSeparateRows: true,
		HasTopBorder:    true,
		HasBottomBorder: true,
	}
}

// WithRow returns a copy of the table with row appended.
func (t Table) WithRow(row Row) Table {
	t.Rows = append(slices.Clip(t.Rows), row)
	return t
}

// WithRows returns a copy of the table with rows appended in order.
func (t Table) WithRows(rows ...Row) Table {
	t.Rows = append(slices.Clip(t.Rows), rows...)
	return t
}

// WithStyle sets the border glyphs.
func (t Table) WithStyle(s Style) Table {
	t.Style = s
	return t
}

// WithMaxColumnWidth caps the width of every column, padding included.
func (t Table) WithMaxColumnWidth(width int) Table {
	t.MaxColumnWidth = &width
	return t
}

// WithMaxColumnWidthAtIndex caps the width of column index, overriding
// WithMaxColumnWidth for that column.
func (t Table) WithMaxColumnWidthAtIndex(index, width int) Table {
	limits := maps.Clone(t.MaxColumnWidths)
	if limits == nil {
		limits = make(map[int]int, 1)
	}
	limits[index] = width
	t.MaxColumnWidths = limits
	return t
}

// WithoutSeparateRows drops the border lines between rows.
func (t Table) WithoutSeparateRows() Table {
	t.HasSeparateRows = false
	return t
}

// WithoutTopBorder drops the line above the first row.
func (t Table) WithoutTopBorder() Table {
	t.HasTopBorder = false
	return t
}

// WithoutBottomBorder drops the line below the last row.
func (t Table) WithoutBottomBorder() Table {
	t.HasBottomBorder = false
	return t
}

// Render lays the table out and returns it as lines joined by '\n', without
// a trailing newline. A table without rows renders as the empty string.
//
// Render does not modify the table and may be called concurrently on the
// same value.
func (t Table) Render() string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := t.ColumnWidths()

	var b strings.Builder
	var above *Row
	for i := range t.Rows {
		row := &t.Rows[i]
		if above != nil {
			b.WriteByte('\n')
		}
		if t.hasBorderAbove(i) {
			row.renderTopBorder(&b, widths, t.Style, above)
			b.WriteByte('\n')
		}
		row.renderContent(&b, widths, t.Style)
		above = row
	}

	if t.HasBottomBorder {
		b.WriteByte('\n')
		t.Rows[len(t.Rows)-1].renderBottomBorder(&b, widths, t.Style)
	}
	return b.String()
}

// hasBorderAbove reports whether row i gets a border line above it.
func (t Table) hasBorderAbove(i int) bool {
	if !t.Rows[i].HasTopBorder {
		return false
	}
	if i == 0 {
		return t.HasTopBorder
	}
	return t.HasSeparateRows
}

// RenderStrict validates the table before rendering it.
func (t Table) RenderStrict() (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t.Render(), nil
}

// String implements fmt.Stringer.
func (t Table) String() string {
	return t.Render()
}

// WriteTo writes the rendered table to w. It implements io.WriterTo.
func (t Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Render())
	return int64(n), err
}
