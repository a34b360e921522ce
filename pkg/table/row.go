package table

import (
	"slices"
	"strings"

	"github.com/matzehuels/tableau/pkg/textwidth"
)

// Row is an ordered sequence of cells. A row may cover fewer logical columns
// than the widest row of its table; it is then drawn from the left edge only.
type Row struct {
	Cells        []Cell
	HasTopBorder bool // Draw a border line above the row
}

// NewRow returns an empty row with a top border.
func NewRow() Row {
	return Row{HasTopBorder: true}
}

// WithCell returns a copy of the row with cell appended.
func (r Row) WithCell(cell Cell) Row {
	r.Cells = append(slices.Clip(r.Cells), cell)
	return r
}

// WithCells returns a copy of the row with cells appended in order.
func (r Row) WithCells(cells ...Cell) Row {
	r.Cells = append(slices.Clip(r.Cells), cells...)
	return r
}

// WithoutTopBorder suppresses the border line above the row, regardless of
// the table's own settings.
func (r Row) WithoutTopBorder() Row {
	r.HasTopBorder = false
	return r
}

// spans returns the column span of every cell, left to right.
func (r Row) spans() []int {
	spans := make([]int, len(r.Cells))
	for i, c := range r.Cells {
		spans[i] = c.span()
	}
	return spans
}

// columnCount is the number of logical columns the row covers.
func (r Row) columnCount() int {
	n := 0
	for _, c := range r.Cells {
		n += c.span()
	}
	return n
}

// wrappedCell is a cell's content laid out for one render.
type wrappedCell struct {
	width int // columns available to content, padding excluded
	lines []string
}

// renderContent writes the row's content lines, without borders above or
// below. Lines are separated by '\n' with no trailing newline.
func (r Row) renderContent(b *strings.Builder, widths []int, style Style) {
	wrapped := make([]wrappedCell, len(r.Cells))
	height := 0
	spanned := 0
	for i, cell := range r.Cells {
		width := max(spanWidth(widths, spanned, cell.span())-cell.padding(), 0)
		lines := cell.WrappedContent(width)
		wrapped[i] = wrappedCell{width: width, lines: lines}
		height = max(height, len(lines))
		spanned += cell.span()
	}

	for line := 0; line < height; line++ {
		if line > 0 {
			b.WriteByte('\n')
		}
		for i, cell := range r.Cells {
			b.WriteRune(style.Vertical)
			if cell.HasPadding {
				b.WriteByte(' ')
			}
			w := wrapped[i]
			if line < len(w.lines) {
				writeAligned(b, w.lines[line], w.width, cell.Alignment)
			} else {
				writeRepeat(b, ' ', w.width)
			}
			if cell.HasPadding {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(style.Vertical)
	}
}

// renderTopBorder writes the border line between above and r. A nil above
// means r is the first row and the line is the table's top edge.
func (r Row) renderTopBorder(b *strings.Builder, widths []int, style Style, above *Row) {
	if above == nil {
		renderBorder(b, widths, style, style.TopLeftCorner, style.TopRightCorner, nil, r.spans())
		return
	}
	renderBorder(b, widths, style, style.OuterLeftVertical, style.OuterRightVertical, above.spans(), r.spans())
}

// renderBottomBorder writes the table's bottom edge below r.
func (r Row) renderBottomBorder(b *strings.Builder, widths []int, style Style) {
	renderBorder(b, widths, style, style.BottomLeftCorner, style.BottomRightCorner, r.spans(), nil)
}

// writeAligned writes line padded with spaces to width. Lines wider than
// width (a wide character in a one-column cell) are written unpadded.
func writeAligned(b *strings.Builder, line string, width int, align Alignment) {
	slack := max(width-textwidth.Width(line), 0)
	switch align {
	case AlignCenter:
		left := slack / 2
		writeRepeat(b, ' ', left)
		b.WriteString(line)
		writeRepeat(b, ' ', slack-left)
	case AlignRight:
		writeRepeat(b, ' ', slack)
		b.WriteString(line)
	default:
		b.WriteString(line)
		writeRepeat(b, ' ', slack)
	}
}

func writeRepeat(b *strings.Builder, r rune, n int) {
	for ; n > 0; n-- {
		b.WriteRune(r)
	}
}
