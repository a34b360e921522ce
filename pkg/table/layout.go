package table

// ColumnWidths returns the final width of every logical column, padding
// included and separators excluded.
//
// The number of columns is the largest total span of any row. Each cell's
// natural width is shared among the columns it spans: every spanned column
// needs (width-span+1)/span, and the leftmost also takes the remainder, so
// the spanned columns plus their span-1 inner separators fit the cell. A
// column is as wide as its most demanding cell. Limits set with
// WithMaxColumnWidthAtIndex, or else WithMaxColumnWidth, then cap the
// result; cells in capped columns wrap.
func (t Table) ColumnWidths() []int {
	columns := 0
	for _, row := range t.Rows {
		columns = max(columns, row.columnCount())
	}

	widths := make([]int, columns)
	for _, row := range t.Rows {
		spanned := 0
		for _, cell := range row.Cells {
			span := cell.span()
			if span == 0 {
				continue
			}
			share := max(cell.Width()-span+1, 0)
			each, rest := share/span, share%span
			for i := range span {
				need := each
				if i == 0 {
					need += rest
				}
				widths[spanned+i] = max(widths[spanned+i], need)
			}
			spanned += span
		}
	}

	for i := range widths {
		if limit, ok := t.columnLimit(i); ok {
			widths[i] = min(widths[i], max(limit, 0))
		}
	}
	return widths
}

// columnLimit returns the configured maximum for column i, if any.
func (t Table) columnLimit(i int) (int, bool) {
	if limit, ok := t.MaxColumnWidths[i]; ok {
		return limit, true
	}
	if t.MaxColumnWidth != nil {
		return *t.MaxColumnWidth, true
	}
	return 0, false
}

// spanWidth returns the width of span columns starting at start, with the
// span-1 separators between them counted as one column each.
func spanWidth(widths []int, start, span int) int {
	total := max(span-1, 0)
	for i := start; i < start+span && i < len(widths); i++ {
		total += widths[i]
	}
	return total
}
