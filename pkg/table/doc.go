// Package table renders rows of cells as fixed-width text tables for
// terminals and logs.
//
// # Overview
//
// A [Table] is an ordered list of [Row] values, each an ordered list of
// [Cell] values. Cells may span several logical columns, carry their own
// alignment and drop their padding. The table picks a [Style] for its border
// glyphs and may cap column widths, in which case content wraps.
//
//	t := table.New().
//	    WithStyle(table.Thin()).
//	    WithMaxColumnWidth(30).
//	    WithRow(table.NewRow().WithCell(
//	        table.NewCell("Cities").WithColumnSpan(2).WithAlignment(table.AlignCenter))).
//	    WithRow(table.NewRow().WithCells(table.NewCell("Tokyo"), table.NewCell("Japan")))
//	fmt.Println(t.Render())
//
// # Layout
//
// Rendering happens in two passes. First [Table.ColumnWidths] negotiates one
// width per logical column from every row: a spanning cell's natural width is
// shared among the columns it covers, the leftmost taking the remainder, and
// each column keeps the largest demand made on it before column limits are
// applied. Then every row wraps its cells to the space those widths give
// them, pads each line according to its alignment, and fills short cells
// with blank lines up to the row's height.
//
// # Borders
//
// Rows with different span partitions meet at border lines whose junction
// glyphs depend on where each row has column boundaries: a four-way
// intersection where both rows have one, an upward T where only the row
// above does and a downward T where only the row below does. The outermost
// glyphs are corners on the table's top and bottom edges and outer verticals
// between rows.
//
// # Width Measurement
//
// All widths are display widths from [textwidth.Width]: escape sequences
// embedded in content count for nothing and are copied to the output intact,
// and East Asian wide characters count as two columns.
//
// # Errors
//
// Rendering never fails. Zero or negative spans, negative limits and empty
// tables produce degenerate output (an empty table renders as ""). Callers
// who prefer an error use [Table.Validate] or [Table.RenderStrict], which
// report such descriptions with code errors.ErrCodeInvalidTable.
//
// # Concurrency
//
// Builder methods return copies and never modify their receiver, and
// [Table.Render] only reads the table, so a finished table may be rendered
// from several goroutines at once.
//
// [textwidth.Width]: github.com/matzehuels/tableau/pkg/textwidth.Width
package table
