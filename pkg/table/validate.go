package table

import (
	"maps"
	"slices"

	"github.com/matzehuels/tableau/pkg/errors"
)

// Validate reports the descriptions Render accepts but cannot draw
// meaningfully: a table without rows, a cell spanning fewer than one column,
// or a negative column limit. The error has code
// errors.ErrCodeInvalidTable.
//
// Validation is opt-in. Render never fails and degrades instead.
func (t Table) Validate() error {
	if len(t.Rows) == 0 {
		return errors.New(errors.ErrCodeInvalidTable, "table has no rows")
	}

	if t.MaxColumnWidth != nil {
		if err := errors.ValidateWidth("max column width", *t.MaxColumnWidth); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTable, err, "invalid column limit")
		}
	}
	for _, index := range slices.Sorted(maps.Keys(t.MaxColumnWidths)) {
		if index < 0 {
			return errors.New(errors.ErrCodeInvalidTable, "column limit set for negative index %d", index)
		}
		if err := errors.ValidateWidth("max column width", t.MaxColumnWidths[index]); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidTable, err, "invalid limit for column %d", index)
		}
	}

	for i, row := range t.Rows {
		for j, cell := range row.Cells {
			if cell.ColumnSpan < 1 {
				return errors.New(errors.ErrCodeInvalidTable, "row %d, cell %d: column span must be at least 1 (got %d)", i, j, cell.ColumnSpan)
			}
		}
	}
	return nil
}
