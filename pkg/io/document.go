package io

import (
	"maps"
	"slices"
	"strconv"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/table"
)

// Document is the serializable description of a table.
type Document struct {
	Style           string         `json:"style,omitempty" toml:"style,omitempty" yaml:"style,omitempty"`
	MaxColumnWidth  *int           `json:"max_column_width,omitempty" toml:"max_column_width,omitempty" yaml:"max_column_width,omitempty"`
	MaxColumnWidths map[string]int `json:"max_column_widths,omitempty" toml:"max_column_widths,omitempty" yaml:"max_column_widths,omitempty"`
	SeparateRows    *bool          `json:"separate_rows,omitempty" toml:"separate_rows,omitempty" yaml:"separate_rows,omitempty"`
	TopBorder       *bool          `json:"top_border,omitempty" toml:"top_border,omitempty" yaml:"top_border,omitempty"`
	BottomBorder    *bool          `json:"bottom_border,omitempty" toml:"bottom_border,omitempty" yaml:"bottom_border,omitempty"`
	Rows            []RowDoc       `json:"rows" toml:"rows" yaml:"rows"`
}

// RowDoc describes one row.
type RowDoc struct {
	TopBorder *bool     `json:"top_border,omitempty" toml:"top_border,omitempty" yaml:"top_border,omitempty"`
	Cells     []CellDoc `json:"cells" toml:"cells" yaml:"cells"`
}

// CellDoc describes one cell. Nil fields take the cell defaults.
type CellDoc struct {
	Content string `json:"content" toml:"content" yaml:"content"`
	Span    *int   `json:"span,omitempty" toml:"span,omitempty" yaml:"span,omitempty"`
	Align   string `json:"align,omitempty" toml:"align,omitempty" yaml:"align,omitempty"`
	Padding *bool  `json:"padding,omitempty" toml:"padding,omitempty" yaml:"padding,omitempty"`
}

// Table builds the table the document describes.
//
// Unknown style names, unknown alignments and column limit keys that are
// not integers are reported as errors. Spans and limits are passed through
// unchecked; use [table.Table.Validate] for those.
func (d Document) Table() (table.Table, error) {
	t := table.New()

	if d.Style != "" {
		style, err := table.StyleByName(d.Style)
		if err != nil {
			return table.Table{}, err
		}
		t = t.WithStyle(style)
	}

	if d.MaxColumnWidth != nil {
		t = t.WithMaxColumnWidth(*d.MaxColumnWidth)
	}
	for _, key := range slices.Sorted(maps.Keys(d.MaxColumnWidths)) {
		index, err := strconv.Atoi(key)
		if err != nil {
			return table.Table{}, errors.New(errors.ErrCodeInvalidTable, "max_column_widths: column index %q is not an integer", key)
		}
		t = t.WithMaxColumnWidthAtIndex(index, d.MaxColumnWidths[key])
	}

	if isFalse(d.SeparateRows) {
		t = t.WithoutSeparateRows()
	}
	if isFalse(d.TopBorder) {
		t = t.WithoutTopBorder()
	}
	if isFalse(d.BottomBorder) {
		t = t.WithoutBottomBorder()
	}

	for i, rd := range d.Rows {
		row := table.NewRow()
		if isFalse(rd.TopBorder) {
			row = row.WithoutTopBorder()
		}
		for j, cd := range rd.Cells {
			cell, err := cd.cell()
			if err != nil {
				return table.Table{}, errors.Wrap(errors.GetCode(err), err, "row %d, cell %d", i, j)
			}
			row = row.WithCell(cell)
		}
		t = t.WithRow(row)
	}
	return t, nil
}

func (cd CellDoc) cell() (table.Cell, error) {
	c := table.NewCell(cd.Content)
	if cd.Span != nil {
		c = c.WithColumnSpan(*cd.Span)
	}
	align, err := table.ParseAlignment(cd.Align)
	if err != nil {
		return table.Cell{}, err
	}
	c = c.WithAlignment(align)
	if isFalse(cd.Padding) {
		c = c.WithoutPadding()
	}
	return c, nil
}

// FromTable returns the document describing t. Settings equal to their
// defaults are left out. Tables drawn with a custom style have no document
// form and yield an error with code errors.ErrCodeUnsupported.
func FromTable(t table.Table) (Document, error) {
	var d Document

	name := table.NameOf(t.Style)
	if name == "" {
		return Document{}, errors.New(errors.ErrCodeUnsupported, "table uses a custom style")
	}
	if name != table.DefaultStyleName {
		d.Style = name
	}

	if t.MaxColumnWidth != nil {
		width := *t.MaxColumnWidth
		d.MaxColumnWidth = &width
	}
	if len(t.MaxColumnWidths) > 0 {
		d.MaxColumnWidths = make(map[string]int, len(t.MaxColumnWidths))
		for index, width := range t.MaxColumnWidths {
			d.MaxColumnWidths[strconv.Itoa(index)] = width
		}
	}

	d.SeparateRows = falseOrNil(t.HasSeparateRows)
	d.TopBorder = falseOrNil(t.HasTopBorder)
	d.BottomBorder = falseOrNil(t.HasBottomBorder)

	d.Rows = make([]RowDoc, len(t.Rows))
	for i, row := range t.Rows {
		rd := RowDoc{
			TopBorder: falseOrNil(row.HasTopBorder),
			Cells:     make([]CellDoc, len(row.Cells)),
		}
		for j, c := range row.Cells {
			cd := CellDoc{Content: c.Content, Padding: falseOrNil(c.HasPadding)}
			if c.ColumnSpan != 1 {
				span := c.ColumnSpan
				cd.Span = &span
			}
			if c.Alignment != table.AlignLeft {
				cd.Align = c.Alignment.String()
			}
			rd.Cells[j] = cd
		}
		d.Rows[i] = rd
	}
	return d, nil
}

func isFalse(b *bool) bool {
	return b != nil && !*b
}

// falseOrNil encodes a default-true flag: only false is written out.
func falseOrNil(b bool) *bool {
	if b {
		return nil
	}
	return &b
}
