// Package io reads and writes table descriptions.
//
// # Overview
//
// A [Document] is the serializable form of a [table.Table]. It can be read
// from JSON, TOML, YAML or CSV and written back as JSON, TOML or YAML, which
// lets tables be described in files and rendered by the tableau command:
//
//	{
//	  "style": "thin",
//	  "max_column_width": 40,
//	  "rows": [
//	    {"cells": [{"content": "Name", "align": "center"}, {"content": "Size"}]},
//	    {"cells": [{"content": "README.md"}, {"content": "2 KiB", "align": "right"}]}
//	  ]
//	}
//
// # Document Fields
//
// Table level, all optional:
//   - style: preset name (see [table.StyleNames]); defaults to rounded
//   - max_column_width: width limit for every column
//   - max_column_widths: object mapping column index ("0", "1", …) to a limit
//   - separate_rows, top_border, bottom_border: booleans, default true
//
// Rows carry a cells list and an optional top_border boolean. Cells carry
// content plus optional span (default 1), align ("left", "center", "right")
// and padding (default true).
//
// # CSV
//
// [ReadCSV] turns every record into a row of single-column cells. Records may
// have different lengths. With header set, the first record is centered.
// CSV cannot express spans or options, so there is no CSV writer.
//
// # Import and Export
//
// [Import] and [Export] pick the format from the file extension with
// [FormatFromPath]. [Read] and [Write] take the format explicitly, for
// standard input and output.
//
//	doc, err := io.Import("table.yaml")
//	if err != nil {
//	    return err
//	}
//	t, err := doc.Table()
//
// Decoding errors carry [errors.ErrCodeInvalidFormat]; conversion errors
// carry the code of the failing setting, such as
// [errors.ErrCodeInvalidStyle].
//
// [errors.ErrCodeInvalidFormat]: github.com/matzehuels/tableau/pkg/errors.ErrCodeInvalidFormat
// [errors.ErrCodeInvalidStyle]: github.com/matzehuels/tableau/pkg/errors.ErrCodeInvalidStyle
package io
