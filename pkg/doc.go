// Package pkg provides the core libraries for tableau, a renderer that draws
// tables as fixed-width text.
//
// # Overview
//
// The pkg directory is organized into the following packages:
//
//  1. [textwidth] - Display width of strings with escape sequences and wide characters
//  2. [table] - Cells, rows, styles, column layout and rendering
//  3. [io] - Table descriptions in JSON, TOML, YAML and CSV
//  4. [errors] - Structured error codes shared by the packages above
//  5. [buildinfo] - Version information set at build time
//
// # Architecture
//
// The typical data flow through tableau:
//
//	description file (JSON / TOML / YAML / CSV)
//	         ↓
//	    [io] package (decode into a Document)
//	         ↓
//	    [table] package (Document.Table, column widths, render)
//	         ↓
//	    text lines with box-drawing borders
//
// # Quick Start
//
//	t := table.New().
//	    WithStyle(table.Thin()).
//	    WithRow(table.NewRow().WithCells(table.NewCell("Name"), table.NewCell("Size"))).
//	    WithRow(table.NewRow().WithCells(table.NewCell("go.mod"), table.NewCell("1 KiB")))
//	fmt.Println(t.Render())
//
// [textwidth]: github.com/matzehuels/tableau/pkg/textwidth
// [table]: github.com/matzehuels/tableau/pkg/table
// [io]: github.com/matzehuels/tableau/pkg/io
// [errors]: github.com/matzehuels/tableau/pkg/errors
// [buildinfo]: github.com/matzehuels/tableau/pkg/buildinfo
package pkg
