package io

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tableau/pkg/errors"
	"github.com/matzehuels/tableau/pkg/table"
)

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

var extensions = map[string]Format{
	".json": FormatJSON,
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".csv":  FormatCSV,
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown file extension %q (use .json, .toml, .yaml, .yml or .csv)", ext)
}

// ParseFormat parses a format name such as "json" or "yml".
func ParseFormat(name string) (Format, error) {
	return FormatFromPath("." + name)
}

// Read decodes a document in the given format. CSV input is read with a
// header row.
func Read(r io.Reader, format Format) (Document, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatCSV:
		return ReadCSV(r, true)
	}
	return Document{}, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// ReadJSON decodes a JSON document from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return doc, nil
}

// ReadTOML decodes a TOML document from r. Rows are written as [[rows]]
// tables and cells as [[rows.cells]].
func ReadTOML(r io.Reader) (Document, error) {
	var doc Document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	return doc, nil
}

// ReadYAML decodes a YAML document from r. Empty input is an error.
func ReadYAML(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
	}
	return doc, nil
}

// ReadCSV reads one row per record, one cell per field. Records may differ
// in length. When header is true the first record is centered.
func ReadCSV(r io.Reader, header bool) (Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode csv")
	}

	doc := Document{Rows: make([]RowDoc, len(records))}
	for i, record := range records {
		cells := make([]CellDoc, len(record))
		for j, field := range record {
			cells[j] = CellDoc{Content: field}
			if header && i == 0 {
				cells[j].Align = table.AlignCenter.String()
			}
		}
		doc.Rows[i] = RowDoc{Cells: cells}
	}
	return doc, nil
}

// Import reads the document at path, choosing the decoder from the file
// extension.
func Import(path string) (Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return Document{}, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	doc, err := Read(f, format)
	if err != nil {
		return Document{}, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return doc, nil
}
