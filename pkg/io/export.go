package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tableau/pkg/errors"
)

// Write encodes doc in the given format. CSV is not supported.
func Write(doc Document, w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(doc, w)
	case FormatTOML:
		return WriteTOML(doc, w)
	case FormatYAML:
		return WriteYAML(doc, w)
	case FormatCSV:
		return errors.New(errors.ErrCodeUnsupported, "csv cannot describe spans or options; use json, toml or yaml")
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
}

// WriteJSON writes doc as indented JSON. The output can be read back with
// [ReadJSON].
func WriteJSON(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return nil
}

// WriteTOML writes doc as TOML.
func WriteTOML(doc Document, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
	}
	return nil
}

// WriteYAML writes doc as YAML with two-space indentation.
func WriteYAML(doc Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	return nil
}

// Export writes doc to path, choosing the encoder from the file extension.
func Export(doc Document, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if format == FormatCSV {
		return Write(doc, io.Discard, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := Write(doc, f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "close %s", path)
	}
	return nil
}
