// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	// ErrImport is returned when a theme file cannot be read or decoded
	ErrImport = errors.New("failed to import theme")
	// ErrExportNotFound is returned when the named export is missing from a theme file
	ErrExportNotFound = errors.New("named export not found")
)

// DefaultExport is the top-level key looked up when no export is named
const DefaultExport = "default"

// Format identifies a theme file encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath guesses the encoding from a file extension, defaulting to YAML
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Decode parses a theme document. YAML and JSON keep document key order;
// TOML tables are visited in sorted key order.
func Decode(data []byte, format Format) (*Theme, error) {
	t := New()
	switch format {
	case FormatJSON:
		if err := t.UnmarshalJSON(data); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON: %v", ErrImport, err)
		}
	case FormatTOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: invalid TOML: %v", ErrImport, err)
		}
		t = FromMap(m)
	case FormatYAML, "":
		if err := yaml.Unmarshal(data, t); err != nil {
			return nil, fmt.Errorf("%w: invalid YAML: %v", ErrImport, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrImport, format)
	}
	return t, nil
}

// LoadFile reads a theme file and selects a named export from it.
//
// A named export is a top-level key holding a mapping. With no export name
// the "default" key is used when present, otherwise the whole document.
func LoadFile(fs afero.Fs, path, export string) (*Theme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w from %q: %v", ErrImport, path, err)
	}

	doc, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return SelectExport(doc, export)
}

// SelectExport picks a named export out of a decoded theme document
func SelectExport(doc *Theme, export string) (*Theme, error) {
	name := export
	if name == "" {
		name = DefaultExport
	}

	v, ok := doc.Lookup(name)
	if ok && v.IsNested() {
		return v.Theme(), nil
	}
	if export == "" {
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrExportNotFound, export)
}
