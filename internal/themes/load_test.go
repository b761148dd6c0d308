// SPDX-License-Identifier: MIT
package themes

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

const yamlTheme = `
default:
  colors:
    primary: "#111111"
    backgroundPrimary: "#ffffff"
  radius: 4
  scale: 1.25
  dense: true
dark:
  colors:
    primary: "#ffffff"
`

const jsonTheme = `{
	"zIndex": {"modal": 100, "toast": 200},
	"colors": {"primary": "#111111", "accent": null},
	"fonts": ["Inter", "sans-serif"]
}`

const tomlTheme = `
[colors]
secondary = "#222222"
primary = "#111111"

[spacing]
sm = 8
`

func TestDecodeYAMLKeepsOrder(t *testing.T) {
	doc, err := Decode([]byte(yamlTheme), FormatYAML)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	theme, err := SelectExport(doc, "")
	if err != nil {
		t.Fatalf("SelectExport failed: %v", err)
	}

	want := []Var{
		{Name: "--pte-colors-primary", Value: "#111111"},
		{Name: "--pte-colors-backgroundPrimary", Value: "#ffffff"},
		{Name: "--pte-radius", Value: "4"},
		{Name: "--pte-scale", Value: "1.25"},
		{Name: "--pte-dense", Value: "true"},
	}
	if got := Flatten(theme, ""); !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten mismatch\ngot:  %v\nwant: %v", got, want)
	}
}

func TestDecodeJSONKeepsOrder(t *testing.T) {
	theme, err := Decode([]byte(jsonTheme), FormatJSON)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := []Var{
		{Name: "--pte-zIndex-modal", Value: "100"},
		{Name: "--pte-zIndex-toast", Value: "200"},
		{Name: "--pte-colors-primary", Value: "#111111"},
		{Name: "--pte-colors-accent", Value: "null"},
		{Name: "--pte-fonts-0", Value: "Inter"},
		{Name: "--pte-fonts-1", Value: "sans-serif"},
	}
	if got := Flatten(theme, ""); !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten mismatch\ngot:  %v\nwant: %v", got, want)
	}
}

func TestDecodeTOMLSortsKeys(t *testing.T) {
	theme, err := Decode([]byte(tomlTheme), FormatTOML)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := []string{"colors.primary", "colors.secondary", "spacing.sm"}
	if got := Paths(theme); !reflect.DeepEqual(got, want) {
		t.Errorf("Paths = %v, want %v", got, want)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"bad yaml", "colors: [unclosed", FormatYAML},
		{"yaml scalar document", "just a string", FormatYAML},
		{"bad json", `{"colors":`, FormatJSON},
		{"bad toml", "[colors\nprimary=", FormatTOML},
		{"unknown format", "a: b", Format("ini")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			if !errors.Is(err, ErrImport) {
				t.Errorf("expected ErrImport, got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "themes/site.yaml", []byte(yamlTheme), 0644)
	afero.WriteFile(fs, "themes/site.json", []byte(jsonTheme), 0644)

	t.Run("default export", func(t *testing.T) {
		theme, err := LoadFile(fs, "themes/site.yaml", "")
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if v, _ := theme.Get("colors.primary"); v.String() != "#111111" {
			t.Errorf("colors.primary = %q", v.String())
		}
	})

	t.Run("named export", func(t *testing.T) {
		theme, err := LoadFile(fs, "themes/site.yaml", "dark")
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if v, _ := theme.Get("colors.primary"); v.String() != "#ffffff" {
			t.Errorf("colors.primary = %q", v.String())
		}
	})

	t.Run("whole document without default key", func(t *testing.T) {
		theme, err := LoadFile(fs, "themes/site.json", "")
		if err != nil {
			t.Fatalf("LoadFile failed: %v", err)
		}
		if theme.Len() != 3 {
			t.Errorf("expected 3 top-level keys, got %v", theme.Keys())
		}
	})

	t.Run("missing named export", func(t *testing.T) {
		_, err := LoadFile(fs, "themes/site.yaml", "sepia")
		if !errors.Is(err, ErrExportNotFound) {
			t.Errorf("expected ErrExportNotFound, got %v", err)
		}
	})

	t.Run("terminal is not an export", func(t *testing.T) {
		_, err := LoadFile(fs, "themes/site.json", "fonts.0")
		if !errors.Is(err, ErrExportNotFound) {
			t.Errorf("expected ErrExportNotFound, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(fs, "themes/nope.yaml", "")
		if !errors.Is(err, ErrImport) {
			t.Errorf("expected ErrImport, got %v", err)
		}
	})
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"theme.json": FormatJSON,
		"theme.TOML": FormatTOML,
		"theme.yml":  FormatYAML,
		"theme.yaml": FormatYAML,
		"theme":      FormatYAML,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}
