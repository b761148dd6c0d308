package themes

import (
	"strings"
	"testing"
)

func TestPaletteExists(t *testing.T) {
	palette := GetPalette("slate")
	if palette == nil {
		t.Fatal("slate palette not found")
	}
}

func TestGenerateLightModeScheme(t *testing.T) {
	palette := GetPalette("slate")
	scheme := GenerateScheme(palette, false) // false = light mode

	if scheme.Primary != palette.Primary {
		t.Errorf("Primary = %s, want palette primary %s", scheme.Primary, palette.Primary)
	}
	if scheme.Background == "" {
		t.Fatal("Background color not generated")
	}
	if scheme.Text == "" {
		t.Fatal("Text color not generated")
	}
}

func TestGenerateDarkModeScheme(t *testing.T) {
	palette := GetPalette("slate")
	scheme := GenerateScheme(palette, true) // true = dark mode

	if scheme.Primary == "" {
		t.Fatal("Primary color not generated")
	}
	if scheme.Primary == palette.Primary {
		t.Error("dark primary should be lightened")
	}
	if scheme.Background == "" {
		t.Fatal("Background color not generated")
	}
}

func TestListPalettes(t *testing.T) {
	palettes := ListPalettes()
	if len(palettes) < 12 {
		t.Errorf("expected at least 12 palettes, got %d", len(palettes))
	}
}

func TestPaletteNamesUnique(t *testing.T) {
	palettes := ListPalettes()
	names := make(map[string]bool)
	for _, p := range palettes {
		if names[p.Name] {
			t.Errorf("duplicate palette name: %s", p.Name)
		}
		names[p.Name] = true
	}
}

func TestGeneratedSchemeIsHex(t *testing.T) {
	for _, dark := range []bool{false, true} {
		scheme := GenerateScheme(GetPalette("indigo"), dark)

		colorMap := map[string]string{
			"Primary":         scheme.Primary,
			"PrimaryContrast": scheme.PrimaryContrast,
			"Secondary":       scheme.Secondary,
			"Background":      scheme.Background,
			"Surface":         scheme.Surface,
			"Text":            scheme.Text,
		}

		for name, color := range colorMap {
			if !strings.HasPrefix(color, "#") {
				t.Errorf("%s should be hex format, got: %s", name, color)
			}
			if len(color) != 7 && len(color) != 4 { // #RRGGBB or #RGB
				t.Errorf("%s invalid hex length: %s", name, color)
			}
		}
	}
}

func TestContrastColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#000000", "#ffffff"},
		{"#ffffff", "#000000"},
		{"#000080", "#ffffff"},
		{"#f59e0b", "#000000"},
		{"not-a-color", "#ffffff"},
	}

	for _, tt := range tests {
		if got := ContrastColor(tt.in); got != tt.want {
			t.Errorf("ContrastColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFromPalette(t *testing.T) {
	theme, err := FromPalette("rose", false)
	if err != nil {
		t.Fatalf("FromPalette failed: %v", err)
	}

	v, ok := theme.Get("colors.primary")
	if !ok || v.String() != "#e11d48" {
		t.Errorf("colors.primary = %v, want #e11d48", v)
	}
	if err := ValidatePath(theme, "tokens.colors.grey50"); err != nil {
		t.Errorf("tokens missing from palette theme: %v", err)
	}

	if _, err := FromPalette("does-not-exist", false); err == nil {
		t.Error("expected error for unknown palette")
	}
}
