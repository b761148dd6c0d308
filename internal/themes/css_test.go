// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"
)

func TestGenerateCSS(t *testing.T) {
	theme := New().Set("colors", New().Set("primary", "#111"))

	css := GenerateCSS(theme, "", "")
	if css != ":root { --pte-colors-primary: #111; }" {
		t.Errorf("unexpected CSS: %q", css)
	}
}

func TestGenerateCSSSelectorAndPrefix(t *testing.T) {
	theme := New().
		Set("colors", New().Set("primary", "#111").Set("secondary", "#222")).
		Set("radius", 4)

	css := GenerateCSS(theme, "body", "acme")
	want := "body { --acme-colors-primary: #111; --acme-colors-secondary: #222; --acme-radius: 4; }"
	if css != want {
		t.Errorf("GenerateCSS = %q\nwant        %q", css, want)
	}
}

func TestGenerateCSSEmptyTheme(t *testing.T) {
	if css := GenerateCSS(New(), ":root", ""); css != ":root { }" {
		t.Errorf("unexpected CSS for empty theme: %q", css)
	}
	if css := GenerateCSS(nil, "", ""); css != ":root { }" {
		t.Errorf("unexpected CSS for nil theme: %q", css)
	}
}

func TestGeneratedCSSContainsVariables(t *testing.T) {
	theme, err := FromPalette("indigo", false)
	if err != nil {
		t.Fatalf("FromPalette failed: %v", err)
	}
	css := GenerateCSS(theme, ":root", "")

	expectedVars := []string{
		"--pte-colors-primary",
		"--pte-colors-primaryContrast",
		"--pte-colors-secondary",
		"--pte-colors-backgroundPrimary",
		"--pte-colors-surface",
		"--pte-colors-text",
		"--pte-colors-textMuted",
		"--pte-colors-border",
		"--pte-tokens-colors-grey50",
	}

	for _, variable := range expectedVars {
		if !strings.Contains(css, variable+": ") {
			t.Errorf("CSS missing variable: %s", variable)
		}
	}
}

func TestCSSGenerationLightVsDark(t *testing.T) {
	light, _ := FromPalette("navy", false)
	dark, _ := FromPalette("navy", true)

	if GenerateCSS(light, "", "") == GenerateCSS(dark, "", "") {
		t.Fatal("Light and dark CSS should be different")
	}
}

func TestDefaultThemes(t *testing.T) {
	css := GenerateCSS(DefaultTheme(), "", "")
	for _, want := range []string{
		"--pte-tokens-colors-black: #060606;",
		"--pte-tokens-colors-grey1050: #121212;",
		"--pte-colors-primary: #000000;",
		"--pte-colors-backgroundPrimary: #ffffff;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("default theme CSS missing %q", want)
		}
	}

	if GenerateCSS(LightTheme(), "", "") == GenerateCSS(DarkTheme(), "", "") {
		t.Error("light and dark defaults should differ")
	}
}
