// SPDX-License-Identifier: MIT
package themes

import (
	"strings"
	"testing"
)

func TestGeneratePathConstants(t *testing.T) {
	theme := New().
		Set("colors", New().
			Set("primary", "#000").
			Set("background-primary", "#fff")).
		Set("radius", 4)

	src, err := GeneratePathConstants(theme, "theme")
	if err != nil {
		t.Fatalf("GeneratePathConstants failed: %v", err)
	}

	out := string(src)
	for _, want := range []string{
		"// Code generated by pte paths; DO NOT EDIT.",
		"package theme",
		`PathColorsPrimary           = "colors.primary"`,
		`PathColorsBackgroundPrimary = "colors.background-primary"`,
		`PathRadius                  = "radius"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q:\n%s", want, out)
		}
	}
}

func TestGeneratePathConstantsCollisions(t *testing.T) {
	theme := New().
		Set("a-b", "1").
		Set("a", New().Set("b", "2"))

	src, err := GeneratePathConstants(theme, "")
	if err != nil {
		t.Fatalf("GeneratePathConstants failed: %v", err)
	}

	out := string(src)
	if !strings.Contains(out, "package theme") {
		t.Errorf("expected default package name:\n%s", out)
	}
	if !strings.Contains(out, "PathAB ") || !strings.Contains(out, "PathAB2 ") {
		t.Errorf("expected deduplicated identifiers:\n%s", out)
	}
}

func TestGeneratePathConstantsEmpty(t *testing.T) {
	src, err := GeneratePathConstants(New(), "theme")
	if err != nil {
		t.Fatalf("GeneratePathConstants failed: %v", err)
	}
	if strings.Contains(string(src), "const") {
		t.Errorf("empty theme should not declare constants:\n%s", src)
	}
}
