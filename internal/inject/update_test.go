// SPDX-License-Identifier: MIT
package inject

import (
	"errors"
	"testing"

	"github.com/thatcatcamp/pte/internal/dom"
	"github.com/thatcatcamp/pte/internal/themes"
)

func TestUpdateSetsInlineProperties(t *testing.T) {
	doc := dom.NewDocument()

	if err := Update(doc, primary("#333"), Options{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if got := doc.Root().Style().GetPropertyValue("--pte-colors-primary"); got != "#333" {
		t.Errorf("inline --pte-colors-primary = %q, want #333", got)
	}
}

func TestUpdateLeavesStyleBlockAlone(t *testing.T) {
	doc := dom.NewDocument()
	full := themes.New().Set("colors", themes.New().
		Set("primary", "#111").
		Set("secondary", "#222"))

	if err := Inject(doc, full, Options{}); err != nil {
		t.Fatalf("Inject failed: %v", err)
	}
	block := doc.GetElementByID(DefaultStyleID).InnerHTML()

	if err := Update(doc, primary("#333"), Options{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if got := doc.GetElementByID(DefaultStyleID).InnerHTML(); got != block {
		t.Errorf("style block changed:\nbefore: %s\nafter:  %s", block, got)
	}

	// The inline value wins over the block, untouched values still come from it.
	if got, _ := Read(doc, "colors.primary", ReadOptions{}); got != "#333" {
		t.Errorf("colors.primary = %q, want #333", got)
	}
	if got, _ := Read(doc, "colors.secondary", ReadOptions{}); got != "#222" {
		t.Errorf("colors.secondary = %q, want #222", got)
	}
}

func TestUpdateIsAdditive(t *testing.T) {
	doc := dom.NewDocument()

	Update(doc, primary("#333"), Options{})
	Update(doc, themes.New().Set("radius", "4px"), Options{})

	style := doc.Root().Style()
	if got := style.GetPropertyValue("--pte-colors-primary"); got != "#333" {
		t.Errorf("earlier update lost: %q", got)
	}
	if got := style.GetPropertyValue("--pte-radius"); got != "4px" {
		t.Errorf("radius = %q, want 4px", got)
	}
}

func TestUpdateSurvivesReinjection(t *testing.T) {
	doc := dom.NewDocument()

	Update(doc, primary("#333"), Options{})
	Inject(doc, primary("#111"), Options{})

	if got, _ := Read(doc, "colors.primary", ReadOptions{}); got != "#333" {
		t.Errorf("inline update should outrank the injected block, got %q", got)
	}
}

func TestUpdateEnvironmentErrors(t *testing.T) {
	for _, env := range []dom.Environment{nil, dom.Static(nil), dom.Browser()} {
		if err := Update(env, primary("#333"), Options{}); !errors.Is(err, dom.ErrEnvironment) {
			t.Errorf("expected ErrEnvironment, got %v", err)
		}
	}
}
