// SPDX-License-Identifier: MIT
package inject

import (
	"errors"
	"strings"
	"testing"

	"github.com/thatcatcamp/pte/internal/dom"
	"github.com/thatcatcamp/pte/internal/themes"
)

func TestReadInjectedValue(t *testing.T) {
	doc := dom.NewDocument()
	if err := Inject(doc, themes.LightTheme(), Options{}); err != nil {
		t.Fatalf("Inject failed: %v", err)
	}

	tests := []struct {
		path string
		opts ReadOptions
		want string
	}{
		{"colors.backgroundPrimary", ReadOptions{}, "#ffffff"},
		{"tokens.colors.grey500", ReadOptions{}, "#757575"},
		{"colors.primary", ReadOptions{Selector: "body"}, "#000000"},
		{"colors.unknown", ReadOptions{}, ""},
		{"colors.primary", ReadOptions{Prefix: "other"}, ""},
	}

	for _, tt := range tests {
		got, err := Read(doc, tt.path, tt.opts)
		if err != nil {
			t.Errorf("Read(%q) failed: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Read(%q, %+v) = %q, want %q", tt.path, tt.opts, got, tt.want)
		}
	}
}

func TestReadReflectsCurrentState(t *testing.T) {
	doc := dom.NewDocument()

	Inject(doc, primary("#111"), Options{})
	first, _ := Read(doc, "colors.primary", ReadOptions{})

	Inject(doc, primary("#999"), Options{})
	second, _ := Read(doc, "colors.primary", ReadOptions{})

	if first != "#111" || second != "#999" {
		t.Errorf("reads = %q, %q; want #111, #999", first, second)
	}
}

func TestReadScopedSelector(t *testing.T) {
	doc, err := dom.ParseHTML(strings.NewReader(
		`<html><head></head><body><div class="card"></div></body></html>`))
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}

	Inject(doc, primary("#111"), Options{})
	Inject(doc, primary("#abc"), Options{Selector: ".card", ID: "card-vars"})

	if got, _ := Read(doc, "colors.primary", ReadOptions{Selector: ".card"}); got != "#abc" {
		t.Errorf("scoped value = %q, want #abc", got)
	}
	if got, _ := Read(doc, "colors.primary", ReadOptions{}); got != "#111" {
		t.Errorf("root value = %q, want #111", got)
	}
}

func TestReadErrors(t *testing.T) {
	doc := dom.NewDocument()

	if _, err := Read(doc, "colors.primary", ReadOptions{Selector: "#missing"}); !errors.Is(err, dom.ErrLookup) {
		t.Errorf("expected ErrLookup, got %v", err)
	}
	if _, err := Read(nil, "colors.primary", ReadOptions{}); !errors.Is(err, dom.ErrEnvironment) {
		t.Errorf("expected ErrEnvironment, got %v", err)
	}
	if _, err := Read(dom.Browser(), "colors.primary", ReadOptions{}); !errors.Is(err, dom.ErrEnvironment) {
		t.Errorf("expected ErrEnvironment, got %v", err)
	}
}
