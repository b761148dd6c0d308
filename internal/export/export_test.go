// SPDX-License-Identifier: MIT
package export

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/thatcatcamp/pte/internal/themes"
)

func sample() *themes.Theme {
	return themes.New().Set("colors", themes.New().
		Set("primary", "#000").
		Set("background", "#fff"))
}

func TestToFileWritesRule(t *testing.T) {
	fs := afero.NewMemMapFs()
	fs.MkdirAll("public", 0755)

	if err := ToFile(context.Background(), fs, sample(), "public/pte.css", Options{}); err != nil {
		t.Fatalf("ToFile failed: %v", err)
	}

	got, err := afero.ReadFile(fs, "public/pte.css")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := ":root { --pte-colors-primary: #000; --pte-colors-background: #fff; }\n"
	if string(got) != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestToFileOptions(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := ToFile(context.Background(), fs, sample(), "out.css", Options{Selector: "html", Prefix: "acme"})
	if err != nil {
		t.Fatalf("ToFile failed: %v", err)
	}

	got, _ := afero.ReadFile(fs, "out.css")
	want := "html { --acme-colors-primary: #000; --acme-colors-background: #fff; }\n"
	if string(got) != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestToFileOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "pte.css", []byte("stale content that is much longer than the new rule"), 0644)

	if err := ToFile(context.Background(), fs, themes.New().Set("a", 1), "pte.css", Options{}); err != nil {
		t.Fatalf("ToFile failed: %v", err)
	}

	got, _ := afero.ReadFile(fs, "pte.css")
	if string(got) != ":root { --pte-a: 1; }\n" {
		t.Errorf("file = %q", got)
	}
}

func TestToFileEmptyTheme(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := ToFile(context.Background(), fs, themes.New(), "empty.css", Options{}); err != nil {
		t.Fatalf("ToFile failed: %v", err)
	}

	got, _ := afero.ReadFile(fs, "empty.css")
	if string(got) != ":root { }\n" {
		t.Errorf("file = %q", got)
	}
}

func TestToFileMissingDirectory(t *testing.T) {
	osFs := afero.NewOsFs()
	output := filepath.Join(t.TempDir(), "does", "not", "exist", "pte.css")

	err := ToFile(context.Background(), osFs, sample(), output, Options{})
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("cause lost from %v", err)
	}
	if exists, _ := afero.DirExists(osFs, filepath.Dir(output)); exists {
		t.Error("missing directories should not be created")
	}
}

func TestToFileReadOnly(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	if err := ToFile(context.Background(), fs, sample(), "pte.css", Options{}); !errors.Is(err, ErrIO) {
		t.Errorf("expected ErrIO, got %v", err)
	}
}

func TestToFileCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ToFile(ctx, fs, sample(), "pte.css", Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if exists, _ := afero.Exists(fs, "pte.css"); exists {
		t.Error("cancelled export should not write")
	}
}
