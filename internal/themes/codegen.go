// SPDX-License-Identifier: MIT
package themes

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"unicode"
)

// GeneratePathConstants emits Go source declaring one string constant per
// terminal path of t, so callers can address theme fields without typos.
func GeneratePathConstants(t *Theme, pkg string) ([]byte, error) {
	if pkg == "" {
		pkg = "theme"
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by pte paths; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	paths := Paths(t)
	if len(paths) > 0 {
		buf.WriteString("// Theme paths, usable with VarName and the reader.\n")
		buf.WriteString("const (\n")
		used := make(map[string]int)
		for _, path := range paths {
			ident := pathIdent(path)
			used[ident]++
			if n := used[ident]; n > 1 {
				ident += strconv.Itoa(n)
			}
			fmt.Fprintf(&buf, "\t%s = %s\n", ident, strconv.Quote(path))
		}
		buf.WriteString(")\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

// pathIdent turns "colors.background-primary" into "PathColorsBackgroundPrimary"
func pathIdent(path string) string {
	var b strings.Builder
	b.WriteString("Path")
	upper := true
	for _, r := range path {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
