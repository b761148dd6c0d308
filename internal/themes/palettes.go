package themes

import "fmt"

// Palette defines the base colors a scheme is derived from
type Palette struct {
	Name      string // "slate", "indigo", etc.
	Primary   string // hex color #RRGGBB
	Secondary string // hex color #RRGGBB
}

var palettes = map[string]*Palette{
	"slate":      {Name: "slate", Primary: "#64748b", Secondary: "#0f172a"},
	"indigo":     {Name: "indigo", Primary: "#4f46e5", Secondary: "#f97316"},
	"rose":       {Name: "rose", Primary: "#e11d48", Secondary: "#64748b"},
	"emerald":    {Name: "emerald", Primary: "#059669", Secondary: "#f59e0b"},
	"navy":       {Name: "navy", Primary: "#000080", Secondary: "#fbbf24"},
	"purple":     {Name: "purple", Primary: "#a855f7", Secondary: "#ec4899"},
	"teal":       {Name: "teal", Primary: "#14b8a6", Secondary: "#f87171"},
	"amber":      {Name: "amber", Primary: "#f59e0b", Secondary: "#6366f1"},
	"rose-mono":  {Name: "rose-mono", Primary: "#e11d48", Secondary: "#c41e3a"},
	"green-mono": {Name: "green-mono", Primary: "#22c55e", Secondary: "#16a34a"},
	"blue-mono":  {Name: "blue-mono", Primary: "#3b82f6", Secondary: "#1e40af"},
	"neutral":    {Name: "neutral", Primary: "#6b7280", Secondary: "#4b5563"},
}

var paletteOrder = []string{
	"slate", "indigo", "rose", "emerald", "navy", "purple",
	"teal", "amber", "rose-mono", "green-mono", "blue-mono", "neutral",
}

// GetPalette returns a palette by name, or nil
func GetPalette(name string) *Palette {
	p, ok := palettes[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPalettes returns all available palettes in order
func ListPalettes() []*Palette {
	var out []*Palette
	for _, name := range paletteOrder {
		if p := GetPalette(name); p != nil {
			out = append(out, p)
		}
	}
	return out
}

// FromPalette builds a theme from a named palette in light or dark mode.
// The result nests the scheme under "colors", e.g. colors.primary.
func FromPalette(name string, darkMode bool) (*Theme, error) {
	palette := GetPalette(name)
	if palette == nil {
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	scheme := GenerateScheme(palette, darkMode)
	return New().
		Set("tokens", DefaultTokens()).
		Set("colors", scheme.Theme()), nil
}
