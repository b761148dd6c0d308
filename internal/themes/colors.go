package themes

import colorful "github.com/lucasb-eyer/go-colorful"

// Scheme represents all generated colors for a theme
type Scheme struct {
	Primary         string // Main brand color
	PrimaryContrast string // Text color readable on Primary
	Secondary       string // Accent/highlight color
	Background      string // Page background
	Surface         string // Card/container background
	Text            string // Main text color
	TextMuted       string // Secondary/muted text
	Border          string // Border/divider color
	Success         string // Success state color
	Error           string // Error state color
	Warning         string // Warning state color
}

// GenerateScheme generates full color set from palette for light or dark mode
func GenerateScheme(palette *Palette, darkMode bool) *Scheme {
	var s *Scheme
	if darkMode {
		s = generateDarkScheme(palette)
	} else {
		s = generateLightScheme(palette)
	}
	s.PrimaryContrast = ContrastColor(s.Primary)
	return s
}

// generateLightScheme creates colors for light mode
func generateLightScheme(palette *Palette) *Scheme {
	return &Scheme{
		Primary:    palette.Primary,
		Secondary:  palette.Secondary,
		Background: "#ffffff",
		Surface:    "#f9fafb",
		Text:       "#000000",
		TextMuted:  "#6b7280",
		Border:     "#e5e7eb",
		Success:    "#22c55e",
		Error:      "#ef4444",
		Warning:    "#f59e0b",
	}
}

// generateDarkScheme creates colors for dark mode
func generateDarkScheme(palette *Palette) *Scheme {
	primary, secondary := palette.Primary, palette.Secondary
	if c, err := colorful.Hex(primary); err == nil {
		primary = c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.35).Clamped().Hex()
	}
	if c, err := colorful.Hex(secondary); err == nil {
		secondary = c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.35).Clamped().Hex()
	}
	return &Scheme{
		Primary:    primary,
		Secondary:  secondary,
		Background: "#0f172a",
		Surface:    "#1e293b",
		Text:       "#f1f5f9",
		TextMuted:  "#94a3b8",
		Border:     "#334155",
		Success:    "#22c55e",
		Error:      "#ef4444",
		Warning:    "#f59e0b",
	}
}

// Theme converts the scheme into theme entries (primary, primaryContrast, ...)
func (s *Scheme) Theme() *Theme {
	return New().
		Set("primary", s.Primary).
		Set("primaryContrast", s.PrimaryContrast).
		Set("secondary", s.Secondary).
		Set("backgroundPrimary", s.Background).
		Set("surface", s.Surface).
		Set("text", s.Text).
		Set("textMuted", s.TextMuted).
		Set("border", s.Border).
		Set("success", s.Success).
		Set("error", s.Error).
		Set("warning", s.Warning)
}

// ContrastColor picks black or white text for a background, by relative luminance.
// Unparsable input yields white.
func ContrastColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	r, g, b := c.LinearRgb()
	if 0.2126*r+0.7152*g+0.0722*b > 0.179 {
		return "#000000"
	}
	return "#ffffff"
}
