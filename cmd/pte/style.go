package main

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	cGold  = lipgloss.Color("220")
	cGray  = lipgloss.Color("240")
	cField = lipgloss.Color("63")

	styleName    = lipgloss.NewStyle().Foreground(cField)
	styleValue   = lipgloss.NewStyle().Foreground(cGray)
	styleHeading = lipgloss.NewStyle().Foreground(cGold).Bold(true)
)

// swatch renders a two-cell colour sample for hex values and blanks otherwise
func swatch(value string) string {
	if _, err := colorful.Hex(value); err != nil {
		return "  "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ")
}
