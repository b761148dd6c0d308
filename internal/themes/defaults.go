// SPDX-License-Identifier: MIT
package themes

// ColorTokens is the static grey scale shipped with every default theme, in display order
var ColorTokens = []Var{
	{Name: "black", Value: "#060606"},
	{Name: "white", Value: "#ffffff"},

	{Name: "grey1050", Value: "#121212"},
	{Name: "grey1000", Value: "#171717"},
	{Name: "grey950", Value: "#1f1f1f"},
	{Name: "grey900", Value: "#252525"},
	{Name: "grey800", Value: "#2e2e2e"},
	{Name: "grey750", Value: "#3c3c3c"},
	{Name: "grey700", Value: "#4a4a4a"},
	{Name: "grey600", Value: "#545454"},
	{Name: "grey500", Value: "#757575"},
	{Name: "grey400", Value: "#afafaf"},
	{Name: "grey300", Value: "#c9c9c9"},
	{Name: "grey200", Value: "#e2e2e2"},
	{Name: "grey100", Value: "#eeeeee"},
	{Name: "grey50", Value: "#f6f6f6"},
}

// DefaultTokens returns {colors: {black, white, grey...}}
func DefaultTokens() *Theme {
	colors := New()
	for _, tok := range ColorTokens {
		colors.Set(tok.Name, tok.Value)
	}
	return New().Set("colors", colors)
}

// LightTheme is the stock light theme
func LightTheme() *Theme {
	return New().
		Set("tokens", DefaultTokens()).
		Set("colors", New().
			Set("primary", "#000000").
			Set("backgroundPrimary", "#ffffff"))
}

// DarkTheme mirrors LightTheme with inverted colors
func DarkTheme() *Theme {
	return New().
		Set("tokens", DefaultTokens()).
		Set("colors", New().
			Set("primary", "#ffffff").
			Set("backgroundPrimary", "#060606"))
}

// DefaultTheme is used when the caller supplies nothing
func DefaultTheme() *Theme {
	return LightTheme()
}
