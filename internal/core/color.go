package core

import "strings"

// ColorTheme is the palette a board is drawn with.
// Colors are hex strings so the platform can hand them straight to lipgloss.
type ColorTheme struct {
	ID        string
	Name      string
	Main      string // Tile face and accents
	Container string // Board background
}

// Predefined color themes, in menu order.
var (
	ColorBlue   = ColorTheme{ID: "blue", Name: "Blue", Main: "#2196F3", Container: "#E3F2FD"}
	ColorGreen  = ColorTheme{ID: "green", Name: "Green", Main: "#4CAF50", Container: "#E8F5E9"}
	ColorRed    = ColorTheme{ID: "red", Name: "Red", Main: "#F44336", Container: "#FFEBEE"}
	ColorPurple = ColorTheme{ID: "purple", Name: "Purple", Main: "#9C27B0", Container: "#F3E5F5"}
	ColorOrange = ColorTheme{ID: "orange", Name: "Orange", Main: "#FF9800", Container: "#FFF3E0"}
	ColorTeal   = ColorTheme{ID: "teal", Name: "Teal", Main: "#009688", Container: "#E0F2F1"}
)

// ColorThemes returns all color themes in display order.
func ColorThemes() []ColorTheme {
	return []ColorTheme{ColorBlue, ColorGreen, ColorRed, ColorPurple, ColorOrange, ColorTeal}
}

// ColorThemeByID looks up a theme by id (case-insensitive).
// Unknown ids fall back to blue.
func ColorThemeByID(id string) ColorTheme {
	for _, t := range ColorThemes() {
		if strings.EqualFold(t.ID, id) {
			return t
		}
	}
	return ColorBlue
}

// Next returns the theme after t, wrapping around.
func (t ColorTheme) Next() ColorTheme {
	themes := ColorThemes()
	for i, c := range themes {
		if c.ID == t.ID {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
