package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-matcher/internal/core"
	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
	"github.com/vovakirdan/tui-matcher/internal/registry"
)

// ThemeMenu is the theme selection screen state.
type ThemeMenu struct {
	themes        []registry.ThemeInfo
	cursor        int
	alwaysVisible bool
	color         core.ColorTheme
}

// NewThemeMenu creates a menu listing every registered theme.
func NewThemeMenu() ThemeMenu {
	return ThemeMenu{
		themes: registry.List(),
		color:  core.ColorBlue,
	}
}

// Up moves the cursor up.
func (m *ThemeMenu) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// Down moves the cursor down.
func (m *ThemeMenu) Down() {
	if m.cursor < len(m.themes)-1 {
		m.cursor++
	}
}

// ToggleVisible flips between hidden and always-visible tiles.
func (m *ThemeMenu) ToggleVisible() {
	m.alwaysVisible = !m.alwaysVisible
}

// CycleColor advances to the next color theme.
func (m *ThemeMenu) CycleColor() {
	m.color = m.color.Next()
}

// Selection returns the highlighted theme and the chosen options.
func (m ThemeMenu) Selection() (matcher.Theme, bool, core.ColorTheme) {
	if len(m.themes) == 0 {
		return matcher.ThemeNumbers, m.alwaysVisible, m.color
	}
	return matcher.Theme(m.themes[m.cursor].ID), m.alwaysVisible, m.color
}

// View renders the menu.
func (m ThemeMenu) View(width int, s matcher.Snapshot, notice string) string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.color.Main))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	gold := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)

	b.WriteString("\n")
	b.WriteString(centerText(title.Render("  M A T C H E R  "), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(gold.Render(fmt.Sprintf("%d coins", s.Coins)), width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a theme", width))
	b.WriteString("\n\n")

	for i, t := range m.themes {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color(m.color.Main))
		}
		b.WriteString(centerText(style.Render(cursor+t.Title), width))
		b.WriteString("\n")
	}

	mode := "hidden (memorize the board)"
	if m.alwaysVisible {
		mode = "view all (tiles stay face-up)"
	}
	b.WriteString("\n")
	b.WriteString(centerText("Mode:  "+mode, width))
	b.WriteString("\n")
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(m.color.Main)).Render("   ")
	b.WriteString(centerText("Color: "+swatch+" "+m.color.Name, width))
	b.WriteString("\n")
	if s.AdsRemoved {
		b.WriteString(centerText(dim.Render("ad-free"), width))
		b.WriteString("\n")
	}

	if notice != "" {
		b.WriteString("\n")
		b.WriteString(centerText(gold.Render(notice), width))
		b.WriteString("\n")
	}

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
