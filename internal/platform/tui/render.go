package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-matcher/internal/config"
	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
)

const tileWidth = 5

// boardStyles holds the tile styles for one color theme.
type boardStyles struct {
	hidden  lipgloss.Style
	faceUp  lipgloss.Style
	matched lipgloss.Style
}

func newBoardStyles(s matcher.Snapshot) boardStyles {
	main := lipgloss.Color(s.ColorTheme.Main)
	container := lipgloss.Color(s.ColorTheme.Container)
	base := lipgloss.NewStyle().Width(tileWidth).Align(lipgloss.Center).MarginRight(1)

	return boardStyles{
		hidden:  base.Foreground(main).Background(container),
		faceUp:  base.Foreground(lipgloss.Color("#FFFFFF")).Background(main).Bold(true),
		matched: base.Foreground(main).Faint(true),
	}
}

// RenderBoard draws the grid with the cursor on the tile at index cursor.
func RenderBoard(s matcher.Snapshot, cursor int) string {
	if s.Board.Size == 0 || len(s.Board.Tiles) == 0 {
		return ""
	}
	st := newBoardStyles(s)

	rows := make([]string, 0, s.Board.Size)
	for r := 0; r < s.Board.Size; r++ {
		cells := make([]string, 0, s.Board.Size)
		for c := 0; c < s.Board.Size; c++ {
			idx := r*s.Board.Size + c
			cells = append(cells, renderTile(st, s.Board.Tiles[idx], idx == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderTile(st boardStyles, t matcher.Tile, focused bool) string {
	var style lipgloss.Style
	label := "?"
	switch {
	case t.Matched:
		style = st.matched
		label = t.Content
	case t.Selected:
		style = st.faceUp
		label = t.Content
	default:
		style = st.hidden
	}
	if focused {
		style = style.Reverse(true)
	}
	return style.Render(label)
}

// RenderStatus draws the level, clock, score and wallet line.
func RenderStatus(s matcher.Snapshot) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(s.ColorTheme.Main)).Bold(true)
	gold := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)
	clock := accent
	if s.TimeLeft <= 10 {
		clock = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	}

	parts := []string{
		accent.Render(fmt.Sprintf("%s · Level %d", s.Theme.Title(), s.Level)),
		clock.Render(fmt.Sprintf("⏱ %d:%02d", s.TimeLeft/60, s.TimeLeft%60)),
		fmt.Sprintf("Score %d", s.Score),
		fmt.Sprintf("Combo x%d", s.Combo),
		gold.Render(fmt.Sprintf("%d coins", s.Coins)),
	}
	if !s.AlwaysVisible {
		parts = append(parts, fmt.Sprintf("Hints %d", s.HintsRemaining))
	}
	return strings.Join(parts, "   ")
}

// RenderPowerUps lists the power-up prices.
func RenderPowerUps(p config.MatcherPrices, s matcher.Snapshot) string {
	hint := fmt.Sprintf("[H] Hint %d¢", p.Hint)
	if s.HintsRemaining > 0 {
		hint = fmt.Sprintf("[H] Hint (%d free)", s.HintsRemaining)
	}
	if s.AlwaysVisible {
		hint = ""
	}
	items := []string{
		fmt.Sprintf("[X] Shuffle %d¢", p.Shuffle),
		fmt.Sprintf("[T] +Time %d¢", p.ExtraTime),
	}
	if hint != "" {
		items = append([]string{hint}, items...)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(strings.Join(items, "   "))
}

// RenderDialog returns the overlay for the current phase, or "".
func RenderDialog(cfg config.MatcherConfig, s matcher.Snapshot) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.ColorTheme.Main)).
		Padding(1, 3).
		Align(lipgloss.Center)
	title := lipgloss.NewStyle().Bold(true)

	switch {
	case s.InsufficientCurrency:
		return box.Render(title.Render("Not enough coins") + "\n\n" +
			fmt.Sprintf("You have %d coins.\n\n[B] bonus break (+%d)   [esc] close", s.Coins, cfg.Rewards.BonusCoins))
	case s.GameOver:
		return box.Render(title.Render("Game Over") + "\n\n" +
			fmt.Sprintf("Ran out of time! Continue for %ds?\n\n[T] %d coins   [B] bonus break   [r] restart",
				cfg.Timing.ExtraTimeSeconds, cfg.Prices.ExtraTime))
	case s.LevelComplete:
		return box.Render(title.Render("Level Complete!") + "\n\n" +
			fmt.Sprintf("You've cleared level %d with %d points.\nEarned %d coins!\n\n[n] next level   [r] replay",
				s.Level, s.Score, s.LastReward))
	}
	return ""
}

// RenderBreak draws the bonus break countdown.
func RenderBreak(s matcher.Snapshot, title string, secondsLeft int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(s.ColorTheme.Main)).
		Padding(1, 4).
		Align(lipgloss.Center)
	return box.Render(fmt.Sprintf("%s\n\nBack in %d...", title, secondsLeft))
}
