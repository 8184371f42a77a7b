package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-matcher/internal/core"
)

// KeyMap defines the key bindings for the board and the theme menu.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Flip      key.Binding
	Hint      key.Binding
	Shuffle   key.Binding
	ExtraTime key.Binding
	Next      key.Binding
	Restart   key.Binding
	Dismiss   key.Binding
	Bonus     key.Binding
	Back      key.Binding
	Quit      key.Binding

	// Theme menu
	Start         key.Binding
	ToggleVisible key.Binding
	CycleColor    key.Binding
	Daily         key.Binding
	AdFree        key.Binding
	Screenshot    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/w", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/s", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/a", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/d", "right")),
		Flip:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "flip")),
		Hint:      key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "hint")),
		Shuffle:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "shuffle")),
		ExtraTime: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "+time")),
		Next:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next level")),
		Restart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Bonus:     key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "bonus break")),
		Back:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "themes")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Start:         key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		ToggleVisible: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view all")),
		CycleColor:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Daily:         key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "daily reward")),
		AdFree:        key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "ad-free")),
		Screenshot:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// Action translates a key press on the board to an action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Flip):
		return core.ActionFlip
	case key.Matches(msg, k.Hint):
		return core.ActionHint
	case key.Matches(msg, k.Shuffle):
		return core.ActionShuffle
	case key.Matches(msg, k.ExtraTime):
		return core.ActionExtraTime
	case key.Matches(msg, k.Next):
		return core.ActionNext
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Dismiss):
		return core.ActionDismiss
	case key.Matches(msg, k.Bonus):
		return core.ActionBonus
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the board help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Hint, k.Shuffle, k.ExtraTime, k.Bonus, k.Back, k.Quit}
}

// FullHelp returns key bindings for the expanded board help.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Flip},
		{k.Hint, k.Shuffle, k.ExtraTime, k.Bonus},
		{k.Next, k.Restart, k.Dismiss, k.Back, k.Quit},
	}
}

// menuKeys exposes the theme menu bindings to the help view.
type menuKeys struct {
	KeyMap
}

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.ToggleVisible, k.CycleColor, k.Daily, k.AdFree, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
