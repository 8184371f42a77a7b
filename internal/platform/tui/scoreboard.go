package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
	"github.com/vovakirdan/tui-matcher/internal/registry"
	"github.com/vovakirdan/tui-matcher/internal/storage"
)

const (
	minWidthForSidebar = 90
	sidebarWidth       = 30
	maxScores          = 100
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// Track is one scoreboard page: a theme played in one visibility mode.
type Track struct {
	Key   matcher.ProgressKey
	Title string
}

// Tracks lists every theme in both modes, hidden first.
func Tracks() []Track {
	var tracks []Track
	for _, t := range registry.List() {
		for _, visible := range []bool{false, true} {
			mode := "hidden"
			if visible {
				mode = "view all"
			}
			tracks = append(tracks, Track{
				Key:   matcher.ProgressKey{Theme: matcher.Theme(t.ID), AlwaysVisible: visible},
				Title: fmt.Sprintf("%s (%s)", t.Title, mode),
			})
		}
	}
	return tracks
}

// ScoreboardKeyMap defines the key bindings for the results screen.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextTrack key.Binding
	PrevTrack key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevTrack, k.NextTrack, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextTrack: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next track")),
		PrevTrack: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev track")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the Bubble Tea model for the level results screen.
type ScoreboardModel struct {
	tracks  []Track
	cursor  int
	store   *storage.Store
	profile string
	levels  map[string]int // Saved level per progress key
	scores  []storage.ScoreEntry
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap

	width, height       int
	quitting, goingBack bool
}

// NewScoreboardModel opens the results screen on the first track.
// A nil store shows empty tracks.
func NewScoreboardModel(store *storage.Store, profile string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		tracks:  Tracks(),
		store:   store,
		profile: profile,
		levels:  make(map[string]int),
		keys:    DefaultScoreboardKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}

	if store != nil && profile != "" {
		if progress, err := store.ProfileProgress(profile); err == nil {
			for _, p := range progress {
				m.levels[p.ProgressKey] = p.Level
			}
		}
	}

	m.table = m.newTable()
	m.loadScores()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Level", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Coins", Width: 6},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.wide() {
		tableWidth -= sidebarWidth + 3
	}
	if spare := tableWidth - 64; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores fetches the results of the selected track.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil && len(m.tracks) > 0 {
		if scores, err := m.store.TopScores(m.tracks[m.cursor].Key.String(), maxScores); err == nil {
			m.scores = scores
		}
	}
	m.fillTable()
}

// step moves the track cursor by delta, wrapping at both ends.
func (m *ScoreboardModel) step(delta int) {
	if len(m.tracks) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.tracks)) % len(m.tracks)
	m.loadScores()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Profile
		if player == m.profile {
			player = "* " + player
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", s.Level),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Reward),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTrack):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevTrack):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "LEVEL RESULTS"
	if len(m.tracks) > 0 {
		title += " · " + m.tracks[m.cursor].Title
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render(centerText(title, m.width)))
	b.WriteString("\n")
	if line := m.progressLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	board := panelStyle.Render(m.tableView())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", board))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.tracks[m.cursor].Title), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(board, m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

// progressLine shows the profile's saved level on the selected track.
func (m ScoreboardModel) progressLine() string {
	if m.profile == "" || len(m.tracks) == 0 {
		return ""
	}
	level, ok := m.levels[m.tracks[m.cursor].Key.String()]
	if !ok {
		return fmt.Sprintf("%s has not played this track", m.profile)
	}
	return fmt.Sprintf("%s is on level %d", m.profile, level)
}

// sidebar lists the tracks with the profile's saved level on each.
func (m ScoreboardModel) sidebar() string {
	var b strings.Builder
	b.WriteString("Tracks\n")
	b.WriteString(strings.Repeat("─", sidebarWidth-4))
	for i, t := range m.tracks {
		marker, style := "  ", lipgloss.NewStyle()
		if i == m.cursor {
			marker, style = "> ", style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		line := marker + t.Title
		if level, ok := m.levels[t.Key.String()]; ok {
			line = fmt.Sprintf("%-*s L%d", sidebarWidth-10, line, level)
		}
		b.WriteString("\n")
		b.WriteString(style.Render(line))
	}
	return panelStyle.Width(sidebarWidth).Render(b.String())
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No levels cleared yet.\nClear a level to get on the board!")
	}
	return m.table.View()
}

// RunScoreboard shows the results screen until the player leaves it.
// goBack is false when the player quit instead.
func RunScoreboard(store *storage.Store, profile string, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, profile, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.goingBack, nil
}
