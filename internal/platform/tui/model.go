package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-matcher/internal/broadcast"
	"github.com/vovakirdan/tui-matcher/internal/config"
	"github.com/vovakirdan/tui-matcher/internal/core"
	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
)

// breakKind is what a bonus break pays out when it ends.
type breakKind int

const (
	breakNone breakKind = iota
	breakCoins
	breakTime
	breakHint
	breakIntermission
)

// Model is the Bubble Tea model for one matcher session.
// It renders engine snapshots and forwards key presses as engine operations.
type Model struct {
	engine  *matcher.Engine
	sub     *broadcast.Channel[matcher.Snapshot]
	cfg     config.MatcherConfig
	runtime core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	menu    ThemeMenu
	snap    matcher.Snapshot
	cursor  int
	notice  string
	now     func() time.Time

	brk     breakKind
	brkID   int
	brkLeft int

	quitting bool
}

// NewModel creates a model bound to engine. The caller owns the engine.
func NewModel(engine *matcher.Engine, cfg config.MatcherConfig, rc core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false
	h.Width = rc.ScreenW

	return Model{
		engine:  engine,
		sub:     engine.Subscribe(16),
		cfg:     cfg,
		runtime: rc,
		keys:    DefaultKeyMap(),
		help:    h,
		menu:    NewThemeMenu(),
		snap:    engine.Snapshot(),
		now:     time.Now,
	}
}

// Init starts listening for snapshots.
func (m Model) Init() tea.Cmd {
	return listenCmd(m.sub)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SnapshotMsg:
		m.snap = matcher.Snapshot(msg)
		m.cursor = core.Clamp(m.cursor, 0, core.Max(len(m.snap.Board.Tiles)-1, 0))
		return m, listenCmd(m.sub)

	case SessionClosedMsg:
		m.quitting = true
		return m, tea.Quit

	case BreakTickMsg:
		return m.handleBreakTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	// Breaks cannot be skipped
	if m.brk != breakNone {
		return m, nil
	}
	if m.snap.Phase == matcher.PhaseThemeSelection {
		return m.handleMenuKey(msg)
	}
	return m.handleBoardKey(msg)
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menu.Up()
	case key.Matches(msg, m.keys.Down):
		m.menu.Down()
	case key.Matches(msg, m.keys.ToggleVisible):
		m.menu.ToggleVisible()
	case key.Matches(msg, m.keys.CycleColor):
		m.menu.CycleColor()
	case key.Matches(msg, m.keys.Daily):
		if m.engine.ClaimDailyReward(m.now()) {
			m.notice = fmt.Sprintf("Daily reward: +%d coins", m.cfg.Rewards.DailyCoins)
		} else {
			m.notice = "Daily reward already claimed"
		}
	case key.Matches(msg, m.keys.AdFree):
		m.engine.UnlockAdFree()
		if m.engine.Snapshot().AdsRemoved {
			m.notice = "Intermissions disabled"
		} else {
			m.notice = "Could not save ad-free unlock"
		}
	case key.Matches(msg, m.keys.Start):
		theme, visible, color := m.menu.Selection()
		m.cursor = 0
		m.engine.SelectTheme(theme, visible, color)
	}
	return m, nil
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.snap
	size := s.Board.Size

	action := m.keys.Action(msg)
	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.cursor = moveCursor(m.cursor, size, action)
	case core.ActionFlip:
		if m.cursor < len(s.Board.Tiles) {
			m.engine.TapTile(s.Board.Tiles[m.cursor].ID)
		}
	case core.ActionHint:
		if s.HintsRemaining > 0 {
			m.engine.UseHint()
		} else {
			m.engine.BuyHintWithCoins()
		}
	case core.ActionShuffle:
		m.engine.BuyShuffleWithCoins()
	case core.ActionExtraTime:
		m.engine.BuyExtraTimeWithCoins()
	case core.ActionNext:
		if s.LevelComplete {
			if s.InterstitialDue {
				return m.startBreak(breakIntermission)
			}
			m.engine.NextLevel()
		}
	case core.ActionRestart:
		m.engine.RestartLevel()
	case core.ActionDismiss:
		m.engine.DismissInsufficientCurrency()
	case core.ActionBonus:
		switch {
		case s.InsufficientCurrency:
			return m.startBreak(breakCoins)
		case s.GameOver:
			return m.startBreak(breakTime)
		case s.Phase == matcher.PhasePlaying && !s.AlwaysVisible:
			return m.startBreak(breakHint)
		}
	case core.ActionBack:
		m.engine.OpenThemeSelection()
	}
	return m, nil
}

func moveCursor(cursor, size int, a core.Action) int {
	if size <= 0 {
		return 0
	}
	col, row := core.GridCell(cursor, size)
	switch a {
	case core.ActionUp:
		row--
	case core.ActionDown:
		row++
	case core.ActionLeft:
		col--
	case core.ActionRight:
		col++
	}
	col = core.Clamp(col, 0, size-1)
	row = core.Clamp(row, 0, size-1)
	return core.GridIndex(col, row, size)
}

func (m Model) startBreak(kind breakKind) (tea.Model, tea.Cmd) {
	m.brk = kind
	m.brkID++
	m.brkLeft = m.cfg.Rewards.BonusBreakSeconds
	if m.brkLeft <= 0 {
		m.finishBreak()
		return m, nil
	}
	return m, breakTickCmd(m.brkID)
}

func (m Model) handleBreakTick(msg BreakTickMsg) (tea.Model, tea.Cmd) {
	if m.brk == breakNone || msg.ID != m.brkID {
		return m, nil
	}
	m.brkLeft--
	if m.brkLeft > 0 {
		return m, breakTickCmd(m.brkID)
	}
	m.finishBreak()
	return m, nil
}

// finishBreak pays out the break and clears it.
func (m *Model) finishBreak() {
	switch m.brk {
	case breakCoins:
		m.engine.GrantCurrencyFromReward(m.cfg.Rewards.BonusCoins)
	case breakTime:
		m.engine.AddExtraTime(m.cfg.Timing.ExtraTimeSeconds)
	case breakHint:
		m.engine.GrantHint()
	case breakIntermission:
		m.engine.NextLevel()
	}
	m.brk = breakNone
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.engine.Unsubscribe(m.sub)
	return m, tea.Quit
}

// saveScreenshot saves the current view to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".matcher", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.snap.Theme, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.View()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.snap.Phase == matcher.PhaseThemeSelection {
		return m.menu.View(m.runtime.ScreenW, m.snap, m.notice) + "\n" +
			centerText(m.help.View(menuKeys{m.keys}), m.runtime.ScreenW)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(RenderStatus(m.snap), m.runtime.ScreenW))
	b.WriteString("\n\n")

	board := RenderBoard(m.snap, m.cursor)
	switch {
	case m.brk != breakNone:
		board = RenderBreak(m.snap, breakTitle(m.brk), m.brkLeft)
	case RenderDialog(m.cfg, m.snap) != "":
		board = lipgloss.JoinVertical(lipgloss.Center, board, "", RenderDialog(m.cfg, m.snap))
	}
	for _, line := range strings.Split(board, "\n") {
		b.WriteString(centerText(line, m.runtime.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(RenderPowerUps(m.cfg.Prices, m.snap), m.runtime.ScreenW))
	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.runtime.ScreenW))
	return b.String()
}

func breakTitle(k breakKind) string {
	if k == breakIntermission {
		return "Intermission"
	}
	return "Bonus break"
}

// Run starts the Bubble Tea program for engine and blocks until the player quits.
func Run(engine *matcher.Engine, cfg config.MatcherConfig, rc core.RuntimeConfig) error {
	model := NewModel(engine, cfg, rc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
