package matcher

import "github.com/vovakirdan/tui-matcher/internal/core"

// Phase is the session state.
type Phase string

const (
	PhaseThemeSelection Phase = "theme_selection"
	PhasePeeking        Phase = "peeking"
	PhasePlaying        Phase = "playing"
	PhaseResolving      Phase = "resolving" // A mismatched pair is face-up
	PhaseLevelComplete  Phase = "level_complete"
	PhaseGameOver       Phase = "game_over"
)

// Snapshot is an immutable copy of the session published after every transition.
type Snapshot struct {
	Version uint64 // Increases with every publish
	Phase   Phase

	Board    Board
	GridSize int
	TimeLeft int
	Score    int
	Combo    int
	Level    int
	Coins    int

	Theme          Theme
	AlwaysVisible  bool
	ColorTheme     core.ColorTheme
	HintsRemaining int

	GameOver             bool
	LevelComplete        bool
	ThemeSelectionOpen   bool
	Peeking              bool
	InsufficientCurrency bool

	AdsRemoved      bool
	LastReward      int  // Coins credited for the last cleared level
	InterstitialDue bool // An interstitial should follow the cleared level
}

// Key returns the progress key of the snapshot's session.
func (s Snapshot) Key() ProgressKey {
	return ProgressKey{Theme: s.Theme, AlwaysVisible: s.AlwaysVisible}
}

// Clone returns a copy that shares no tile storage with s.
func (s Snapshot) Clone() Snapshot {
	s.Board = s.Board.Clone()
	return s
}

// snapshot builds a deep copy of the engine state. Caller holds e.mu.
func (e *Engine) snapshot() Snapshot {
	e.version++
	return Snapshot{
		Version:  e.version,
		Phase:    e.phase,
		Board:    e.board.Clone(),
		GridSize: e.board.Size,
		TimeLeft: e.timeLeft,
		Score:    e.score,
		Combo:    e.combo,
		Level:    e.level,
		Coins:    e.coins,

		Theme:          e.theme,
		AlwaysVisible:  e.alwaysVisible,
		ColorTheme:     e.colorTheme,
		HintsRemaining: e.hints,

		GameOver:             e.phase == PhaseGameOver,
		LevelComplete:        e.phase == PhaseLevelComplete,
		ThemeSelectionOpen:   e.phase == PhaseThemeSelection,
		Peeking:              e.phase == PhasePeeking,
		InsufficientCurrency: e.insufficient,

		AdsRemoved:      e.adsRemoved,
		LastReward:      e.lastReward,
		InterstitialDue: e.interstitialDue,
	}
}
