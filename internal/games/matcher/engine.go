package matcher

import (
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-matcher/internal/broadcast"
	"github.com/vovakirdan/tui-matcher/internal/config"
	"github.com/vovakirdan/tui-matcher/internal/core"
)

// Options configures a new Engine.
type Options struct {
	Config    config.MatcherConfig
	Store     Persistence // Required
	Scheduler Scheduler   // Defaults to SystemScheduler
	Rand      *rand.Rand  // Defaults to a time-seeded source
	Logger    *log.Logger // Defaults to a discarding logger
}

// Engine owns one game session. All operations are safe for concurrent use;
// they are serialized and each one publishes a fresh Snapshot when it changes state.
// Operations that are invalid for the current phase are ignored.
type Engine struct {
	mu sync.Mutex

	cfg        config.MatcherConfig
	difficulty *config.DifficultyManager
	store      Persistence
	sched      Scheduler
	rng        *rand.Rand
	logger     *log.Logger

	hub     *broadcast.Hub[Snapshot]
	latest  atomic.Pointer[Snapshot]
	version uint64
	closed  bool

	phase         Phase
	board         Board
	timeLeft      int
	score         int
	combo         int
	level         int
	coins         int
	hints         int
	theme         Theme
	alwaysVisible bool
	colorTheme    core.ColorTheme
	insufficient  bool

	adsRemoved      bool
	lastReward      int
	interstitialDue bool

	pending   TileID    // First tile of the current attempt, "" if none
	mismatch  [2]TileID // Face-up pair while resolving
	countdown *task
	peek      *task
	resolve   *task
}

// New creates an engine in the theme selection phase.
// It loads the wallet balance and the ad-free flag from the store.
func New(opts Options) *Engine {
	if opts.Store == nil {
		panic("matcher: Options.Store is required")
	}
	if opts.Scheduler == nil {
		opts.Scheduler = SystemScheduler()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	e := &Engine{
		cfg:        opts.Config,
		difficulty: config.NewDifficultyManager(opts.Config),
		store:      opts.Store,
		sched:      opts.Scheduler,
		rng:        opts.Rand,
		logger:     opts.Logger.WithPrefix("matcher"),
		hub:        broadcast.NewHub[Snapshot](),

		phase:      PhaseThemeSelection,
		level:      1,
		theme:      ThemeNumbers,
		colorTheme: core.ColorBlue,
	}
	e.board.Size = e.difficulty.GridSize(1)
	e.timeLeft = e.difficulty.InitialTime(1)
	e.hints = e.difficulty.HintsPerLevel()

	e.mu.Lock()
	e.reloadCoins()
	if removed, err := e.store.LoadAdsRemoved(); err != nil {
		e.logger.Warn("load ads flag", "err", err)
	} else {
		e.adsRemoved = removed
	}
	e.publish()
	e.mu.Unlock()

	return e
}

// Snapshot returns a private copy of the latest published state.
func (e *Engine) Snapshot() Snapshot {
	return e.latest.Load().Clone()
}

// Subscribe returns a channel receiving every snapshot published after the call.
// Slow readers lose the oldest snapshots, never the newest.
func (e *Engine) Subscribe(bufferSize int) *broadcast.Channel[Snapshot] {
	return e.hub.Subscribe(bufferSize)
}

// Unsubscribe detaches and closes a subscription.
func (e *Engine) Unsubscribe(ch *broadcast.Channel[Snapshot]) {
	e.hub.Unsubscribe(ch)
}

// Close cancels all pending work and closes every subscription.
// Later operations are ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.cancelAll()
	e.hub.CloseAll()
}

// SelectTheme starts a session for theme. It loads the saved level for the
// theme and visibility mode, resets the hint allotment and starts that level.
// Unknown themes are ignored.
func (e *Engine) SelectTheme(theme Theme, alwaysVisible bool, colorTheme core.ColorTheme) {
	if !theme.Valid() {
		e.logger.Warn("unknown theme", "theme", theme)
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.theme = theme
	e.alwaysVisible = alwaysVisible
	e.colorTheme = colorTheme

	level, err := e.store.LoadLevel(e.key())
	if err != nil {
		e.logger.Warn("load level", "key", e.key(), "err", err)
	}
	if level < 1 {
		level = 1
	}
	e.logger.Info("theme selected", "theme", theme, "always_visible", alwaysVisible, "level", level)
	e.startLevel(level)
}

// OpenThemeSelection abandons the session and returns to theme selection.
func (e *Engine) OpenThemeSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.cancelAll()
	e.board = Board{Size: e.board.Size}
	e.pending = ""
	e.insufficient = false
	e.interstitialDue = false
	e.setPhase(PhaseThemeSelection)
	e.publish()
}

// StartNewLevel starts level with a fresh board. Every pending delayed action
// of the previous board is cancelled. Levels below 1 start level 1.
func (e *Engine) StartNewLevel(level int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.startLevel(level)
}

// NextLevel starts the level after a cleared one.
func (e *Engine) NextLevel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.phase != PhaseLevelComplete {
		return
	}
	e.startLevel(e.level + 1)
}

// RestartLevel starts the current level again.
func (e *Engine) RestartLevel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.phase == PhaseThemeSelection {
		return
	}
	e.startLevel(e.level)
}

func (e *Engine) startLevel(level int) {
	if level < 1 {
		level = 1
	}
	e.cancelAll()

	e.level = level
	e.board = Generate(e.theme, e.difficulty.GridSize(level), e.rng)
	e.timeLeft = e.difficulty.InitialTime(level)
	e.score = 0
	e.combo = 0
	e.hints = e.difficulty.HintsPerLevel()
	e.pending = ""
	e.mismatch = [2]TileID{}
	e.insufficient = false
	e.lastReward = 0
	e.interstitialDue = false

	e.logger.Debug("level started", "level", level, "grid", e.board.Size, "time", e.timeLeft)

	if e.alwaysVisible {
		e.setPhase(PhasePlaying)
		e.syncCountdown()
		e.publish()
		return
	}
	e.beginPeek(e.cfg.Timing.InitialPeek())
	e.publish()
}

// TapTile selects a tile. Taps are ignored unless the session is playing and
// the tile is on the board, unmatched and face-down.
func (e *Engine) TapTile(id TileID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.phase != PhasePlaying {
		return
	}
	idx := e.board.Index(id)
	if idx < 0 {
		return
	}
	tile := &e.board.Tiles[idx]
	if tile.Matched || tile.Selected {
		return
	}

	if e.pending == "" {
		tile.Selected = true
		e.pending = id
		e.publish()
		return
	}

	firstIdx := e.board.Index(e.pending)
	e.pending = ""
	first := &e.board.Tiles[firstIdx]

	if first.Pair == tile.Pair {
		first.Matched, first.Selected = true, false
		tile.Matched, tile.Selected = true, false
		e.score += MatchPoints(e.combo)
		e.combo++

		if e.board.AllMatched() {
			e.completeLevel()
		}
		e.publish()
		return
	}

	tile.Selected = true
	e.mismatch = [2]TileID{first.ID, tile.ID}
	e.setPhase(PhaseResolving)
	e.resolve = e.schedule(e.cfg.Timing.MismatchDelay(), e.onMismatchResolved)
	e.publish()
}

func (e *Engine) onMismatchResolved(t *task) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || e.resolve != t {
		return
	}
	e.resolve = nil

	for _, id := range e.mismatch {
		if i := e.board.Index(id); i >= 0 {
			e.board.Tiles[i].Selected = false
		}
	}
	e.mismatch = [2]TileID{}
	e.combo = 0
	// The countdown may have expired meanwhile
	if e.phase == PhaseResolving {
		e.setPhase(PhasePlaying)
	}
	e.publish()
}

// completeLevel credits the level reward and records progress. Caller holds e.mu.
func (e *Engine) completeLevel() {
	e.stopCountdown()
	e.setPhase(PhaseLevelComplete)

	rw := e.cfg.Rewards
	limit := rw.LevelCapMin
	if rw.LevelCapMax > rw.LevelCapMin {
		limit += e.rng.Intn(rw.LevelCapMax - rw.LevelCapMin + 1)
	}
	e.lastReward = LevelReward(e.timeLeft, e.level, limit)
	e.credit(e.lastReward)

	key := e.key()
	saved, err := e.store.LoadLevel(key)
	if err != nil {
		e.logger.Warn("load level", "key", key, "err", err)
	}
	if e.level+1 > saved {
		if err := e.store.SaveLevel(key, e.level+1); err != nil {
			e.logger.Error("save level", "key", key, "err", err)
		}
	}

	if rec, ok := e.store.(ResultRecorder); ok {
		res := LevelResult{Key: key, Level: e.level, Score: e.score, TimeLeft: e.timeLeft, Reward: e.lastReward}
		if err := rec.RecordResult(res); err != nil {
			e.logger.Error("record result", "err", err)
		}
	}

	every := rw.InterstitialEvery
	e.interstitialDue = !e.adsRemoved && every > 0 && e.level%every == 0

	e.logger.Info("level complete", "level", e.level, "score", e.score, "reward", e.lastReward)
}

func (e *Engine) key() ProgressKey {
	return ProgressKey{Theme: e.theme, AlwaysVisible: e.alwaysVisible}
}

func (e *Engine) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	e.logger.Debug("phase", "from", e.phase, "to", p)
	e.phase = p
}

// schedule arms a task whose callback receives its own handle.
// Callbacks take e.mu, so arming while holding it is safe.
func (e *Engine) schedule(d time.Duration, fn func(*task)) *task {
	t := &task{}
	t.stop = e.sched.AfterFunc(d, func() { fn(t) })
	return t
}

// cancelAll drops every delayed action of the current board.
func (e *Engine) cancelAll() {
	e.stopCountdown()
	e.peek.cancel()
	e.peek = nil
	e.resolve.cancel()
	e.resolve = nil
	e.mismatch = [2]TileID{}
}

// publish stores and broadcasts a snapshot. Caller holds e.mu.
func (e *Engine) publish() {
	s := e.snapshot()
	e.latest.Store(&s)
	if !e.closed {
		e.hub.PublishFunc(s.Clone)
	}
}
