package matcher

import (
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-matcher/internal/config"
	"github.com/vovakirdan/tui-matcher/internal/core"
)

// fakeScheduler runs tasks on virtual time advanced by the test.
type fakeScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*fakeTask
}

type fakeTask struct {
	due  time.Duration
	seq  int
	f    func()
	done bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTask{due: s.now + d, seq: s.seq, f: f}
	s.seq++
	s.tasks = append(s.tasks, t)
	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if t.done {
			return false
		}
		t.done = true
		return true
	}
}

// Advance moves virtual time forward, firing due tasks in order.
func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		var next *fakeTask
		for _, t := range s.tasks {
			if t.done || t.due > target {
				continue
			}
			if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
				next = t
			}
		}
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		next.done = true
		s.now = next.due
		s.mu.Unlock()
		next.f()
	}
}

// Pending returns the number of armed tasks.
func (s *fakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}

// fakeStore implements Persistence only, so the engine uses load-then-save.
type fakeStore struct {
	mu         sync.Mutex
	coins      int
	levels     map[ProgressKey]int
	adsRemoved bool
	lastDaily  time.Time
}

func newFakeStore(coins int) *fakeStore {
	return &fakeStore{coins: coins, levels: make(map[ProgressKey]int)}
}

func (s *fakeStore) LoadCurrency() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coins, nil
}

func (s *fakeStore) SaveCurrency(coins int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coins = coins
	return nil
}

func (s *fakeStore) LoadLevel(key ProgressKey) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levels[key], nil
}

func (s *fakeStore) SaveLevel(key ProgressKey, level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels[key] = level
	return nil
}

func (s *fakeStore) LoadAdsRemoved() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adsRemoved, nil
}

func (s *fakeStore) SaveAdsRemoved(removed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adsRemoved = removed
	return nil
}

func (s *fakeStore) LoadLastDailyReward() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDaily, nil
}

func (s *fakeStore) SaveLastDailyReward(t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastDaily = t
	return nil
}

// walletStore adds atomic debit and result history on top of fakeStore.
type walletStore struct {
	*fakeStore
	spends  int
	results []LevelResult
}

func (w *walletStore) SpendCurrency(amount int) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.spends++
	if w.coins < amount {
		return false, nil
	}
	w.coins -= amount
	return true, nil
}

func (w *walletStore) AddCurrency(amount int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.coins += amount
	return nil
}

func (w *walletStore) RecordResult(r LevelResult) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.results = append(w.results, r)
	return nil
}

func newTestEngine(t *testing.T, store Persistence) (*Engine, *fakeScheduler) {
	t.Helper()
	sched := &fakeScheduler{}
	e := New(Options{
		Config:    config.DefaultMatcherConfig(),
		Store:     store,
		Scheduler: sched,
		Rand:      rand.New(rand.NewSource(42)),
	})
	t.Cleanup(e.Close)
	return e, sched
}

func startVisible(t *testing.T, e *Engine) {
	t.Helper()
	e.SelectTheme(ThemeNumbers, true, core.ColorBlue)
	if got := e.Snapshot().Phase; got != PhasePlaying {
		t.Fatalf("phase after select = %v, want %v", got, PhasePlaying)
	}
}

// pairsOf groups tile ids by pair type, ordered by pair index.
func pairsOf(b Board) [][2]TileID {
	byPair := make(map[int][]TileID)
	for _, tile := range b.Tiles {
		byPair[tile.Pair] = append(byPair[tile.Pair], tile.ID)
	}
	keys := make([]int, 0, len(byPair))
	for k := range byPair {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([][2]TileID, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]TileID{byPair[k][0], byPair[k][1]})
	}
	return out
}

func tileByID(b Board, id TileID) Tile {
	return b.Tiles[b.Index(id)]
}
