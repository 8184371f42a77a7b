package storage

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
)

// Memory is an in-memory matcher.Persistence.
// Used when the database cannot be opened; state is lost on exit.
type Memory struct {
	mu         sync.RWMutex
	coins      int
	levels     map[matcher.ProgressKey]int
	adsRemoved bool
	lastDaily  time.Time
	results    []matcher.LevelResult
}

// Ensure Memory implements the engine's collaborator interfaces.
var (
	_ matcher.Persistence    = (*Memory)(nil)
	_ matcher.Wallet         = (*Memory)(nil)
	_ matcher.ResultRecorder = (*Memory)(nil)
)

// NewMemory creates an in-memory store with the given starting balance.
func NewMemory(startingCoins int) *Memory {
	return &Memory{
		coins:  startingCoins,
		levels: make(map[matcher.ProgressKey]int),
	}
}

func (m *Memory) LoadCurrency() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.coins, nil
}

func (m *Memory) SaveCurrency(coins int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coins = coins
	return nil
}

func (m *Memory) SpendCurrency(amount int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.coins < amount {
		return false, nil
	}
	m.coins -= amount
	return true, nil
}

func (m *Memory) AddCurrency(amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.coins += amount
	return nil
}

func (m *Memory) LoadLevel(key matcher.ProgressKey) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.levels[key], nil
}

func (m *Memory) SaveLevel(key matcher.ProgressKey, level int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels[key] = level
	return nil
}

func (m *Memory) LoadAdsRemoved() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.adsRemoved, nil
}

func (m *Memory) SaveAdsRemoved(removed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adsRemoved = removed
	return nil
}

func (m *Memory) LoadLastDailyReward() (time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastDaily, nil
}

func (m *Memory) SaveLastDailyReward(t time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastDaily = t
	return nil
}

func (m *Memory) RecordResult(result matcher.LevelResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
	return nil
}

// Results returns a copy of the recorded level results.
func (m *Memory) Results() []matcher.LevelResult {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]matcher.LevelResult, len(m.results))
	copy(out, m.results)
	return out
}
