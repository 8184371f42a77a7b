package matcher

import (
	"fmt"
	"time"
)

// ProgressKey identifies a level track: one per theme and visibility mode.
type ProgressKey struct {
	Theme         Theme
	AlwaysVisible bool
}

// String returns the storage key, e.g. "level_numbers_hidden".
func (k ProgressKey) String() string {
	mode := "hidden"
	if k.AlwaysVisible {
		mode = "viewall"
	}
	return fmt.Sprintf("level_%s_%s", k.Theme, mode)
}

// Persistence is the storage collaborator the engine reads and writes through.
// LoadLevel returns 0 when nothing is saved for the key.
type Persistence interface {
	LoadCurrency() (int, error)
	SaveCurrency(coins int) error
	LoadLevel(key ProgressKey) (int, error)
	SaveLevel(key ProgressKey, level int) error
	LoadAdsRemoved() (bool, error)
	SaveAdsRemoved(removed bool) error
	LoadLastDailyReward() (time.Time, error)
	SaveLastDailyReward(t time.Time) error
}

// Wallet is implemented by stores that can debit and credit atomically.
// When available the engine uses it instead of load-then-save.
type Wallet interface {
	SpendCurrency(amount int) (bool, error)
	AddCurrency(amount int) error
}

// LevelResult describes a cleared level.
type LevelResult struct {
	Key      ProgressKey
	Level    int
	Score    int
	TimeLeft int
	Reward   int
}

// ResultRecorder is implemented by stores that keep level history.
type ResultRecorder interface {
	RecordResult(result LevelResult) error
}
