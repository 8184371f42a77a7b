package config

import (
	"errors"
	"fmt"
	"time"
)

// MatcherConfig contains all configuration for the tile-matching game.
type MatcherConfig struct {
	Timing     MatcherTiming     `yaml:"timing"`
	Prices     MatcherPrices     `yaml:"prices"`
	Rewards    MatcherRewards    `yaml:"rewards"`
	Difficulty MatcherDifficulty `yaml:"difficulty"`
}

// MatcherTiming defines countdown and reveal durations.
type MatcherTiming struct {
	BaseSeconds      int `yaml:"base_seconds"`       // Countdown at level 0
	SecondsPerLevel  int `yaml:"seconds_per_level"`  // Added per level
	MaxSeconds       int `yaml:"max_seconds"`        // Hard cap on the countdown
	ExtraTimeSeconds int `yaml:"extra_time_seconds"` // Granted by the extra-time power-up
	InitialPeekMS    int `yaml:"initial_peek_ms"`    // Reveal at level start (hidden mode)
	HintPeekMS       int `yaml:"hint_peek_ms"`       // Free or bought hint
	RewardedPeekMS   int `yaml:"rewarded_peek_ms"`   // Hint granted by a reward
	MismatchMS       int `yaml:"mismatch_ms"`        // How long a wrong pair stays face-up
}

// MatcherPrices defines power-up prices in coins.
type MatcherPrices struct {
	Hint      int `yaml:"hint"`
	Shuffle   int `yaml:"shuffle"`
	ExtraTime int `yaml:"extra_time"`
}

// MatcherRewards defines coin income.
type MatcherRewards struct {
	StartingCoins     int `yaml:"starting_coins"`      // Balance when nothing is stored
	LevelCapMin       int `yaml:"level_cap_min"`       // Lower bound of the level reward cap
	LevelCapMax       int `yaml:"level_cap_max"`       // Upper bound of the level reward cap
	DailyCoins        int `yaml:"daily_coins"`         // Daily reward amount
	DailyCooldownH    int `yaml:"daily_cooldown_h"`    // Hours between daily rewards
	InterstitialEvery int `yaml:"interstitial_every"`  // Levels between interstitials (0 = never)
	BonusCoins        int `yaml:"bonus_coins"`         // Granted by a bonus break
	BonusBreakSeconds int `yaml:"bonus_break_seconds"` // Length of a bonus break
}

// MatcherDifficulty defines per-level board size and hint allotment.
type MatcherDifficulty struct {
	HintsPerLevel int             `yaml:"hints_per_level"`
	Grid          []GridThreshold `yaml:"grid"`
}

// GridThreshold maps levels up to MaxLevel to a grid size.
// A MaxLevel of 0 matches every remaining level.
type GridThreshold struct {
	MaxLevel int `yaml:"max_level"`
	Size     int `yaml:"size"`
}

// InitialPeek returns the level-start reveal duration.
func (t MatcherTiming) InitialPeek() time.Duration {
	return time.Duration(t.InitialPeekMS) * time.Millisecond
}

// HintPeek returns the hint reveal duration.
func (t MatcherTiming) HintPeek() time.Duration {
	return time.Duration(t.HintPeekMS) * time.Millisecond
}

// RewardedPeek returns the rewarded hint reveal duration.
func (t MatcherTiming) RewardedPeek() time.Duration {
	return time.Duration(t.RewardedPeekMS) * time.Millisecond
}

// MismatchDelay returns how long a mismatched pair stays visible.
func (t MatcherTiming) MismatchDelay() time.Duration {
	return time.Duration(t.MismatchMS) * time.Millisecond
}

// DailyCooldown returns the minimum time between daily rewards.
func (r MatcherRewards) DailyCooldown() time.Duration {
	return time.Duration(r.DailyCooldownH) * time.Hour
}

// Validate checks that the configuration can only produce playable boards.
func (c MatcherConfig) Validate() error {
	var errs []error

	if c.Timing.MaxSeconds <= 0 {
		errs = append(errs, errors.New("timing.max_seconds must be positive"))
	}
	if c.Timing.MismatchMS < 0 || c.Timing.InitialPeekMS < 0 || c.Timing.HintPeekMS < 0 || c.Timing.RewardedPeekMS < 0 {
		errs = append(errs, errors.New("timing durations must not be negative"))
	}
	if c.Prices.Hint < 0 || c.Prices.Shuffle < 0 || c.Prices.ExtraTime < 0 {
		errs = append(errs, errors.New("prices must not be negative"))
	}
	if c.Rewards.LevelCapMax < c.Rewards.LevelCapMin {
		errs = append(errs, errors.New("rewards.level_cap_max must be >= level_cap_min"))
	}
	if c.Rewards.BonusCoins < 0 || c.Rewards.BonusBreakSeconds < 0 {
		errs = append(errs, errors.New("rewards.bonus values must not be negative"))
	}
	if c.Difficulty.HintsPerLevel < 0 {
		errs = append(errs, errors.New("difficulty.hints_per_level must not be negative"))
	}
	if len(c.Difficulty.Grid) == 0 {
		errs = append(errs, errors.New("difficulty.grid must have at least one entry"))
	}
	for i, g := range c.Difficulty.Grid {
		if g.Size < 2 || g.Size%2 != 0 {
			errs = append(errs, fmt.Errorf("difficulty.grid[%d].size %d must be even and >= 2", i, g.Size))
		}
	}

	return errors.Join(errs...)
}

// ApplyMatcherPreset modifies the config based on a difficulty preset.
// The fixed and normal presets keep the configured values.
func ApplyMatcherPreset(cfg *MatcherConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.HintsPerLevel = 5
		cfg.Timing.InitialPeekMS = 3000
		cfg.Timing.SecondsPerLevel += 5
	case DifficultyHard:
		cfg.Difficulty.HintsPerLevel = 1
		cfg.Timing.InitialPeekMS = 1000
		cfg.Timing.BaseSeconds -= 15
	}
}
