package config

// DifficultyManager derives per-level parameters from the configuration.
type DifficultyManager struct {
	difficulty MatcherDifficulty
	timing     MatcherTiming
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg MatcherConfig) *DifficultyManager {
	return &DifficultyManager{
		difficulty: cfg.Difficulty,
		timing:     cfg.Timing,
	}
}

// GridSize returns the board edge length for a level (level >= 1).
// Thresholds are checked in order; the first whose MaxLevel covers the level
// wins, and a MaxLevel of 0 covers everything.
func (d *DifficultyManager) GridSize(level int) int {
	for _, g := range d.difficulty.Grid {
		if g.MaxLevel == 0 || level <= g.MaxLevel {
			return g.Size
		}
	}
	// Past the last bounded threshold: stay at the largest board.
	return d.difficulty.Grid[len(d.difficulty.Grid)-1].Size
}

// InitialTime returns the countdown in seconds for a level.
func (d *DifficultyManager) InitialTime(level int) int {
	return d.CapTime(d.timing.BaseSeconds + level*d.timing.SecondsPerLevel)
}

// CapTime clamps a countdown value to [0, MaxSeconds].
func (d *DifficultyManager) CapTime(seconds int) int {
	if seconds < 0 {
		return 0
	}
	if seconds > d.timing.MaxSeconds {
		return d.timing.MaxSeconds
	}
	return seconds
}

// MaxTime returns the countdown cap in seconds.
func (d *DifficultyManager) MaxTime() int {
	return d.timing.MaxSeconds
}

// HintsPerLevel returns the free hint allotment granted at each level start.
func (d *DifficultyManager) HintsPerLevel() int {
	return d.difficulty.HintsPerLevel
}
