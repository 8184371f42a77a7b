// Package matcher implements the tile-matching (concentration) game: the session
// state machine, board generation, countdown, power-ups and level progression.
package matcher

import "github.com/vovakirdan/tui-matcher/internal/config"

var defaultDifficulty = config.NewDifficultyManager(config.DefaultMatcherConfig())

// GridSizeForLevel returns the default board edge length for a level.
// Levels 1-2 use 4, 3-5 use 6, everything above uses 8.
func GridSizeForLevel(level int) int {
	return defaultDifficulty.GridSize(level)
}

// InitialTimeForLevel returns the default countdown for a level: 60 + 5 per level, capped at 480.
func InitialTimeForLevel(level int) int {
	return defaultDifficulty.InitialTime(level)
}

// MatchPoints returns the points for a successful match given the combo
// streak before the match.
func MatchPoints(comboBefore int) int {
	return 10 * (comboBefore + 1)
}

// LevelReward returns the coins earned for clearing a level.
func LevelReward(timeLeft, level, limit int) int {
	reward := timeLeft * level
	if reward > limit {
		return limit
	}
	if reward < 0 {
		return 0
	}
	return reward
}
