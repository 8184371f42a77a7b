package config

import (
	_ "embed"
)

//go:embed defaults/matcher.yaml
var defaultMatcherYAML []byte

// DefaultMatcherConfig returns the default matcher configuration.
func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		Timing: MatcherTiming{
			BaseSeconds:      60,
			SecondsPerLevel:  5,
			MaxSeconds:       480,
			ExtraTimeSeconds: 30,
			InitialPeekMS:    2000,
			HintPeekMS:       1500,
			RewardedPeekMS:   3000,
			MismatchMS:       500,
		},
		Prices: MatcherPrices{
			Hint:      20,
			Shuffle:   30,
			ExtraTime: 50,
		},
		Rewards: MatcherRewards{
			StartingCoins:     100,
			LevelCapMin:       500,
			LevelCapMax:       600,
			DailyCoins:        50,
			DailyCooldownH:    24,
			InterstitialEvery: 3,
			BonusCoins:        20,
			BonusBreakSeconds: 3,
		},
		Difficulty: MatcherDifficulty{
			HintsPerLevel: 3,
			Grid: []GridThreshold{
				{MaxLevel: 2, Size: 4},
				{MaxLevel: 5, Size: 6},
				{MaxLevel: 0, Size: 8},
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMatcherYAML
}
