package matcher

import "testing"

func TestGridSizeForLevel(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{1, 4}, {2, 4}, {3, 6}, {4, 6}, {5, 6}, {6, 8}, {50, 8},
	}
	for _, tt := range tests {
		if got := GridSizeForLevel(tt.level); got != tt.want {
			t.Errorf("GridSizeForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestInitialTimeForLevel(t *testing.T) {
	tests := []struct {
		level, want int
	}{
		{1, 65}, {2, 70}, {10, 110}, {84, 480}, {85, 480}, {500, 480},
	}
	for _, tt := range tests {
		if got := InitialTimeForLevel(tt.level); got != tt.want {
			t.Errorf("InitialTimeForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestMatchPoints(t *testing.T) {
	for combo, want := range []int{10, 20, 30, 40} {
		if got := MatchPoints(combo); got != want {
			t.Errorf("MatchPoints(%d) = %d, want %d", combo, got, want)
		}
	}
}

func TestLevelReward(t *testing.T) {
	tests := []struct {
		name                   string
		timeLeft, level, limit int
		want                   int
	}{
		{"under cap", 40, 2, 500, 80},
		{"at cap", 250, 2, 500, 500},
		{"over cap", 400, 10, 550, 550},
		{"no time", 0, 5, 500, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelReward(tt.timeLeft, tt.level, tt.limit); got != tt.want {
				t.Errorf("LevelReward = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProgressKeyString(t *testing.T) {
	tests := []struct {
		key  ProgressKey
		want string
	}{
		{ProgressKey{ThemeNumbers, false}, "level_numbers_hidden"},
		{ProgressKey{ThemeAlphabet, true}, "level_alphabet_viewall"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}
