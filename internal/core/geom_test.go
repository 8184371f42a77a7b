package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	const size = 6
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			idx := GridIndex(col, row, size)
			c, r := GridCell(idx, size)
			if c != col || r != row {
				t.Errorf("GridCell(GridIndex(%d, %d)) = (%d, %d)", col, row, c, r)
			}
		}
	}
}

func TestColorThemeNextWraps(t *testing.T) {
	themes := ColorThemes()
	last := themes[len(themes)-1]
	if got := last.Next(); got.ID != themes[0].ID {
		t.Errorf("Next() of last theme = %q, expected %q", got.ID, themes[0].ID)
	}
	if got := ColorThemeByID("TEAL"); got.ID != "teal" {
		t.Errorf("ColorThemeByID(TEAL) = %q, expected teal", got.ID)
	}
	if got := ColorThemeByID("nope"); got.ID != ColorBlue.ID {
		t.Errorf("unknown id should fall back to blue, got %q", got.ID)
	}
}
