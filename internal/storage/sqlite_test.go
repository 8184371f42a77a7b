package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestProfileStartingCoins(t *testing.T) {
	store := openTestStore(t)
	p := store.Profile("alice", 100)

	coins, err := p.LoadCurrency()
	if err != nil {
		t.Fatalf("LoadCurrency() failed: %v", err)
	}
	if coins != 100 {
		t.Errorf("Expected starting balance 100, got %d", coins)
	}
}

func TestProfileSpendCurrency(t *testing.T) {
	store := openTestStore(t)
	p := store.Profile("alice", 25)

	ok, err := p.SpendCurrency(20)
	if err != nil || !ok {
		t.Fatalf("SpendCurrency(20) = %v, %v; expected success", ok, err)
	}

	ok, err = p.SpendCurrency(20)
	if err != nil {
		t.Fatalf("SpendCurrency() failed: %v", err)
	}
	if ok {
		t.Error("SpendCurrency(20) with balance 5 should fail")
	}

	coins, _ := p.LoadCurrency()
	if coins != 5 {
		t.Errorf("Expected balance 5 after failed spend, got %d", coins)
	}

	if err := p.AddCurrency(40); err != nil {
		t.Fatalf("AddCurrency() failed: %v", err)
	}
	coins, _ = p.LoadCurrency()
	if coins != 45 {
		t.Errorf("Expected balance 45, got %d", coins)
	}
}

func TestProfilesAreIsolated(t *testing.T) {
	store := openTestStore(t)
	alice := store.Profile("alice", 100)
	bob := store.Profile("bob", 100)

	if err := alice.SaveCurrency(7); err != nil {
		t.Fatalf("SaveCurrency() failed: %v", err)
	}
	coins, _ := bob.LoadCurrency()
	if coins != 100 {
		t.Errorf("bob's balance changed to %d", coins)
	}
}

func TestProfileLevels(t *testing.T) {
	store := openTestStore(t)
	p := store.Profile("alice", 100)
	hidden := matcher.ProgressKey{Theme: matcher.ThemeNumbers}
	visible := matcher.ProgressKey{Theme: matcher.ThemeNumbers, AlwaysVisible: true}

	level, err := p.LoadLevel(hidden)
	if err != nil {
		t.Fatalf("LoadLevel() failed: %v", err)
	}
	if level != 0 {
		t.Errorf("Expected 0 for missing level, got %d", level)
	}

	if err := p.SaveLevel(hidden, 3); err != nil {
		t.Fatalf("SaveLevel() failed: %v", err)
	}
	if err := p.SaveLevel(hidden, 4); err != nil {
		t.Fatalf("SaveLevel() overwrite failed: %v", err)
	}

	level, _ = p.LoadLevel(hidden)
	if level != 4 {
		t.Errorf("Expected level 4, got %d", level)
	}
	level, _ = p.LoadLevel(visible)
	if level != 0 {
		t.Errorf("visible mode should be tracked separately, got %d", level)
	}

	entries, err := store.ProfileProgress("alice")
	if err != nil {
		t.Fatalf("ProfileProgress() failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ProgressKey != hidden.String() {
		t.Errorf("unexpected progress entries: %+v", entries)
	}
}

func TestProfileFlags(t *testing.T) {
	store := openTestStore(t)
	p := store.Profile("alice", 100)

	removed, err := p.LoadAdsRemoved()
	if err != nil || removed {
		t.Fatalf("LoadAdsRemoved() = %v, %v; expected false", removed, err)
	}
	if err := p.SaveAdsRemoved(true); err != nil {
		t.Fatalf("SaveAdsRemoved() failed: %v", err)
	}
	removed, _ = p.LoadAdsRemoved()
	if !removed {
		t.Error("ads flag was not saved")
	}

	last, err := p.LoadLastDailyReward()
	if err != nil || !last.IsZero() {
		t.Fatalf("LoadLastDailyReward() = %v, %v; expected zero time", last, err)
	}
	now := time.Unix(1_700_000_000, 0)
	if err := p.SaveLastDailyReward(now); err != nil {
		t.Fatalf("SaveLastDailyReward() failed: %v", err)
	}
	last, _ = p.LoadLastDailyReward()
	if !last.Equal(now) {
		t.Errorf("Expected %v, got %v", now, last)
	}
}

func TestStoreScores(t *testing.T) {
	store := openTestStore(t)
	key := matcher.ProgressKey{Theme: matcher.ThemeAlphabet}

	for i, score := range []int{50, 200, 100} {
		res := matcher.LevelResult{Key: key, Level: i + 1, Score: score}
		if err := store.Profile("alice", 100).RecordResult(res); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("bob", matcher.LevelResult{Key: matcher.ProgressKey{Theme: matcher.ThemeNumbers}, Level: 1, Score: 999}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores(key.String(), 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	high, err := store.HighScore(key.String())
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("Expected high score 200, got %d", high)
	}

	high, _ = store.HighScore("unknown")
	if high != 0 {
		t.Errorf("Expected 0 for unknown key, got %d", high)
	}
}
