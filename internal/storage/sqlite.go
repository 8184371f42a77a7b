// Package storage provides SQLite-based persistence for wallets, level progress
// and level results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single completed level record.
type ScoreEntry struct {
	ID          int64
	Profile     string
	ProgressKey string
	Level       int
	Score       int
	Reward      int
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer keeps read-check-write wallet updates serialized.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS wallets (
			profile TEXT PRIMARY KEY,
			coins INTEGER NOT NULL,
			ads_removed INTEGER NOT NULL DEFAULT 0,
			last_daily_reward INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS progress (
			profile TEXT NOT NULL,
			progress_key TEXT NOT NULL,
			level INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, progress_key)
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			progress_key TEXT NOT NULL,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			reward INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_key ON scores(progress_key);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(progress_key, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Profile returns the persistence view for one player profile.
// startingCoins is the balance a profile gets the first time it is touched.
func (s *Store) Profile(name string, startingCoins int) *Profile {
	return &Profile{store: s, name: name, startingCoins: startingCoins}
}

// ensureWallet creates the wallet row for a profile if missing.
func (s *Store) ensureWallet(profile string, startingCoins int) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO wallets (profile, coins) VALUES (?, ?)",
		profile, startingCoins,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot create wallet: %w", err)
	}
	return nil
}

// SaveScore records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(profile string, result matcher.LevelResult) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO scores (profile, progress_key, level, score, reward) VALUES (?, ?, ?, ?, ?)",
		profile, result.Key.String(), result.Level, result.Score, result.Reward,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N level results for a progress key across all profiles.
// Results are ordered by score descending.
func (s *Store) TopScores(progressKey string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, progress_key, level, score, reward, created_at
		 FROM scores
		 WHERE progress_key = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		progressKey, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.ProgressKey, &e.Level, &e.Score, &e.Reward, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest level score for the given progress key.
// Returns 0 if no scores exist.
func (s *Store) HighScore(progressKey string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE progress_key = ?",
		progressKey,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ProgressEntry is one saved level for a profile.
type ProgressEntry struct {
	ProgressKey string
	Level       int
}

// ProfileProgress lists every saved level for a profile, ordered by key.
func (s *Store) ProfileProgress(profile string) ([]ProgressEntry, error) {
	rows, err := s.db.Query(
		"SELECT progress_key, level FROM progress WHERE profile = ? ORDER BY progress_key",
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var entries []ProgressEntry
	for rows.Next() {
		var e ProgressEntry
		if err := rows.Scan(&e.ProgressKey, &e.Level); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Profile is the per-player persistence view handed to the matcher engine.
type Profile struct {
	store         *Store
	name          string
	startingCoins int
}

// Ensure Profile implements the engine's collaborator interfaces.
var (
	_ matcher.Persistence    = (*Profile)(nil)
	_ matcher.Wallet         = (*Profile)(nil)
	_ matcher.ResultRecorder = (*Profile)(nil)
)

// Name returns the profile name.
func (p *Profile) Name() string {
	return p.name
}

// LoadCurrency returns the coin balance.
func (p *Profile) LoadCurrency() (int, error) {
	if err := p.store.ensureWallet(p.name, p.startingCoins); err != nil {
		return 0, err
	}

	var coins int
	err := p.store.db.QueryRow("SELECT coins FROM wallets WHERE profile = ?", p.name).Scan(&coins)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load coins: %w", err)
	}
	return coins, nil
}

// SaveCurrency overwrites the coin balance.
func (p *Profile) SaveCurrency(coins int) error {
	if err := p.store.ensureWallet(p.name, p.startingCoins); err != nil {
		return err
	}
	_, err := p.store.db.Exec("UPDATE wallets SET coins = ? WHERE profile = ?", coins, p.name)
	if err != nil {
		return fmt.Errorf("storage: cannot save coins: %w", err)
	}
	return nil
}

// SpendCurrency debits amount only if the balance covers it.
// The check and the debit happen in one statement.
func (p *Profile) SpendCurrency(amount int) (bool, error) {
	if err := p.store.ensureWallet(p.name, p.startingCoins); err != nil {
		return false, err
	}
	res, err := p.store.db.Exec(
		"UPDATE wallets SET coins = coins - ? WHERE profile = ? AND coins >= ?",
		amount, p.name, amount,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot spend coins: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	return n == 1, nil
}

// AddCurrency credits amount.
func (p *Profile) AddCurrency(amount int) error {
	if err := p.store.ensureWallet(p.name, p.startingCoins); err != nil {
		return err
	}
	_, err := p.store.db.Exec("UPDATE wallets SET coins = coins + ? WHERE profile = ?", amount, p.name)
	if err != nil {
		return fmt.Errorf("storage: cannot add coins: %w", err)
	}
	return nil
}

// LoadLevel returns the saved level for key, or 0 if none is stored.
func (p *Profile) LoadLevel(key matcher.ProgressKey) (int, error) {
	var level int
	err := p.store.db.QueryRow(
		"SELECT level FROM progress WHERE profile = ? AND progress_key = ?",
		p.name, key.String(),
	).Scan(&level)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load level: %w", err)
	}
	return level, nil
}

// SaveLevel stores the level for key.
func (p *Profile) SaveLevel(key matcher.ProgressKey, level int) error {
	_, err := p.store.db.Exec(
		`INSERT INTO progress (profile, progress_key, level) VALUES (?, ?, ?)
		 ON CONFLICT(profile, progress_key) DO UPDATE SET level = excluded.level, updated_at = CURRENT_TIMESTAMP`,
		p.name, key.String(), level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level: %w", err)
	}
	return nil
}

// LoadAdsRemoved reports whether the ad-free unlock was purchased.
func (p *Profile) LoadAdsRemoved() (bool, error) {
	if err := p.store.ensureWallet(p.name, p.startingCoins); err != nil {
		return false, err
	}
	var removed bool
	err := p.store.db.QueryRow("SELECT ads_removed FROM wallets WHERE profile = ?", p.name).Scan(&removed)
	if err != nil {
		return false, fmt.Errorf("storage: cannot load ads flag: %w", err)
	}
	return removed, nil
}

// SaveAdsRemoved stores the ad-free flag.
func (p *Profile) SaveAdsRemoved(removed bool) error {
	if err := p.store.ensureWallet(p.name, p.startingCoins); err != nil {
		return err
	}
	_, err := p.store.db.Exec("UPDATE wallets SET ads_removed = ? WHERE profile = ?", removed, p.name)
	if err != nil {
		return fmt.Errorf("storage: cannot save ads flag: %w", err)
	}
	return nil
}

// LoadLastDailyReward returns when the daily reward was last claimed.
// The zero time means never.
func (p *Profile) LoadLastDailyReward() (time.Time, error) {
	if err := p.store.ensureWallet(p.name, p.startingCoins); err != nil {
		return time.Time{}, err
	}
	var unix int64
	err := p.store.db.QueryRow("SELECT last_daily_reward FROM wallets WHERE profile = ?", p.name).Scan(&unix)
	if err != nil {
		return time.Time{}, fmt.Errorf("storage: cannot load daily reward: %w", err)
	}
	if unix == 0 {
		return time.Time{}, nil
	}
	return time.Unix(unix, 0), nil
}

// SaveLastDailyReward stores the daily reward claim time.
func (p *Profile) SaveLastDailyReward(t time.Time) error {
	if err := p.store.ensureWallet(p.name, p.startingCoins); err != nil {
		return err
	}
	_, err := p.store.db.Exec("UPDATE wallets SET last_daily_reward = ? WHERE profile = ?", t.Unix(), p.name)
	if err != nil {
		return fmt.Errorf("storage: cannot save daily reward: %w", err)
	}
	return nil
}

// RecordResult implements matcher.ResultRecorder.
func (p *Profile) RecordResult(result matcher.LevelResult) error {
	_, err := p.store.SaveScore(p.name, result)
	return err
}
