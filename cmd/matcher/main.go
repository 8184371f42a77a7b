// matcher is a tile-matching memory game for the terminal.
//
// Usage:
//
//	matcher themes               - List available themes
//	matcher play [theme]         - Play (theme picker when no theme is given)
//	matcher serve                - Start SSH server for remote play
//	matcher scores [theme]       - Show level results
//	matcher wallet               - Show coins, progress and rewards
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.matcher/matcher.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--profile <name>      - Player profile (default: local)
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-matcher/internal/config"
	"github.com/vovakirdan/tui-matcher/internal/core"
	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
	"github.com/vovakirdan/tui-matcher/internal/storage"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagProfile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matcher",
	Short: "Matcher - a tile-matching memory game for your terminal",
	Long: `Matcher is a concentration game: flip tiles two at a time and
clear the board by finding every pair before the clock runs out.

Available commands:
  themes   - Show all tile themes
  play     - Play a session
  serve    - Start SSH server for remote play
  scores   - View level results
  wallet   - Coins, progress and daily reward

Examples:
  matcher themes
  matcher play
  matcher play alphabet --view-all
  matcher serve --ssh :2222
  matcher scores numbers`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.matcher/matcher.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", core.DefaultProfile, "Player profile")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(walletCmd)
}

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig() (config.MatcherConfig, error) {
	cfg, err := config.LoadMatcher(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyMatcherPreset(&cfg, config.ParsePreset(flagDifficulty))
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config after %s preset: %w", flagDifficulty, err)
	}
	return cfg, nil
}

// newLogger returns a logger writing to w at the level chosen by --verbose.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

// fileLogger logs to ~/.matcher/matcher.log so the alternate screen stays clean.
// It returns a discarding logger when the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".matcher")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "matcher.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// session bundles an engine with the store it persists to.
type session struct {
	engine *matcher.Engine
	store  *storage.Store // nil when running in memory
}

func (s session) Close() {
	s.engine.Close()
	if s.store != nil {
		s.store.Close()
	}
}

// openSession opens the database and creates an engine for --profile.
// Without a database the session keeps its state in memory.
func openSession(cfg config.MatcherConfig, logger *log.Logger) session {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var persistence matcher.Persistence
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, progress will not persist", "error", err)
		persistence = storage.NewMemory(cfg.Rewards.StartingCoins)
	} else {
		persistence = store.Profile(flagProfile, cfg.Rewards.StartingCoins)
	}

	engine := matcher.New(matcher.Options{
		Config: cfg,
		Store:  persistence,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger.With("profile", flagProfile),
	})
	return session{engine: engine, store: store}
}
