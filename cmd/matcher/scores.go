package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
	"github.com/vovakirdan/tui-matcher/internal/platform/tui"
	"github.com/vovakirdan/tui-matcher/internal/storage"
)

var flagScoresViewAll bool

var scoresCmd = &cobra.Command{
	Use:   "scores [theme]",
	Short: "Show level results",
	Long: `Display the top 10 level results for a theme and mode.
Without a theme, opens the interactive results board.

Examples:
  matcher scores
  matcher scores numbers
  matcher scores alphabet --view-all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresViewAll, "view-all", false, "Show the view-all track instead of hidden")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, err := tui.RunScoreboard(store, flagProfile, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		return
	}

	theme := matcher.Theme(args[0])
	if !theme.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'matcher themes' to see available themes.")
		store.Close()
		os.Exit(1)
	}
	key := matcher.ProgressKey{Theme: theme, AlwaysVisible: flagScoresViewAll}

	scores, err := store.TopScores(key.String(), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	mode := "hidden"
	if key.AlwaysVisible {
		mode = "view all"
	}
	fmt.Printf("Level Results - %s (%s)\n", theme.Title(), mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No levels cleared yet.")
		fmt.Println()
		fmt.Printf("Play 'matcher play %s' to set the first result!\n", theme)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-7s  %-5s  %s\n", "Rank", "Player", "Level", "Score", "Coins", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-7s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	for i, e := range scores {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-5d  %-7d  %-5d  %s\n", i+1, e.Profile, e.Level, e.Score, e.Reward, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(key.String()); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
