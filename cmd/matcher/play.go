package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-matcher/internal/core"
	"github.com/vovakirdan/tui-matcher/internal/games/matcher"
	"github.com/vovakirdan/tui-matcher/internal/platform/tui"
)

var (
	flagViewAll bool
	flagColor   string
)

var playCmd = &cobra.Command{
	Use:   "play [theme]",
	Short: "Play a session",
	Long: `Start a session. Without a theme you pick one from the menu.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Flip tile
  H            - Hint (free while hints last, then paid)
  X / T        - Buy shuffle / extra time
  B            - Bonus break (coins, time or a hint)
  N / R        - Next level / restart
  M            - Back to themes
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More hints, longer reveal, more time per level
  normal - Default settings
  hard   - One hint, short reveal, less time
  fixed  - Config values as written

Examples:
  matcher play
  matcher play numbers
  matcher play alphabet --view-all --color teal
  matcher play symbols --difficulty hard
  matcher play --profile alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagViewAll, "view-all", false, "Keep tiles face-up (no memorizing)")
	playCmd.Flags().StringVar(&flagColor, "color", core.ColorBlue.ID, "Board color theme")
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 1 && !matcher.Theme(args[0]).Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'matcher themes' to see available themes.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Profile: flagProfile,
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	sess := openSession(cfg, logger)
	defer sess.Close()

	if len(args) == 1 {
		sess.engine.SelectTheme(matcher.Theme(args[0]), flagViewAll, core.ColorThemeByID(flagColor))
	}

	if err := tui.Run(sess.engine, cfg, rc); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		sess.Close()
		os.Exit(1)
	}
}
