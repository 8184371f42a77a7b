package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-matcher/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all tile themes",
	Long:  `Shows every theme tiles can draw their faces from.`,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	themes := registry.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Symbols")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "-------")

	for _, t := range themes {
		fmt.Printf("  %-*s  %-20s  %d\n", maxIDLen, t.ID, t.Title, t.Symbols)
	}

	fmt.Println()
	fmt.Println("Run 'matcher play <id>' to play a theme.")
}
