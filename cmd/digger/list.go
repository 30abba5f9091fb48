package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/games/digger/levels"
	"github.com/vovakirdan/tui-digger/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List variants and builtin levels",
	Long:  `Shows the registered game variants and the builtin levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	all, err := levels.Builtin().LoadAll()
	if err == nil && len(all) > 0 {
		fmt.Println()
		fmt.Println("Levels:")
		fmt.Println()
		for _, lvl := range all {
			fmt.Printf("  %-12s %s (%dx%d)\n", lvl.ID, lvl.Name, lvl.Width(), lvl.Height())
		}
	}

	fmt.Println()
	fmt.Println("Run 'digger play --variant <id>' or 'digger play --level <level>'.")
}
