package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant or level interactively",
	Long: `Opens a menu listing the variants and builtin levels.
Esc or B returns from a game to the menu.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := tui.RunSession(terminalConfig()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
