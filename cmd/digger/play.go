package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/platform/tui"
	"github.com/vovakirdan/tui-digger/internal/registry"
)

var flagVariant string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play digger",
	Long: `Start playing in the terminal. Every key press is one turn.

Controls:
  Arrows/WASD/hjkl - Move or dig
  Space/.          - Wait a turn
  R                - New board
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer blocks, more resources
  normal - Config odds unchanged
  hard   - Denser blocks, fewer resources

Examples:
  digger play
  digger play --variant digger_classic
  digger play --difficulty hard --seed 42
  digger play --level cave-in
  digger play --level ./my-level.yaml
  digger play --config ./my-digger.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariant, "variant", "digger", "Variant to play: digger, digger_classic")
}

// terminalConfig returns a runtime config sized to the terminal, or 80x24.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(flagVariant)
	if err != nil {
		return fmt.Errorf("%w (run 'digger list' to see available variants)", err)
	}

	if err := tui.Run(game, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
