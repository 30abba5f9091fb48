// digger is a turn-based terminal digging game.
//
// Usage:
//
//	digger list              - List available variants
//	digger play              - Play in the terminal
//	digger menu              - Pick a variant or level interactively
//	digger board             - Print a generated board
//	digger run --moves UURR  - Apply moves headlessly and print the result
//	digger serve             - Start SSH server for remote play
//	digger config            - Print the default config YAML
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible boards
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard
//	--level <id|path>     - Builtin level ID or level YAML file
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/games/digger"
	"github.com/vovakirdan/tui-digger/internal/telemetry"
)

// LogLevelEnv sets the charm log level (debug, info, warn, error).
const LogLevelEnv = "DIGGER_LOG_LEVEL"

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLevel      string

	logger *log.Logger
)

func main() {
	os.Exit(run())
}

func run() int {
	logger = newLogger()

	// Env vars may also be set directly, so a missing .env is not an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn(".env not loaded", "error", err)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, continuing without traces", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Error("telemetry shutdown", "error", err)
			}
		}()
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// newLogger builds the CLI logger. The level comes from DIGGER_LOG_LEVEL.
func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "digger",
	})
	if v := os.Getenv(LogLevelEnv); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			l.Warn("unknown log level", "env", LogLevelEnv, "value", v)
		} else {
			l.SetLevel(lvl)
		}
	}
	return l
}

var rootCmd = &cobra.Command{
	Use:   "digger",
	Short: "Digger - dig through a grid of blocks in your terminal",
	Long: `Digger is a turn-based grid game. Walk through open space, push into
blocks to wear them down, and watch the debris settle.

Available commands:
  list     - Show available variants
  play     - Play a variant directly
  menu     - Interactive variant and level picker
  board    - Print a generated board
  run      - Apply a move string without a terminal UI
  serve    - Start SSH server for remote play
  config   - Print the default config YAML

Examples:
  digger play
  digger play --variant digger_classic --seed 42
  digger play --level vault
  digger run --moves DDRRRL --seed 7
  digger serve --ssh :2222`,
	PersistentPreRunE: applySettings,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// applySettings hands the global flags to the game package before any
// game is created.
func applySettings(_ *cobra.Command, _ []string) error {
	digger.SetConfigPath(flagConfig)
	digger.SetDifficultyPreset(flagDifficulty)
	digger.SetLevel(flagLevel)
	return nil
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Builtin level ID or path to a level YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
