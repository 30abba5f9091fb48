package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
)

// ErrBadMove is returned for a character that is not a move letter.
var ErrBadMove = errors.New("invalid move")

var flagMoves string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply a move string headlessly",
	Long: `Builds a board, applies one tick per move letter and prints the final board.

Move letters:
  U D L R   - Up, Down, Left, Right (case-insensitive)
  .         - Wait one tick

Each tick is logged at debug level; set DIGGER_LOG_LEVEL=debug to see them.

Examples:
  digger run --moves DDDRRR --seed 7
  DIGGER_LOG_LEVEL=debug digger run --moves "RRRR...." --level first-dig`,
	Args: cobra.NoArgs,
	RunE: runMovesCmd,
}

func init() {
	runCmd.Flags().StringVar(&flagMoves, "moves", "", "Move letters to apply (U, D, L, R, '.')")
	addHeadlessFlags(runCmd)
}

// parseMoves converts a move string to deltas. Whitespace is ignored.
func parseMoves(moves string) ([]engine.Delta, error) {
	var out []engine.Delta
	for i, r := range moves {
		switch {
		case r == '.':
			out = append(out, engine.Delta{})
		case strings.ContainsRune(" \t\n", r):
		default:
			d, ok := engine.ParseDir(r)
			if !ok {
				return nil, fmt.Errorf("%w %q at offset %d", ErrBadMove, r, i)
			}
			out = append(out, d.Delta())
		}
	}
	return out, nil
}

// applyMoves steps the world once per delta, logging every tick.
func applyMoves(w *engine.World, deltas []engine.Delta, l *log.Logger) (collected int, err error) {
	for _, d := range deltas {
		report, err := w.Step(d)
		if err != nil {
			return collected, err
		}
		collected += len(report.Collected)
		l.Debug("tick",
			"n", report.Tick,
			"move", report.Move.Outcome,
			"player", w.Player().Loc,
			"worn", len(report.Worn),
			"dug", len(report.Dug),
			"collected", len(report.Collected),
			"settled", len(report.Settled),
		)
	}
	return collected, nil
}

func runMovesCmd(cmd *cobra.Command, _ []string) error {
	deltas, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	w, _, err := buildHeadless(cmd.Context())
	if err != nil {
		return err
	}

	collected, err := applyMoves(w, deltas, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, w.Board().String())
	_, err = fmt.Fprintf(out, "tick %d  player %s  collected %d  remaining %d\n",
		w.Tick(), w.Player().Loc, collected, w.Remaining())
	return err
}
