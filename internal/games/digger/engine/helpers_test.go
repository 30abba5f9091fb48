package engine_test

import (
	"testing"

	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
)

// buildWorld creates a world from interior rows.
// '@' marks the player start, ' ' is blank, any other rune becomes a block.
// Rows must all have the same length.
func buildWorld(t *testing.T, gs engine.GlyphSet, rows ...string) *engine.World {
	t.Helper()

	h := len(rows)
	w := len([]rune(rows[0]))
	board, err := engine.NewBoard(w, h, gs)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	var blocks []*engine.Block
	start := engine.NoTarget
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			t.Fatalf("row %d has length %d, expected %d", y, len(runes), w)
		}
		for x, r := range runes {
			loc := engine.L(x+1, y+1)
			switch engine.Glyph(r) {
			case gs.Player:
				start = loc
			case gs.Blank:
			default:
				blocks = append(blocks, engine.NewBlock(loc, engine.Glyph(r)))
			}
		}
	}
	if start == engine.NoTarget {
		t.Fatal("layout has no player")
	}

	world, err := engine.NewWorld(board, blocks, start)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return world
}

// twoStageGlyphs returns the default glyphs with a two-material palette.
func twoStageGlyphs() engine.GlyphSet {
	gs := engine.DefaultGlyphSet()
	gs.Palette = []engine.Glyph{'X', 'x'}
	return gs
}

// countGlyph counts cells on the board holding g.
func countGlyph(b *engine.Board, g engine.Glyph) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Get(engine.L(x, y)) == g {
				n++
			}
		}
	}
	return n
}

// mustStep runs one tick and fails the test on error.
func mustStep(t *testing.T, w *engine.World, d engine.Delta) engine.TickReport {
	t.Helper()
	report, err := w.Step(d)
	if err != nil {
		t.Fatalf("Step(%+v) failed: %v", d, err)
	}
	return report
}

// seqRand replays a fixed sequence of draws, cycling when exhausted.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}
