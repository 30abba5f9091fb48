package engine_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
)

func TestNewBoardWalls(t *testing.T) {
	b, err := engine.NewBoard(3, 2, engine.DefaultGlyphSet())
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	expected := strings.Join([]string{
		"#####",
		"|   |",
		"|   |",
		"#####",
	}, "\n")
	if b.String() != expected {
		t.Errorf("board =\n%s\nexpected\n%s", b.String(), expected)
	}

	if b.Width() != 5 || b.Height() != 4 {
		t.Errorf("size = %dx%d, expected 5x4", b.Width(), b.Height())
	}
	if b.InteriorWidth() != 3 || b.InteriorHeight() != 2 {
		t.Errorf("interior = %dx%d, expected 3x2", b.InteriorWidth(), b.InteriorHeight())
	}
}

func TestNewBoardInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, -1}} {
		_, err := engine.NewBoard(size[0], size[1], engine.DefaultGlyphSet())
		if !errors.Is(err, engine.ErrInvalidSize) {
			t.Errorf("NewBoard(%d, %d) error = %v, expected ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestBoardBorder(t *testing.T) {
	b, err := engine.NewBoard(4, 4, engine.DefaultGlyphSet())
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	tests := []struct {
		name     string
		loc      engine.Location
		border   bool
		interior bool
	}{
		{"top-left corner", engine.L(0, 0), true, false},
		{"bottom-right corner", engine.L(5, 5), true, false},
		{"left wall", engine.L(0, 3), true, false},
		{"first interior", engine.L(1, 1), false, true},
		{"last interior", engine.L(4, 4), false, true},
		{"outside", engine.L(6, 2), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.IsBorder(tc.loc); got != tc.border {
				t.Errorf("IsBorder(%v) = %v, expected %v", tc.loc, got, tc.border)
			}
			if got := b.IsInterior(tc.loc); got != tc.interior {
				t.Errorf("IsInterior(%v) = %v, expected %v", tc.loc, got, tc.interior)
			}
		})
	}
}

func TestBoardGetSet(t *testing.T) {
	b, err := engine.NewBoard(2, 2, engine.DefaultGlyphSet())
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	b.Set(engine.L(2, 1), '$')
	if g := b.Get(engine.L(2, 1)); g != '$' {
		t.Errorf("Get = %q, expected '$'", g)
	}

	b.ClearInterior()
	if g := b.Get(engine.L(2, 1)); g != ' ' {
		t.Errorf("after ClearInterior Get = %q, expected blank", g)
	}
	if g := b.Get(engine.L(0, 0)); g != '#' {
		t.Errorf("ClearInterior touched wall: %q", g)
	}
}

func TestBoardInvalidAddressPanics(t *testing.T) {
	b, err := engine.NewBoard(2, 2, engine.DefaultGlyphSet())
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	for _, loc := range []engine.Location{engine.L(4, 0), engine.L(0, 4), engine.L(-1, 1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%v) should panic", loc)
				}
			}()
			b.Get(loc)
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Set(%v) should panic", loc)
				}
			}()
			b.Set(loc, '.')
		}()
	}
}

func TestBoardCloneEqual(t *testing.T) {
	b, err := engine.NewBoard(3, 3, engine.DefaultGlyphSet())
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c.Set(engine.L(1, 1), '$')
	if b.Equal(c) {
		t.Error("modifying clone should not affect original")
	}
}

func TestGenerateReproducibility(t *testing.T) {
	params := engine.DefaultGenParams()
	params.ResourceOneIn = 5

	b1, blocks1, err := engine.Generate(16, 16, rand.New(rand.NewSource(12345)), params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b2, blocks2, err := engine.Generate(16, 16, rand.New(rand.NewSource(12345)), params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !b1.Equal(b2) {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s", b1, b2)
	}
	if len(blocks1) != len(blocks2) {
		t.Fatalf("block count mismatch: %d != %d", len(blocks1), len(blocks2))
	}
	for i := range blocks1 {
		if *blocks1[i] != *blocks2[i] {
			t.Errorf("block %d mismatch: %+v != %+v", i, *blocks1[i], *blocks2[i])
		}
	}
}

func TestGenerateInvariants(t *testing.T) {
	params := engine.DefaultGenParams()
	params.ResourceOneIn = 4
	spawn := engine.SpawnLocation(12, 10)
	params.Keep = []engine.Location{spawn}

	board, blocks, err := engine.Generate(12, 10, rand.New(rand.NewSource(7)), params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	c, err := engine.NewClassifier(params.Glyphs)
	if err != nil {
		t.Fatalf("NewClassifier failed: %v", err)
	}

	byLoc := make(map[engine.Location]*engine.Block)
	for _, b := range blocks {
		if _, dup := byLoc[b.Loc]; dup {
			t.Errorf("two blocks at %v", b.Loc)
		}
		byLoc[b.Loc] = b
	}

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			loc := engine.L(x, y)
			phys := c.Classify(board.Get(loc))

			if board.IsBorder(loc) {
				if phys.Class != engine.ClassWall {
					t.Errorf("border cell %v classifies as %v", loc, phys.Class)
				}
				continue
			}
			if phys.Class == engine.ClassWall {
				t.Errorf("wall glyph inside the board at %v", loc)
			}

			b, ok := byLoc[loc]
			switch {
			case ok && b.Glyph != board.Get(loc):
				t.Errorf("block at %v has %q but board shows %q", loc, b.Glyph, board.Get(loc))
			case !ok && phys.Class != engine.ClassPassThrough:
				t.Errorf("cell %v is %v without a block", loc, phys.Class)
			}
		}
	}

	if _, ok := byLoc[spawn]; ok {
		t.Errorf("kept cell %v received a block", spawn)
	}
}

func TestGenerateOdds(t *testing.T) {
	t.Run("never", func(t *testing.T) {
		params := engine.DefaultGenParams()
		params.BlockChance = 0
		_, blocks, err := engine.Generate(8, 8, rand.New(rand.NewSource(1)), params)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(blocks) != 0 {
			t.Errorf("expected no blocks, got %d", len(blocks))
		}
	})

	t.Run("always resources", func(t *testing.T) {
		params := engine.DefaultGenParams()
		params.BlockChance = params.ChanceOutOf
		params.ResourceOneIn = 1
		_, blocks, err := engine.Generate(3, 3, &seqRand{vals: []int{0}}, params)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(blocks) != 9 {
			t.Fatalf("expected 9 blocks, got %d", len(blocks))
		}
		for _, b := range blocks {
			if b.Glyph != params.Glyphs.Resource {
				t.Errorf("block at %v is %q, expected resource", b.Loc, b.Glyph)
			}
		}
	})

	t.Run("invalid chance", func(t *testing.T) {
		params := engine.DefaultGenParams()
		params.BlockChance = 12
		if _, _, err := engine.Generate(3, 3, &seqRand{vals: []int{0}}, params); err == nil {
			t.Error("expected error for chance above 1")
		}
	})
}

func TestSpawnLocation(t *testing.T) {
	tests := []struct {
		w, h int
		want engine.Location
	}{
		{16, 16, engine.L(8, 2)},
		{1, 1, engine.L(1, 1)},
		{5, 1, engine.L(2, 1)},
	}
	for _, tc := range tests {
		if got := engine.SpawnLocation(tc.w, tc.h); got != tc.want {
			t.Errorf("SpawnLocation(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.want)
		}
	}
}
