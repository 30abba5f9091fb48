package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSize is returned for boards without at least one interior cell.
var ErrInvalidSize = errors.New("engine: board needs at least one interior cell")

// Board is the walled grid of cell glyphs.
// Cells are stored in row-major order: index = y*Width() + x.
// The outermost ring of cells is the wall border.
type Board struct {
	w, h   int // interior dimensions
	cells  []Glyph
	glyphs GlyphSet
}

// NewBoard creates a board with a w x h blank interior surrounded by walls.
func NewBoard(w, h int, gs GlyphSet) (*Board, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, w, h)
	}
	if err := gs.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		w:      w,
		h:      h,
		cells:  make([]Glyph, (w+2)*(h+2)),
		glyphs: gs,
	}
	b.glyphs.Palette = append([]Glyph(nil), gs.Palette...)

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			loc := L(x, y)
			switch {
			case y == 0 || y == b.Height()-1:
				b.cells[b.index(loc)] = gs.WallH
			case x == 0 || x == b.Width()-1:
				b.cells[b.index(loc)] = gs.WallV
			default:
				b.cells[b.index(loc)] = gs.Blank
			}
		}
	}
	return b, nil
}

// Width returns the full board width including both side walls.
func (b *Board) Width() int { return b.w + 2 }

// Height returns the full board height including top and bottom walls.
func (b *Board) Height() int { return b.h + 2 }

// InteriorWidth returns the number of playable columns.
func (b *Board) InteriorWidth() int { return b.w }

// InteriorHeight returns the number of playable rows.
func (b *Board) InteriorHeight() int { return b.h }

// Glyphs returns the glyph set used for walls and blanks.
func (b *Board) Glyphs() GlyphSet { return b.glyphs }

func (b *Board) index(l Location) int {
	return l.Y*b.Width() + l.X
}

// InBounds returns true if the location is on the board, border included.
func (b *Board) InBounds(l Location) bool {
	return l.X >= 0 && l.X < b.Width() && l.Y >= 0 && l.Y < b.Height()
}

// IsBorder returns true if the location is one of the wall cells.
func (b *Board) IsBorder(l Location) bool {
	return b.InBounds(l) &&
		(l.X == 0 || l.Y == 0 || l.X == b.Width()-1 || l.Y == b.Height()-1)
}

// IsInterior returns true if the location is a playable cell.
func (b *Board) IsInterior(l Location) bool {
	return b.InBounds(l) && !b.IsBorder(l)
}

// mustInBounds panics on an invalid address. Every location handed to the
// board comes from generation or checked offsets, so a miss is a bookkeeping bug.
func (b *Board) mustInBounds(l Location) {
	if !b.InBounds(l) {
		panic(fmt.Sprintf("engine: cell %v outside %dx%d board", l, b.Width(), b.Height()))
	}
}

// Get returns the glyph at the location. Panics if out of range.
func (b *Board) Get(l Location) Glyph {
	b.mustInBounds(l)
	return b.cells[b.index(l)]
}

// Set writes the glyph at the location. Panics if out of range.
func (b *Board) Set(l Location, g Glyph) {
	b.mustInBounds(l)
	b.cells[b.index(l)] = g
}

// ClearInterior resets every interior cell to blank.
func (b *Board) ClearInterior() {
	for y := 1; y <= b.h; y++ {
		for x := 1; x <= b.w; x++ {
			b.cells[b.index(L(x, y))] = b.glyphs.Blank
		}
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Glyph, len(b.cells))
	copy(cells, b.cells)
	c := *b
	c.cells = cells
	return &c
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.w != other.w || b.h != other.h {
		return false
	}
	for i, g := range b.cells {
		if g != other.cells[i] {
			return false
		}
	}
	return true
}

// Row returns row y as a string.
func (b *Board) Row(y int) string {
	b.mustInBounds(L(0, y))
	start := y * b.Width()
	runes := make([]rune, b.Width())
	for i, g := range b.cells[start : start+b.Width()] {
		runes[i] = rune(g)
	}
	return string(runes)
}

// Rows returns every row top to bottom.
func (b *Board) Rows() []string {
	rows := make([]string, b.Height())
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return rows
}

// String dumps the board, one row per line.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
