package engine

import (
	"errors"
	"fmt"
)

// ErrCellOccupied is returned when a second block would share a location.
var ErrCellOccupied = errors.New("engine: cell already holds a block")

// Block is a diggable or collectible entity overlaid on the board.
// Blocks are never removed: once dug they stay as debris.
type Block struct {
	Loc   Location
	Glyph Glyph
}

// NewBlock creates a block at the given location.
func NewBlock(loc Location, g Glyph) *Block {
	return &Block{Loc: loc, Glyph: g}
}

// Registry holds every block, at most one per location.
// Iteration follows insertion order so each tick visits blocks in a stable order.
type Registry struct {
	blocks []*Block
	byLoc  map[Location]*Block
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLoc: make(map[Location]*Block),
	}
}

// Add inserts a block. Fails with ErrCellOccupied if its location is taken.
func (r *Registry) Add(b *Block) error {
	if other, ok := r.byLoc[b.Loc]; ok {
		return fmt.Errorf("%w: %v holds %q", ErrCellOccupied, b.Loc, other.Glyph)
	}
	r.blocks = append(r.blocks, b)
	r.byLoc[b.Loc] = b
	return nil
}

// At returns the block at the location, if any.
func (r *Registry) At(l Location) (*Block, bool) {
	b, ok := r.byLoc[l]
	return b, ok
}

// Occupied reports whether any block sits at the location.
func (r *Registry) Occupied(l Location) bool {
	_, ok := r.byLoc[l]
	return ok
}

// Move relocates a registered block, keeping the location index consistent.
func (r *Registry) Move(b *Block, to Location) error {
	if cur, ok := r.byLoc[b.Loc]; !ok || cur != b {
		return fmt.Errorf("engine: block at %v is not registered", b.Loc)
	}
	if other, ok := r.byLoc[to]; ok && other != b {
		return fmt.Errorf("%w: %v holds %q", ErrCellOccupied, to, other.Glyph)
	}
	delete(r.byLoc, b.Loc)
	b.Loc = to
	r.byLoc[to] = b
	return nil
}

// Blocks returns the blocks in iteration order.
// The slice is a copy; the blocks themselves are shared.
func (r *Registry) Blocks() []*Block {
	out := make([]*Block, len(r.blocks))
	copy(out, r.blocks)
	return out
}

// Len returns the number of blocks.
func (r *Registry) Len() int {
	return len(r.blocks)
}

// Count returns how many blocks currently classify as the given class.
func (r *Registry) Count(c *Classifier, class Class) int {
	n := 0
	for _, b := range r.blocks {
		if c.Classify(b.Glyph).Class == class {
			n++
		}
	}
	return n
}
