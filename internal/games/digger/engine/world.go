package engine

import "fmt"

// MoveOutcome describes what a movement intent did.
type MoveOutcome uint8

const (
	MoveNone      MoveOutcome = iota // No movement requested
	MoveWalked                       // Player entered a PassThrough cell
	MoveDigTarget                    // Refused by Solid; dig-target recorded
	MoveBlocked                      // Refused by Resource or Wall
)

// String returns the outcome name.
func (m MoveOutcome) String() string {
	switch m {
	case MoveNone:
		return "none"
	case MoveWalked:
		return "walked"
	case MoveDigTarget:
		return "dig"
	case MoveBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// MoveResult records the effect of one movement intent.
type MoveResult struct {
	Outcome MoveOutcome
	From    Location
	To      Location // Player location after the move
	Target  Location // Cell the move aimed at
	Physics Physics  // Classification of the target cell
}

// TickReport lists what happened during one simulation step.
type TickReport struct {
	Tick      uint64
	Move      MoveResult
	Worn      []Location // Solids dug one material step
	Dug       []Location // Solids dug through to debris
	Collected []Location // Resources collected under the player
	Settled   []Location // New locations of debris that fell one row
}

// World owns the board, the block registry and the player.
// The registry is the source of truth for blocks; the board is re-derived
// from it and the player at the end of every tick.
type World struct {
	board  *Board
	reg    *Registry
	player *Player
	cls    *Classifier
	tick   uint64
}

// NewWorld assembles a world from a board, its blocks and the player start.
// Blocks must lie inside the walls, one per cell. The player may not start
// inside a solid block.
func NewWorld(board *Board, blocks []*Block, start Location) (*World, error) {
	cls, err := NewClassifier(board.Glyphs())
	if err != nil {
		return nil, err
	}

	w := &World{
		board: board,
		reg:   NewRegistry(),
		cls:   cls,
	}
	for _, b := range blocks {
		if err := w.AddBlock(b); err != nil {
			return nil, err
		}
	}

	if !board.IsInterior(start) {
		return nil, fmt.Errorf("%w: player start %v is not an interior cell", ErrOutOfBounds, start)
	}
	if b, ok := w.reg.At(start); ok && cls.Classify(b.Glyph).Class == ClassSolid {
		return nil, fmt.Errorf("%w: player start %v is inside %q", ErrCellOccupied, start, b.Glyph)
	}
	w.player = NewPlayer(start, board.Glyphs().Player)

	w.Reconcile()
	return w, nil
}

// AddBlock registers a block. It must lie on an interior cell not held by another block.
func (w *World) AddBlock(b *Block) error {
	if !w.board.IsInterior(b.Loc) {
		return fmt.Errorf("%w: block at %v is not an interior cell", ErrOutOfBounds, b.Loc)
	}
	return w.reg.Add(b)
}

// Board returns the board projection.
func (w *World) Board() *Board { return w.board }

// Registry returns the block registry.
func (w *World) Registry() *Registry { return w.reg }

// Player returns the player.
func (w *World) Player() *Player { return w.player }

// Classifier returns the glyph classifier.
func (w *World) Classifier() *Classifier { return w.cls }

// Tick returns the number of completed steps.
func (w *World) Tick() uint64 { return w.tick }

// beneath returns what the board shows at l without the player overlay.
func (w *World) beneath(l Location) Glyph {
	if b, ok := w.reg.At(l); ok {
		return b.Glyph
	}
	return w.board.Glyphs().Blank
}

// MovePlayer applies one movement intent.
// PassThrough targets are entered; Solid targets become the dig-target;
// Resource and Wall targets refuse the move. A zero delta does nothing.
func (w *World) MovePlayer(d Delta) (MoveResult, error) {
	from := w.player.Loc
	res := MoveResult{Outcome: MoveNone, From: from, To: from, Target: from}
	if d.IsZero() {
		return res, nil
	}
	if !d.IsUnit() {
		return res, fmt.Errorf("%w: (%d,%d)", ErrInvalidDelta, d.DX, d.DY)
	}

	to, err := from.Offset(d)
	if err != nil {
		return res, err
	}
	if !w.board.InBounds(to) {
		return res, fmt.Errorf("%w: %v", ErrOutOfBounds, to)
	}

	phys := w.cls.Classify(w.board.Get(to))
	res.Target = to
	res.Physics = phys

	switch phys.Class {
	case ClassPassThrough:
		w.board.Set(from, w.beneath(from))
		w.player.Loc = to
		w.board.Set(to, w.player.Glyph)
		res.Outcome = MoveWalked
		res.To = to
	case ClassSolid:
		w.player.SetDigTarget(to)
		res.Outcome = MoveDigTarget
	default:
		res.Outcome = MoveBlocked
	}
	return res, nil
}

// Advance runs the block rules once over every block, in registry order.
// For each block the first matching rule applies:
//  1. a resource under the player is collected (becomes debris)
//  2. the solid at the dig-target wears one material step
//  3. debris falls one row if the cell below is blank
//  4. otherwise the block is unchanged
//
// The dig-target is consumed at the start of the pass whether or not a
// block matches it.
func (w *World) Advance() TickReport {
	var report TickReport
	target, digging := w.player.TakeDigTarget()
	dug := w.board.Glyphs().Dug

	for _, b := range w.reg.blocks {
		phys := w.cls.Classify(b.Glyph)

		switch {
		case b.Loc == w.player.Loc && phys.Class == ClassResource:
			b.Glyph = dug
			report.Collected = append(report.Collected, b.Loc)

		case digging && b.Loc == target && phys.Class == ClassSolid:
			next, _ := w.cls.Wear(b.Glyph)
			b.Glyph = next
			if next == dug {
				report.Dug = append(report.Dug, b.Loc)
			} else {
				report.Worn = append(report.Worn, b.Loc)
			}

		case b.Glyph == dug:
			if w.settle(b) {
				report.Settled = append(report.Settled, b.Loc)
			}
		}

		w.board.Set(b.Loc, b.Glyph)
	}
	return report
}

// settle moves a debris block down one row when the cell below is blank:
// inside the walls, free of blocks and not under the player.
func (w *World) settle(b *Block) bool {
	below := b.Loc.Below()
	if !w.board.IsInterior(below) {
		return false
	}
	if w.reg.Occupied(below) || below == w.player.Loc {
		return false
	}
	if w.board.Get(below) != w.board.Glyphs().Blank {
		return false
	}

	from := b.Loc
	if err := w.reg.Move(b, below); err != nil {
		return false
	}
	w.board.Set(from, w.board.Glyphs().Blank)
	return true
}

// Reconcile re-derives the board from the registry and the player:
// interior cleared to blank, every block written, player overlaid last.
func (w *World) Reconcile() {
	w.board.ClearInterior()
	for _, b := range w.reg.blocks {
		w.board.Set(b.Loc, b.Glyph)
	}
	w.board.Set(w.player.Loc, w.player.Glyph)
}

// Step runs one tick: apply the movement intent, advance every block,
// then reconcile the board. A zero delta advances without moving.
// On error nothing is advanced.
func (w *World) Step(d Delta) (TickReport, error) {
	move, err := w.MovePlayer(d)
	if err != nil {
		return TickReport{Tick: w.tick, Move: move}, err
	}

	w.tick++
	report := w.Advance()
	report.Tick = w.tick
	report.Move = move

	w.Reconcile()
	return report, nil
}

// StepDir is Step for one of the four directions.
func (w *World) StepDir(d Dir) (TickReport, error) {
	return w.Step(d.Delta())
}

// Remaining returns how many resources are still uncollected.
func (w *World) Remaining() int {
	return w.reg.Count(w.cls, ClassResource)
}
