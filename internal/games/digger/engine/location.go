// Package engine provides the grid simulation for the Digger game:
// board, blocks, player and the per-tick state machine.
// This package is UI-agnostic and deterministic.
package engine

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when offset arithmetic would leave the
// valid coordinate range.
var ErrOutOfBounds = errors.New("engine: location out of bounds")

// ErrInvalidDelta is returned when a movement delta is not one of the
// four unit directions.
var ErrInvalidDelta = errors.New("engine: delta is not a unit direction")

// Location is a cell position on the board, border included.
// X increases to the right, Y increases downward (screen coordinates).
type Location struct {
	X int
	Y int
}

// L is a convenience constructor for Location.
func L(x, y int) Location {
	return Location{X: x, Y: y}
}

// String returns a string representation of the location.
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Delta is a signed offset applied to a Location.
type Delta struct {
	DX int
	DY int
}

// IsZero reports whether the delta does not move at all.
func (d Delta) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// IsUnit reports whether the delta is exactly one step along one axis.
func (d Delta) IsUnit() bool {
	return abs(d.DX)+abs(d.DY) == 1
}

// Offset returns the location moved by delta.
// Fails with ErrOutOfBounds if either coordinate would go negative;
// the upper bound is the board's concern.
func (l Location) Offset(d Delta) (Location, error) {
	x, y := l.X+d.DX, l.Y+d.DY
	if x < 0 || y < 0 {
		return l, fmt.Errorf("%w: %v%+d%+d", ErrOutOfBounds, l, d.DX, d.DY)
	}
	return Location{X: x, Y: y}, nil
}

// Below returns the location one row down.
func (l Location) Below() Location {
	return Location{X: l.X, Y: l.Y + 1}
}

// Manhattan returns the Manhattan distance to another location.
func (l Location) Manhattan(other Location) int {
	return abs(l.X-other.X) + abs(l.Y-other.Y)
}

// Dir is one of the four movement directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Dirs lists all directions in clockwise order starting from Up.
var Dirs = [...]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the unit offset for one step in this direction.
// Up decreases Y, Down increases Y.
func (d Dir) Delta() Delta {
	switch d {
	case DirUp:
		return Delta{DX: 0, DY: -1}
	case DirRight:
		return Delta{DX: 1, DY: 0}
	case DirDown:
		return Delta{DX: 0, DY: 1}
	case DirLeft:
		return Delta{DX: -1, DY: 0}
	default:
		return Delta{}
	}
}

// ParseDir maps a single move letter (U, D, L, R, case-insensitive) to a direction.
func ParseDir(r rune) (Dir, bool) {
	switch r {
	case 'U', 'u':
		return DirUp, true
	case 'R', 'r':
		return DirRight, true
	case 'D', 'd':
		return DirDown, true
	case 'L', 'l':
		return DirLeft, true
	default:
		return 0, false
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
