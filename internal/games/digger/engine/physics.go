package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidGlyphSet is returned when a glyph set has duplicates or an empty palette.
var ErrInvalidGlyphSet = errors.New("engine: invalid glyph set")

// Glyph is the single character held by a board cell.
type Glyph rune

// Default glyphs.
const (
	GlyphBlank    Glyph = ' '
	GlyphDug      Glyph = '.'
	GlyphResource Glyph = '$'
	GlyphPlayer   Glyph = '@'
	GlyphWallH    Glyph = '#'
	GlyphWallV    Glyph = '|'
)

// Class is the physical behavior of a cell.
type Class uint8

const (
	// ClassPassThrough cells are walkable: blank, dug trail, or anything unrecognized.
	ClassPassThrough Class = iota
	// ClassSolid cells block movement and can be dug.
	ClassSolid
	// ClassResource cells block movement and are collected when stood on.
	ClassResource
	// ClassWall cells are the permanent border.
	ClassWall
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassPassThrough:
		return "PassThrough"
	case ClassSolid:
		return "Solid"
	case ClassResource:
		return "Resource"
	case ClassWall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Physics is the classification of a glyph.
type Physics struct {
	Class Class
	Glyph Glyph
}

// Walkable reports whether the player may enter the cell.
func (p Physics) Walkable() bool {
	return p.Class == ClassPassThrough
}

// Diggable reports whether a refused move into the cell sets a dig-target.
func (p Physics) Diggable() bool {
	return p.Class == ClassSolid
}

// GlyphSet names every glyph the simulation distinguishes.
type GlyphSet struct {
	// Palette lists solid materials from heaviest to lightest.
	// Digging advances one step along it; digging the last one yields Dug.
	Palette  []Glyph
	Resource Glyph
	Dug      Glyph
	Blank    Glyph
	Player   Glyph
	WallH    Glyph
	WallV    Glyph
}

// DefaultGlyphSet returns the standard glyphs with a four-stage palette.
func DefaultGlyphSet() GlyphSet {
	return GlyphSet{
		Palette:  []Glyph{'█', '▓', '▒', '░'},
		Resource: GlyphResource,
		Dug:      GlyphDug,
		Blank:    GlyphBlank,
		Player:   GlyphPlayer,
		WallH:    GlyphWallH,
		WallV:    GlyphWallV,
	}
}

// Validate checks that the palette is non-empty and that no glyph is used twice.
// The two wall glyphs may coincide.
func (gs GlyphSet) Validate() error {
	if len(gs.Palette) == 0 {
		return fmt.Errorf("%w: empty palette", ErrInvalidGlyphSet)
	}

	seen := make(map[Glyph]string)
	check := func(name string, g Glyph) error {
		if prev, ok := seen[g]; ok {
			return fmt.Errorf("%w: %q used for both %s and %s", ErrInvalidGlyphSet, g, prev, name)
		}
		seen[g] = name
		return nil
	}

	for i, g := range gs.Palette {
		if err := check(fmt.Sprintf("palette[%d]", i), g); err != nil {
			return err
		}
	}
	named := []struct {
		name string
		g    Glyph
	}{
		{"resource", gs.Resource},
		{"dug", gs.Dug},
		{"blank", gs.Blank},
		{"player", gs.Player},
		{"horizontal wall", gs.WallH},
	}
	for _, n := range named {
		if err := check(n.name, n.g); err != nil {
			return err
		}
	}
	if gs.WallV != gs.WallH {
		if err := check("vertical wall", gs.WallV); err != nil {
			return err
		}
	}
	return nil
}

// Classifier maps glyphs to their physics class.
// It is built once from a GlyphSet and never changes afterwards.
type Classifier struct {
	glyphs GlyphSet
	table  map[Glyph]Class
	wear   map[Glyph]Glyph
}

// NewClassifier builds a classifier for the given glyph set.
func NewClassifier(gs GlyphSet) (*Classifier, error) {
	if err := gs.Validate(); err != nil {
		return nil, err
	}

	c := &Classifier{
		glyphs: gs,
		table:  make(map[Glyph]Class, len(gs.Palette)+3),
		wear:   make(map[Glyph]Glyph, len(gs.Palette)),
	}
	c.glyphs.Palette = append([]Glyph(nil), gs.Palette...)

	for i, g := range gs.Palette {
		c.table[g] = ClassSolid
		if i+1 < len(gs.Palette) {
			c.wear[g] = gs.Palette[i+1]
		} else {
			c.wear[g] = gs.Dug
		}
	}
	c.table[gs.Resource] = ClassResource
	c.table[gs.WallH] = ClassWall
	c.table[gs.WallV] = ClassWall

	return c, nil
}

// Classify returns the physics of a glyph. Unrecognized glyphs are PassThrough.
func (c *Classifier) Classify(g Glyph) Physics {
	class, ok := c.table[g]
	if !ok {
		class = ClassPassThrough
	}
	return Physics{Class: class, Glyph: g}
}

// Wear returns the glyph one dig step after g.
// Returns false if g is not a solid material.
func (c *Classifier) Wear(g Glyph) (Glyph, bool) {
	next, ok := c.wear[g]
	return next, ok
}

// Glyphs returns the glyph set the classifier was built from.
func (c *Classifier) Glyphs() GlyphSet {
	gs := c.glyphs
	gs.Palette = append([]Glyph(nil), c.glyphs.Palette...)
	return gs
}

// IsDug reports whether g is the terminal dug glyph.
func (c *Classifier) IsDug(g Glyph) bool {
	return g == c.glyphs.Dug
}
