// Package levels loads hand-authored digger boards from YAML files.
//
// A level lists its interior rows as strings. Each character is one cell:
//
//	1-9  material, 1 being the heaviest entry of the palette
//	$    resource
//	.    debris
//	@    player start (exactly one)
//	' '  blank
//
// The engine does not depend on this package.
package levels

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
)

// ErrInvalidLevel is returned for layouts that cannot become a world.
var ErrInvalidLevel = errors.New("invalid level")

// Layout tokens.
const (
	TokenBlank    = ' '
	TokenResource = '$'
	TokenDebris   = '.'
	TokenStart    = '@'
)

// Level is a parsed level file.
type Level struct {
	ID       string
	Name     string
	Rows     []string
	Metadata map[string]string
	FilePath string
}

type yamlLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Parse decodes a YAML level and checks its layout.
func Parse(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	lvl := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Rows:     yl.Rows,
		Metadata: yl.Metadata,
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

// Width returns the number of interior columns.
func (l Level) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return utf8.RuneCountInString(l.Rows[0])
}

// Height returns the number of interior rows.
func (l Level) Height() int {
	return len(l.Rows)
}

// Validate checks the layout shape and tokens independently of any palette.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if l.Height() == 0 || l.Width() == 0 {
		return fmt.Errorf("%w: %s has no cells", ErrInvalidLevel, l.ID)
	}

	starts := 0
	for y, row := range l.Rows {
		if n := utf8.RuneCountInString(row); n != l.Width() {
			return fmt.Errorf("%w: %s row %d has %d cells, expected %d", ErrInvalidLevel, l.ID, y, n, l.Width())
		}
		for x, r := range []rune(row) {
			switch {
			case r == TokenStart:
				starts++
			case r == TokenBlank, r == TokenResource, r == TokenDebris:
			case r >= '1' && r <= '9':
			default:
				return fmt.Errorf("%w: %s cell (%d,%d) has unknown token %q", ErrInvalidLevel, l.ID, x, y, r)
			}
		}
	}
	if starts != 1 {
		return fmt.Errorf("%w: %s has %d player starts, expected 1", ErrInvalidLevel, l.ID, starts)
	}
	return nil
}

// Build creates a board, its blocks and the player start for a glyph set.
// Material tokens must index into the palette.
func (l Level) Build(gs engine.GlyphSet) (*engine.Board, []*engine.Block, engine.Location, error) {
	board, err := engine.NewBoard(l.Width(), l.Height(), gs)
	if err != nil {
		return nil, nil, engine.NoTarget, err
	}

	var blocks []*engine.Block
	start := engine.NoTarget
	for y, row := range l.Rows {
		for x, r := range []rune(row) {
			loc := engine.L(x+1, y+1)
			switch {
			case r == TokenStart:
				start = loc
			case r == TokenBlank:
			case r == TokenResource:
				blocks = append(blocks, engine.NewBlock(loc, gs.Resource))
			case r == TokenDebris:
				blocks = append(blocks, engine.NewBlock(loc, gs.Dug))
			default:
				idx := int(r - '1')
				if idx >= len(gs.Palette) {
					return nil, nil, engine.NoTarget, fmt.Errorf("%w: %s cell (%d,%d) uses material %c but the palette has %d",
						ErrInvalidLevel, l.ID, x, y, r, len(gs.Palette))
				}
				blocks = append(blocks, engine.NewBlock(loc, gs.Palette[idx]))
			}
		}
	}
	return board, blocks, start, nil
}

// World builds a ready-to-step world from the level.
func (l Level) World(gs engine.GlyphSet) (*engine.World, error) {
	board, blocks, start, err := l.Build(gs)
	if err != nil {
		return nil, err
	}
	w, err := engine.NewWorld(board, blocks, start)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return w, nil
}

// String renders the layout rows.
func (l Level) String() string {
	return strings.Join(l.Rows, "\n")
}
