package engine

import "fmt"

// Rand is the randomness source for generation.
// *math/rand.Rand satisfies it; tests may pass a scripted source.
type Rand interface {
	Intn(n int) int
}

// GenParams configures board generation.
type GenParams struct {
	Glyphs GlyphSet

	// A cell gets a block when Intn(ChanceOutOf) < BlockChance.
	BlockChance int
	ChanceOutOf int

	// ResourceOneIn makes one in N blocks a resource. 0 disables resources.
	ResourceOneIn int

	// Keep lists interior cells that stay blank (e.g. the player spawn).
	Keep []Location
}

// DefaultGenParams returns the classic 4-in-11 block density without resources.
func DefaultGenParams() GenParams {
	return GenParams{
		Glyphs:      DefaultGlyphSet(),
		BlockChance: 4,
		ChanceOutOf: 11,
	}
}

// Generate builds a walled w x h board and the blocks placed on it.
// Every interior cell draws independently; blank cells get no block.
// Draws happen row by row, left to right, so a given seed always yields
// the same layout.
func Generate(w, h int, rng Rand, p GenParams) (*Board, []*Block, error) {
	if p.ChanceOutOf <= 0 || p.BlockChance < 0 || p.BlockChance > p.ChanceOutOf {
		return nil, nil, fmt.Errorf("engine: block chance %d in %d is not a probability", p.BlockChance, p.ChanceOutOf)
	}
	if p.ResourceOneIn < 0 {
		return nil, nil, fmt.Errorf("engine: resource one-in %d is negative", p.ResourceOneIn)
	}

	board, err := NewBoard(w, h, p.Glyphs)
	if err != nil {
		return nil, nil, err
	}

	keep := make(map[Location]bool, len(p.Keep))
	for _, l := range p.Keep {
		keep[l] = true
	}

	var blocks []*Block
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			loc := L(x, y)
			if keep[loc] {
				continue
			}
			if rng.Intn(p.ChanceOutOf) >= p.BlockChance {
				continue
			}

			g := p.Glyphs.Palette[rng.Intn(len(p.Glyphs.Palette))]
			if p.ResourceOneIn > 0 && rng.Intn(p.ResourceOneIn) == 0 {
				g = p.Glyphs.Resource
			}
			board.Set(loc, g)
			blocks = append(blocks, NewBlock(loc, g))
		}
	}
	return board, blocks, nil
}

// SpawnLocation returns the default player start for a w x h interior:
// the middle column, second row (first row on one-row boards).
func SpawnLocation(w, h int) Location {
	x := w / 2
	if x < 1 {
		x = 1
	}
	y := 2
	if h < 2 {
		y = 1
	}
	return L(x, y)
}
