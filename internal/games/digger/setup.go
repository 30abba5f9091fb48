package digger

import (
	"context"
	"fmt"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vovakirdan/tui-digger/internal/config"
	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
	"github.com/vovakirdan/tui-digger/internal/games/digger/levels"
	"github.com/vovakirdan/tui-digger/internal/telemetry"
)

// Variant selects how boards are generated.
type Variant string

const (
	// VariantRich draws material glyphs and resources using the config odds.
	VariantRich Variant = "digger"
	// VariantClassic is the simplest generator: about 4 in 11 cells hold
	// material, and there are no resources.
	VariantClassic Variant = "digger_classic"
)

// Setup describes one world to build.
type Setup struct {
	Variant Variant
	Config  config.DiggerConfig
	Level   *levels.Level // Fixed layout; nil generates a random board
	Seed    int64
	Width   int // Interior columns for generated boards
	Height  int // Interior rows for generated boards
}

// GlyphSet converts configured glyphs into an engine glyph set.
func GlyphSet(g config.DiggerGlyphs) (engine.GlyphSet, error) {
	gs := engine.GlyphSet{
		Resource: engine.Glyph(config.Rune(g.Resource)),
		Dug:      engine.Glyph(config.Rune(g.Dug)),
		Blank:    engine.Glyph(config.Rune(g.Blank)),
		Player:   engine.Glyph(config.Rune(g.Player)),
		WallH:    engine.Glyph(config.Rune(g.WallH)),
		WallV:    engine.Glyph(config.Rune(g.WallV)),
	}
	for _, r := range g.Palette {
		gs.Palette = append(gs.Palette, engine.Glyph(r))
	}
	if err := gs.Validate(); err != nil {
		return engine.GlyphSet{}, err
	}
	return gs, nil
}

// GenParams returns generator odds for a variant.
func GenParams(v Variant, gs engine.GlyphSet, b config.DiggerBoard) engine.GenParams {
	p := engine.GenParams{
		Glyphs:        gs,
		BlockChance:   b.BlockChance,
		ChanceOutOf:   b.ChanceOutOf,
		ResourceOneIn: b.ResourceOneIn,
	}
	if v == VariantClassic {
		p.BlockChance, p.ChanceOutOf, p.ResourceOneIn = 4, 11, 0
	}
	return p
}

// BuildWorld creates the world described by s. Generation runs inside a
// "digger.generate" span.
func BuildWorld(ctx context.Context, s Setup) (*engine.World, error) {
	tracer := telemetry.Tracer("digger")
	_, span := tracer.Start(ctx, "digger.generate")
	defer span.End()

	gs, err := GlyphSet(s.Config.Glyphs)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	var w *engine.World
	if s.Level != nil {
		span.SetAttributes(attribute.String("level", s.Level.ID))
		w, err = s.Level.World(gs)
	} else {
		w, err = generateWorld(s, gs)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("variant", string(s.Variant)),
		attribute.Int64("seed", s.Seed),
		attribute.Int("width", w.Board().InteriorWidth()),
		attribute.Int("height", w.Board().InteriorHeight()),
		attribute.Int("blocks", w.Registry().Len()),
		attribute.Int("resources", w.Remaining()),
	)
	return w, nil
}

func generateWorld(s Setup, gs engine.GlyphSet) (*engine.World, error) {
	width, height := max(s.Width, 1), max(s.Height, 1)
	spawn := engine.SpawnLocation(width, height)

	params := GenParams(s.Variant, gs, s.Config.Board)
	params.Keep = []engine.Location{spawn}

	rng := rand.New(rand.NewSource(s.Seed))
	board, blocks, err := engine.Generate(width, height, rng, params)
	if err != nil {
		return nil, fmt.Errorf("generate %dx%d board: %w", width, height, err)
	}
	return engine.NewWorld(board, blocks, spawn)
}
