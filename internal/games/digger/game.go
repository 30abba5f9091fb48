// Package digger adapts the grid engine to the platform's Game interface.
package digger

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vovakirdan/tui-digger/internal/config"
	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
	"github.com/vovakirdan/tui-digger/internal/games/digger/levels"
	"github.com/vovakirdan/tui-digger/internal/registry"
	"github.com/vovakirdan/tui-digger/internal/telemetry"
)

// Screen rows used outside the board: title line and status line.
const hudHeight = 2

// Package-level settings applied on Reset, set by the CLI before games are created.
var (
	configPath       string
	difficultyPreset string
	levelRef         string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLevel selects a fixed level by builtin ID or YAML path. Empty generates boards.
func SetLevel(ref string) {
	levelRef = ref
}

// LoadConfig loads the config and applies a difficulty preset. An empty
// preset uses the difficulty named in the config file.
func LoadConfig(path, preset string) (config.DiggerConfig, error) {
	cfg, err := config.LoadDigger(path)
	if err != nil {
		return config.DefaultDiggerConfig(), err
	}
	if preset == "" {
		preset = string(cfg.Difficulty)
	}
	p, err := config.ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	config.ApplyDiggerPreset(&cfg, p)
	return cfg, nil
}

// Game is the digger game.
type Game struct {
	variant  Variant
	levelRef string // Overrides the package-level level when set
	rt       core.RuntimeConfig
	cfg      config.DiggerConfig
	level    *levels.Level
	world    *engine.World
	colors   colorTable

	collected int
	total     int
	last      engine.TickReport
	message   string
	err       error // Setup failure shown instead of a board
}

// New creates the rich digger game.
func New() *Game {
	return &Game{variant: VariantRich}
}

// NewClassic creates the classic variant.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

func init() {
	registry.Register(string(VariantRich), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Digger (Classic)"
	}
	return "Digger"
}

// UseLevel selects a fixed level for this instance only.
func (g *Game) UseLevel(ref string) {
	g.levelRef = ref
}

// Reset loads settings and builds a new world.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.collected = 0
	g.last = engine.TickReport{}
	g.message = ""
	g.err = nil
	g.world = nil

	cfg, err := LoadConfig(configPath, difficultyPreset)
	if err != nil {
		g.message = fmt.Sprintf("config: %v", err)
	}
	g.cfg = cfg
	g.colors = newColorTable(cfg.Colors)

	ref := g.levelRef
	if ref == "" {
		ref = levelRef
	}
	g.level = nil
	if ref != "" {
		lvl, err := levels.Resolve(ref)
		if err != nil {
			g.err = err
			return
		}
		g.level = &lvl
	}

	w, h := g.boardSize()
	world, err := BuildWorld(context.Background(), Setup{
		Variant: g.variant,
		Config:  cfg,
		Level:   g.level,
		Seed:    rt.Seed,
		Width:   w,
		Height:  h,
	})
	if err != nil {
		g.err = err
		return
	}
	g.world = world
	g.total = world.Remaining()
	if g.message == "" && g.level != nil {
		g.message = g.level.Metadata["hint"]
	}
}

// boardSize returns the interior size for generated boards: the configured
// size, or whatever fits on screen below the HUD.
func (g *Game) boardSize() (int, int) {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	if w <= 0 {
		w = g.rt.ScreenW - 2
	}
	if h <= 0 {
		h = g.rt.ScreenH - hudHeight - 2
	}
	return max(w, 1), max(h, 1)
}

// directionOf picks the movement delta for a frame. Wait gives a zero delta.
// ok is false when the frame holds nothing that advances the simulation.
func directionOf(in core.InputFrame) (engine.Delta, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp.Delta(), true
	case in.Has(core.ActionDown):
		return engine.DirDown.Delta(), true
	case in.Has(core.ActionLeft):
		return engine.DirLeft.Delta(), true
	case in.Has(core.ActionRight):
		return engine.DirRight.Delta(), true
	case in.Has(core.ActionWait):
		return engine.Delta{}, true
	default:
		return engine.Delta{}, false
	}
}

// Step runs one simulation tick for a movement or wait action.
// Restart rebuilds the world; anything else leaves the game untouched.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Reset(g.rt)
		return core.StepResult{State: g.State(), Message: g.message}
	}
	if g.world == nil {
		return core.StepResult{State: g.State(), Message: g.message}
	}

	d, ok := directionOf(in)
	if !ok {
		return core.StepResult{State: g.State(), Message: g.message}
	}

	_, span := telemetry.Tracer("digger").Start(context.Background(), "digger.tick")
	defer span.End()

	report, err := g.world.Step(d)
	if err != nil {
		span.RecordError(err)
		g.message = err.Error()
		return core.StepResult{State: g.State(), Message: g.message}
	}

	g.last = report
	g.collected += len(report.Collected)
	g.message = describe(report)

	span.SetAttributes(
		attribute.Int64("tick", int64(report.Tick)),
		attribute.String("move", report.Move.Outcome.String()),
		attribute.Int("worn", len(report.Worn)),
		attribute.Int("dug", len(report.Dug)),
		attribute.Int("collected", len(report.Collected)),
		attribute.Int("settled", len(report.Settled)),
	)

	return core.StepResult{State: g.State(), Message: g.message}
}

// describe summarizes a tick for the status line.
func describe(r engine.TickReport) string {
	switch {
	case len(r.Collected) > 0:
		return "Collected a resource!"
	case len(r.Dug) > 0:
		return "Dug through."
	case len(r.Worn) > 0:
		return "Digging..."
	case r.Move.Outcome == engine.MoveBlocked:
		if r.Move.Physics.Class == engine.ClassResource {
			return "A resource. Too hard to dig."
		}
		return "Solid wall."
	case len(r.Settled) > 0:
		return "Debris shifts."
	default:
		return ""
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	remaining := g.world.Remaining()
	return core.GameState{
		Tick:      g.world.Tick(),
		Collected: g.collected,
		Remaining: remaining,
		Cleared:   g.total > 0 && remaining == 0,
	}
}

// World returns the underlying world, or nil if setup failed.
func (g *Game) World() *engine.World {
	return g.world
}

// Err returns the setup error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}
