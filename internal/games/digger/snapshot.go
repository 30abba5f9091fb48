package digger

// Snapshot captures the game state for determinism tests and headless runs.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Level     string // Level ID, empty for generated boards
	PlayerX   int
	PlayerY   int
	Blocks    int
	Collected int
	Remaining int
	LastMove  string // Outcome of the most recent movement intent
	Board     string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Variant:   string(g.variant),
		Collected: g.collected,
		LastMove:  g.last.Move.Outcome.String(),
	}
	if g.level != nil {
		snap.Level = g.level.ID
	}
	if g.world == nil {
		return snap
	}

	p := g.world.Player().Loc
	snap.Tick = g.world.Tick()
	snap.PlayerX = p.X
	snap.PlayerY = p.Y
	snap.Blocks = g.world.Registry().Len()
	snap.Remaining = g.world.Remaining()
	snap.Board = g.world.Board().String()
	return snap
}
