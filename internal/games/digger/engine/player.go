package engine

// NoTarget is the sentinel dig-target meaning "nothing to dig".
var NoTarget = Location{X: -1, Y: -1}

// Player is the digger: a position, a display glyph and a pending dig-target.
type Player struct {
	Loc       Location
	Glyph     Glyph
	digTarget Location
}

// NewPlayer creates a player at loc with no pending dig-target.
func NewPlayer(loc Location, g Glyph) *Player {
	return &Player{
		Loc:       loc,
		Glyph:     g,
		digTarget: NoTarget,
	}
}

// DigTarget returns the pending dig-target, or NoTarget.
func (p *Player) DigTarget() Location {
	return p.digTarget
}

// HasDigTarget reports whether a dig-target is pending.
func (p *Player) HasDigTarget() bool {
	return p.digTarget != NoTarget
}

// SetDigTarget records the location to dig on the next advance.
func (p *Player) SetDigTarget(l Location) {
	p.digTarget = l
}

// TakeDigTarget returns the pending dig-target and resets it to NoTarget.
func (p *Player) TakeDigTarget() (Location, bool) {
	t := p.digTarget
	p.digTarget = NoTarget
	return t, t != NoTarget
}
