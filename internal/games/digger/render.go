package digger

import (
	"fmt"

	"github.com/vovakirdan/tui-digger/internal/config"
	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
)

// colorTable holds the display color per highlighted glyph class.
type colorTable struct {
	wall, resource, dug, player core.Color
}

func newColorTable(c config.DiggerColors) colorTable {
	pick := func(name string) core.Color {
		col, _ := core.ParseColor(name)
		return col
	}
	return colorTable{
		wall:     pick(c.Wall),
		resource: pick(c.Resource),
		dug:      pick(c.Dug),
		player:   pick(c.Player),
	}
}

// colorOf returns the display color of a board glyph. Walls, resources,
// debris and the player are highlighted; everything else uses the default.
func (t colorTable) colorOf(g engine.Glyph, gs engine.GlyphSet) core.Color {
	switch g {
	case gs.WallH, gs.WallV:
		return t.wall
	case gs.Resource:
		return t.resource
	case gs.Dug:
		return t.dug
	case gs.Player:
		return t.player
	default:
		return core.ColorDefault
	}
}

// Render draws the HUD, the board and the status line.
// Boards larger than the screen scroll to keep the player visible.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Could not build the board:")
		dst.DrawTextCentered(dst.Height()/2, g.err.Error())
		dst.DrawTextCentered(dst.Height()/2+2, "Press Q to quit")
		return
	}
	if g.world == nil {
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst, core.NewRect(0, 1, dst.Width(), dst.Height()-hudHeight))

	if g.message != "" {
		dst.DrawTextColored(1, dst.Height()-1, g.message, core.ColorGray)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" %s  Tick %d", g.Title(), st.Tick)
	if g.total > 0 {
		hud += fmt.Sprintf("  $ %d/%d", st.Collected, g.total)
	}
	if g.level != nil {
		hud += "  " + g.level.Name
	}
	if st.Cleared {
		hud += "  ALL RESOURCES COLLECTED"
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	board := g.world.Board()
	gs := board.Glyphs()
	focus := g.world.Player().Loc

	offX := core.Viewport(focus.X, area.W, board.Width())
	offY := core.Viewport(focus.Y, area.H, board.Height())

	for sy := area.Y; sy < area.Bottom(); sy++ {
		for sx := area.X; sx < area.Right(); sx++ {
			loc := engine.L(sx-area.X+offX, sy-area.Y+offY)
			if !board.InBounds(loc) {
				continue
			}
			glyph := board.Get(loc)
			dst.SetColored(sx, sy, rune(glyph), g.colors.colorOf(glyph, gs))
		}
	}
}
