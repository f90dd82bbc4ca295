package sokoban

import (
	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/i18n"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	lay := g.layout(dst)
	if lay.Tile == 0 {
		g.renderOverlay(dst, i18n.T(i18n.MsgTooSmall), "")
		return
	}

	g.renderGrid(dst, lay)

	if g.level.IsVictory() {
		g.renderOverlay(dst,
			i18n.T(i18n.MsgVictory),
			i18n.T(i18n.MsgSolvedIn, g.stats.Moves),
			i18n.T(i18n.MsgAfterWin))
	}
}

// layout fits the level below the HUD. Horizontal units are cellW columns wide.
func (g *Game) layout(dst *platformcore.Screen) core.Layout {
	return core.ComputeLayout(
		g.level.Width(), g.level.Height(),
		dst.Width()/g.cellW, dst.Height()-g.hudHeight,
	)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " " + g.Title() +
		" | " + i18n.T(i18n.MsgMoves, g.stats.Moves) +
		" | " + i18n.T(i18n.MsgPushes, g.stats.Pushes) +
		" | " + i18n.T(i18n.MsgTargets, g.level.CoveredTargets(), len(g.level.Targets()))
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	// Separator
	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
	}
}

// renderGrid draws each cell as a filled block of its glyph.
func (g *Game) renderGrid(dst *platformcore.Screen, lay core.Layout) {
	for y := 0; y < g.level.Height(); y++ {
		for x := 0; x < g.level.Width(); x++ {
			c := core.C(x, y)
			ox, oy := lay.Origin(c)
			r := platformcore.NewRect(ox*g.cellW, g.hudHeight+oy, lay.Tile*g.cellW, lay.Tile)
			glyph, color := g.cellStyle(c)
			dst.DrawRect(r, glyph, color)
		}
	}
}

// cellStyle returns the glyph and color for the cell at c.
func (g *Game) cellStyle(c core.Coord) (rune, platformcore.Color) {
	switch g.level.At(c) {
	case core.CellFloor:
		return firstRune(g.glyphs.Floor), platformcore.ColorGray
	case core.CellWall:
		return firstRune(g.glyphs.Wall), platformcore.ColorWhite
	case core.CellBox:
		if g.level.IsTarget(c) {
			return firstRune(g.glyphs.BoxOnTarget), platformcore.ColorBrightGreen
		}
		return firstRune(g.glyphs.Box), platformcore.ColorOrange
	case core.CellTarget:
		return firstRune(g.glyphs.Target), platformcore.ColorGreen
	case core.CellPlayer:
		return firstRune(g.glyphs.Player), platformcore.ColorBrightYellow
	default:
		return firstRune(g.glyphs.Empty), platformcore.ColorDefault
	}
}

// renderOverlay draws a boxed, centered block of lines. Empty lines are skipped.
func (g *Game) renderOverlay(dst *platformcore.Screen, lines ...string) {
	var shown []string
	maxLen := 0
	for _, l := range lines {
		if l == "" {
			continue
		}
		shown = append(shown, l)
		maxLen = platformcore.Max(maxLen, len([]rune(l)))
	}

	boxW := maxLen + 4
	boxH := len(shown) + 2
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorYellow)

	for i, l := range shown {
		dst.DrawTextCentered(box.Y+1+i, l, platformcore.ColorBrightWhite)
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
