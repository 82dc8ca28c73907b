package game

import (
	"fmt"

	"github.com/termgames/platformer/internal/core"
)

// Visual characters for rendering.
const (
	platformChar = '█'
	enemyChar    = '▓'
	coinChar     = '●'
	playerChar   = '█'
)

const title = "PLATFORMER ADVENTURE"

// Render draws the current state into the screen buffer, branching on the
// session state. Rendering is a pure read of final positions; it never
// mutates simulation state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case StateMenu:
		g.renderMenu(dst)
	case StatePlaying:
		g.renderWorld(dst)
	case StateGameOver:
		g.renderWorld(dst)
		g.drawCenteredBox(dst, "GAME OVER", core.ColorBrightRed,
			fmt.Sprintf("Final Score: %d  |  Press Enter for menu", g.score))
	case StateWin:
		g.renderWorld(dst)
		g.drawCenteredBox(dst, "YOU WIN!", core.ColorBrightYellow,
			fmt.Sprintf("Final Score: %d  |  Press Enter for menu", g.score))
	}
}

// renderMenu draws the start screen with control hints.
func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h/4, title, core.ColorBrightWhite)
	dst.DrawTextCentered(h/2, "Arrow keys to move, Space to jump", core.ColorWhite)
	dst.DrawTextCentered(h/2+1, "Collect all coins to win!", core.ColorWhite)
	dst.DrawTextCentered(h*3/4, "Press Enter to start", core.ColorBrightYellow)
}

// renderWorld draws every live entity scaled from world units to terminal
// cells, then the HUD on top.
func (g *Game) renderWorld(dst *core.Screen) {
	for _, p := range g.platforms {
		x, y, w, h := g.toCells(dst, p.Bounds())
		dst.FillRect(x, y, w, h, platformChar, core.ColorGreen)
	}
	for _, c := range g.coins {
		x, y, w, h := g.toCells(dst, c.Bounds())
		dst.FillRect(x, y, w, h, coinChar, core.ColorBrightYellow)
	}
	for _, e := range g.enemies {
		x, y, w, h := g.toCells(dst, e.Bounds())
		dst.FillRect(x, y, w, h, enemyChar, core.ColorBrightRed)
	}

	playerColor := core.ColorBlue
	if g.player.Invulnerable() && g.tickCount/4%2 == 0 {
		// Blink during the respawn grace window.
		playerColor = core.ColorGray
	}
	x, y, w, h := g.toCells(dst, g.player.Bounds())
	dst.FillRect(x, y, w, h, playerChar, playerColor)

	g.renderHUD(dst)
}

// renderHUD draws score and lives in the top corners.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorBrightWhite)

	livesText := fmt.Sprintf("Lives: %d", g.player.Lives)
	dst.DrawTextColored(dst.Width()-len(livesText)-1, 0, livesText, core.ColorBrightWhite)
}

// toCells scales a world rect to cell coordinates. Entities are always at
// least one cell wide and tall so nothing vanishes on small terminals.
func (g *Game) toCells(dst *core.Screen, r core.Rect) (x, y, w, h int) {
	sx := float64(dst.Width()) / g.cfg.World.Width
	sy := float64(dst.Height()) / g.cfg.World.Height

	x = int(r.X * sx)
	y = int(r.Y * sy)
	w = core.Max(1, int(r.W*sx+0.5))
	h = core.Max(1, int(r.H*sy+0.5))
	return x, y, w, h
}

// drawCenteredBox draws a centered message box over the frozen world.
func (g *Game) drawCenteredBox(dst *core.Screen, heading string, headingColor core.Color, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(heading), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, heading, headingColor)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
