package game

import (
	"github.com/termgames/platformer/internal/audio"
)

// resolveCollisions runs the per-tick resolution between the player and the
// world, in this order: platform landing, coin pickup, enemy contact. It
// runs after all entities have updated and only while playing. Winning on
// the last coin ends the tick before enemies are checked, so a win can never
// be overridden by a death in the same tick.
func (g *Game) resolveCollisions() {
	g.resolveLanding()
	g.collectCoins()
	if g.state != StatePlaying {
		return
	}
	g.resolveEnemies()
}

// resolveLanding snaps a descending player onto the frontmost overlapping
// platform. Only evaluated while falling; there is no push-out from below
// or from the sides.
func (g *Game) resolveLanding() {
	if g.player.Vel.Y <= 0 {
		return
	}

	bounds := g.player.Bounds()
	var lowest *Platform
	for _, p := range g.platforms {
		if !bounds.Intersects(p.Bounds()) {
			continue
		}
		// Strict > keeps the first platform seen on exact ties; the slice
		// preserves insertion order, so resolution is deterministic.
		if lowest == nil || p.Bounds().Bottom() > lowest.Bounds().Bottom() {
			lowest = p
		}
	}
	if lowest == nil {
		return
	}

	if g.player.Pos.Y < lowest.Bounds().CenterY() {
		g.player.Pos.Y = lowest.Bounds().Y + 1
		g.player.Vel.Y = 0
		g.player.Jumping = false
		g.player.OnGround = true
	}
}

// collectCoins consumes every coin overlapping the player. Hits are gathered
// in a single filtering pass and applied afterwards, so the live slice is
// never mutated mid-iteration and each coin scores at most once.
func (g *Game) collectCoins() {
	bounds := g.player.Bounds()

	hits := 0
	kept := g.coins[:0]
	for _, c := range g.coins {
		if bounds.Intersects(c.Bounds()) {
			hits++
			continue
		}
		kept = append(kept, c)
	}
	if hits == 0 {
		return
	}

	g.coins = kept
	g.score += hits * g.cfg.Gameplay.CoinValue
	for i := 0; i < hits; i++ {
		g.sounds.Play(audio.SoundCoin)
	}

	if len(g.coins) == 0 {
		g.state = StateWin
	}
}

// resolveEnemies triggers the death procedure on any overlap, regardless of
// approach direction; there is no stomp mechanic. Contact is ignored during
// the respawn grace window, making death edge-triggered rather than
// re-firing every tick an overlap persists.
func (g *Game) resolveEnemies() {
	if g.player.Invulnerable() {
		return
	}

	bounds := g.player.Bounds()
	for _, e := range g.enemies {
		if bounds.Intersects(e.Bounds()) {
			g.killPlayer()
			return
		}
	}
}
