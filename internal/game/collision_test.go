package game

import (
	"testing"

	"github.com/termgames/platformer/internal/audio"
	"github.com/termgames/platformer/internal/core"
)

func TestLandingSnapsToPlatformTop(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	// Descending onto the platform at (300, 300), size 100x20.
	g.player.Pos = core.Vec2{X: 330, Y: 305}
	g.player.Vel = core.Vec2{X: 0, Y: 5}
	g.player.Jumping = true

	g.resolveLanding()

	if g.player.Pos.Y != 301 {
		t.Errorf("feet should snap to one unit above the platform top, got %f", g.player.Pos.Y)
	}
	if g.player.Vel.Y != 0 {
		t.Errorf("landing should zero vertical velocity, got %f", g.player.Vel.Y)
	}
	if g.player.Jumping {
		t.Error("landing should clear the jumping flag")
	}
	if !g.player.OnGround {
		t.Error("landing should set the grounded flag")
	}
}

func TestLandingOnlyWhileDescending(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	g.player.Pos = core.Vec2{X: 330, Y: 305}
	g.player.Vel = core.Vec2{X: 0, Y: -5} // Moving up through the platform

	g.resolveLanding()

	if g.player.Pos.Y != 305 {
		t.Errorf("ascending player should pass through, got pos.y %f", g.player.Pos.Y)
	}
	if g.player.Vel.Y != -5 {
		t.Errorf("ascending player velocity should be untouched, got %f", g.player.Vel.Y)
	}
}

func TestLandingSkippedWhenBelowCenter(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	// Feet already below the platform's vertical center: no snap-up.
	g.player.Pos = core.Vec2{X: 330, Y: 315}
	g.player.Vel = core.Vec2{X: 0, Y: 5}

	g.resolveLanding()

	if g.player.Pos.Y != 315 {
		t.Errorf("player below platform center should not snap, got %f", g.player.Pos.Y)
	}
}

func TestLandingPicksLowestPlatform(t *testing.T) {
	g, _ := newPlayingGame(t, 1)
	g.platforms = []*Platform{
		NewPlatform(0, 100, 100, 20), // Bottom edge 120
		NewPlatform(0, 110, 100, 20), // Bottom edge 130: the frontmost
	}

	g.player.Pos = core.Vec2{X: 50, Y: 115}
	g.player.Vel = core.Vec2{X: 0, Y: 3}

	g.resolveLanding()

	if g.player.Pos.Y != 111 {
		t.Errorf("player should land on the platform with the greatest bottom edge, got %f", g.player.Pos.Y)
	}
}

func TestLandingTieKeepsFirstPlatform(t *testing.T) {
	g, _ := newPlayingGame(t, 1)
	// Equal bottom edges (130), different tops: strict > keeps the first.
	g.platforms = []*Platform{
		NewPlatform(0, 100, 100, 30),
		NewPlatform(0, 110, 100, 20),
	}

	g.player.Pos = core.Vec2{X: 50, Y: 112}
	g.player.Vel = core.Vec2{X: 0, Y: 3}

	g.resolveLanding()

	if g.player.Pos.Y != 101 {
		t.Errorf("exact ties should resolve to the first platform in insertion order, got %f", g.player.Pos.Y)
	}
}

func TestCoinConsumedExactlyOnce(t *testing.T) {
	g, rec := newPlayingGame(t, 1)

	// Stand on the first coin at (130, 370).
	g.player.Pos = core.Vec2{X: 137, Y: 395}
	g.collectCoins()

	if g.score != 10 {
		t.Fatalf("one coin should score 10, got %d", g.score)
	}
	if len(g.coins) != 4 {
		t.Fatalf("collected coin should leave the world, got %d coins", len(g.coins))
	}
	if rec.count(audio.SoundCoin) != 1 {
		t.Errorf("one pickup sound expected, got %d", rec.count(audio.SoundCoin))
	}

	// Same spot again: the coin is gone from the collidable set.
	g.collectCoins()
	if g.score != 10 {
		t.Errorf("score should not increase twice for one coin, got %d", g.score)
	}
}

func TestTotalScoreEqualsCoinCount(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	initial := len(g.coins)
	for len(g.coins) > 0 {
		c := g.coins[0]
		b := c.Bounds()
		g.player.Pos = core.Vec2{X: b.X + b.W/2, Y: b.Bottom() + 10}
		g.collectCoins()
	}

	want := initial * g.cfg.Gameplay.CoinValue
	if g.score != want {
		t.Errorf("total score should be %d for %d coins, got %d", want, initial, g.score)
	}
	if g.state != StateWin {
		t.Errorf("emptying the coin set should win, got %s", g.state)
	}
}

func TestNoSpuriousWin(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	// Collect one of five coins: still playing.
	g.player.Pos = core.Vec2{X: 137, Y: 395}
	g.collectCoins()

	if g.state != StatePlaying {
		t.Errorf("win must not trigger with coins remaining, got %s", g.state)
	}
}

func TestWinOnLastCoin(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	g.coins = g.coins[:1]
	b := g.coins[0].Bounds()
	g.player.Pos = core.Vec2{X: b.X + b.W/2, Y: b.Bottom() + 10}

	g.collectCoins()

	if g.state != StateWin {
		t.Errorf("consuming the final coin should transition to win, got %s", g.state)
	}
	if len(g.coins) != 0 {
		t.Errorf("coin set should be empty, got %d", len(g.coins))
	}
}

func TestEnemyContactSoftReset(t *testing.T) {
	g, rec := newPlayingGame(t, 1)

	g.score = 20
	coinsBefore := len(g.coins)

	// Overlap the first enemy at (300, 280).
	g.player.Pos = core.Vec2{X: 315, Y: 310}
	g.resolveEnemies()

	if rec.count(audio.SoundDeath) != 1 {
		t.Fatalf("death should fire one death sound, got %d", rec.count(audio.SoundDeath))
	}
	if g.player.Lives != 2 {
		t.Fatalf("death should cost one life, got %d", g.player.Lives)
	}
	if g.player.Pos.X != g.cfg.Player.StartX || g.player.Pos.Y != g.cfg.Player.StartY {
		t.Error("death should respawn the player at the start position")
	}
	if g.player.Vel.X != 0 || g.player.Vel.Y != 0 {
		t.Error("respawn should zero velocity")
	}
	if g.score != 20 {
		t.Errorf("soft reset must keep the score, got %d", g.score)
	}
	if len(g.coins) != coinsBefore {
		t.Errorf("soft reset must keep the coins, got %d", len(g.coins))
	}
}

func TestDeathEdgeTriggered(t *testing.T) {
	g, rec := newPlayingGame(t, 1)

	// First contact kills and respawns with a grace window.
	g.player.Pos = core.Vec2{X: 315, Y: 310}
	g.resolveEnemies()

	// Even if an enemy overlaps the respawned player immediately, the
	// grace window suppresses a second death.
	g.player.Pos = core.Vec2{X: 315, Y: 310}
	g.resolveEnemies()

	if got := rec.count(audio.SoundDeath); got != 1 {
		t.Errorf("overlap during the grace window must not re-fire death, got %d sounds", got)
	}
	if g.player.Lives != 2 {
		t.Errorf("grace window must protect lives, got %d", g.player.Lives)
	}

	// After the window closes, contact kills again.
	g.player.invuln = 0
	g.player.Pos = core.Vec2{X: 315, Y: 310}
	g.resolveEnemies()

	if g.player.Lives != 1 {
		t.Errorf("contact after the grace window should kill, got %d lives", g.player.Lives)
	}
}

func TestGameOverAtZeroLives(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	g.player.Lives = 1
	g.player.Pos = core.Vec2{X: 315, Y: 310}
	g.resolveEnemies()

	if g.state != StateGameOver {
		t.Errorf("losing the last life should transition to game over, got %s", g.state)
	}
	if g.player.Lives != 0 {
		t.Errorf("lives should be exactly 0, never negative, got %d", g.player.Lives)
	}
}

func TestWinSkipsEnemyCheck(t *testing.T) {
	g, rec := newPlayingGame(t, 1)

	// Last coin and an enemy on the same spot: the win ends the tick
	// before enemy contact is evaluated.
	g.coins = g.coins[:1]
	b := g.coins[0].Bounds()
	g.player.Pos = core.Vec2{X: b.X + b.W/2, Y: b.Bottom() + 10}
	g.enemies = []*Enemy{NewEnemy(b.X, b.Y, 10, 0)}

	g.resolveCollisions()

	if g.state != StateWin {
		t.Errorf("expected win, got %s", g.state)
	}
	if rec.count(audio.SoundDeath) != 0 {
		t.Error("death must not fire on the winning tick")
	}
}
