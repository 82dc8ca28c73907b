package game

import (
	"testing"

	"github.com/termgames/platformer/internal/audio"
	"github.com/termgames/platformer/internal/config"
	"github.com/termgames/platformer/internal/core"
)

// soundRecorder captures fired effects for assertions.
type soundRecorder struct {
	played []audio.SoundID
}

func (r *soundRecorder) Play(id audio.SoundID) {
	r.played = append(r.played, id)
}

func (r *soundRecorder) count(id audio.SoundID) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// newPlayingGame builds a game, starts a session on the given level and
// returns it together with its sound recorder.
func newPlayingGame(t *testing.T, level int) (*Game, *soundRecorder) {
	t.Helper()

	rec := &soundRecorder{}
	g := New(config.Default(), core.DefaultRuntimeConfig(), rec)
	g.SetLevel(level)

	status := g.Step(frame(core.ActionConfirm))
	if status.State != StatePlaying {
		t.Fatalf("expected playing state after confirm, got %s", status.State)
	}
	return g, rec
}

func TestNewGameStartsInMenu(t *testing.T) {
	g := New(config.Default(), core.DefaultRuntimeConfig(), nil)

	status := g.Status()
	if status.State != StateMenu {
		t.Errorf("new game should be in menu, got %s", status.State)
	}
	if status.Score != 0 {
		t.Errorf("menu score should be 0, got %d", status.Score)
	}
	if status.Lives != config.Default().Player.Lives {
		t.Errorf("menu lives should be the configured default, got %d", status.Lives)
	}
}

func TestConfirmStartsSession(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	if g.player == nil {
		t.Fatal("session should have a player")
	}
	if len(g.platforms) == 0 || len(g.enemies) == 0 || len(g.coins) == 0 {
		t.Fatal("session should have a built world")
	}
	if g.score != 0 {
		t.Errorf("fresh session score should be 0, got %d", g.score)
	}
}

func TestConfirmIgnoredWhilePlaying(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	status := g.Step(frame(core.ActionConfirm))
	if status.State != StatePlaying {
		t.Errorf("confirm should be meaningless while playing, got %s", status.State)
	}
}

func TestMovementIgnoredInMenu(t *testing.T) {
	g := New(config.Default(), core.DefaultRuntimeConfig(), nil)

	status := g.Step(frame(core.ActionJump, core.ActionLeft, core.ActionRight))
	if status.State != StateMenu {
		t.Errorf("movement input should not leave the menu, got %s", status.State)
	}
}

func TestEndScreensReturnToMenu(t *testing.T) {
	for _, state := range []State{StateGameOver, StateWin} {
		g, _ := newPlayingGame(t, 1)
		g.state = state

		status := g.Step(frame(core.ActionConfirm))
		if status.State != StateMenu {
			t.Errorf("confirm in %s should return to menu, got %s", state, status.State)
		}
	}
}

func TestNewSessionIsFresh(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	initialCoins := len(g.coins)
	g.score = 30
	g.coins = g.coins[:1]
	g.state = StateWin

	g.Step(frame(core.ActionConfirm)) // win -> menu
	status := g.Step(frame(core.ActionConfirm))

	if status.State != StatePlaying {
		t.Fatalf("expected a new session, got %s", status.State)
	}
	if g.score != 0 {
		t.Errorf("new session should reset score, got %d", g.score)
	}
	if len(g.coins) != initialCoins {
		t.Errorf("new session should rebuild coins: got %d, want %d", len(g.coins), initialCoins)
	}
	if g.player.Lives != config.Default().Player.Lives {
		t.Errorf("new session should restore lives, got %d", g.player.Lives)
	}
}

func TestLevelSelectionSticky(t *testing.T) {
	g, _ := newPlayingGame(t, 3)

	if g.Level() != 3 {
		t.Errorf("level should stay at 3, got %d", g.Level())
	}
	// Level 3 maps to the fallback layout with 7 coins.
	if len(g.coins) != 7 {
		t.Errorf("fallback layout should have 7 coins, got %d", len(g.coins))
	}
}

func TestFellThroughWorldTriggersDeath(t *testing.T) {
	g, rec := newPlayingGame(t, 1)

	g.player.Pos.Y = g.cfg.World.Height + 100
	g.Step(frame())

	if rec.count(audio.SoundDeath) != 1 {
		t.Errorf("falling off the world should fire one death sound, got %d", rec.count(audio.SoundDeath))
	}
	if g.player.Lives != config.Default().Player.Lives-1 {
		t.Errorf("expected one life lost, got %d lives", g.player.Lives)
	}
	if g.player.Pos.X != g.cfg.Player.StartX || g.player.Pos.Y != g.cfg.Player.StartY {
		t.Errorf("player should respawn at start, got (%f, %f)", g.player.Pos.X, g.player.Pos.Y)
	}
}

func TestFellThroughWorldAtLastLife(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	g.player.Lives = 1
	g.player.Pos.Y = g.cfg.World.Height + 100
	status := g.Step(frame())

	if status.State != StateGameOver {
		t.Errorf("expected game over, got %s", status.State)
	}
	if status.Lives != 0 {
		t.Errorf("lives should be exactly 0, got %d", status.Lives)
	}
}

func TestRenderPlaying(t *testing.T) {
	g, _ := newPlayingGame(t, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.Get(1, 0) != 'S' { // "Score: 0"
		t.Errorf("HUD should draw the score at the top left, got %q", screen.Get(1, 0))
	}

	hasContent := false
	for y := 1; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) != ' ' {
				hasContent = true
			}
		}
	}
	if !hasContent {
		t.Error("render should draw the world")
	}
}

func TestRenderMenu(t *testing.T) {
	g := New(config.Default(), core.DefaultRuntimeConfig(), nil)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if screen.String() == core.NewScreen(80, 24).String() {
		t.Error("menu render should draw something")
	}
}
