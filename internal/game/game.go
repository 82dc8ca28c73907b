// Package game implements the platformer simulation: player kinematics,
// patrolling enemies, moving platforms, coin pickups and the state machine
// that drives a session from menu to win or game over. The package is pure
// logic with no terminal or audio-backend dependencies; the platform layer
// feeds it input frames and reads positions back out.
package game

import (
	"github.com/termgames/platformer/internal/audio"
	"github.com/termgames/platformer/internal/config"
	"github.com/termgames/platformer/internal/core"
)

// State identifies the top-level screen the session is on.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateWin
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

// Status is the per-tick summary the platform layer reads after Step.
type Status struct {
	State State
	Score int
	Lives int
	Level int
}

// Game owns one play session: the player, the live entity sets and the
// state machine. All mutation happens inside Step; there is no concurrency
// and therefore no locking.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	sounds  audio.Player

	state     State
	score     int
	level     int
	tickCount int

	player    *Player
	platforms []*Platform
	enemies   []*Enemy
	coins     []*Coin
}

// New creates a game in the menu state. A nil sounds collaborator mutes all
// effects.
func New(cfg config.Config, runtime core.RuntimeConfig, sounds audio.Player) *Game {
	if sounds == nil {
		sounds = audio.Nop{}
	}
	return &Game{
		cfg:     cfg,
		runtime: runtime,
		sounds:  sounds,
		state:   StateMenu,
		level:   1,
	}
}

// SetLevel selects the layout used by the next session. Level numbers other
// than 1 all map to the harder fallback layout.
func (g *Game) SetLevel(n int) {
	if n > 0 {
		g.level = n
	}
}

// Level returns the selected level number.
func (g *Game) Level() int { return g.level }

// Status returns the current session summary.
func (g *Game) Status() Status {
	lives := g.cfg.Player.Lives
	if g.player != nil {
		lives = g.player.Lives
	}
	return Status{State: g.state, Score: g.score, Lives: lives, Level: g.level}
}

// newSession tears down any previous world and builds a fresh one: score
// zero, full lives, the selected level's layout.
func (g *Game) newSession() {
	g.score = 0
	layout := BuildLevel(g.level, g.cfg)
	g.platforms = layout.Platforms
	g.enemies = layout.Enemies
	g.coins = layout.Coins
	g.player = NewPlayer(g.cfg)
	g.state = StatePlaying
}

// Step advances the session by one fixed tick. Input is interpreted
// according to the current state: confirm starts a game or leaves the end
// screens, movement and jumping only apply while playing. Quit never reaches
// the game; the platform layer terminates the process at the tick boundary.
func (g *Game) Step(in core.InputFrame) Status {
	g.tickCount++

	switch g.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) {
			g.newSession()
		}
	case StateGameOver, StateWin:
		if in.Has(core.ActionConfirm) {
			g.state = StateMenu
		}
	case StatePlaying:
		g.stepPlaying(in)
	}

	return g.Status()
}

// stepPlaying runs one simulation tick: jump request, entity updates, then
// collision resolution, in that strict order.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionJump) {
		g.jump()
	}

	if g.player.Update(in, g.cfg) {
		// Fell through the world.
		g.killPlayer()
		if g.state != StatePlaying {
			return
		}
	}

	for _, p := range g.platforms {
		p.Update()
	}
	for _, e := range g.enemies {
		e.Update()
	}

	g.resolveCollisions()
}

// jump honors a jump request only when the player is not already mid-jump
// and a one-unit probe below the footprint touches a platform. The probe is
// the ground truth; the OnGround flag is bookkeeping only.
func (g *Game) jump() {
	if g.player.Jumping {
		return
	}

	probe := g.player.Bounds()
	probe.Y++
	grounded := false
	for _, p := range g.platforms {
		if probe.Intersects(p.Bounds()) {
			grounded = true
			break
		}
	}
	if !grounded {
		return
	}

	g.player.Jumping = true
	g.player.OnGround = false
	g.player.Vel.Y = g.cfg.Physics.JumpImpulse
	g.sounds.Play(audio.SoundJump)
}

// killPlayer runs the death procedure: sound, one life down, then either the
// terminal transition or a soft reset that leaves coins, enemies and score
// untouched.
func (g *Game) killPlayer() {
	g.sounds.Play(audio.SoundDeath)
	g.player.Lives--

	if g.player.Lives <= 0 {
		g.state = StateGameOver
		return
	}

	g.player.Respawn(g.cfg)
}
