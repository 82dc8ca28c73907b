package game

import (
	"math"

	"github.com/termgames/platformer/internal/config"
	"github.com/termgames/platformer/internal/core"
)

// velEpsilon is the anti-jitter threshold: horizontal speeds below it snap
// to exactly zero.
const velEpsilon = 0.1

// Player is the one entity with full kinematic integration; platforms and
// enemies move by scalar offsets instead. Pos is the midpoint of the bottom
// edge (the feet), matching how landing resolution snaps it.
type Player struct {
	Pos core.Vec2
	Vel core.Vec2
	Acc core.Vec2

	Width  float64
	Height float64

	Jumping     bool
	OnGround    bool
	FacingRight bool
	Lives       int

	invuln int // Remaining ticks of post-respawn grace
}

// NewPlayer creates a player at the configured start position.
func NewPlayer(cfg config.Config) *Player {
	return &Player{
		Pos:         core.Vec2{X: cfg.Player.StartX, Y: cfg.Player.StartY},
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		FacingRight: true,
		Lives:       cfg.Player.Lives,
	}
}

// Update integrates one tick of motion from held directions and gravity.
// Returns true if the player fell through the bottom of the world.
func (p *Player) Update(in core.InputFrame, cfg config.Config) bool {
	p.OnGround = false
	p.Acc = core.Vec2{X: 0, Y: cfg.Physics.Gravity}

	// Left is evaluated first, so right wins when both are held.
	if in.Has(core.ActionLeft) {
		p.Acc.X = -cfg.Physics.Accel
		p.FacingRight = false
	}
	if in.Has(core.ActionRight) {
		p.Acc.X = cfg.Physics.Accel
		p.FacingRight = true
	}

	// Friction is negative, so this damps proportionally to speed.
	p.Acc.X += p.Vel.X * cfg.Physics.Friction

	p.Vel = p.Vel.Add(p.Acc)
	if math.Abs(p.Vel.X) < velEpsilon {
		p.Vel.X = 0
	}

	// Semi-implicit Euler with a half-step correction.
	p.Pos = p.Pos.Add(p.Vel).Add(p.Acc.Scale(0.5))

	// The world is a horizontal torus: crossing one edge re-enters on the
	// other.
	p.Pos.X = wrapX(p.Pos.X, cfg.World.Width)

	if p.invuln > 0 {
		p.invuln--
	}

	return p.Bounds().Y > cfg.World.Height
}

// Bounds returns the collision box derived from the feet position.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.Pos.X-p.Width/2, p.Pos.Y-p.Height, p.Width, p.Height)
}

// Respawn performs the soft reset after a death: position and velocity only,
// nothing else in the world is touched. A short grace window keeps a
// patrolling enemy camped on the spawn point from draining several lives in
// consecutive ticks.
func (p *Player) Respawn(cfg config.Config) {
	p.Pos = core.Vec2{X: cfg.Player.StartX, Y: cfg.Player.StartY}
	p.Vel = core.Vec2{}
	p.invuln = cfg.Gameplay.InvulnTicks
}

// Invulnerable reports whether the respawn grace window is still open.
func (p *Player) Invulnerable() bool {
	return p.invuln > 0
}

// wrapX teleports a position that crossed a horizontal edge to the opposite
// one. Exactly world-width maps to zero; in-range values are untouched, so
// repeated wrapping never diverges.
func wrapX(x, width float64) float64 {
	if x >= width {
		return 0
	}
	if x < 0 {
		return width
	}
	return x
}
