package game

import (
	"math"

	"github.com/termgames/platformer/internal/core"
)

// World entity sizes, in world units.
const (
	platformHeight = 20
	enemySize      = 30
	coinSize       = 15
)

// Kind tags a world entity for collision dispatch and rendering.
type Kind int

const (
	KindPlatform Kind = iota
	KindEnemy
	KindCoin
)

// Collidable is anything the resolver can test against the player.
type Collidable interface {
	Bounds() core.Rect
	Kind() Kind
}

// Updatable advances one tick. Platforms and enemies implement it; coins
// are inert until consumed.
type Updatable interface {
	Update()
}

// Platform is a static or horizontally oscillating surface.
type Platform struct {
	rect   core.Rect
	Moving bool
	Travel float64 // Max offset from origin, world units
	Speed  float64 // World units per tick

	origin float64
	dir    float64 // +1 right, -1 left
}

// NewPlatform creates a static platform.
func NewPlatform(x, y, w, h float64) *Platform {
	return &Platform{rect: core.NewRect(x, y, w, h), origin: x, dir: 1}
}

// NewMovingPlatform creates a platform oscillating around its origin.
func NewMovingPlatform(x, y, w, h, travel, speed float64) *Platform {
	p := NewPlatform(x, y, w, h)
	p.Moving = true
	p.Travel = travel
	p.Speed = speed
	return p
}

// Update advances the oscillation. When the offset from origin exceeds the
// travel range, position clamps to the bound and direction negates, keeping
// x within [origin-travel, origin+travel].
func (p *Platform) Update() {
	if !p.Moving {
		return
	}
	p.rect.X += p.Speed * p.dir
	if off := p.rect.X - p.origin; math.Abs(off) > p.Travel {
		p.rect.X = p.origin + math.Copysign(p.Travel, off)
		p.dir = -p.dir
	}
}

// Bounds returns the platform's collision box.
func (p *Platform) Bounds() core.Rect { return p.rect }

// Kind returns KindPlatform.
func (p *Platform) Kind() Kind { return KindPlatform }

// Direction returns the current travel direction sign.
func (p *Platform) Direction() float64 { return p.dir }

// Enemy patrols horizontally between origin-PatrolRange and
// origin+PatrolRange at fixed speed, reversing at each bound.
type Enemy struct {
	rect        core.Rect
	PatrolRange float64
	Speed       float64

	origin float64
	dir    float64
}

// NewEnemy creates a patrolling enemy.
func NewEnemy(x, y, patrolRange, speed float64) *Enemy {
	return &Enemy{
		rect:        core.NewRect(x, y, enemySize, enemySize),
		PatrolRange: patrolRange,
		Speed:       speed,
		origin:      x,
		dir:         1,
	}
}

// Update advances the patrol. Enemies always move.
func (e *Enemy) Update() {
	e.rect.X += e.Speed * e.dir
	if off := e.rect.X - e.origin; math.Abs(off) > e.PatrolRange {
		e.rect.X = e.origin + math.Copysign(e.PatrolRange, off)
		e.dir = -e.dir
	}
}

// Bounds returns the enemy's collision box.
func (e *Enemy) Bounds() core.Rect { return e.rect }

// Kind returns KindEnemy.
func (e *Enemy) Kind() Kind { return KindEnemy }

// Direction returns the current patrol direction sign.
func (e *Enemy) Direction() float64 { return e.dir }

// Coin is a static pickup, consumed at most once.
type Coin struct {
	rect core.Rect
}

// NewCoin creates a coin at the given position.
func NewCoin(x, y float64) *Coin {
	return &Coin{rect: core.NewRect(x, y, coinSize, coinSize)}
}

// Bounds returns the coin's collision box.
func (c *Coin) Bounds() core.Rect { return c.rect }

// Kind returns KindCoin.
func (c *Coin) Kind() Kind { return KindCoin }
