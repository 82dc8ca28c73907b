package game

import (
	"github.com/termgames/platformer/internal/config"
)

// enemyPatrolSpeed is shared by every enemy in the hand-authored layouts.
const enemyPatrolSpeed = 1

// Layout is the set of live entities a level starts with.
type Layout struct {
	Platforms []*Platform
	Enemies   []*Enemy
	Coins     []*Coin
}

type platformSpec struct {
	x, y, w, h float64
	moving     bool
	travel     float64
	speed      float64
}

type enemySpec struct {
	x, y, patrol float64
}

type coinSpec struct {
	x, y float64
}

// BuildLevel deterministically constructs the layout for a level number.
// Exactly two hand-authored layouts exist: level 1, and the harder layout
// every other number maps to. The ground platform spanning the full world
// width is always emitted first, so it wins exact landing ties.
func BuildLevel(level int, cfg config.Config) Layout {
	var platforms []platformSpec
	var enemies []enemySpec
	var coins []coinSpec

	if level == 1 {
		platforms = []platformSpec{
			{x: 100, y: 400, w: 150, h: platformHeight},
			{x: 300, y: 300, w: 100, h: platformHeight},
			{x: 500, y: 200, w: 150, h: platformHeight},
			{x: 250, y: 120, w: 100, h: platformHeight},
			{x: 650, y: 350, w: 100, h: platformHeight, moving: true, travel: 100, speed: 1},
		}
		enemies = []enemySpec{
			{x: 300, y: 280, patrol: 80},
			{x: 500, y: 180, patrol: 100},
		}
		coins = []coinSpec{
			{x: 130, y: 370},
			{x: 330, y: 270},
			{x: 530, y: 170},
			{x: 280, y: 90},
			{x: 680, y: 320},
		}
	} else {
		platforms = []platformSpec{
			{x: 100, y: 450, w: 100, h: platformHeight},
			{x: 300, y: 350, w: 100, h: platformHeight},
			{x: 500, y: 250, w: 100, h: platformHeight},
			{x: 200, y: 150, w: 100, h: platformHeight},
			{x: 400, y: 100, w: 100, h: platformHeight},
			{x: 600, y: 150, w: 100, h: platformHeight},
			{x: 100, y: 250, w: 100, h: platformHeight, moving: true, travel: 150, speed: 2},
		}
		enemies = []enemySpec{
			{x: 300, y: 330, patrol: 80},
			{x: 500, y: 230, patrol: 80},
			{x: 200, y: 130, patrol: 80},
			{x: 600, y: 130, patrol: 80},
		}
		coins = []coinSpec{
			{x: 130, y: 420},
			{x: 330, y: 320},
			{x: 530, y: 220},
			{x: 230, y: 120},
			{x: 430, y: 70},
			{x: 630, y: 120},
			{x: 130, y: 220},
		}
	}

	layout := Layout{
		Platforms: make([]*Platform, 0, len(platforms)+1),
		Enemies:   make([]*Enemy, 0, len(enemies)),
		Coins:     make([]*Coin, 0, len(coins)),
	}

	ground := NewPlatform(0, cfg.World.Height-40, cfg.World.Width, 40)
	layout.Platforms = append(layout.Platforms, ground)

	for _, s := range platforms {
		if s.moving {
			layout.Platforms = append(layout.Platforms, NewMovingPlatform(s.x, s.y, s.w, s.h, s.travel, s.speed))
		} else {
			layout.Platforms = append(layout.Platforms, NewPlatform(s.x, s.y, s.w, s.h))
		}
	}
	for _, s := range enemies {
		layout.Enemies = append(layout.Enemies, NewEnemy(s.x, s.y, s.patrol, enemyPatrolSpeed))
	}
	for _, s := range coins {
		layout.Coins = append(layout.Coins, NewCoin(s.x, s.y))
	}

	return layout
}
