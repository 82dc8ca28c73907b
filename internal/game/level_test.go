package game

import (
	"testing"

	"github.com/termgames/platformer/internal/config"
)

func TestBuildLevelOne(t *testing.T) {
	cfg := config.Default()
	layout := BuildLevel(1, cfg)

	if got := len(layout.Platforms); got != 6 {
		t.Errorf("level 1 should have 6 platforms including the ground, got %d", got)
	}
	if got := len(layout.Enemies); got != 2 {
		t.Errorf("level 1 should have 2 enemies, got %d", got)
	}
	if got := len(layout.Coins); got != 5 {
		t.Errorf("level 1 should have 5 coins, got %d", got)
	}

	ground := layout.Platforms[0].Bounds()
	if ground.X != 0 || ground.W != cfg.World.Width {
		t.Errorf("ground should span the full world width, got x=%f w=%f", ground.X, ground.W)
	}
	if ground.Y != cfg.World.Height-40 {
		t.Errorf("ground top should sit 40 units above the world bottom, got %f", ground.Y)
	}

	moving := 0
	for _, p := range layout.Platforms {
		if p.Moving {
			moving++
		}
	}
	if moving != 1 {
		t.Errorf("level 1 should have exactly one moving platform, got %d", moving)
	}
}

func TestBuildLevelFallback(t *testing.T) {
	cfg := config.Default()

	for _, level := range []int{0, 2, 3, 99, -1} {
		layout := BuildLevel(level, cfg)
		if got := len(layout.Platforms); got != 8 {
			t.Errorf("level %d: want 8 platforms, got %d", level, got)
		}
		if got := len(layout.Enemies); got != 4 {
			t.Errorf("level %d: want 4 enemies, got %d", level, got)
		}
		if got := len(layout.Coins); got != 7 {
			t.Errorf("level %d: want 7 coins, got %d", level, got)
		}
	}
}

func TestBuildLevelDeterministic(t *testing.T) {
	cfg := config.Default()
	a := BuildLevel(1, cfg)
	b := BuildLevel(1, cfg)

	for i := range a.Platforms {
		if a.Platforms[i].Bounds() != b.Platforms[i].Bounds() {
			t.Fatalf("platform %d differs between identical builds", i)
		}
	}
	for i := range a.Coins {
		if a.Coins[i].Bounds() != b.Coins[i].Bounds() {
			t.Fatalf("coin %d differs between identical builds", i)
		}
	}
}

func TestMovingPlatformOscillation(t *testing.T) {
	// Level 1's moving platform: origin 650, travel 100, speed 1. Over 101
	// ticks it walks to the right bound, clamps, and reverses exactly once.
	p := NewMovingPlatform(650, 350, 100, 20, 100, 1)

	flips := 0
	dir := p.Direction()
	for i := 0; i < 101; i++ {
		p.Update()
		if p.Direction() != dir {
			flips++
			dir = p.Direction()
		}
		x := p.Bounds().X
		if x < 550 || x > 750 {
			t.Fatalf("tick %d: x=%f escaped [550, 750]", i, x)
		}
	}
	if flips != 1 {
		t.Errorf("expected exactly one direction reversal in 101 ticks, got %d", flips)
	}
}

func TestEnemyPatrolStaysInRange(t *testing.T) {
	e := NewEnemy(300, 280, 80, 1)

	for i := 0; i < 1000; i++ {
		e.Update()
		x := e.Bounds().X
		if x < 220 || x > 380 {
			t.Fatalf("tick %d: x=%f escaped [220, 380]", i, x)
		}
	}
}

func TestStaticPlatformIgnoresUpdate(t *testing.T) {
	p := NewPlatform(100, 400, 150, 20)
	before := p.Bounds()
	for i := 0; i < 10; i++ {
		p.Update()
	}
	if p.Bounds() != before {
		t.Error("static platform should not move")
	}
}
