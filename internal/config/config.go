// Package config provides YAML-based tuning for the platformer.
// All physics constants and world dimensions live here so the simulation
// carries no hidden globals: the resolved Config is passed into the game
// constructor explicitly.
package config

// Config contains all tuning for a platformer session.
type Config struct {
	Physics  Physics  `yaml:"physics"`
	Player   Player   `yaml:"player"`
	World    World    `yaml:"world"`
	Gameplay Gameplay `yaml:"gameplay"`
}

// Physics defines the kinematic constants, in world units per tick.
type Physics struct {
	Accel       float64 `yaml:"accel"`        // Horizontal acceleration while a direction is held
	Friction    float64 `yaml:"friction"`     // Negative damping coefficient applied to vel.x
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity on jump (negative = up)
}

// Player defines the player body and starting conditions.
type Player struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Lives  int     `yaml:"lives"`
}

// World defines the simulation space, in world units.
// The renderer scales these to terminal cells.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Gameplay defines scoring and death-handling tuning.
type Gameplay struct {
	CoinValue   int `yaml:"coin_value"`   // Points per collected coin
	InvulnTicks int `yaml:"invuln_ticks"` // Grace window after a respawn
}
