package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultYAML []byte

// Default returns the built-in configuration. These are the classic tuning
// values: accel 0.5, friction -0.12, gravity 0.8, jump -16, three lives in
// an 800x600 world.
func Default() Config {
	return Config{
		Physics: Physics{
			Accel:       0.5,
			Friction:    -0.12,
			Gravity:     0.8,
			JumpImpulse: -16.0,
		},
		Player: Player{
			Width:  30,
			Height: 40,
			StartX: 100,
			StartY: 400,
			Lives:  3,
		},
		World: World{
			Width:  800,
			Height: 600,
		},
		Gameplay: Gameplay{
			CoinValue:   10,
			InvulnTicks: 90,
		},
	}
}
