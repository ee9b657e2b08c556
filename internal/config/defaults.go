package config

import (
	_ "embed"
)

//go:embed defaults/pet.yaml
var defaultPetYAML []byte

// DefaultPetConfig returns the default pet simulation configuration.
func DefaultPetConfig() PetConfig {
	return PetConfig{
		Physics: PhysicsConfig{
			Gravity:            980.0,
			JumpForce:          -500.0,
			MaxHorizontalSpeed: 200.0,
			MaxDeltaTime:       0.05,
		},
		Pet: PetBox{
			Width:  100.0,
			Height: 100.0,
		},
		Bounce: BounceConfig{
			LeftRetention:  0.8,
			RightRetention: 0.5,
			FloorMargin:    0.0,
		},
		Behavior: BehaviorConfig{
			JumpChance:    0.01,
			InvertChance:  0.1,
			MoveThreshold: 5.0,
		},
		Viewport: ViewportConfig{
			MinSize:       10.0,
			DefaultWidth:  400.0,
			DefaultHeight: 300.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML config.
func GetDefaultYAML() []byte {
	return defaultPetYAML
}
