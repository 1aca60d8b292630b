package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the default configuration.
// It mirrors defaults/dragon.yaml and is the fallback if the embedded file
// cannot be parsed.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		Timing: Timing{
			FPS: 60,
		},
		World: World{
			Width:  80,
			Height: 24,
		},
		Creature: Creature{
			X:             10,
			Width:         5,
			Height:        2,
			UpSpeed:       0.012,
			DownSpeed:     0.008,
			ClimbDuration: 200,
			InitialClimb:  2,
			FlapPeriod:    500,
		},
		Obstacles: Obstacles{
			Width:         6,
			PieceHeight:   1,
			ScrollSpeed:   0.02,
			SpawnInterval: 2500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
