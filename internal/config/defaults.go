package config

import (
	_ "embed"
)

//go:embed defaults/skyfall.yaml
var defaultSkyfallYAML []byte

// DefaultSkyfallConfig returns the default Skyfall configuration.
// Kept in sync with defaults/skyfall.yaml.
func DefaultSkyfallConfig() SkyfallConfig {
	return SkyfallConfig{
		Player: SkyfallPlayer{
			MoveSpeed:    24.0,
			Width:        3,
			Height:       2,
			BottomOffset: 2,
		},
		Hazards: SkyfallHazards{
			Count:     12,
			FallSpeed: 8.0,
			DelayMin:  0.4,
			DelayMax:  1.2,
			Width:     3,
			Height:    1,
		},
		Spawn: SkyfallSpawn{
			UseViewportBounds: true,
			MinX:              2,
			MaxX:              78,
			Height:            -1.0,
			TopMargin:         2.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				DelayReduction:  0.5,
			},
		},
	}
}
