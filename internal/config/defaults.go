package config

import (
	_ "embed"
)

//go:embed defaults/kabuto.yaml
var defaultKabutoYAML []byte

// DefaultKabutoConfig returns the default configuration.
// Kept in sync with defaults/kabuto.yaml; used if the embedded YAML cannot be parsed.
func DefaultKabutoConfig() KabutoConfig {
	const (
		width  = 1280.0
		height = 768.0
	)
	return KabutoConfig{
		World: WorldConfig{
			Width:         width,
			Height:        height,
			WallThickness: 50,
			TickRate:      60,
			MaxCatchUp:    5,
		},
		Actor: ActorConfig{
			Speed:   500,
			Width:   25,
			Height:  25,
			Padding: 10,
		},
		Shot: ShotConfig{
			Speed:            600,
			Width:            5,
			Height:           5,
			DespawnOffscreen: false,
		},
		Enemy: EnemyConfig{
			Speed:        400,
			Width:        50,
			Height:       50,
			SpawnX:       -width / 2, // Left edge
			SpawnY:       height / 3, // Upper third
			SpawnEvery:   120,        // ~2 seconds at 60 ticks/s
			GravityScale: 1.0,
		},
		Scoring: ScoringConfig{
			PointsPerHit: 100,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultKabutoYAML
}
