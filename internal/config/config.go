// Package config provides YAML-based game configuration loading for kabuto.
package config

import (
	"errors"
	"fmt"
)

// KabutoConfig contains all tuning for the shooter simulation.
type KabutoConfig struct {
	World   WorldConfig   `yaml:"world"`
	Actor   ActorConfig   `yaml:"actor"`
	Shot    ShotConfig    `yaml:"shot"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Scoring ScoringConfig `yaml:"scoring"`
	Audio   AudioConfig   `yaml:"audio"`
}

// WorldConfig defines the play field and timestep.
// World coordinates have their origin at the screen center with +Y up.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
	TickRate      int     `yaml:"tick_rate"`    // Simulation ticks per second
	MaxCatchUp    int     `yaml:"max_catch_up"` // Max ticks run per frame; excess time is dropped
}

// ActorConfig defines the player-controlled beetle.
type ActorConfig struct {
	Speed   float64 `yaml:"speed"` // Units per second while a direction is held
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"` // Gap kept between the actor and the walls
}

// ShotConfig defines projectiles fired by the actor.
type ShotConfig struct {
	Speed            float64 `yaml:"speed"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	DespawnOffscreen bool    `yaml:"despawn_offscreen"`
}

// EnemyConfig defines spawned adversaries.
type EnemyConfig struct {
	Speed        float64 `yaml:"speed"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	SpawnEvery   int     `yaml:"spawn_every"` // Primary ticks between spawns
	GravityScale float64 `yaml:"gravity_scale"`
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	PointsPerHit int `yaml:"points_per_hit"`
}

// AudioConfig defines sound effects. Empty paths select synthesized tones.
type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume"`
	HitSound  string  `yaml:"hit_sound"`
	ShotSound string  `yaml:"shot_sound"`
}

// Validate reports every setting that would make the simulation meaningless.
func (c KabutoConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("world.wall_thickness", c.World.WallThickness)
	positive("world.tick_rate", float64(c.World.TickRate))
	positive("world.max_catch_up", float64(c.World.MaxCatchUp))
	positive("actor.width", c.Actor.Width)
	positive("actor.height", c.Actor.Height)
	positive("shot.width", c.Shot.Width)
	positive("shot.height", c.Shot.Height)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("enemy.spawn_every", float64(c.Enemy.SpawnEvery))
	positive("scoring.points_per_hit", float64(c.Scoring.PointsPerHit))

	if c.Actor.Speed < 0 {
		errs = append(errs, fmt.Errorf("actor.speed must not be negative, got %v", c.Actor.Speed))
	}
	if c.Actor.Width+2*c.Actor.Padding+c.World.WallThickness >= c.World.Width {
		errs = append(errs, errors.New("actor does not fit between the side walls"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid kabuto config: %w", errors.Join(errs...))
	}
	return nil
}

// TimeStep returns the fixed simulation timestep in seconds.
func (c KabutoConfig) TimeStep() float64 {
	if c.World.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.World.TickRate)
}
