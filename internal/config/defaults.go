package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default configuration.
// It mirrors defaults/jumper.yaml and is the fallback when the embed fails to parse.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: WorldConfig{
			Width:            384,
			Height:           640,
			TileSize:         64,
			VoidMargin:       100,
			LookaheadScreens: 6,
			InitialLevels:    10,
			RetainBehind:     1,
			RetainAhead:      15,
		},
		Player: PlayerConfig{
			Size:   36,
			SpawnX: 100,
		},
		Physics: PhysicsConfig{
			Gravity:        1800,
			GroundFriction: 0.9,
			FrictionFloor:  0.5,
			GroundedGrace:  0.12,
			MaxDelta:       0.1,
		},
		Jump: JumpConfig{
			BaseVY:            420,
			ScaleVY:           440,
			BaseVX:            150,
			ScaleVX:           280,
			MinMomentum:       0.05,
			ChargeTime:        0.7,
			OscillationMin:    0.45,
			OscillationMax:    1.0,
			OscillationPeriod: 2.6,
		},
		Collision: CollisionConfig{
			Epsilon:          1,
			WallBounceFactor: 0.5,
			WallBounceNudge:  -150,
			CeilingPushDown:  100,
			SlideFactor:      0.02,
			SlideMin:         0,
			SlideMax:         10,
		},
		Life: LifeConfig{
			Hearts:          3,
			RespawnDuration: 1.0,
			GameOverDelay:   0.5,
			GhostCapacity:   500,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialLevel:    0,
			Multiplier:      1.0,
			TimeRate:        0.05,
			CheckpointBonus: 0.2,
			LevelStep:       0.15,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJumperYAML
}

// Validate replaces degenerate values with defaults so the simulation never
// sees zero sizes, negative rates or an empty ghost buffer.
func (c *JumperConfig) Validate() {
	def := DefaultJumperConfig()

	positive := func(v *float64, fallback float64) {
		if *v <= 0 {
			*v = fallback
		}
	}
	nonNegative := func(v *float64, fallback float64) {
		if *v < 0 {
			*v = fallback
		}
	}

	positive(&c.World.Width, def.World.Width)
	positive(&c.World.Height, def.World.Height)
	positive(&c.World.TileSize, def.World.TileSize)
	nonNegative(&c.World.VoidMargin, def.World.VoidMargin)
	positive(&c.World.LookaheadScreens, def.World.LookaheadScreens)
	if c.World.InitialLevels < 1 {
		c.World.InitialLevels = def.World.InitialLevels
	}
	if c.World.RetainBehind < 0 {
		c.World.RetainBehind = def.World.RetainBehind
	}
	if c.World.RetainAhead < 1 {
		c.World.RetainAhead = def.World.RetainAhead
	}

	positive(&c.Player.Size, def.Player.Size)
	nonNegative(&c.Player.SpawnX, def.Player.SpawnX)

	positive(&c.Physics.Gravity, def.Physics.Gravity)
	if c.Physics.GroundFriction <= 0 || c.Physics.GroundFriction > 1 {
		c.Physics.GroundFriction = def.Physics.GroundFriction
	}
	nonNegative(&c.Physics.FrictionFloor, def.Physics.FrictionFloor)
	nonNegative(&c.Physics.GroundedGrace, def.Physics.GroundedGrace)
	positive(&c.Physics.MaxDelta, def.Physics.MaxDelta)

	positive(&c.Jump.ChargeTime, def.Jump.ChargeTime)
	positive(&c.Jump.OscillationPeriod, def.Jump.OscillationPeriod)
	nonNegative(&c.Jump.MinMomentum, def.Jump.MinMomentum)
	if c.Jump.OscillationMin > c.Jump.OscillationMax {
		c.Jump.OscillationMin, c.Jump.OscillationMax = def.Jump.OscillationMin, def.Jump.OscillationMax
	}

	nonNegative(&c.Collision.Epsilon, def.Collision.Epsilon)
	if c.Collision.SlideMin > c.Collision.SlideMax {
		c.Collision.SlideMin, c.Collision.SlideMax = def.Collision.SlideMin, def.Collision.SlideMax
	}

	if c.Life.Hearts < 1 {
		c.Life.Hearts = def.Life.Hearts
	}
	positive(&c.Life.RespawnDuration, def.Life.RespawnDuration)
	nonNegative(&c.Life.GameOverDelay, def.Life.GameOverDelay)
	if c.Life.GhostCapacity < 1 {
		c.Life.GhostCapacity = def.Life.GhostCapacity
	}

	nonNegative(&c.Difficulty.InitialLevel, def.Difficulty.InitialLevel)
	nonNegative(&c.Difficulty.Multiplier, def.Difficulty.Multiplier)
	nonNegative(&c.Difficulty.TimeRate, def.Difficulty.TimeRate)
	nonNegative(&c.Difficulty.CheckpointBonus, def.Difficulty.CheckpointBonus)
	nonNegative(&c.Difficulty.LevelStep, def.Difficulty.LevelStep)
}
