// Package config provides YAML-based tuning and difficulty management
// for the jumper.
package config

// JumperConfig contains all tuning for the simulation core.
type JumperConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Jump       JumpConfig       `yaml:"jump"`
	Collision  CollisionConfig  `yaml:"collision"`
	Life       LifeConfig       `yaml:"life"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines world dimensions and the level retention window.
type WorldConfig struct {
	Width            float64 `yaml:"width"`             // Screen width in world units; also the level length unit
	Height           float64 `yaml:"height"`            // Screen height in world units
	TileSize         float64 `yaml:"tile_size"`         // Unit all chunk geometry is scaled by
	VoidMargin       float64 `yaml:"void_margin"`       // Fall depth below Height that kills the player
	LookaheadScreens float64 `yaml:"lookahead_screens"` // Generation frontier distance ahead of the camera
	InitialLevels    int     `yaml:"initial_levels"`
	RetainBehind     int     `yaml:"retain_behind"` // Levels kept behind the last reached checkpoint
	RetainAhead      int     `yaml:"retain_ahead"`  // Levels kept ahead of the last reached checkpoint
}

// PlayerConfig defines the player box and spawn point.
type PlayerConfig struct {
	Size   float64 `yaml:"size"`
	SpawnX float64 `yaml:"spawn_x"`
}

// PhysicsConfig defines integration parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	GroundFriction float64 `yaml:"ground_friction"` // Per-frame vx multiplier while grounded
	FrictionFloor  float64 `yaml:"friction_floor"`  // |vx| below this snaps to zero
	GroundedGrace  float64 `yaml:"grounded_grace"`  // Coyote time after leaving ground
	MaxDelta       float64 `yaml:"max_delta"`       // Frame delta clamp
}

// JumpConfig defines the charge mechanic and jump impulse.
type JumpConfig struct {
	BaseVY            float64 `yaml:"base_vy"`
	ScaleVY           float64 `yaml:"scale_vy"`
	BaseVX            float64 `yaml:"base_vx"`
	ScaleVX           float64 `yaml:"scale_vx"`
	MinMomentum       float64 `yaml:"min_momentum"`
	ChargeTime        float64 `yaml:"charge_time"` // Linear ramp 0 -> 1
	OscillationMin    float64 `yaml:"oscillation_min"`
	OscillationMax    float64 `yaml:"oscillation_max"`
	OscillationPeriod float64 `yaml:"oscillation_period"`
}

// CollisionConfig defines contact responses.
type CollisionConfig struct {
	Epsilon          float64 `yaml:"epsilon"`
	WallBounceFactor float64 `yaml:"wall_bounce_factor"`
	WallBounceNudge  float64 `yaml:"wall_bounce_nudge"`
	CeilingPushDown  float64 `yaml:"ceiling_push_down"`
	SlideFactor      float64 `yaml:"slide_factor"`
	SlideMin         float64 `yaml:"slide_min"`
	SlideMax         float64 `yaml:"slide_max"`
}

// LifeConfig defines hearts, respawn timing and the ghost buffer.
type LifeConfig struct {
	Hearts          int     `yaml:"hearts"`
	RespawnDuration float64 `yaml:"respawn_duration"`
	GameOverDelay   float64 `yaml:"game_over_delay"`
	GhostCapacity   int     `yaml:"ghost_capacity"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	InitialLevel    float64 `yaml:"initial_level"`    // D at run start
	Multiplier      float64 `yaml:"multiplier"`       // Scales both time and checkpoint gains
	TimeRate        float64 `yaml:"time_rate"`        // D per second of play
	CheckpointBonus float64 `yaml:"checkpoint_bonus"` // D per checkpoint reached
	LevelStep       float64 `yaml:"level_step"`       // Extra D per level index at generation time
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// MultiplierForPreset returns the difficulty multiplier for a preset.
func MultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// InitialLevelForPreset returns the starting D for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	if preset == DifficultyHard {
		return 1.0
	}
	return 0.0
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
