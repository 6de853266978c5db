package config

import "math"

// DifficultyManager owns the difficulty scalar D for one run.
// D only grows during a run; Reset starts it over.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level float64
}

// NewDifficultyManager creates a new difficulty manager positioned at the
// configured initial level.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns D to the initial level.
func (d *DifficultyManager) Reset() {
	d.level = math.Max(0, d.cfg.InitialLevel)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Multiplier > 0
}

// Level returns the current D.
func (d *DifficultyManager) Level() float64 {
	return d.level
}

// DisplayLevel returns the 1-based level shown on the HUD: floor(D)+1.
func (d *DifficultyManager) DisplayLevel() int {
	return int(math.Floor(d.level)) + 1
}

// Advance applies time-based growth for a frame of length dt.
func (d *DifficultyManager) Advance(dt float64) {
	if !d.IsEnabled() || dt <= 0 {
		return
	}
	d.level += d.cfg.TimeRate * dt * d.cfg.Multiplier
}

// CheckpointReached applies the checkpoint bonus and returns the amount added.
func (d *DifficultyManager) CheckpointReached() float64 {
	if !d.IsEnabled() {
		return 0
	}
	bonus := d.cfg.CheckpointBonus * d.cfg.Multiplier
	d.level += bonus
	return bonus
}

// ForLevel returns the D used to generate the level at the given index.
// Later levels are generated harder than the current D.
func (d *DifficultyManager) ForLevel(index int) float64 {
	return d.level + float64(index)*d.cfg.LevelStep
}
