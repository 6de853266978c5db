package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyManagerAdvance(t *testing.T) {
	d := NewDifficultyManager(DefaultJumperConfig().Difficulty)
	for i := 0; i < 60; i++ {
		d.Advance(1.0 / 60)
	}
	if !approx(d.Level(), 0.05) {
		t.Errorf("after 1s D = %v, want 0.05", d.Level())
	}
}

func TestDifficultyManagerCheckpointBonus(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float64
		want       float64
	}{
		{"normal", 1.0, 0.2},
		{"easy", 0.5, 0.1},
		{"hard", 1.5, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultJumperConfig().Difficulty
			cfg.Multiplier = tt.multiplier
			d := NewDifficultyManager(cfg)
			got := d.CheckpointReached()
			if !approx(got, tt.want) || !approx(d.Level(), tt.want) {
				t.Errorf("bonus = %v level = %v, want %v", got, d.Level(), tt.want)
			}
		})
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 1.5
	d := NewDifficultyManager(cfg)

	d.Advance(10)
	d.CheckpointReached()
	if d.Level() != 1.5 {
		t.Errorf("disabled manager moved to %v", d.Level())
	}
	if d.DisplayLevel() != 2 {
		t.Errorf("DisplayLevel = %d, want 2", d.DisplayLevel())
	}
}

func TestDifficultyManagerResetAndForLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultJumperConfig().Difficulty)
	d.CheckpointReached()
	d.Reset()
	if d.Level() != 0 {
		t.Errorf("Reset left D = %v", d.Level())
	}
	if !approx(d.ForLevel(4), 0.6) {
		t.Errorf("ForLevel(4) = %v, want 0.6", d.ForLevel(4))
	}
	if d.DisplayLevel() != 1 {
		t.Errorf("DisplayLevel = %d, want 1", d.DisplayLevel())
	}
}
