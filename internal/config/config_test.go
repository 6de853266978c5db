package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML JumperConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(fromYAML, DefaultJumperConfig()) {
		t.Errorf("embedded YAML and DefaultJumperConfig differ:\nyaml: %+v\ncode: %+v", fromYAML, DefaultJumperConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  gravity: 2400\nlife:\n  hearts: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Physics.Gravity != 2400 {
		t.Errorf("gravity = %v, want 2400", cfg.Physics.Gravity)
	}
	if cfg.Life.Hearts != 5 {
		t.Errorf("hearts = %d, want 5", cfg.Life.Hearts)
	}
	// Untouched sections keep their defaults.
	if cfg.Jump.BaseVY != 420 {
		t.Errorf("jump.base_vy = %v, want default 420", cfg.Jump.BaseVY)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [not, a, map"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateRestoresDegenerateValues(t *testing.T) {
	cfg := DefaultJumperConfig()
	cfg.World.TileSize = 0
	cfg.Player.Size = -4
	cfg.Physics.GroundFriction = 1.5
	cfg.Jump.ChargeTime = 0
	cfg.Jump.OscillationMin = 2
	cfg.Life.GhostCapacity = 0
	cfg.Life.Hearts = 0
	cfg.Difficulty.TimeRate = -1

	cfg.Validate()
	def := DefaultJumperConfig()

	tests := []struct {
		name      string
		got, want float64
	}{
		{"tile size", cfg.World.TileSize, def.World.TileSize},
		{"player size", cfg.Player.Size, def.Player.Size},
		{"friction", cfg.Physics.GroundFriction, def.Physics.GroundFriction},
		{"charge time", cfg.Jump.ChargeTime, def.Jump.ChargeTime},
		{"oscillation min", cfg.Jump.OscillationMin, def.Jump.OscillationMin},
		{"ghost capacity", float64(cfg.Life.GhostCapacity), float64(def.Life.GhostCapacity)},
		{"hearts", float64(cfg.Life.Hearts), float64(def.Life.Hearts)},
		{"time rate", cfg.Difficulty.TimeRate, def.Difficulty.TimeRate},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		multiplier float64
		initialLvl float64
	}{
		{DifficultyEasy, true, 0.5, 0},
		{DifficultyNormal, true, 1.0, 0},
		{DifficultyHard, true, 1.5, 1.0},
		{DifficultyFixed, false, 1.0, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultJumperConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.Multiplier != tt.multiplier {
				t.Errorf("multiplier = %v, want %v", cfg.Difficulty.Multiplier, tt.multiplier)
			}
			if cfg.Difficulty.InitialLevel != tt.initialLvl {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tt.initialLvl)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jumper.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	time.Sleep(150 * time.Millisecond)
	if err := os.WriteFile(path, []byte("life:\n  hearts: 4\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "jumper.yaml" {
			t.Errorf("event for %q, want jumper.yaml", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after rewriting watched file")
	}
}

func TestWatcherWaitsForBurstToSettle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumper.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	full := []byte("life:\n  hearts: 4\n")
	if err := os.WriteFile(path, full[:6], 0o644); err != nil {
		t.Fatalf("partial write: %v", err)
	}
	select {
	case <-w.Events:
		t.Fatal("change reported while the file was still being written")
	case <-time.After(settleDelay / 2):
	}

	if err := os.WriteFile(path, full, 0o644); err != nil {
		t.Fatalf("final write: %v", err)
	}
	select {
	case <-w.Events:
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(data) != string(full) {
			t.Errorf("reported with content %q, want the completed file", data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after the burst settled")
	}

	select {
	case name := <-w.Events:
		t.Errorf("second event for %q from one burst", name)
	case <-time.After(3 * settleDelay):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumper.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
