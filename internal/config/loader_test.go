package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSlots("")
	if err != nil {
		t.Fatalf("LoadSlots(\"\") failed: %v", err)
	}
	if cfg != DefaultSlotsConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultSlotsConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSlotsCustomPathOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.yaml")
	data := []byte("gameplay:\n  starting_credits: 250\nanimation:\n  fall_speed: 60\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSlots(path)
	if err != nil {
		t.Fatalf("LoadSlots() failed: %v", err)
	}
	if cfg.Gameplay.StartingCredits != 250 {
		t.Errorf("StartingCredits = %d, expected 250", cfg.Gameplay.StartingCredits)
	}
	if cfg.Animation.FallSpeed != 60 {
		t.Errorf("FallSpeed = %v, expected 60", cfg.Animation.FallSpeed)
	}
	// Untouched keys keep their defaults
	if cfg.Grid.Rows != 3 || cfg.Grid.Columns != 5 {
		t.Errorf("grid = %dx%d, expected defaults 3x5", cfg.Grid.Rows, cfg.Grid.Columns)
	}
}

func TestLoadSlotsCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSlots(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSlots(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  rows: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSlots(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadSlots(invalid) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadSlotsUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".slots", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "slots.yaml"), []byte("gameplay:\n  starting_credits: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSlots("")
	if err != nil {
		t.Fatalf("LoadSlots() failed: %v", err)
	}
	if cfg.Gameplay.StartingCredits != 7 {
		t.Errorf("StartingCredits = %d, expected 7 from user config", cfg.Gameplay.StartingCredits)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SlotsConfig)
		valid  bool
	}{
		{"defaults", func(*SlotsConfig) {}, true},
		{"zero columns", func(c *SlotsConfig) { c.Grid.Columns = 0 }, false},
		{"negative padding", func(c *SlotsConfig) { c.Grid.TopPadding = -1 }, false},
		{"zero fall speed", func(c *SlotsConfig) { c.Animation.FallSpeed = 0 }, false},
		{"negative reveal delay", func(c *SlotsConfig) { c.Animation.RevealDelayMS = -1 }, false},
		{"flat pulse", func(c *SlotsConfig) { c.Animation.PulsePeak = 1 }, false},
		{"row delay too short", func(c *SlotsConfig) { c.Animation.RowDelay = 5 }, false},
		{"single row needs no delay", func(c *SlotsConfig) {
			c.Grid.Rows = 1
			c.Animation.RowDelay = 0
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSlotsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplySpeedPreset(t *testing.T) {
	for _, preset := range []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, ""} {
		cfg := DefaultSlotsConfig()
		if err := ApplySpeedPreset(&cfg, preset); err != nil {
			t.Fatalf("ApplySpeedPreset(%q) failed: %v", preset, err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q broke validation: %v", preset, err)
		}
	}

	cfg := DefaultSlotsConfig()
	if err := ApplySpeedPreset(&cfg, SpeedFast); err != nil {
		t.Fatal(err)
	}
	if cfg.Animation.FallSpeed != 100 || cfg.Animation.RowDelay != 10 {
		t.Errorf("fast preset = speed %v delay %v, expected 100 and 10",
			cfg.Animation.FallSpeed, cfg.Animation.RowDelay)
	}

	if err := ApplySpeedPreset(&cfg, "ludicrous"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	cfg := DefaultSlotsConfig()
	cfg.Grid.Columns = 4
	cfg.Gameplay.StartingCredits = 250

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "slots.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := LoadSlots(path)
	if err != nil {
		t.Fatalf("LoadSlots() error = %v", err)
	}
	if got != cfg {
		t.Errorf("LoadSlots() = %+v, expected %+v", got, cfg)
	}
}
