// Package config provides YAML-based configuration loading and speed
// presets for the slot machine.
package config

import (
	"errors"
	"fmt"
)

// SlotsConfig contains all configuration for the slot machine.
// The point table is fixed and deliberately absent from this schema.
type SlotsConfig struct {
	Grid      SlotsGrid      `yaml:"grid"`
	Animation SlotsAnimation `yaml:"animation"`
	Gameplay  SlotsGameplay  `yaml:"gameplay"`
}

// SlotsGrid defines the grid dimensions and layout units.
type SlotsGrid struct {
	Rows       int     `yaml:"rows"`
	Columns    int     `yaml:"columns"`
	SymbolSize float64 `yaml:"symbol_size"` // Height of one cell in layout units
	TopPadding float64 `yaml:"top_padding"` // Space above the first row in layout units
}

// SlotsAnimation defines timing. Rates are per 60 Hz frame.
type SlotsAnimation struct {
	FallSpeed     float64 `yaml:"fall_speed"`      // Layout units per frame
	RowDelay      float64 `yaml:"row_delay"`       // Frames each row waits above the bottom one
	RevealDelayMS int     `yaml:"reveal_delay_ms"` // Wait before matched cells switch to their connected variant
	FadeRate      float64 `yaml:"fade_rate"`       // Outcome label alpha change per frame
	PulseRate     float64 `yaml:"pulse_rate"`      // Score scale change per frame
	PulsePeak     float64 `yaml:"pulse_peak"`      // Score scale at which the pulse turns back
}

// SlotsGameplay defines gameplay parameters.
type SlotsGameplay struct {
	StartingCredits int `yaml:"starting_credits"`
}

// GridHeight returns the height of all rows in layout units.
func (g SlotsGrid) GridHeight() float64 {
	return float64(g.Rows) * g.SymbolSize
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid slots config")

// Validate checks that the configuration describes a playable machine.
// Besides positivity checks it requires that one row delay covers the spread
// of start heights, which keeps lower rows settling before upper ones.
func (c SlotsConfig) Validate() error {
	switch {
	case c.Grid.Rows <= 0 || c.Grid.Columns <= 0:
		return fmt.Errorf("%w: grid must have at least one row and column, got %dx%d",
			ErrInvalidConfig, c.Grid.Rows, c.Grid.Columns)
	case c.Grid.SymbolSize <= 0:
		return fmt.Errorf("%w: symbol_size must be positive", ErrInvalidConfig)
	case c.Grid.TopPadding < 0:
		return fmt.Errorf("%w: top_padding must not be negative", ErrInvalidConfig)
	case c.Animation.FallSpeed <= 0:
		return fmt.Errorf("%w: fall_speed must be positive", ErrInvalidConfig)
	case c.Animation.RowDelay < 0:
		return fmt.Errorf("%w: row_delay must not be negative", ErrInvalidConfig)
	case c.Animation.RevealDelayMS < 0:
		return fmt.Errorf("%w: reveal_delay_ms must not be negative", ErrInvalidConfig)
	case c.Animation.FadeRate <= 0 || c.Animation.PulseRate <= 0:
		return fmt.Errorf("%w: fade_rate and pulse_rate must be positive", ErrInvalidConfig)
	case c.Animation.PulsePeak <= 1:
		return fmt.Errorf("%w: pulse_peak must be above 1", ErrInvalidConfig)
	}

	if c.Grid.Rows > 1 && c.Animation.RowDelay*c.Animation.FallSpeed < c.Grid.GridHeight() {
		return fmt.Errorf("%w: row_delay*fall_speed (%.1f) must cover the grid height (%.1f)",
			ErrInvalidConfig, c.Animation.RowDelay*c.Animation.FallSpeed, c.Grid.GridHeight())
	}
	return nil
}

// SpeedPreset represents a named animation speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// factorForPreset returns the fall speed multiplier for a preset.
func factorForPreset(preset SpeedPreset) (float64, error) {
	switch preset {
	case SpeedSlow:
		return 0.5, nil
	case SpeedNormal, "":
		return 1.0, nil
	case SpeedFast:
		return 2.0, nil
	default:
		return 0, fmt.Errorf("unknown speed preset %q (want slow, normal or fast)", preset)
	}
}

// ApplySpeedPreset scales the fall speed and shrinks the row delay by the
// same factor, so the row ordering guarantee survives any preset.
func ApplySpeedPreset(cfg *SlotsConfig, preset SpeedPreset) error {
	f, err := factorForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Animation.FallSpeed *= f
	cfg.Animation.RowDelay /= f
	cfg.Animation.FadeRate *= f
	cfg.Animation.PulseRate *= f
	return nil
}
