package config

import (
	_ "embed"
)

//go:embed defaults/slots.yaml
var defaultSlotsYAML []byte

// DefaultSlotsConfig returns the default slot machine configuration.
func DefaultSlotsConfig() SlotsConfig {
	return SlotsConfig{
		Grid: SlotsGrid{
			Rows:       3,
			Columns:    5,
			SymbolSize: 200,
			TopPadding: 60,
		},
		Animation: SlotsAnimation{
			FallSpeed:     50,
			RowDelay:      20,
			RevealDelayMS: 500,
			FadeRate:      0.02,
			PulseRate:     0.02,
			PulsePeak:     1.2,
		},
		Gameplay: SlotsGameplay{
			StartingCredits: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSlotsYAML
}
