package config

// SettingsConfig contains the adjustable settings ranges
type SettingsConfig struct {
	VolumeSteps []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
