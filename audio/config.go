package audio

import (
	"os"
	"strconv"
)

// Environment variables read by ApplyEnv
const (
	EnvEnabled      = "PICROSS_AUDIO_ENABLED"
	EnvMasterVolume = "PICROSS_MASTER_VOLUME"
	EnvSampleRate   = "PICROSS_SAMPLE_RATE"
)

// LoadConfig returns the default configuration with environment overrides
func LoadConfig() *Config {
	cfg := DefaultConfig()
	ApplyEnv(cfg)
	return cfg
}

// ApplyEnv overrides cfg from environment variables; malformed values are ignored
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100, stored as 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = PercentToVolume(val)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

// PercentToVolume converts a 0-100 volume to 0.0-1.0, clamping out-of-range input
func PercentToVolume(percent int) float64 {
	v := float64(percent) / 100.0
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return v
}
