package audio

import "errors"

// Cue is a short feedback sound tied to a board change
type Cue int

const (
	CueFill  Cue = iota // Cell filled
	CueCross            // Cell crossed out
	CueClear            // Mark toggled off
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueFill:
		return "fill"
	case CueCross:
		return "cross"
	case CueClear:
		return "clear"
	default:
		return "invalid"
	}
}

// Config holds audio settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultConfig returns the stock audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		CueVolumes: map[Cue]float64{
			CueFill:  0.8,
			CueCross: 0.6,
			CueClear: 0.5,
		},
	}
}

// Sentinel errors
var (
	ErrDisabled = errors.New("audio disabled")
)
