package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays feedback cues without blocking the caller
type Player interface {
	Play(c Cue)
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(Cue) {}

// Speaker plays cues on the system audio device through beep's speaker
type Speaker struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker opens the audio device. Returns ErrDisabled when cfg disables
// audio; callers fall back to Silent on any error
func NewSpeaker(cfg *Config) (*Speaker, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	s := &Speaker{
		cfg:         cfg,
		mixer:       &beep.Mixer{},
		initialized: true,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues a freshly built cue on the mixer
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	streamer := CueStreamer(c, s.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops all cues and releases the device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	s.initialized = false
}
