package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/engine"
)

// SoundManager plays synthesized effects for engine cues through a shared mixer
// All methods are no-ops until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a sound manager, nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:   cfg,
		mixer: mixer,
		ctrl:  &beep.Ctrl{Streamer: mixer},
	}
}

// Initialize opens the speaker; disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Cleanup silences and drops all playing sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; clearing all streamers is enough
	sm.initialized = false
}

// Play queues a sound effect on the mixer
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute pauses or resumes all output, returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
	}
	sm.ctrl.Paused = !sm.ctrl.Paused
	muted := sm.ctrl.Paused
	if sm.initialized {
		speaker.Unlock()
	}
	return muted
}

// Muted reports whether output is paused
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.ctrl.Paused
}

// HandleEvents plays the sound mapped to each engine event
func (sm *SoundManager) HandleEvents(events []engine.Event) {
	for _, ev := range events {
		if st, ok := CueSound(ev.Cue); ok {
			sm.Play(st)
		}
	}
}

// CueSound maps an engine cue to its effect
func CueSound(c engine.Cue) (SoundType, bool) {
	switch c {
	case engine.CueRoundAdvanced:
		return SoundChime, true
	case engine.CueDeath:
		return SoundCrash, true
	case engine.CueHighScore:
		return SoundFanfare, true
	case engine.CueDifficultySelected, engine.CueTutorialStep, engine.CueRestart:
		return SoundBlip, true
	default:
		return 0, false
	}
}
