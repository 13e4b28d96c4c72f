package audio

import "github.com/lixenwraith/shadow-dodge/constants"

// SoundType identifies a synthesized effect
type SoundType int

const (
	SoundChime   SoundType = iota // round survived
	SoundCrash                    // player destroyed
	SoundFanfare                  // new high score
	SoundBlip                     // menu and tutorial prompts
)

var soundNames = map[SoundType]string{
	SoundChime:   "chime",
	SoundCrash:   "crash",
	SoundFanfare: "fanfare",
	SoundBlip:    "blip",
}

func (s SoundType) String() string {
	if n, ok := soundNames[s]; ok {
		return n
	}
	return "unknown"
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundChime:   0.8,
			SoundCrash:   1.0,
			SoundFanfare: 0.6,
			SoundBlip:    0.4,
		},
		SampleRate: constants.AudioSampleRate,
	}
}
