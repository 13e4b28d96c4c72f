package audio

import (
	"os"
	"strconv"

	"github.com/tidwall/gjson"
)

// Environment variables read by LoadAudioConfig
const (
	envEnabled    = "SHADOW_AUDIO_ENABLED"
	envVolume     = "SHADOW_MASTER_VOLUME"
	envSFXVolumes = "SHADOW_SFX_VOLUMES"
	envSampleRate = "SHADOW_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(envEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv(envVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Per-effect volumes as a JSON object, e.g. {"crash":0.5,"blip":0}
	if effectVols := os.Getenv(envSFXVolumes); effectVols != "" && gjson.Valid(effectVols) {
		parsed := gjson.Parse(effectVols)
		for st, name := range soundNames {
			if v := parsed.Get(name); v.Exists() && v.Type == gjson.Number {
				cfg.EffectVolumes[st] = v.Float()
			}
		}
	}

	if sampleRate := os.Getenv(envSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
