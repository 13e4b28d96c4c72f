package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/shadow-dodge/engine"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for _, st := range []SoundType{SoundChime, SoundCrash, SoundFanfare, SoundBlip} {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s to be set", st)
		}
	}
}

func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv(envEnabled, "false")
	t.Setenv(envVolume, "150")
	t.Setenv(envSFXVolumes, `{"crash":0.25,"blip":"loud"}`)
	t.Setenv(envSampleRate, "48000")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected master volume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundCrash] != 0.25 {
		t.Errorf("Expected crash volume 0.25, got %f", cfg.EffectVolumes[SoundCrash])
	}
	if cfg.EffectVolumes[SoundBlip] != DefaultAudioConfig().EffectVolumes[SoundBlip] {
		t.Errorf("Expected non-numeric blip volume ignored, got %f", cfg.EffectVolumes[SoundBlip])
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv(envEnabled, "maybe")
	t.Setenv(envVolume, "-20")
	t.Setenv(envSFXVolumes, "{not json")
	t.Setenv(envSampleRate, "0")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled {
		t.Errorf("Expected Enabled=%v, got %v", def.Enabled, cfg.Enabled)
	}
	if cfg.MasterVolume != 0 {
		t.Errorf("Expected master volume clamped to 0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected SampleRate=%d, got %d", def.SampleRate, cfg.SampleRate)
	}
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(osc)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), n)
		}
		if peak > 1.0 {
			t.Errorf("Wave %d: sample out of range %f", wave, peak)
		}
	}
}

func TestEnvelopeShapesAttack(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 0.5 {
		t.Errorf("Expected half volume mid-attack, got %f", buf[50][0])
	}
	if buf[500][0] != 1 {
		t.Errorf("Expected full volume in sustain, got %f", buf[500][0])
	}
	if buf[950][0] != 0.5 {
		t.Errorf("Expected half volume mid-release, got %f", buf[950][0])
	}
}

func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	for _, st := range []SoundType{SoundChime, SoundCrash, SoundFanfare, SoundBlip} {
		s := GetSoundEffect(st, cfg)
		if s == nil {
			t.Fatalf("Expected streamer for %s", st)
		}
		n, _ := drain(s)
		if n == 0 || n > cfg.SampleRate {
			t.Errorf("Expected %s to be shorter than a second, got %d samples", st, n)
		}
	}
	if GetSoundEffect(SoundType(99), cfg) != nil {
		t.Error("Expected nil for unknown sound")
	}
}

func TestCueSound(t *testing.T) {
	tests := []struct {
		cue  engine.Cue
		want SoundType
		ok   bool
	}{
		{engine.CueRoundAdvanced, SoundChime, true},
		{engine.CueDeath, SoundCrash, true},
		{engine.CueHighScore, SoundFanfare, true},
		{engine.CueTutorialStep, SoundBlip, true},
		{engine.CueGameOver, 0, false},
	}
	for _, tt := range tests {
		got, ok := CueSound(tt.cue)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%s: expected %s/%v, got %s/%v", tt.cue, tt.want, tt.ok, got, ok)
		}
	}
}

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(SoundCrash)
	sm.HandleEvents([]engine.Event{{Cue: engine.CueDeath}, {Cue: engine.CueGameOver}})
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("Expected muted after toggle")
	}
	if sm.ToggleMute() {
		t.Error("Expected unmuted after second toggle")
	}
	sm.Cleanup()
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Errorf("Expected disabled init to succeed, got %v", err)
	}
	if sm.initialized {
		t.Error("Expected disabled manager to stay uninitialized")
	}
}
