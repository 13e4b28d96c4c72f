package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Round Chime Timing
const (
	ChimeSoundDuration = 400 * time.Millisecond
	ChimeSoundAttack   = 5 * time.Millisecond
	ChimeSoundRelease  = 300 * time.Millisecond
)

// Death Crash Timing
const (
	CrashSoundDuration = 500 * time.Millisecond
	CrashSoundAttack   = 2 * time.Millisecond
	CrashSoundRelease  = 400 * time.Millisecond
)

// High Score Fanfare Timing
const (
	FanfareNote1Duration = 100 * time.Millisecond
	FanfareNote2Duration = 350 * time.Millisecond
	FanfareAttack        = 5 * time.Millisecond
	FanfareNote1Release  = 50 * time.Millisecond
	FanfareNote2Release  = 300 * time.Millisecond
)

// Tutorial Blip Timing
const (
	BlipSoundDuration = 60 * time.Millisecond
	BlipSoundAttack   = 2 * time.Millisecond
	BlipSoundRelease  = 30 * time.Millisecond
)
