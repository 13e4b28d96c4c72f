package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelBuffer is the capacity of the terminal event channel
	EventChannelBuffer = 256
)

// Loading Screen
const (
	// LoadingTickInterval is the period of the loading bar ticker
	LoadingTickInterval = 260 * time.Millisecond

	// LoadingTickStep is the percentage added per loading tick
	LoadingTickStep = 4

	// LoadingComplete is the percentage at which the game leaves the loading screen
	LoadingComplete = 100
)

// Tutorial Timing
const (
	// TutorialSurviveDuration is the length of the live tutorial round
	TutorialSurviveDuration = 5 * time.Second

	// TutorialEchoDuration is how long the ghost explanation stays up
	TutorialEchoDuration = 2 * time.Second

	// TutorialFadeDuration is the delay between hiding the text and starting play
	TutorialFadeDuration = 800 * time.Millisecond

	// TutorialGhostSpeed is the playback speed of the ghost spawned by the tutorial
	TutorialGhostSpeed = 0.5
)

// Tutorial Messages
const (
	TutorialMessageTouch   = "Touch anywhere to move"
	TutorialMessageHold    = "Hold to activate slow motion"
	TutorialMessageSurvive = "Survive until timer ends"
	TutorialMessageEcho    = "Your past self hunts you!"
)
