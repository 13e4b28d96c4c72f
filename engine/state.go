package engine

import (
	"github.com/lixenwraith/shadow-dodge/config"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

// Input is the latest pointer state written by input callbacks
type Input struct {
	Target    vmath.Point
	HasTarget bool
	Slow      bool
}

// target returns a pointer to the target or nil
func (in *Input) target() *vmath.Point {
	if !in.HasTarget {
		return nil
	}
	return &in.Target
}

// SimulationState is the single aggregate owned by a Game and mutated only by its frame step
type SimulationState struct {
	Field vmath.Point

	Player    Player
	Path      []vmath.Point
	Ghosts    GhostArena
	Obstacles ObstacleField
	Progress  Progress

	// Difficulty is fixed for a life once selected
	Tier    config.Tier
	Profile config.Profile
	HasTier bool

	HasDied         bool
	GameOverVisible bool
	LastScore       int
	HighScore       int
	NewHighScore    bool

	TutorialDone bool
	Tutorial     Tutorial

	LoadingPercent int

	Effects Effects
	Stage   Stage
	Decor   Decor

	Input       Input
	FrameNumber uint64
}
