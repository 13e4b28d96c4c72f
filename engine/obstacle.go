package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/shadow-dodge/config"
	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

// Obstacle is a static square hazard
type Obstacle struct {
	Pos  vmath.Point
	Size float64
}

// ObstacleField holds the obstacles of the current round
type ObstacleField struct {
	items []Obstacle
}

// Regenerate replaces all obstacles with profile.BaseObstacles + round - 1 fresh random ones
func (f *ObstacleField) Regenerate(profile config.Profile, round int, field vmath.Point, rng *rand.Rand) {
	n := profile.ObstacleCount(round)
	f.items = f.items[:0]
	for i := 0; i < n; i++ {
		f.items = append(f.items, Obstacle{
			Pos:  vmath.RandomPointIn(field, constants.ObstacleSize, rng),
			Size: constants.ObstacleSize,
		})
	}
}

// All returns the current obstacles
func (f *ObstacleField) All() []Obstacle {
	return f.items
}

// Clear removes all obstacles
func (f *ObstacleField) Clear() {
	f.items = f.items[:0]
}
