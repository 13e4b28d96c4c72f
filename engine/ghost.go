package engine

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

// Ghost replays a recorded path on a loop
// The path itself lives in the owning GhostArena
type Ghost struct {
	start  int
	length int

	Frame float64 // fractional playback index
	Speed float64 // frames advanced per simulation step, fixed at spawn
	Pos   vmath.Point
}

// Len returns the recorded path length
func (g *Ghost) Len() int {
	return g.length
}

// Inert reports whether the ghost has nothing to replay
func (g *Ghost) Inert() bool {
	return g.length == 0
}

// GhostArena owns all ghosts of a life
// Paths are appended to one shared point buffer, each ghost stores its bounds
type GhostArena struct {
	points []vmath.Point
	ghosts []Ghost
}

// GhostSpeed returns the playback speed of a ghost spawned at the end of round
func GhostSpeed(round int) float64 {
	return constants.GhostBaseSpeed + float64(round)*constants.GhostSpeedPerRound
}

// Spawn copies path into the arena and adds a ghost at a random phase in [0, len(path))
// Returns the new ghost's index
func (a *GhostArena) Spawn(path []vmath.Point, speed float64, rng *rand.Rand) int {
	start := len(a.points)
	a.points = append(a.points, path...)

	g := Ghost{
		start:  start,
		length: len(path),
		Speed:  speed,
	}
	if len(path) > 0 {
		g.Frame = rng.Float64() * float64(len(path))
	}

	a.ghosts = append(a.ghosts, g)
	return len(a.ghosts) - 1
}

// Update moves every non-inert ghost to its current path sample and advances playback
func (a *GhostArena) Update(slow bool) {
	rate := 1.0
	if slow {
		rate = constants.SlowMotionFactor
	}

	for i := range a.ghosts {
		g := &a.ghosts[i]
		if g.length == 0 {
			continue
		}
		index := int(math.Floor(g.Frame)) % g.length
		g.Pos = a.points[g.start+index]
		g.Frame += g.Speed * rate
	}
}

// Len returns the number of ghosts
func (a *GhostArena) Len() int {
	return len(a.ghosts)
}

// At returns the ghost at index i
func (a *GhostArena) At(i int) *Ghost {
	return &a.ghosts[i]
}

// Path returns a read-only view of ghost i's recorded path
func (a *GhostArena) Path(i int) []vmath.Point {
	g := a.ghosts[i]
	end := g.start + g.length
	return a.points[g.start:end:end]
}

// Reset drops all ghosts, keeping buffer capacity for the next life
func (a *GhostArena) Reset() {
	a.points = a.points[:0]
	a.ghosts = a.ghosts[:0]
}
