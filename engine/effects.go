package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/physics"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

// Particle is a fading trail dot
type Particle struct {
	Pos  vmath.Point
	Life int
}

// Fragment is one piece of the player's death burst
type Fragment struct {
	physics.Kinetic
	Size float64
	Life int
}

// Effects holds purely visual state that keeps decaying while the simulation is frozen
type Effects struct {
	Trail       []Particle
	Fragments   []Fragment
	Shake       float64
	ShakeOffset vmath.Point
}

// EmitTrail spawns a trail particle at pos
func (e *Effects) EmitTrail(pos vmath.Point) {
	e.Trail = append(e.Trail, Particle{Pos: pos, Life: constants.TrailLifetime})
}

// DecayTrail ages trail particles and drops expired ones in place
func (e *Effects) DecayTrail() {
	kept := e.Trail[:0]
	for _, p := range e.Trail {
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	e.Trail = kept
}

// Burst spawns a FragmentGrid x FragmentGrid grid of pieces covering a square of size at pos
func (e *Effects) Burst(pos vmath.Point, size float64, rng *rand.Rand) {
	piece := size / constants.FragmentGrid
	for i := 0; i < constants.FragmentGrid*constants.FragmentGrid; i++ {
		offset := vmath.Point{
			X: float64(i%constants.FragmentGrid) * piece,
			Y: float64(i/constants.FragmentGrid) * piece,
		}
		e.Fragments = append(e.Fragments, Fragment{
			Kinetic: physics.Kinetic{
				Pos: pos.Add(offset),
				Vel: vmath.Jitter(constants.FragmentSpread, rng),
			},
			Size: piece,
			Life: constants.FragmentLifetime,
		})
	}
}

// DecayFragments moves, drags and ages fragments, dropping expired ones
func (e *Effects) DecayFragments() {
	kept := e.Fragments[:0]
	for _, f := range e.Fragments {
		physics.Integrate(&f.Kinetic)
		physics.ApplyDrag(&f.Kinetic, constants.FragmentDrag)
		f.Life--
		if f.Life > 0 {
			kept = append(kept, f)
		}
	}
	e.Fragments = kept
}

// Kick sets camera shake to intensity
func (e *Effects) Kick(intensity float64) {
	e.Shake = intensity
}

// DecayShake draws this frame's jitter offset and decays intensity
func (e *Effects) DecayShake(rng *rand.Rand) {
	if e.Shake <= 0 {
		e.ShakeOffset = vmath.Point{}
		return
	}
	e.ShakeOffset = vmath.Jitter(e.Shake, rng)
	e.Shake *= constants.ShakeDecay
	if e.Shake < constants.ShakeEpsilon {
		e.Shake = 0
	}
}

// Clear drops all visual effects
func (e *Effects) Clear() {
	e.Trail = e.Trail[:0]
	e.Fragments = e.Fragments[:0]
	e.Shake = 0
	e.ShakeOffset = vmath.Point{}
}
