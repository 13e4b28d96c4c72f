package engine

import (
	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/physics"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

// Player is the controlled square; Pos is its top-left corner
type Player struct {
	physics.Kinetic
	Size         float64
	Acceleration float64
	Friction     float64
}

// NewPlayer places a player at the field centre at rest
func NewPlayer(field vmath.Point) Player {
	return Player{
		Kinetic:      physics.Kinetic{Pos: field.Scale(0.5)},
		Size:         constants.PlayerSize,
		Acceleration: constants.PlayerAcceleration,
		Friction:     constants.PlayerFriction,
	}
}

// MaxSpeed returns the per-axis speed cap
func MaxSpeed(slow bool) float64 {
	if slow {
		return constants.PlayerMaxSpeedSlow
	}
	return constants.PlayerMaxSpeed
}

// Update integrates one frame of seek-and-drag movement toward target (nil = coast)
// Position is clamped inside the field, velocity is left as-is on wall contact
// Returns true when the player moves fast enough to leave a trail particle
func (p *Player) Update(target *vmath.Point, slow bool, field vmath.Point) bool {
	if target != nil {
		physics.Seek(&p.Kinetic, *target, p.Acceleration, constants.PlayerSeekDeadZone)
	}

	physics.ApplyDrag(&p.Kinetic, p.Friction)
	physics.CapAxes(&p.Kinetic, MaxSpeed(slow))
	physics.Integrate(&p.Kinetic)

	p.Pos = vmath.ClampInField(p.Pos, p.Size, field)

	return physics.IsMoving(&p.Kinetic, constants.PlayerTrailThreshold)
}
