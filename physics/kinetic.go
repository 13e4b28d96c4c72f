package physics

import "github.com/lixenwraith/shadow-dodge/vmath"

// Kinetic is a point mass integrated once per frame, units are world units per frame
type Kinetic struct {
	Pos vmath.Point
	Vel vmath.Point
}

// Seek adds accel toward target when the target is farther than deadZone
// Returns true if a force was applied
func Seek(k *Kinetic, target vmath.Point, accel, deadZone float64) bool {
	dir, dist := target.Sub(k.Pos).Normalize()
	if dist <= deadZone {
		return false
	}
	k.Vel = k.Vel.Add(dir.Scale(accel))
	return true
}

// ApplyDrag scales velocity by factor (friction, exponential decay)
func ApplyDrag(k *Kinetic, factor float64) {
	k.Vel = k.Vel.Scale(factor)
}

// CapAxes clamps each velocity axis to [-maxSpeed, maxSpeed]
func CapAxes(k *Kinetic, maxSpeed float64) {
	k.Vel = vmath.ClampAxes(k.Vel, maxSpeed)
}

// Integrate advances position by one frame of velocity
func Integrate(k *Kinetic) {
	k.Pos = k.Pos.Add(k.Vel)
}

// IsMoving reports whether either velocity axis exceeds threshold in magnitude
func IsMoving(k *Kinetic, threshold float64) bool {
	return k.Vel.X > threshold || k.Vel.X < -threshold ||
		k.Vel.Y > threshold || k.Vel.Y < -threshold
}
