package constants

// Trail Particles
const (
	TrailLifetime = 20
	TrailSize     = 6.0
)

// Death Fragments
const (
	// FragmentGrid is the side of the fragment grid, total fragments = FragmentGrid^2
	FragmentGrid     = 4
	FragmentLifetime = 40
	FragmentSpread   = 10.0
	FragmentDrag     = 0.95
)

// Camera Shake
const (
	ShakeImpulse = 50.0
	ShakeDecay   = 0.9

	// ShakeEpsilon is the intensity below which shake is snapped to zero
	ShakeEpsilon = 0.05
)
