package vmath

import "math/rand/v2"

// RandomPointIn returns a uniform point in [0, field.X-size) x [0, field.Y-size)
// Axes narrower than size collapse to 0
func RandomPointIn(field Point, size float64, rng *rand.Rand) Point {
	var p Point
	if w := field.X - size; w > 0 {
		p.X = rng.Float64() * w
	}
	if h := field.Y - size; h > 0 {
		p.Y = rng.Float64() * h
	}
	return p
}

// Jitter returns a vector with each component uniform in [-spread/2, spread/2)
func Jitter(spread float64, rng *rand.Rand) Point {
	return Point{
		X: (rng.Float64() - 0.5) * spread,
		Y: (rng.Float64() - 0.5) * spread,
	}
}
