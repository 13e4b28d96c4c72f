package vmath

import "math"

// Point is a position or displacement in world units
type Point struct {
	X, Y float64
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by s
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the euclidean magnitude
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns the unit vector and original length, zero-safe
func (p Point) Normalize() (Point, float64) {
	l := p.Length()
	if l == 0 {
		return Point{}, 0
	}
	return Point{X: p.X / l, Y: p.Y / l}, l
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampAxes limits each component of v to [-limit, limit] independently
func ClampAxes(v Point, limit float64) Point {
	return Point{X: Clamp(v.X, -limit, limit), Y: Clamp(v.Y, -limit, limit)}
}

// ClampInField keeps a square of the given size fully inside a field of width x height
// Degenerate fields (smaller than size) pin the square to the origin
func ClampInField(p Point, size float64, field Point) Point {
	maxX := math.Max(0, field.X-size)
	maxY := math.Max(0, field.Y-size)
	return Point{X: Clamp(p.X, 0, maxX), Y: Clamp(p.Y, 0, maxY)}
}
