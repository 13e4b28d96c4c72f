package vmath

// Overlaps reports whether the axis-aligned squares at a (side sizeA) and b (side sizeB) intersect
// All four comparisons are strict: squares sharing only an edge do not overlap
func Overlaps(a, b Point, sizeA, sizeB float64) bool {
	return a.X < b.X+sizeB &&
		a.X+sizeA > b.X &&
		a.Y < b.Y+sizeB &&
		a.Y+sizeA > b.Y
}
