package render

import (
	"math"

	"github.com/lixenwraith/shadow-dodge/vmath"
)

// Viewport maps world coordinates onto a rectangle of terminal cells
type Viewport struct {
	X, Y       int // top-left cell of the play area
	Cols, Rows int
	Field      vmath.Point
}

// NewViewport places the play area below a one-row HUD filling the rest of the screen
func NewViewport(screenW, screenH int, field vmath.Point) Viewport {
	return Viewport{
		X:     0,
		Y:     hudRows,
		Cols:  max(screenW, 1),
		Rows:  max(screenH-hudRows, 1),
		Field: field,
	}
}

// cellW and cellH are world units per cell
func (v Viewport) cellW() float64 { return v.Field.X / float64(v.Cols) }
func (v Viewport) cellH() float64 { return v.Field.Y / float64(v.Rows) }

// ToCell returns the screen cell containing world point p
func (v Viewport) ToCell(p vmath.Point) (int, int) {
	col := int(math.Floor(p.X / v.cellW()))
	row := int(math.Floor(p.Y / v.cellH()))
	return v.X + col, v.Y + row
}

// ToWorld returns the world point at the centre of a screen cell
func (v Viewport) ToWorld(col, row int) vmath.Point {
	return vmath.Point{
		X: (float64(col-v.X) + 0.5) * v.cellW(),
		Y: (float64(row-v.Y) + 0.5) * v.cellH(),
	}
}

// Contains reports whether a screen cell lies inside the play area
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Cols && row >= v.Y && row < v.Y+v.Rows
}

// Span returns the half-open cell range covered by a world square, at least one cell wide
func (v Viewport) Span(pos vmath.Point, size float64) (x0, y0, x1, y1 int) {
	x0, y0 = v.ToCell(pos)
	x1 = v.X + int(math.Ceil((pos.X+size)/v.cellW()))
	y1 = v.Y + int(math.Ceil((pos.Y+size)/v.cellH()))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	return x0, y0, x1, y1
}
