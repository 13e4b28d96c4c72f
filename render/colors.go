package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette
var (
	RgbPlayer       = colorful.Color{R: 0.30, G: 0.85, B: 1.00} // Cyan
	RgbGhost        = colorful.Color{R: 0.75, G: 0.45, B: 1.00} // Violet
	RgbObstacle     = colorful.Color{R: 0.95, G: 0.30, B: 0.30} // Red
	RgbTrail        = colorful.Color{R: 0.80, G: 0.95, B: 1.00} // Pale cyan
	RgbFragment     = colorful.Color{R: 1.00, G: 0.70, B: 0.20} // Orange
	RgbDecor        = colorful.Color{R: 0.55, G: 0.60, B: 0.65} // Gray
	RgbStageElement = colorful.Color{R: 0.90, G: 0.90, B: 0.95} // Near white

	RgbText         = tcell.NewRGBColor(255, 255, 255) // White
	RgbTextDim      = tcell.NewRGBColor(160, 160, 170) // Gray
	RgbHighlight    = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbObstacleText = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbBarFill      = tcell.NewRGBColor(100, 200, 120) // Green
	RgbBarEmpty     = tcell.NewRGBColor(50, 50, 60)    // Dark gray
	RgbStatusBack   = tcell.NewRGBColor(20, 20, 28)    // Near black
)

// StageBackground returns the dark background color for a stage hue in degrees
func StageBackground(hue float64) colorful.Color {
	return colorful.Hsl(hue, 0.35, 0.10)
}

// Blend mixes fg over bg by alpha in [0,1]
func Blend(fg, bg colorful.Color, alpha float64) colorful.Color {
	return bg.BlendRgb(fg, min(max(alpha, 0), 1)).Clamped()
}

// ToTcell converts a colorful color to a tcell RGB color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
