package engine

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

// Theme names a stage's decoration style
type Theme string

const (
	ThemeStars     Theme = "stars"
	ThemeClouds    Theme = "clouds"
	ThemeFog       Theme = "fog"
	ThemeCity      Theme = "city"
	ThemeLightning Theme = "lightning"
	ThemeForest    Theme = "forest"
	ThemeCyberpunk Theme = "cyberpunk"
	ThemeHorror    Theme = "horror"
	ThemeMinimal   Theme = "minimal"
	ThemeStorm     Theme = "storm"
)

// StageThemes cycles with the stage index
var StageThemes = [...]Theme{
	ThemeStars, ThemeClouds, ThemeFog, ThemeCity, ThemeLightning,
	ThemeForest, ThemeCyberpunk, ThemeHorror, ThemeMinimal, ThemeStorm,
}

// StageElement is one decoration of the current theme
type StageElement struct {
	Pos  vmath.Point
	Size float64
}

// Stage is the cosmetic environment derived from the round number
type Stage struct {
	Index    int
	Elements []StageElement
}

// Theme returns the theme of the current stage
func (s *Stage) Theme() Theme {
	return StageThemes[s.Index%len(StageThemes)]
}

// Hue returns the background hue in degrees
func (s *Stage) Hue() float64 {
	return math.Mod(float64(s.Index*constants.StageHueStep), 360)
}

// Update recomputes the stage index for round and regenerates its elements
func (s *Stage) Update(round int, field vmath.Point, rng *rand.Rand) {
	s.Index = StageIndex(round)
	s.Elements = s.Elements[:0]
	for i := 0; i < constants.StageElementCount; i++ {
		s.Elements = append(s.Elements, StageElement{
			Pos: vmath.Point{
				X: rng.Float64() * field.X,
				Y: field.Y - 100 - rng.Float64()*150,
			},
			Size: 40 + rng.Float64()*60,
		})
	}
}

// DecorItem is a background tree or house
type DecorItem struct {
	Pos    vmath.Point
	Width  float64
	Height float64
}

// Decor is the slowly scrolling parallax background
type Decor struct {
	Trees  []DecorItem
	Houses []DecorItem
	Offset float64
}

// Regenerate scatters trees and houses along the bottom of the field
func (d *Decor) Regenerate(field vmath.Point, rng *rand.Rand) {
	d.Trees = d.Trees[:0]
	d.Houses = d.Houses[:0]
	for i := 0; i < constants.DecorTreeCount; i++ {
		size := 40 + rng.Float64()*40
		d.Trees = append(d.Trees, DecorItem{
			Pos:    vmath.Point{X: rng.Float64() * field.X, Y: field.Y - 120 - rng.Float64()*80},
			Width:  size,
			Height: size,
		})
	}
	for i := 0; i < constants.DecorHouseCount; i++ {
		d.Houses = append(d.Houses, DecorItem{
			Pos:    vmath.Point{X: rng.Float64() * field.X, Y: field.Y - 100},
			Width:  constants.DecorHouseSize,
			Height: constants.DecorHouseSize,
		})
	}
}

// Advance scrolls the parallax by one frame
func (d *Decor) Advance() {
	d.Offset += constants.DecorScrollSpeed
}

// Scrolled returns x shifted left by offset*rate and wrapped into [0, width)
func (d *Decor) Scrolled(x, rate, width float64) float64 {
	if width <= 0 {
		return x
	}
	s := math.Mod(x-d.Offset*rate, width)
	if s < 0 {
		s += width
	}
	return s
}
