package engine

import (
	"math"

	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

// Rect is one drawable square in world units
type Rect struct {
	Pos   vmath.Point
	Size  float64
	Alpha float64
}

// HUD carries the text sink values of a frame
type HUD struct {
	Round           int
	Multiplier      int
	TimeLeft        int
	Score           int
	LastScore       int
	HighScore       int
	NewHighScore    bool
	GameOverVisible bool
	TutorialMessage string
	TutorialVisible bool
	LoadingPercent  int
	Tier            string
}

// Frame is the per-frame list of drawables handed to a renderer
// Slices are reused between Snapshot calls on the same Frame
type Frame struct {
	Mode  Mode
	Field vmath.Point
	Shake vmath.Point

	Theme Theme
	Hue   float64

	Player      Rect
	PlayerAlive bool
	Ghosts      []Rect
	Obstacles   []Rect
	Trail       []Rect
	Fragments   []Rect
	Stage       []Rect
	Trees       []Rect
	Houses      []Rect

	HUD HUD
}

// Snapshot fills f with the drawables of the current state
func (g *Game) Snapshot(f *Frame) {
	s := g.state
	now := g.clock.Now()

	f.Mode = g.Mode()
	f.Field = s.Field
	f.Shake = s.Effects.ShakeOffset
	f.Theme = s.Stage.Theme()
	f.Hue = s.Stage.Hue()

	f.Player = Rect{Pos: s.Player.Pos, Size: s.Player.Size, Alpha: 1}
	f.PlayerAlive = !s.HasDied

	f.Ghosts = f.Ghosts[:0]
	for i := 0; i < s.Ghosts.Len(); i++ {
		gh := s.Ghosts.At(i)
		if gh.Inert() {
			continue
		}
		f.Ghosts = append(f.Ghosts, Rect{Pos: gh.Pos, Size: s.Player.Size, Alpha: 0.6})
	}

	f.Obstacles = f.Obstacles[:0]
	for _, o := range s.Obstacles.All() {
		f.Obstacles = append(f.Obstacles, Rect{Pos: o.Pos, Size: o.Size, Alpha: 1})
	}

	f.Trail = f.Trail[:0]
	for _, p := range s.Effects.Trail {
		f.Trail = append(f.Trail, Rect{
			Pos:   p.Pos,
			Size:  constants.TrailSize,
			Alpha: float64(p.Life) / constants.TrailLifetime,
		})
	}

	f.Fragments = f.Fragments[:0]
	for _, fr := range s.Effects.Fragments {
		f.Fragments = append(f.Fragments, Rect{
			Pos:   fr.Pos,
			Size:  fr.Size,
			Alpha: float64(fr.Life) / constants.FragmentLifetime,
		})
	}

	f.Stage = f.Stage[:0]
	for _, e := range s.Stage.Elements {
		f.Stage = append(f.Stage, Rect{Pos: e.Pos, Size: e.Size, Alpha: 0.3})
	}

	f.Trees = f.Trees[:0]
	for _, t := range s.Decor.Trees {
		pos := vmath.Point{X: s.Decor.Scrolled(t.Pos.X, 1, s.Field.X), Y: t.Pos.Y}
		f.Trees = append(f.Trees, Rect{Pos: pos, Size: t.Width, Alpha: 0.25})
	}
	f.Houses = f.Houses[:0]
	for _, h := range s.Decor.Houses {
		pos := vmath.Point{X: s.Decor.Scrolled(h.Pos.X, 0.5, s.Field.X), Y: h.Pos.Y}
		f.Houses = append(f.Houses, Rect{Pos: pos, Size: h.Width, Alpha: 0.25})
	}

	hud := HUD{
		Round:           s.Progress.Round,
		Multiplier:      s.Progress.Multiplier,
		Score:           int(math.Floor(s.Progress.Score)),
		LastScore:       s.LastScore,
		HighScore:       s.HighScore,
		NewHighScore:    s.NewHighScore,
		GameOverVisible: s.GameOverVisible,
		TutorialMessage: s.Tutorial.Message,
		TutorialVisible: s.Tutorial.Visible,
		LoadingPercent:  s.LoadingPercent,
	}
	if s.HasTier {
		hud.Tier = s.Tier.String()
		hud.TimeLeft = s.Progress.TimeLeft(now, s.Profile.RoundDuration)
	}
	f.HUD = hud
}
