package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/shadow-dodge/config"
	"github.com/lixenwraith/shadow-dodge/engine"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

const (
	hudRows      = 1
	loadingWidth = 40
)

// Glyphs
const (
	glyphSolid  = '█'
	glyphShade  = '▓'
	glyphLight  = '░'
	glyphDot    = '·'
	glyphStar   = '*'
	glyphBarOn  = '━'
	glyphBarOff = '─'
)

// Snapshotter produces the drawables of a frame
type Snapshotter interface {
	Snapshot(f *engine.Frame)
}

// TerminalRenderer projects engine frames onto a tcell screen
type TerminalRenderer struct {
	screen   tcell.Screen
	viewport Viewport
	frame    engine.Frame
	bg       colorful.Color
	muted    bool
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen, field vmath.Point) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{
		screen:   screen,
		viewport: NewViewport(w, h, field),
	}
}

// Resize recomputes the viewport after a terminal resize
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.viewport = NewViewport(w, h, r.viewport.Field)
}

// Viewport returns the current world-to-cell mapping
func (r *TerminalRenderer) Viewport() Viewport {
	return r.viewport
}

// SetMuted toggles the mute indicator in the HUD
func (r *TerminalRenderer) SetMuted(muted bool) {
	r.muted = muted
}

// RenderFrame draws one complete frame and shows it
func (r *TerminalRenderer) RenderFrame(src Snapshotter) {
	src.Snapshot(&r.frame)
	f := &r.frame

	r.bg = StageBackground(f.Hue)
	base := tcell.StyleDefault.Background(ToTcell(r.bg))
	r.screen.Fill(' ', base)

	shake := f.Shake
	for _, rect := range f.Stage {
		r.drawRect(rect, shake, RgbStageElement, glyphDot)
	}
	for _, rect := range f.Houses {
		r.drawRect(rect, shake, RgbDecor, glyphLight)
	}
	for _, rect := range f.Trees {
		r.drawRect(rect, shake, RgbDecor, glyphStar)
	}

	if f.Mode == engine.ModeTutorial || f.Mode == engine.ModePlaying || f.Mode == engine.ModeDead {
		for _, rect := range f.Obstacles {
			r.drawRect(rect, shake, RgbObstacle, glyphShade)
		}
		for _, rect := range f.Trail {
			r.drawRect(rect, shake, RgbTrail, glyphDot)
		}
		for _, rect := range f.Ghosts {
			r.drawRect(rect, shake, RgbGhost, glyphShade)
		}
		if f.PlayerAlive {
			r.drawRect(f.Player, shake, RgbPlayer, glyphSolid)
		}
		for _, rect := range f.Fragments {
			r.drawRect(rect, shake, RgbFragment, glyphSolid)
		}
	}

	r.drawHUD(f)

	switch f.Mode {
	case engine.ModeLoading:
		r.drawLoading(f.HUD.LoadingPercent)
	case engine.ModeDifficultySelect:
		r.drawDifficultyMenu()
	case engine.ModeTutorial:
		if f.HUD.TutorialVisible {
			r.drawCentered(r.viewport.Y+r.viewport.Rows/3, f.HUD.TutorialMessage, r.textStyle(RgbHighlight))
		}
	case engine.ModeDead:
		if f.HUD.GameOverVisible {
			r.drawGameOver(&f.HUD)
		}
	}

	r.screen.Show()
}

// drawRect fills the cells under a world square, blended over the background by its alpha
func (r *TerminalRenderer) drawRect(rect engine.Rect, shake vmath.Point, c colorful.Color, ch rune) {
	if rect.Alpha <= 0 {
		return
	}
	fg := ToTcell(Blend(c, r.bg, rect.Alpha))
	style := tcell.StyleDefault.Foreground(fg).Background(ToTcell(r.bg))

	x0, y0, x1, y1 := r.viewport.Span(rect.Pos.Add(shake), rect.Size)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if r.viewport.Contains(x, y) {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) textStyle(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(ToTcell(r.bg))
}

// drawText writes s from column x, returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func (r *TerminalRenderer) drawCentered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := max((w-runewidth.StringWidth(s))/2, 0)
	r.drawText(x, y, s, style)
}

// drawHUD renders the status row: round, multiplier, countdown, score and high score
func (r *TerminalRenderer) drawHUD(f *engine.Frame) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(RgbText).Background(RgbStatusBack)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	h := f.HUD
	var left string
	if h.Tier != "" {
		left = fmt.Sprintf(" %s  Round %d  x%d  %ds  Score %d", h.Tier, h.Round, h.Multiplier, h.TimeLeft, h.Score)
	} else {
		left = " SHADOW DODGE"
	}
	r.drawText(0, 0, left, style)

	right := fmt.Sprintf("High %d ", h.HighScore)
	if r.muted {
		right = "[muted] " + right
	}
	r.drawText(w-runewidth.StringWidth(right), 0, right, style.Foreground(RgbHighlight))
}

func (r *TerminalRenderer) drawLoading(percent int) {
	mid := r.viewport.Y + r.viewport.Rows/2
	r.drawCentered(mid-1, "Loading...", r.textStyle(RgbText))

	w, _ := r.screen.Size()
	width := min(loadingWidth, w)
	x0 := (w - width) / 2
	filled := width * percent / 100
	for i := 0; i < width; i++ {
		ch, fg := glyphBarOff, RgbBarEmpty
		if i < filled {
			ch, fg = glyphBarOn, RgbBarFill
		}
		r.screen.SetContent(x0+i, mid, ch, nil, r.textStyle(fg))
	}
	r.drawCentered(mid+1, fmt.Sprintf("%d%%", percent), r.textStyle(RgbTextDim))
}

func (r *TerminalRenderer) drawDifficultyMenu() {
	top := r.viewport.Y + r.viewport.Rows/3
	r.drawCentered(top, "Choose difficulty", r.textStyle(RgbHighlight))
	for i, t := range config.Tiers() {
		r.drawCentered(top+2+i, fmt.Sprintf("[%d] %-8s", i+1, t), r.textStyle(RgbText))
	}
	r.drawCentered(top+7, "q to quit", r.textStyle(RgbTextDim))
}

func (r *TerminalRenderer) drawGameOver(h *engine.HUD) {
	mid := r.viewport.Y + r.viewport.Rows/2
	r.drawCentered(mid-2, "GAME OVER", r.textStyle(RgbObstacleText))
	r.drawCentered(mid, fmt.Sprintf("Final score %d", h.LastScore), r.textStyle(RgbText))
	high := fmt.Sprintf("High score %d", h.HighScore)
	if h.NewHighScore {
		high = "New high score! " + high
	}
	r.drawCentered(mid+1, high, r.textStyle(RgbHighlight))
	r.drawCentered(mid+3, "r to restart  q to quit", r.textStyle(RgbTextDim))
}
