// Package input translates terminal events into game commands.
package input

import (
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shadow-dodge/config"
	"github.com/lixenwraith/shadow-dodge/engine"
	"github.com/lixenwraith/shadow-dodge/render"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

// Action is a request the handler cannot fulfil on the game itself
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionMute
	ActionResize
)

// Game is the part of engine.Game driven by input
type Game interface {
	Mode() engine.Mode
	PointerDown(p vmath.Point)
	PointerMove(p vmath.Point)
	PointerUp()
	SelectDifficulty(t config.Tier) error
	Restart() error
	SkipLoading()
}

// ViewportFunc returns the current world-to-cell mapping
type ViewportFunc func() render.Viewport

// Handler maps tcell events to game calls
// Pointer positions are shifted by half the player size so the player centres under the cursor
type Handler struct {
	game       Game
	viewport   ViewportFunc
	centre     float64
	buttonDown bool
	last       vmath.Point
}

// NewHandler creates an input handler for a player of the given size
func NewHandler(game Game, viewport ViewportFunc, playerSize float64) *Handler {
	return &Handler{
		game:     game,
		viewport: viewport,
		centre:   playerSize / 2,
	}
}

// HandleEvent processes one terminal event
func (h *Handler) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

func (h *Handler) handleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		h.restart()
		return ActionNone
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		return ActionQuit
	case 'm', 'M':
		return ActionMute
	case 'r', 'R':
		h.restart()
	case ' ':
		h.tap()
	case '1', '2', '3', '4':
		h.selectTier(config.Tier(r - '1'))
	}
	return ActionNone
}

// handleMouse turns button 1 press, drag and release into pointer down, move and up
func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	vp := h.viewport()
	if !h.buttonDown && !vp.Contains(x, y) {
		return
	}
	p := h.toWorld(vp, x, y)

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !h.buttonDown:
		h.buttonDown = true
		h.last = p
		if h.game.Mode() == engine.ModeLoading {
			h.game.SkipLoading()
			return
		}
		h.game.PointerDown(p)
	case pressed:
		h.last = p
		h.game.PointerMove(p)
	case h.buttonDown:
		h.buttonDown = false
		h.game.PointerUp()
	}
}

// toWorld returns the player top-left that centres the player on a cell
func (h *Handler) toWorld(vp render.Viewport, x, y int) vmath.Point {
	p := vp.ToWorld(x, y)
	return p.Sub(vmath.Point{X: h.centre, Y: h.centre})
}

// tap is a press and release at the last pointer position, for keyboard-only prompts
func (h *Handler) tap() {
	if h.game.Mode() == engine.ModeLoading {
		h.game.SkipLoading()
		return
	}
	if h.buttonDown {
		return
	}
	h.game.PointerDown(h.last)
	h.game.PointerUp()
}

func (h *Handler) selectTier(t config.Tier) {
	if err := h.game.SelectDifficulty(t); err != nil && !errors.Is(err, engine.ErrWrongMode) {
		log.Printf("select difficulty: %v", err)
	}
}

func (h *Handler) restart() {
	if err := h.game.Restart(); err == nil {
		h.buttonDown = false
	}
}
