package handler

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/starshooter/internal/game"
	"github.com/ugaemi/starshooter/internal/input"
	"github.com/ugaemi/starshooter/internal/terminal"
)

// Game is the part of a session the router drives.
type Game interface {
	Restart()
	Resize(vp game.Viewport)
}

// Layout locates touch buttons on screen.
type Layout interface {
	ButtonAt(x, y int) input.Button
	Sync()
}

// Router dispatches screen events to the controls, the game and the quit hook.
type Router struct {
	controls *input.Controls
	game     Game
	layout   Layout
	cellW    float64
	cellH    float64

	// touching is the button under a held mouse button.
	touching input.Button

	// OnQuit is called when the player asks to leave.
	OnQuit func()
}

// NewRouter creates a new event router.
func NewRouter(controls *input.Controls, g Game, layout Layout, cellW, cellH float64) *Router {
	return &Router{
		controls: controls,
		game:     g,
		layout:   layout,
		cellW:    cellW,
		cellH:    cellH,
	}
}

// HandleEvent routes one screen event. It is called from the event pump.
func (r *Router) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		r.handleKey(ev)
	case *tcell.EventMouse:
		r.handleMouse(ev)
	case *tcell.EventResize:
		r.handleResize(ev)
	}
}

func (r *Router) handleKey(ev *tcell.EventKey) {
	switch {
	case isQuit(ev):
		slog.Info("quit requested")
		if r.OnQuit != nil {
			r.OnQuit()
		}
	case isRestart(ev):
		r.controls.Reset()
		r.game.Restart()
	default:
		if k := keyFor(ev); k != input.KeyNone {
			r.controls.KeyDown(k)
		}
	}
}

func (r *Router) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		if r.touching != input.ButtonNone {
			r.controls.TouchEndAll()
			r.touching = input.ButtonNone
		}
		return
	}

	b := r.layout.ButtonAt(ev.Position())
	if b == r.touching {
		return
	}
	if r.touching != input.ButtonNone {
		r.controls.TouchEnd(r.touching)
	}
	r.touching = b
	r.controls.TouchStart(b)
	slog.Debug("touch", "button", b)
}

func (r *Router) handleResize(ev *tcell.EventResize) {
	cols, rows := ev.Size()
	vp, err := terminal.ViewportFor(cols, rows, r.cellW, r.cellH)
	if err != nil {
		slog.Warn("ignoring resize", "cols", cols, "rows", rows, "error", err)
		return
	}
	r.layout.Sync()
	r.game.Resize(vp)
}
