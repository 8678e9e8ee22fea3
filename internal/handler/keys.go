package handler

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/starshooter/internal/input"
)

// keyFor maps arrows, WASD and space to logical controls.
func keyFor(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyRune:
	default:
		return input.KeyNone
	}

	switch ev.Rune() {
	case 'a', 'A':
		return input.KeyLeft
	case 'd', 'D':
		return input.KeyRight
	case 'w', 'W':
		return input.KeyUp
	case 's', 'S':
		return input.KeyDown
	case ' ':
		return input.KeyFire
	default:
		return input.KeyNone
	}
}

func isRestart(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R')
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
