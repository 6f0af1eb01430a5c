package tui

import "github.com/gdamore/tcell/v2"

type action int

const (
	none action = iota
	quit
	moveLeft
	moveDown
	moveUp
	moveRight
	open
	toggleFlag
)

func actionFor(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return quit
	case tcell.KeyLeft:
		return moveLeft
	case tcell.KeyDown:
		return moveDown
	case tcell.KeyUp:
		return moveUp
	case tcell.KeyRight:
		return moveRight
	case tcell.KeyRune:
	default:
		return none
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return quit
	case 'h':
		return moveLeft
	case 'j':
		return moveDown
	case 'k':
		return moveUp
	case 'l':
		return moveRight
	case ' ':
		return open
	case 'f', 'F':
		return toggleFlag
	}
	return none
}
