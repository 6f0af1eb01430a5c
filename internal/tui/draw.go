package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/vancomm/sweep/internal/sweep"
)

const (
	instructions       = "q=Quit, space=Open, f=Flag"
	remainingMinesCol  = 30
	bannerInnerPadding = 2
)

var (
	normalStyle = tcell.StyleDefault
	cursorStyle = tcell.StyleDefault.Reverse(true)
)

func (u *UI) write(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		u.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (u *UI) clearToEOL(x, y int) {
	w, _ := u.screen.Size()
	for ; x < w; x++ {
		u.screen.SetContent(x, y, ' ', nil, normalStyle)
	}
}

func (u *UI) statusLine() int {
	return u.board.Height()
}

func (u *UI) glyph(p sweep.Position) rune {
	switch u.board.StatusAt(p) {
	case sweep.StatusFlagged:
		return 'F'
	case sweep.StatusOpened:
		return rune('0' + u.board.NearbyMinesCountAt(p))
	default:
		return '.'
	}
}

func (u *UI) drawCell(p sweep.Position, highlight bool) {
	style := normalStyle
	if highlight {
		style = cursorStyle
	}
	u.screen.SetContent(p.X, p.Y, u.glyph(p), nil, style)
}

func (u *UI) drawAll() {
	u.screen.Clear()
	for y := range u.board.Height() {
		for x := range u.board.Width() {
			u.drawCell(sweep.Position{X: x, Y: y}, false)
		}
	}
	u.drawCell(u.board.Cursor(), u.outcome == playing)
	u.write(0, u.statusLine(), instructions, normalStyle)
	u.drawRemainingMines()

	switch u.outcome {
	case lost:
		u.revealMines()
		u.drawBanner("GAME OVER")
	case won:
		u.drawBanner("YOU WIN")
	}
}

func (u *UI) drawRemainingMines() {
	text := fmt.Sprintf("Mines left: %d", u.board.RemainingMines())
	u.write(remainingMinesCol, u.statusLine(), text, normalStyle)
	u.clearToEOL(remainingMinesCol+len(text), u.statusLine())
}

func (u *UI) revealMines() {
	for _, p := range u.board.Mines().Sorted() {
		u.screen.SetContent(p.X, p.Y, '*', nil, normalStyle)
	}
}

// drawBanner draws a five-line box with text centered on the board.
func (u *UI) drawBanner(text string) {
	pad := strings.Repeat(" ", bannerInnerPadding)
	inner := len(text) + 2*bannerInnerPadding
	middle := (u.board.Height() - 1) / 2
	left := (u.board.Width()-1)/2 - inner/2 + 1

	border := strings.Repeat("*", inner+2)
	blank := "*" + strings.Repeat(" ", inner) + "*"

	u.write(left, middle-2, border, normalStyle)
	u.write(left, middle-1, blank, normalStyle)
	u.write(left, middle, "*"+pad+text+pad+"*", normalStyle)
	u.write(left, middle+1, blank, normalStyle)
	u.write(left, middle+2, border, normalStyle)
}
