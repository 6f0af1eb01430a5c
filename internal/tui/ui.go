package tui

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweep/internal/sweep"
)

type outcome int

const (
	playing outcome = iota
	lost
	won
)

// UI draws a [sweep.Board] on a terminal screen and feeds it key presses.
// All board calls happen on the goroutine running [UI.Run].
type UI struct {
	screen  tcell.Screen
	board   *sweep.Board
	log     logrus.FieldLogger
	outcome outcome
}

func New(screen tcell.Screen, board *sweep.Board, log logrus.FieldLogger) *UI {
	return &UI{
		screen: screen,
		board:  board,
		log:    log,
	}
}

// Run draws the board and processes events until the player quits, the
// screen is finalized or ctx is done.
func (u *UI) Run(ctx context.Context) error {
	u.drawAll()
	u.screen.Show()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !u.HandleEvent(ev) {
			u.log.Info("player quit")
			return nil
		}
		u.screen.Show()
	}
}

// HandleEvent applies ev and reports whether the game loop should continue.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.drawAll()
		u.screen.Sync()
	case *tcell.EventKey:
		a := actionFor(ev)
		if a == quit {
			return false
		}
		if u.outcome != playing {
			return true
		}
		u.apply(a)
	}
	return true
}

func (u *UI) apply(a action) {
	switch a {
	case moveLeft:
		u.move(-1, 0)
	case moveDown:
		u.move(0, 1)
	case moveUp:
		u.move(0, -1)
	case moveRight:
		u.move(1, 0)
	case open:
		u.open()
	case toggleFlag:
		u.toggleFlag()
	}
}

func (u *UI) move(dx, dy int) {
	u.drawCell(u.board.Cursor(), false)
	u.board.Move(dx, dy)
	u.drawCell(u.board.Cursor(), true)
}

func (u *UI) open() {
	if u.board.IsFlagged() {
		return
	}
	err := u.board.Open()
	if errors.Is(err, sweep.ErrGameOver) {
		u.outcome = lost
		u.log.WithFields(logrus.Fields{
			"position": u.board.Cursor(),
			"opened":   u.board.Opened().Len(),
		}).Info("game over")
		u.revealMines()
		u.drawBanner("GAME OVER")
		return
	}
	for _, p := range u.board.OpenNeighborhood() {
		u.drawCell(p, false)
	}
	u.drawCell(u.board.Cursor(), true)

	if u.board.HasWon() {
		u.outcome = won
		u.log.WithField("mines", u.board.Mines().Len()).Info("game won")
		u.drawBanner("YOU WIN")
	}
}

func (u *UI) toggleFlag() {
	u.board.ToggleFlag()
	u.drawCell(u.board.Cursor(), true)
	u.drawRemainingMines()
}
