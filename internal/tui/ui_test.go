package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweep/internal/sweep"
)

func newTestUI(t *testing.T, width, height int, mines ...sweep.Position) (*UI, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 20)
	t.Cleanup(screen.Fini)

	board, err := sweep.NewWithMines(width, height, mines)
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	ui := New(screen, board, log)
	ui.drawAll()
	screen.Show()
	return ui, screen
}

func press(ui *UI, screen tcell.SimulationScreen, keys string) {
	for _, r := range keys {
		ui.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	screen.Show()
}

func row(screen tcell.SimulationScreen, y, from, to int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := from; x < to; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func styleAt(screen tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x].Style
}

func TestInitialRender(t *testing.T) {
	_, screen := newTestUI(t, 5, 3, sweep.Position{X: 4, Y: 2})

	for y := range 3 {
		assert.Equal(t, ".....", row(screen, y, 0, 5))
	}
	assert.Equal(t, instructions, row(screen, 3, 0, len(instructions)))
	assert.Equal(t, "Mines left: 1", row(screen, 3, 30, 43))
	assert.Equal(t, cursorStyle, styleAt(screen, 0, 0))
	assert.Equal(t, normalStyle, styleAt(screen, 1, 0))
}

func TestMoveHighlightsCursor(t *testing.T) {
	ui, screen := newTestUI(t, 5, 3)

	press(ui, screen, "lj")
	assert.Equal(t, sweep.Position{X: 1, Y: 1}, ui.board.Cursor())
	assert.Equal(t, cursorStyle, styleAt(screen, 1, 1))
	assert.Equal(t, normalStyle, styleAt(screen, 0, 0))

	ui.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	ui.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	ui.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, sweep.Position{}, ui.board.Cursor())
}

func TestToggleFlagUpdatesStatus(t *testing.T) {
	ui, screen := newTestUI(t, 5, 3, sweep.Position{X: 4, Y: 2})

	press(ui, screen, "f")
	assert.Equal(t, "F", row(screen, 0, 0, 1))
	assert.Equal(t, "Mines left: 0 ", row(screen, 3, 30, 44))

	press(ui, screen, "ll")
	press(ui, screen, "F")
	assert.Equal(t, "Mines left: -1", row(screen, 3, 30, 44))

	press(ui, screen, "f")
	assert.Equal(t, "Mines left: 0 ", row(screen, 3, 30, 44))
}

func TestOpenFlaggedCellIsIgnored(t *testing.T) {
	ui, screen := newTestUI(t, 3, 3, sweep.Position{X: 2, Y: 2})

	press(ui, screen, "f ")
	assert.False(t, ui.board.IsOpened())
	assert.Equal(t, "F", row(screen, 0, 0, 1))
}

func TestOpenShowsCount(t *testing.T) {
	ui, screen := newTestUI(t, 3, 3, sweep.Position{X: 2, Y: 2})

	press(ui, screen, "lj ")
	assert.Equal(t, "...", row(screen, 0, 0, 3))
	assert.Equal(t, ".1.", row(screen, 1, 0, 3))
}

func TestOpenExpandsOneLevel(t *testing.T) {
	ui, screen := newTestUI(t, 5, 5, sweep.Position{X: 4, Y: 4})

	press(ui, screen, " ")
	assert.Equal(t, "00...", row(screen, 0, 0, 5))
	assert.Equal(t, "00...", row(screen, 1, 0, 5))
	assert.Equal(t, ".....", row(screen, 2, 0, 5))
	assert.Equal(t, 4, ui.board.Opened().Len())
}

func TestGameOver(t *testing.T) {
	ui, screen := newTestUI(t, 20, 9, sweep.Position{X: 0, Y: 0}, sweep.Position{X: 19, Y: 8})

	press(ui, screen, " ")
	assert.Equal(t, lost, ui.outcome)
	assert.Equal(t, "*", row(screen, 0, 0, 1))
	assert.Equal(t, "*", row(screen, 8, 19, 20))
	assert.Equal(t, "***************", row(screen, 2, 4, 19))
	assert.Equal(t, "*  GAME OVER  *", row(screen, 4, 4, 19))

	press(ui, screen, "l f")
	assert.Equal(t, sweep.Position{}, ui.board.Cursor())
	assert.Zero(t, ui.board.Flagged().Len())
}

func TestWin(t *testing.T) {
	ui, screen := newTestUI(t, 2, 1, sweep.Position{X: 1, Y: 0})

	press(ui, screen, " ")
	assert.Equal(t, won, ui.outcome)
	assert.True(t, ui.board.HasWon())

	press(ui, screen, "f")
	assert.Zero(t, ui.board.Flagged().Len())
}

func TestQuit(t *testing.T) {
	ui, _ := newTestUI(t, 3, 3)

	assert.True(t, ui.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, ui.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, ui.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone)))
	assert.False(t, ui.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestRunProcessesEventsUntilQuit(t *testing.T) {
	ui, screen := newTestUI(t, 5, 5, sweep.Position{X: 4, Y: 4})

	screen.InjectKey(tcell.KeyRune, 'l', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'f', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	require.NoError(t, ui.Run(context.Background()))
	assert.Equal(t, sweep.Position{X: 1, Y: 0}, ui.board.Cursor())
	assert.True(t, ui.board.IsFlagged())
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ui, _ := newTestUI(t, 3, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, ui.Run(ctx))
}
