package app

import (
	"context"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/sweep/internal/config"
	"github.com/vancomm/sweep/internal/sweep"
	"github.com/vancomm/sweep/internal/tui"
)

type ScreenFunc func() (tcell.Screen, error)

type App struct {
	logger    *logrus.Logger
	config    *config.Config
	newScreen ScreenFunc
}

func New(logger *logrus.Logger, cfg *config.Config, newScreen ScreenFunc) *App {
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	app := &App{
		logger:    logger,
		config:    cfg,
		newScreen: newScreen,
	}
	return app
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// boardSize falls back to the terminal size, keeping the last row for the
// status line.
func (a *App) boardSize(screen tcell.Screen) (width, height int) {
	cols, lines := screen.Size()
	width, height = a.config.Width, a.config.Height
	if width == 0 {
		width = cols
	}
	if height == 0 {
		height = lines - 1
	}
	return width, height
}

func (a *App) newBoard(width, height int) (*sweep.Board, error) {
	if a.config.Fixture() {
		return sweep.NewWithMines(width, height, a.config.Mines())
	}
	return sweep.New(width, height, createRand(a.config.Seed))
}

func (a *App) Start(ctx context.Context) error {
	screen, err := a.newScreen()
	if err != nil {
		return fmt.Errorf("unable to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("unable to initialize screen: %w", err)
	}
	var fini sync.Once
	finish := func() { fini.Do(screen.Fini) }
	defer finish()

	width, height := a.boardSize(screen)
	board, err := a.newBoard(width, height)
	if err != nil {
		return fmt.Errorf("unable to create board: %w", err)
	}

	a.logger.WithFields(logrus.Fields{
		"width":   board.Width(),
		"height":  board.Height(),
		"mines":   board.Mines().Len(),
		"fixture": a.config.Fixture(),
	}).Info("starting game")

	ui := tui.New(screen, board, a.logger)

	g, gCtx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		return ui.Run(gCtx)
	})
	g.Go(func() error {
		select {
		case <-gCtx.Done():
			// unblocks PollEvent in ui.Run
			finish()
		case <-done:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.logger.WithField("board", "\n"+board.String()).Debug("final board")
	return nil
}
