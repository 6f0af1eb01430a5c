package sweep

import "errors"

var (
	// ErrGameOver is returned by [Board.Open] when the cursor is on a mine.
	ErrGameOver = errors.New("game over")

	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrMineOutOfBounds   = errors.New("mine out of bounds")
)
