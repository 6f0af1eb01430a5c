package sweep

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

const maxMines = 100

// Board holds the state of a single game. It is not safe for concurrent use.
type Board struct {
	width, height int
	cursor        Position
	mines         PositionSet
	opened        PositionSet
	flagged       PositionSet
}

// MineCount is the number of mine draws made for a randomly placed board.
func MineCount(width, height int) int {
	return min(maxMines, width*height/2)
}

func newBoard(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	b := &Board{
		width:   width,
		height:  height,
		mines:   make(PositionSet),
		opened:  make(PositionSet),
		flagged: make(PositionSet),
	}
	return b, nil
}

// New creates a board with randomly placed mines. Positions are drawn
// independently, so colliding draws leave fewer mines than [MineCount].
func New(width, height int, r *rand.Rand) (*Board, error) {
	b, err := newBoard(width, height)
	if err != nil {
		return nil, err
	}
	draws := MineCount(width, height)
	for range draws {
		b.mines.Add(Position{X: r.IntN(width), Y: r.IntN(height)})
	}
	Log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"draws":  draws,
		"mines":  b.mines.Len(),
	}).Debug("placed mines")
	return b, nil
}

// NewWithMines creates a board with a fixed mine layout.
func NewWithMines(width, height int, mines []Position) (*Board, error) {
	b, err := newBoard(width, height)
	if err != nil {
		return nil, err
	}
	for _, p := range mines {
		if !b.InBounds(p) {
			return nil, fmt.Errorf("%w: %s", ErrMineOutOfBounds, p)
		}
		b.mines.Add(p)
	}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) Cursor() Position { return b.cursor }

func (b *Board) Mines() PositionSet   { return b.mines.Clone() }
func (b *Board) Opened() PositionSet  { return b.opened.Clone() }
func (b *Board) Flagged() PositionSet { return b.flagged.Clone() }

func (b *Board) InBounds(p Position) bool {
	return 0 <= p.X && p.X < b.width && 0 <= p.Y && p.Y < b.height
}

// Move shifts the cursor by dx, dy. Moves that would leave the grid are ignored.
func (b *Board) Move(dx, dy int) {
	next := Position{X: b.cursor.X + dx, Y: b.cursor.Y + dy}
	if !b.InBounds(next) {
		return
	}
	b.cursor = next
}

// Open reveals the cell under the cursor. A mine is not recorded as opened.
func (b *Board) Open() error {
	if b.mines.Has(b.cursor) {
		Log.WithField("position", b.cursor).Debug("opened a mine")
		return ErrGameOver
	}
	b.opened.Add(b.cursor)
	return nil
}

// OpenNeighborhood opens the unflagged safe neighbors of an opened cursor
// cell that has no adjacent mines. Only one level is expanded.
func (b *Board) OpenNeighborhood() []Position {
	if !b.IsOpened() || b.NearbyMinesCount() != 0 {
		return nil
	}
	var opened []Position
	for _, p := range b.SurroundingTiles() {
		if b.opened.Has(p) || b.flagged.Has(p) || b.mines.Has(p) {
			continue
		}
		b.opened.Add(p)
		opened = append(opened, p)
	}
	return opened
}

func (b *Board) ToggleFlag() {
	if b.opened.Has(b.cursor) {
		return
	}
	if b.flagged.Has(b.cursor) {
		b.flagged.Delete(b.cursor)
	} else {
		b.flagged.Add(b.cursor)
	}
}

func (b *Board) IsOpened() bool  { return b.opened.Has(b.cursor) }
func (b *Board) IsFlagged() bool { return b.flagged.Has(b.cursor) }
func (b *Board) IsMined() bool   { return b.mines.Has(b.cursor) }

// RemainingMines is not clamped and goes negative when over-flagged.
func (b *Board) RemainingMines() int {
	return b.mines.Len() - b.flagged.Len()
}

func (b *Board) Status() Status {
	return b.StatusAt(b.cursor)
}

func (b *Board) StatusAt(p Position) Status {
	if b.flagged.Has(p) {
		return StatusFlagged
	}
	if b.opened.Has(p) {
		return StatusOpened
	}
	return StatusNone
}

func (b *Board) NearbyMinesCount() int {
	return b.NearbyMinesCountAt(b.cursor)
}

func (b *Board) NearbyMinesCountAt(p Position) int {
	count := 0
	for _, n := range b.neighbors(p) {
		if b.mines.Has(n) {
			count++
		}
	}
	return count
}

// SurroundingTiles returns the in-bounds Moore neighborhood of the cursor.
func (b *Board) SurroundingTiles() []Position {
	return b.neighbors(b.cursor)
}

func (b *Board) neighbors(p Position) []Position {
	ps := make([]Position, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Position{X: p.X + dx, Y: p.Y + dy}
			if b.InBounds(n) {
				ps = append(ps, n)
			}
		}
	}
	return ps
}

// HasWon reports whether every safe cell has been opened.
func (b *Board) HasWon() bool {
	return b.opened.Len() == b.width*b.height-b.mines.Len()
}

// Board implements [fmt.Stringer]
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			p := Position{X: x, Y: y}
			switch b.StatusAt(p) {
			case StatusFlagged:
				sb.WriteByte('F')
			case StatusOpened:
				sb.WriteString(strconv.Itoa(b.NearbyMinesCountAt(p)))
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
