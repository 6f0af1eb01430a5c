package sweep

import (
	"fmt"
	"slices"
)

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

// Position implements [fmt.Stringer]
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

func comparePositions(a, b Position) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}

type PositionSet map[Position]struct{}

func NewPositionSet(ps ...Position) PositionSet {
	s := make(PositionSet, len(ps))
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

func (s PositionSet) Delete(p Position) {
	delete(s, p)
}

func (s PositionSet) Len() int {
	return len(s)
}

func (s PositionSet) Clone() PositionSet {
	c := make(PositionSet, len(s))
	for p := range s {
		c.Add(p)
	}
	return c
}

// Sorted returns the members in row-major order.
func (s PositionSet) Sorted() []Position {
	ps := make([]Position, 0, len(s))
	for p := range s {
		ps = append(ps, p)
	}
	slices.SortFunc(ps, comparePositions)
	return ps
}
