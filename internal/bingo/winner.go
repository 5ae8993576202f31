// internal/bingo/winner.go
package bingo

import "bingo-engine/internal/domain"

// CalledSet is a snapshot of the numbers called in a round.
type CalledSet map[int]struct{}

// NewCalledSet builds a set from an ordered call list.
func NewCalledSet(numbers []int) CalledSet {
	s := make(CalledSet, len(numbers))
	for _, n := range numbers {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether n has been called.
func (s CalledSet) Has(n int) bool {
	_, ok := s[n]
	return ok
}

func (s CalledSet) covers(c domain.Cell) bool {
	return c.IsFree() || s.Has(int(c))
}

// IsWinner reports whether any full row or column of grid is covered by called.
// Diagonals do not count.
func IsWinner(grid domain.Grid, called CalledSet) bool {
	for r := 0; r < domain.GridSize; r++ {
		if lineCovered(grid, called, r, 0, 0, 1) {
			return true
		}
	}
	for c := 0; c < domain.GridSize; c++ {
		if lineCovered(grid, called, 0, c, 1, 0) {
			return true
		}
	}
	return false
}

func lineCovered(grid domain.Grid, called CalledSet, row, col, dRow, dCol int) bool {
	for i := 0; i < domain.GridSize; i++ {
		if !called.covers(grid.At(row+i*dRow, col+i*dCol)) {
			return false
		}
	}
	return true
}
