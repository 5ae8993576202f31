// internal/domain/card.go
package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	GridSize    = 5
	CellCount   = GridSize * GridSize
	CenterCell  = CellCount / 2
	MaxNumber   = 75
	CatalogSize = 200
)

// Cell is one square of a card: a number 1..75, or FreeCell for the wildcard.
type Cell uint8

// FreeCell is the wildcard marker; it is always satisfied.
const FreeCell Cell = 0

const freeLabel = "FREE"

// IsFree reports whether the cell is the wildcard.
func (c Cell) IsFree() bool { return c == FreeCell }

// MarshalJSON renders the wildcard as "FREE" and numbers as JSON numbers.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsFree() {
		return json.Marshal(freeLabel)
	}
	return []byte(strconv.Itoa(int(c))), nil
}

// UnmarshalJSON accepts the forms produced by MarshalJSON.
func (c *Cell) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != freeLabel {
			return fmt.Errorf("unknown cell label %q", s)
		}
		*c = FreeCell
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if n < 1 || n > MaxNumber {
		return fmt.Errorf("cell %d out of range 1..%d", n, MaxNumber)
	}
	*c = Cell(n)
	return nil
}

// Grid is a 5x5 card stored row-major.
type Grid [CellCount]Cell

// At returns the cell at the given row and column.
func (g Grid) At(row, col int) Cell { return g[row*GridSize+col] }

// Rows returns the grid as a 5x5 matrix, the shape the front end renders.
func (g Grid) Rows() [GridSize][GridSize]Cell {
	var rows [GridSize][GridSize]Cell
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			rows[r][c] = g.At(r, c)
		}
	}
	return rows
}

// Numbers flattens the grid for storage; the wildcard is stored as 0.
func (g Grid) Numbers() []int64 {
	out := make([]int64, CellCount)
	for i, c := range g {
		out[i] = int64(c)
	}
	return out
}

// Validate checks the card shape: exactly one wildcard in the centre, every other cell in
// 1..75, no number repeated.
func (g Grid) Validate() error {
	seen := make(map[Cell]struct{}, CellCount)
	free := 0
	for i, c := range g {
		if c.IsFree() {
			free++
			if i != CenterCell {
				return fmt.Errorf("wildcard at cell %d, want centre cell %d", i, CenterCell)
			}
			continue
		}
		if c > MaxNumber {
			return fmt.Errorf("cell %d holds %d, outside 1..%d", i, c, MaxNumber)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("number %d appears twice", c)
		}
		seen[c] = struct{}{}
	}
	if free != 1 {
		return fmt.Errorf("found %d wildcards, want exactly 1", free)
	}
	return nil
}

// Card is a catalog entry.
type Card struct {
	ID   int  `json:"id"`
	Grid Grid `json:"-"`
}

// CardAvailability is one row of the public card listing.
type CardAvailability struct {
	ID    int  `json:"id"`
	Taken bool `json:"taken"`
}
