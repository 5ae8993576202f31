// internal/bingo/caller.go
package bingo

import (
	"math/rand/v2"

	"bingo-engine/internal/domain"
)

// Caller draws numbers uniformly from those not yet called in a round.
type Caller struct {
	intN func(n int) int
}

// NewCaller uses the runtime's ChaCha8-backed source, which is safe for concurrent use.
func NewCaller() *Caller {
	return &Caller{intN: rand.IntN}
}

// NewCallerWithSource lets tests control the draw. intN must return a value in [0, n).
func NewCallerWithSource(intN func(n int) int) *Caller {
	return &Caller{intN: intN}
}

// Remaining lists the numbers 1..75 absent from called, in ascending order.
func Remaining(called []int) []int {
	used := NewCalledSet(called)
	out := make([]int, 0, domain.MaxNumber-len(used))
	for n := 1; n <= domain.MaxNumber; n++ {
		if !used.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Draw picks the next number. ok is false once every number has been called.
func (c *Caller) Draw(called []int) (number int, ok bool) {
	remaining := Remaining(called)
	if len(remaining) == 0 {
		return 0, false
	}
	return remaining[c.intN(len(remaining))], true
}
