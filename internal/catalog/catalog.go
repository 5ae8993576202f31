// internal/catalog/catalog.go
package catalog

import (
	"fmt"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/util"
)

// Catalog is the immutable card deck. It is safe for concurrent reads.
type Catalog struct {
	cards []domain.Grid
}

// New validates every grid and rejects duplicated cards. Card ids are 1-based positions.
func New(grids []domain.Grid) (*Catalog, error) {
	seen := make(map[domain.Grid]int, len(grids))
	for i, g := range grids {
		id := i + 1
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("card %d: %w", id, err)
		}
		if prev, dup := seen[g]; dup {
			return nil, fmt.Errorf("card %d duplicates card %d", id, prev)
		}
		seen[g] = id
	}
	cards := make([]domain.Grid, len(grids))
	copy(cards, grids)
	return &Catalog{cards: cards}, nil
}

// Standard returns the built-in 200-card deck.
func Standard() (*Catalog, error) {
	return New(standardCards[:])
}

// Get returns the grid for a card id, or ErrCardNotFound.
func (c *Catalog) Get(id int) (domain.Grid, error) {
	if id < 1 || id > len(c.cards) {
		return domain.Grid{}, util.ErrCardNotFound
	}
	return c.cards[id-1], nil
}

// Size is the number of cards in the deck.
func (c *Catalog) Size() int { return len(c.cards) }

// Cards returns every card in id order.
func (c *Catalog) Cards() []domain.Card {
	out := make([]domain.Card, len(c.cards))
	for i, g := range c.cards {
		out[i] = domain.Card{ID: i + 1, Grid: g}
	}
	return out
}
