// internal/domain/purchase.go
package domain

import "time"

// CardAssignment binds a catalog card to a user for the current round.
type CardAssignment struct {
	ID          int64     `db:"id" json:"id"`
	RoundID     int64     `db:"round_id" json:"round_id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	CardID      int       `db:"card_id" json:"card_id"`
	PurchasedAt time.Time `db:"purchased_at" json:"purchased_at"`
}

// PurchaseRecord is the permanent purchase history row. PricePaid is the price at purchase time.
type PurchaseRecord struct {
	ID          int64     `db:"id" json:"id"`
	RoundID     int64     `db:"round_id" json:"round_id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	CardID      int       `db:"card_id" json:"card_id"`
	PricePaid   int64     `db:"price_paid" json:"price_paid"`
	PurchasedAt time.Time `db:"purchased_at" json:"purchased_at"`
}

// UserSpend is a user's total spend in one round, used for refunds.
type UserSpend struct {
	UserID int64 `db:"user_id" json:"user_id"`
	Cards  int   `db:"cards" json:"cards"`
	Total  int64 `db:"total" json:"total"`
}

// Purchase is the outcome of a successful card purchase.
type Purchase struct {
	RoundID    int64 `json:"round_id"`
	CardID     int   `json:"card_id"`
	Price      int64 `json:"price"`
	NewBalance int64 `json:"new_balance"`
	PrizePool  int64 `json:"prize_pool"`
}

// UserCard is a held card with its grid.
type UserCard struct {
	CardID int                      `json:"card_id"`
	Grid   [GridSize][GridSize]Cell `json:"grid"`
}

// CalledNumber is a number drawn in a round.
type CalledNumber struct {
	RoundID  int64     `db:"round_id" json:"round_id"`
	Number   int       `db:"number" json:"number"`
	CalledAt time.Time `db:"called_at" json:"called_at"`
}
