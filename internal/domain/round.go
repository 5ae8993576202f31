// internal/domain/round.go
package domain

import (
	"fmt"
	"time"
)

// RoundStatus is the lifecycle state of a game round.
type RoundStatus string

const (
	RoundStatusActive     RoundStatus = "active"
	RoundStatusProcessing RoundStatus = "processing"
	RoundStatusFinished   RoundStatus = "finished"
	RoundStatusRefunded   RoundStatus = "refunded"
)

// IsTerminal reports whether no further transition is possible.
func (s RoundStatus) IsTerminal() bool {
	return s == RoundStatusFinished || s == RoundStatusRefunded
}

// CheckTransition validates a status change: active -> processing -> finished|refunded.
func CheckTransition(from, to RoundStatus) error {
	switch from {
	case RoundStatusActive:
		if to == RoundStatusProcessing {
			return nil
		}
	case RoundStatusProcessing:
		if to == RoundStatusFinished || to == RoundStatusRefunded {
			return nil
		}
	}
	return fmt.Errorf("invalid round transition: %s --> %s", from, to)
}

// Round is one cycle of card sales, calling and settlement.
type Round struct {
	ID              int64       `db:"id" json:"id"`                             // Primary key, BIGSERIAL in DB
	Status          RoundStatus `db:"status" json:"status"`                     // active, processing, finished, refunded
	PrizePool       int64       `db:"prize_pool" json:"prize_pool"`             // Sum of card sales
	DurationSeconds int64       `db:"duration_seconds" json:"duration_seconds"` // Time before the round times out
	IsPaused        bool        `db:"is_paused" json:"is_paused"`               // Calling is frozen while set
	WinnerUserID    *int64      `db:"winner_user_id" json:"winner_user_id"`     // Set on payout
	WinnerAmount    int64       `db:"winner_amount" json:"winner_amount"`       // Paid to the winner
	HouseCut        int64       `db:"house_cut" json:"house_cut"`               // Retained by the house
	StartedAt       time.Time   `db:"started_at" json:"started_at"`             // Round start
	EndedAt         *time.Time  `db:"ended_at" json:"ended_at"`                 // Set when settled
}

// NewRound creates an active round with an empty pool.
func NewRound(duration time.Duration) *Round {
	return &Round{
		Status:          RoundStatusActive,
		DurationSeconds: int64(duration / time.Second),
		StartedAt:       time.Now().UTC(),
	}
}

// Duration returns the configured round length.
func (r *Round) Duration() time.Duration {
	return time.Duration(r.DurationSeconds) * time.Second
}

// IsExpired reports whether now - started_at >= duration.
func (r *Round) IsExpired(now time.Time) bool {
	return now.Sub(r.StartedAt) >= r.Duration()
}

// Overran reports whether now - started_at > duration. A claim at the exact deadline still pays.
func (r *Round) Overran(now time.Time) bool {
	return now.Sub(r.StartedAt) > r.Duration()
}

// Remaining returns the time left before expiry, never negative.
func (r *Round) Remaining(now time.Time) time.Duration {
	left := r.Duration() - now.Sub(r.StartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// RoundView is the public state of the current round.
type RoundView struct {
	Round            *Round `json:"round"`
	CalledNumbers    []int  `json:"called_numbers"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	CardPrice        int64  `json:"card_price"`
	CardsTaken       int    `json:"cards_taken"`
}
