// internal/domain/settlement.go
package domain

import (
	"fmt"
	"time"
)

// SettlementKind tells how a round ended.
type SettlementKind string

const (
	SettlementPayout SettlementKind = "payout"
	SettlementRefund SettlementKind = "refund"
	SettlementClosed SettlementKind = "closed" // timed out with no players
	SettlementReset  SettlementKind = "reset"  // force-finished by the administrator
)

// Refund is one user's credit in a refund settlement.
type Refund struct {
	UserID int64 `json:"user_id"`
	Amount int64 `json:"amount"`
}

// Settlement describes a completed round settlement and the round that replaced it.
type Settlement struct {
	RoundID      int64          `json:"round_id"`
	Kind         SettlementKind `json:"kind"`
	Status       RoundStatus    `json:"status"`
	PrizePool    int64          `json:"prize_pool"`
	WinnerUserID *int64         `json:"winner_user_id,omitempty"`
	WinnerAmount int64          `json:"winner_amount"`
	HouseCut     int64          `json:"house_cut"`
	Refunds      []Refund       `json:"refunds,omitempty"`
	NextRoundID  int64          `json:"next_round_id"`
	SettledAt    time.Time      `json:"settled_at"`
}

// Summary renders the human-readable outcome returned to claimants and admins.
func (s *Settlement) Summary() string {
	switch s.Kind {
	case SettlementPayout:
		return fmt.Sprintf("Winner paid %d. House earned %d. New round %d started.", s.WinnerAmount, s.HouseCut, s.NextRoundID)
	case SettlementRefund:
		return fmt.Sprintf("Round %d timed out. %d players refunded. New round %d started.", s.RoundID, len(s.Refunds), s.NextRoundID)
	case SettlementReset:
		return fmt.Sprintf("Round %d reset. New round %d started.", s.RoundID, s.NextRoundID)
	default:
		return fmt.Sprintf("Round %d closed (no players). New round %d started.", s.RoundID, s.NextRoundID)
	}
}

// RefundedTotal sums all refund credits.
func (s *Settlement) RefundedTotal() int64 {
	var total int64
	for _, r := range s.Refunds {
		total += r.Amount
	}
	return total
}
