// internal/service/ledger.go
package service

import (
	"context"
	"fmt"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/repository"
	"bingo-engine/internal/util"
)

// Ledger is the only writer of user balances. Every method runs on the caller's transaction
// and journals the movement in the same unit.
type Ledger struct {
	users   repository.UserRepository
	entries repository.LedgerRepository
	rounds  repository.RoundRepository
}

// NewLedger creates a Ledger.
func NewLedger(users repository.UserRepository, entries repository.LedgerRepository, rounds repository.RoundRepository) *Ledger {
	return &Ledger{users: users, entries: entries, rounds: rounds}
}

// Debit removes amount from a user's balance, failing with ErrInsufficientFunds rather than going negative.
func (l *Ledger) Debit(ctx context.Context, q repository.DBExecutor, userID, amount int64, entryType domain.LedgerEntryType, roundID *int64, reference *string) (int64, error) {
	if amount <= 0 {
		return 0, util.ErrInvalidAmount
	}
	return l.apply(ctx, q, userID, -amount, entryType, roundID, reference)
}

// Credit adds amount to a user's balance.
func (l *Ledger) Credit(ctx context.Context, q repository.DBExecutor, userID, amount int64, entryType domain.LedgerEntryType, roundID *int64, reference *string) (int64, error) {
	if amount < 0 {
		return 0, util.ErrInvalidAmount
	}
	return l.apply(ctx, q, userID, amount, entryType, roundID, reference)
}

// TransferToPool debits a user and adds the same amount to an active round's prize pool.
// It returns the user's new balance and the new pool.
func (l *Ledger) TransferToPool(ctx context.Context, q repository.DBExecutor, userID, amount, roundID int64) (balance, pool int64, err error) {
	balance, err = l.Debit(ctx, q, userID, amount, domain.LedgerEntryPurchase, &roundID, nil)
	if err != nil {
		return 0, 0, err
	}
	pool, err = l.rounds.AddToPrizePool(ctx, q, roundID, amount)
	if err != nil {
		return 0, 0, err
	}
	return balance, pool, nil
}

func (l *Ledger) apply(ctx context.Context, q repository.DBExecutor, userID, delta int64, entryType domain.LedgerEntryType, roundID *int64, reference *string) (int64, error) {
	balance, err := l.users.AdjustBalance(ctx, q, userID, delta)
	if err != nil {
		return 0, err
	}
	entry := domain.NewLedgerEntry(userID, entryType, delta, balance, roundID, reference)
	if err := l.entries.CreateLedgerEntry(ctx, q, entry); err != nil {
		return 0, fmt.Errorf("failed to journal %s for user %d: %w", entryType, userID, err)
	}
	return balance, nil
}
