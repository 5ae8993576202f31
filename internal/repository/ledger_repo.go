// internal/repository/ledger_repo.go
package repository

import (
	"context"

	"bingo-engine/internal/domain"
)

// LedgerRepository stores the append-only balance journal.
type LedgerRepository interface {
	// CreateLedgerEntry appends a journal row.
	CreateLedgerEntry(ctx context.Context, q DBExecutor, entry *domain.LedgerEntry) error
	// ListLedgerEntriesByUser returns a page of a user's entries, newest first, and the total count.
	ListLedgerEntriesByUser(ctx context.Context, q DBExecutor, userID int64, limit, offset int) ([]domain.LedgerEntry, int64, error)
}

// ReportRepository covers house revenue and aggregate reporting.
type ReportRepository interface {
	// AddHouseEarning appends a house revenue row.
	AddHouseEarning(ctx context.Context, q DBExecutor, earning *domain.HouseEarning) error
	// GetStats aggregates users, deposits, the current pool, rounds and house earnings.
	GetStats(ctx context.Context, q DBExecutor) (*domain.Stats, error)
}
