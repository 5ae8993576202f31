// internal/repository/postgres/ledger_pg.go
package postgres

import (
	"context"
	"fmt"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/repository"
)

// LedgerRepository implements repository.LedgerRepository for PostgreSQL.
type LedgerRepository struct{}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository() repository.LedgerRepository {
	return &LedgerRepository{}
}

// CreateLedgerEntry inserts a new journal row using the provided DBExecutor.
func (r *LedgerRepository) CreateLedgerEntry(ctx context.Context, q repository.DBExecutor, entry *domain.LedgerEntry) error {
	query := `INSERT INTO wallet_ledger (user_id, entry_type, amount, balance_before, balance_after, round_id, reference, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	err := q.QueryRowContext(ctx, query,
		entry.UserID,
		entry.Type,
		entry.Amount,
		entry.BalanceBefore,
		entry.BalanceAfter,
		entry.RoundID,
		entry.Reference,
		entry.CreatedAt,
	).Scan(&entry.ID)

	if err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

// ListLedgerEntriesByUser retrieves a paginated list of a user's entries.
// It performs two queries: one for the data and one for the total count.
func (r *LedgerRepository) ListLedgerEntriesByUser(ctx context.Context, q repository.DBExecutor, userID int64, limit, offset int) ([]domain.LedgerEntry, int64, error) {
	entries := []domain.LedgerEntry{}

	query := `SELECT id, user_id, entry_type, amount, balance_before, balance_after, round_id, reference, created_at
              FROM wallet_ledger WHERE user_id = $1
              ORDER BY id DESC LIMIT $2 OFFSET $3`
	if err := q.SelectContext(ctx, &entries, query, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to get ledger entries for user %d: %w", userID, err)
	}

	var totalCount int64
	if err := q.GetContext(ctx, &totalCount, `SELECT COUNT(*) FROM wallet_ledger WHERE user_id = $1`, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries for user %d: %w", userID, err)
	}

	return entries, totalCount, nil
}

// ReportRepository implements repository.ReportRepository for PostgreSQL.
type ReportRepository struct{}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository() repository.ReportRepository {
	return &ReportRepository{}
}

// AddHouseEarning appends a house revenue row.
func (r *ReportRepository) AddHouseEarning(ctx context.Context, q repository.DBExecutor, earning *domain.HouseEarning) error {
	query := `INSERT INTO house_earnings (source, amount, round_id, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := q.QueryRowContext(ctx, query, earning.Source, earning.Amount, earning.RoundID, earning.CreatedAt).Scan(&earning.ID); err != nil {
		return fmt.Errorf("failed to add house earning: %w", err)
	}
	return nil
}

// GetStats aggregates the admin report in one round trip.
func (r *ReportRepository) GetStats(ctx context.Context, q repository.DBExecutor) (*domain.Stats, error) {
	var stats domain.Stats
	query := `SELECT
                (SELECT COUNT(*) FROM users) AS total_users,
                (SELECT COALESCE(SUM(total_deposited), 0)::BIGINT FROM users) AS total_deposits,
                (SELECT COALESCE(SUM(r.prize_pool), 0)::BIGINT
                   FROM current_round c JOIN game_rounds r ON r.id = c.round_id
                  WHERE r.status = 'active') AS current_prize_pool,
                (SELECT COUNT(*) FROM game_rounds) AS total_rounds,
                (SELECT COALESCE(SUM(amount), 0)::BIGINT FROM house_earnings) AS total_house_earnings`
	if err := q.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &stats, nil
}
