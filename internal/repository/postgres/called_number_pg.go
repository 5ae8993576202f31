// internal/repository/postgres/called_number_pg.go
package postgres

import (
	"context"
	"fmt"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/repository"
	"bingo-engine/internal/util"
)

// CalledNumberRepository implements repository.CalledNumberRepository for PostgreSQL.
type CalledNumberRepository struct{}

// NewCalledNumberRepository creates a new CalledNumberRepository.
func NewCalledNumberRepository() repository.CalledNumberRepository {
	return &CalledNumberRepository{}
}

// InsertCalledNumber records a draw; UNIQUE (round_id, number) serialises concurrent callers.
func (r *CalledNumberRepository) InsertCalledNumber(ctx context.Context, q repository.DBExecutor, called *domain.CalledNumber) error {
	_, err := q.ExecContext(ctx, `INSERT INTO called_numbers (round_id, number, called_at) VALUES ($1, $2, $3)`,
		called.RoundID, called.Number, called.CalledAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("number %d in round %d: %w", called.Number, called.RoundID, util.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to record called number %d for round %d: %w", called.Number, called.RoundID, err)
	}
	return nil
}

// ListCalledNumbers returns numbers in call order.
func (r *CalledNumberRepository) ListCalledNumbers(ctx context.Context, q repository.DBExecutor, roundID int64) ([]int, error) {
	numbers := []int{}
	if err := q.SelectContext(ctx, &numbers, `SELECT number FROM called_numbers WHERE round_id = $1 ORDER BY id`, roundID); err != nil {
		return nil, fmt.Errorf("failed to list called numbers for round %d: %w", roundID, err)
	}
	return numbers, nil
}
