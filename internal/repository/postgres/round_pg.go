// internal/repository/postgres/round_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/repository"
	"bingo-engine/internal/util"
)

const roundColumns = `r.id, r.status, r.prize_pool, r.duration_seconds, r.is_paused,
       r.winner_user_id, r.winner_amount, r.house_cut, r.started_at, r.ended_at`

// RoundRepository implements repository.RoundRepository for PostgreSQL.
type RoundRepository struct{}

// NewRoundRepository creates a new RoundRepository.
func NewRoundRepository() repository.RoundRepository {
	return &RoundRepository{}
}

// CreateRound inserts a new round.
func (r *RoundRepository) CreateRound(ctx context.Context, q repository.DBExecutor, round *domain.Round) error {
	query := `INSERT INTO game_rounds (status, prize_pool, duration_seconds, is_paused, started_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, round.Status, round.PrizePool, round.DurationSeconds, round.IsPaused, round.StartedAt).
		Scan(&round.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrRoundActive
		}
		return fmt.Errorf("failed to create round: %w", err)
	}
	return nil
}

// SetCurrentRound upserts the singleton pointer.
func (r *RoundRepository) SetCurrentRound(ctx context.Context, q repository.DBExecutor, roundID int64) error {
	query := `INSERT INTO current_round (id, round_id) VALUES (1, $1)
              ON CONFLICT (id) DO UPDATE SET round_id = EXCLUDED.round_id`
	if _, err := q.ExecContext(ctx, query, roundID); err != nil {
		return fmt.Errorf("failed to set current round %d: %w", roundID, err)
	}
	return nil
}

// GetCurrentRound returns the round referenced by the pointer.
func (r *RoundRepository) GetCurrentRound(ctx context.Context, q repository.DBExecutor) (*domain.Round, error) {
	return r.getOne(ctx, q, `SELECT `+roundColumns+`
              FROM current_round c JOIN game_rounds r ON r.id = c.round_id
              WHERE c.id = 1`)
}

// GetCurrentRoundForUpdate locks both the pointer row and the round row, so concurrent
// writers queue behind each other and observe the latest pointer once they proceed.
func (r *RoundRepository) GetCurrentRoundForUpdate(ctx context.Context, q repository.DBExecutor) (*domain.Round, error) {
	return r.getOne(ctx, q, `SELECT `+roundColumns+`
              FROM current_round c JOIN game_rounds r ON r.id = c.round_id
              WHERE c.id = 1
              FOR UPDATE`)
}

// GetRoundByID retrieves a round by id.
func (r *RoundRepository) GetRoundByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Round, error) {
	return r.getOne(ctx, q, `SELECT `+roundColumns+` FROM game_rounds r WHERE r.id = $1`, id)
}

func (r *RoundRepository) getOne(ctx context.Context, q repository.DBExecutor, query string, args ...interface{}) (*domain.Round, error) {
	var round domain.Round
	if err := q.GetContext(ctx, &round, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	return &round, nil
}

// TransitionStatus is a compare-and-set on the status column.
func (r *RoundRepository) TransitionStatus(ctx context.Context, q repository.DBExecutor, id int64, from, to domain.RoundStatus) (bool, error) {
	if err := domain.CheckTransition(from, to); err != nil {
		return false, err
	}
	result, err := q.ExecContext(ctx, `UPDATE game_rounds SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to move round %d from %s to %s: %w", id, from, to, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected for round %d: %w", id, err)
	}
	return rowsAffected == 1, nil
}

// AddToPrizePool increases the pool of an active round.
func (r *RoundRepository) AddToPrizePool(ctx context.Context, q repository.DBExecutor, id int64, amount int64) (int64, error) {
	var pool int64
	err := q.QueryRowContext(ctx,
		`UPDATE game_rounds SET prize_pool = prize_pool + $1 WHERE id = $2 AND status = 'active' RETURNING prize_pool`,
		amount, id).Scan(&pool)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, util.ErrNoActiveRound
		}
		return 0, fmt.Errorf("failed to add %d to prize pool of round %d: %w", amount, id, err)
	}
	return pool, nil
}

// SetPaused toggles the paused flag of an active round.
func (r *RoundRepository) SetPaused(ctx context.Context, q repository.DBExecutor, id int64, paused bool) error {
	return r.updateActive(ctx, q, `UPDATE game_rounds SET is_paused = $1 WHERE id = $2 AND status = 'active'`, paused, id)
}

// SetDuration changes the duration of an active round.
func (r *RoundRepository) SetDuration(ctx context.Context, q repository.DBExecutor, id int64, seconds int64) error {
	return r.updateActive(ctx, q, `UPDATE game_rounds SET duration_seconds = $1 WHERE id = $2 AND status = 'active'`, seconds, id)
}

func (r *RoundRepository) updateActive(ctx context.Context, q repository.DBExecutor, query string, value interface{}, id int64) error {
	result, err := q.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("failed to update round %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for round %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNoActiveRound
	}
	return nil
}

// CompleteRound finalises a processing round.
func (r *RoundRepository) CompleteRound(ctx context.Context, q repository.DBExecutor, id int64, status domain.RoundStatus, winnerUserID *int64, winnerAmount, houseCut int64, endedAt time.Time) error {
	if err := domain.CheckTransition(domain.RoundStatusProcessing, status); err != nil {
		return err
	}
	query := `UPDATE game_rounds
              SET status = $1, winner_user_id = $2, winner_amount = $3, house_cut = $4, ended_at = $5
              WHERE id = $6 AND status = 'processing'`
	result, err := q.ExecContext(ctx, query, status, winnerUserID, winnerAmount, houseCut, endedAt, id)
	if err != nil {
		return fmt.Errorf("failed to complete round %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for round %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("round %d is not processing: %w", id, util.ErrAlreadyProcessed)
	}
	return nil
}
