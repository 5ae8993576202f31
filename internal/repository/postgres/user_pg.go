// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/repository"
	"bingo-engine/internal/util"
)

const userColumns = `id, external_id, username, balance, total_deposited, created_at, updated_at`

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository.
func NewUserRepository() repository.UserRepository {
	return &UserRepository{}
}

// UpsertUser inserts a user, or refreshes the username of an existing one, and loads the stored row.
func (r *UserRepository) UpsertUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (external_id, username, created_at, updated_at)
              VALUES ($1, $2, $3, $4)
              ON CONFLICT (external_id) DO UPDATE
              SET username = CASE WHEN EXCLUDED.username = '' THEN users.username ELSE EXCLUDED.username END,
                  updated_at = EXCLUDED.updated_at
              RETURNING ` + userColumns
	if err := q.GetContext(ctx, user, query, user.ExternalID, user.Username, user.CreatedAt, user.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert user %d: %w", user.ExternalID, err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	return r.getOne(ctx, q, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetUserByExternalID retrieves a user by the front end identity.
func (r *UserRepository) GetUserByExternalID(ctx context.Context, q repository.DBExecutor, externalID int64) (*domain.User, error) {
	return r.getOne(ctx, q, `SELECT `+userColumns+` FROM users WHERE external_id = $1`, externalID)
}

// GetUserForUpdate retrieves and locks a user row.
func (r *UserRepository) GetUserForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	return r.getOne(ctx, q, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
}

func (r *UserRepository) getOne(ctx context.Context, q repository.DBExecutor, query string, arg int64) (*domain.User, error) {
	var user domain.User
	if err := q.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user %d: %w", arg, err)
	}
	return &user, nil
}

// AdjustBalance applies delta unless the balance would become negative.
// Credits saturate at the largest storable balance instead of overflowing.
func (r *UserRepository) AdjustBalance(ctx context.Context, q repository.DBExecutor, userID int64, delta int64) (int64, error) {
	if delta == math.MinInt64 {
		return 0, util.ErrInsufficientFunds
	}
	floor, ceiling := balanceBounds(delta)
	query := `UPDATE users SET balance = CASE WHEN balance > $4 THEN 9223372036854775807 ELSE balance + $1 END,
                  updated_at = $2
              WHERE id = $3 AND balance >= $5
              RETURNING balance`
	var balance int64
	err := q.QueryRowContext(ctx, query, delta, time.Now().UTC(), userID, ceiling, floor).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if delta < 0 {
				return 0, util.ErrInsufficientFunds
			}
			return 0, util.ErrUserNotFound
		}
		return 0, fmt.Errorf("failed to adjust balance for user %d: %w", userID, err)
	}
	return balance, nil
}

// balanceBounds returns the lowest balance that can absorb delta and the highest
// balance that can take it without overflowing.
func balanceBounds(delta int64) (floor, ceiling int64) {
	if delta < 0 {
		return -delta, math.MaxInt64
	}
	return 0, math.MaxInt64 - delta
}

// AddTotalDeposited increments the cumulative deposited amount.
func (r *UserRepository) AddTotalDeposited(ctx context.Context, q repository.DBExecutor, userID int64, amount int64) error {
	result, err := q.ExecContext(ctx, `UPDATE users SET total_deposited = total_deposited + $1, updated_at = $2 WHERE id = $3`,
		amount, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update total deposited for user %d: %w", userID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for user %d: %w", userID, err)
	}
	if rowsAffected == 0 {
		return util.ErrUserNotFound
	}
	return nil
}
