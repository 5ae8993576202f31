// internal/repository/user_repo.go
package repository

import (
	"context"

	"bingo-engine/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// UpsertUser inserts the user or refreshes the display name of an existing one, filling user from the stored row.
	UpsertUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by internal id.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByExternalID retrieves a user by the front end identity.
	GetUserByExternalID(ctx context.Context, q DBExecutor, externalID int64) (*domain.User, error)
	// GetUserForUpdate retrieves and row-locks a user inside a transaction.
	GetUserForUpdate(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// AdjustBalance adds delta to the balance, refusing to go negative and saturating credits, and returns the new balance.
	AdjustBalance(ctx context.Context, q DBExecutor, userID int64, delta int64) (int64, error)
	// AddTotalDeposited increments the cumulative deposited amount.
	AddTotalDeposited(ctx context.Context, q DBExecutor, userID int64, amount int64) error
}
