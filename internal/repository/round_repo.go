// internal/repository/round_repo.go
package repository

import (
	"context"
	"time"

	"bingo-engine/internal/domain"
)

// RoundRepository manages rounds and the current-round pointer.
type RoundRepository interface {
	// CreateRound inserts a round and sets its ID.
	CreateRound(ctx context.Context, q DBExecutor, round *domain.Round) error
	// SetCurrentRound points the singleton current-round reference at roundID.
	SetCurrentRound(ctx context.Context, q DBExecutor, roundID int64) error
	// GetCurrentRound returns the round the pointer references, or ErrRoundNotFound.
	GetCurrentRound(ctx context.Context, q DBExecutor) (*domain.Round, error)
	// GetCurrentRoundForUpdate locks the pointer and the round it references.
	GetCurrentRoundForUpdate(ctx context.Context, q DBExecutor) (*domain.Round, error)
	// GetRoundByID retrieves any round.
	GetRoundByID(ctx context.Context, q DBExecutor, id int64) (*domain.Round, error)
	// TransitionStatus moves a round from one status to another only if it is still in from.
	// It reports whether the row changed.
	TransitionStatus(ctx context.Context, q DBExecutor, id int64, from, to domain.RoundStatus) (bool, error)
	// AddToPrizePool increases the pool of an active round and returns the new pool.
	AddToPrizePool(ctx context.Context, q DBExecutor, id int64, amount int64) (int64, error)
	// SetPaused toggles the paused flag of an active round.
	SetPaused(ctx context.Context, q DBExecutor, id int64, paused bool) error
	// SetDuration changes the configured duration of an active round.
	SetDuration(ctx context.Context, q DBExecutor, id int64, seconds int64) error
	// CompleteRound moves a processing round to its terminal status and records the outcome.
	CompleteRound(ctx context.Context, q DBExecutor, id int64, status domain.RoundStatus, winnerUserID *int64, winnerAmount, houseCut int64, endedAt time.Time) error
}

// CalledNumberRepository stores the numbers drawn per round.
type CalledNumberRepository interface {
	// InsertCalledNumber records a draw; a repeat for the round yields ErrDuplicateEntry.
	InsertCalledNumber(ctx context.Context, q DBExecutor, called *domain.CalledNumber) error
	// ListCalledNumbers returns the round's numbers in call order.
	ListCalledNumbers(ctx context.Context, q DBExecutor, roundID int64) ([]int, error)
}

// SettingsRepository manages the singleton settings row.
type SettingsRepository interface {
	// EnsureSettings creates the row with defaults if it does not exist yet.
	EnsureSettings(ctx context.Context, q DBExecutor, defaults *domain.GameSettings) error
	// GetSettings reads the current settings.
	GetSettings(ctx context.Context, q DBExecutor) (*domain.GameSettings, error)
	// UpdateSetting changes one setting.
	UpdateSetting(ctx context.Context, q DBExecutor, key domain.SettingKey, value int64) error
}
