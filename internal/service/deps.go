// internal/service/deps.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/repository"
	"bingo-engine/pkg/db"
)

// EventPublisher receives round events after their transaction commits.
type EventPublisher interface {
	Publish(event domain.RoundEvent)
}

// RoundCache holds display copies of round data. The database stays authoritative.
type RoundCache interface {
	CalledNumbers(ctx context.Context, roundID int64) ([]int, bool)
	StoreCalledNumbers(ctx context.Context, roundID int64, numbers []int)
	RoundResult(ctx context.Context, roundID int64) (*domain.Round, bool)
	StoreRoundResult(ctx context.Context, round *domain.Round)
}

// Dependencies bundles what the services share.
type Dependencies struct {
	DBBeginner db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	DBExecutor repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)

	Users       repository.UserRepository
	Rounds      repository.RoundRepository
	Called      repository.CalledNumberRepository
	Cards       repository.CardRepository
	Settings    repository.SettingsRepository
	Ledger      repository.LedgerRepository
	Reports     repository.ReportRepository
	Payments    repository.PaymentRepository
	Withdrawals repository.WithdrawalRepository

	BeginTx    db.BeginTxFunc
	CommitTx   db.CommitTxFunc
	RollbackTx db.RollbackTxFunc

	Publisher EventPublisher // optional
	Cache     RoundCache     // optional
	Logger    *zap.Logger
	Clock     func() time.Time // defaults to time.Now().UTC()
}

type noopPublisher struct{}

func (noopPublisher) Publish(domain.RoundEvent) {}

type noopCache struct{}

func (noopCache) CalledNumbers(context.Context, int64) ([]int, bool)       { return nil, false }
func (noopCache) StoreCalledNumbers(context.Context, int64, []int)         {}
func (noopCache) RoundResult(context.Context, int64) (*domain.Round, bool) { return nil, false }
func (noopCache) StoreRoundResult(context.Context, *domain.Round)          {}

func (d Dependencies) withDefaults() Dependencies {
	if d.Publisher == nil {
		d.Publisher = noopPublisher{}
	}
	if d.Cache == nil {
		d.Cache = noopCache{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = func() time.Time { return time.Now().UTC() }
	}
	if d.BeginTx == nil {
		d.BeginTx = db.BeginTx
	}
	if d.CommitTx == nil {
		d.CommitTx = db.CommitTx
	}
	if d.RollbackTx == nil {
		d.RollbackTx = db.RollbackTx
	}
	return d
}

// begin opens a transaction and exposes it as a DBExecutor. The caller must defer d.RollbackTx.
func (d Dependencies) begin(ctx context.Context, op string) (db.TxController, repository.DBExecutor, error) {
	txController, err := d.BeginTx(ctx, d.DBBeginner)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		d.RollbackTx(txController)
		return nil, nil, fmt.Errorf("%s: transaction controller does not implement DBExecutor", op)
	}
	return txController, txExecutor, nil
}

func (d Dependencies) commit(txController db.TxController, op string) error {
	if err := d.CommitTx(txController); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}
	return nil
}
