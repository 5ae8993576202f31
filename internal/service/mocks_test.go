// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/repository"
	"bingo-engine/pkg/db"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController.
// It also implements repository.DBExecutor by embedding MockDBExecutor.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByExternalID(ctx context.Context, q repository.DBExecutor, externalID int64) (*domain.User, error) {
	args := m.Called(ctx, q, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) AdjustBalance(ctx context.Context, q repository.DBExecutor, userID int64, delta int64) (int64, error) {
	args := m.Called(ctx, q, userID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) AddTotalDeposited(ctx context.Context, q repository.DBExecutor, userID int64, amount int64) error {
	args := m.Called(ctx, q, userID, amount)
	return args.Error(0)
}

// MockRoundRepository is a mock implementation of repository.RoundRepository.
type MockRoundRepository struct {
	mock.Mock
}

func (m *MockRoundRepository) CreateRound(ctx context.Context, q repository.DBExecutor, round *domain.Round) error {
	args := m.Called(ctx, q, round)
	return args.Error(0)
}

func (m *MockRoundRepository) SetCurrentRound(ctx context.Context, q repository.DBExecutor, roundID int64) error {
	args := m.Called(ctx, q, roundID)
	return args.Error(0)
}

func (m *MockRoundRepository) GetCurrentRound(ctx context.Context, q repository.DBExecutor) (*domain.Round, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockRoundRepository) GetCurrentRoundForUpdate(ctx context.Context, q repository.DBExecutor) (*domain.Round, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockRoundRepository) GetRoundByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Round, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockRoundRepository) TransitionStatus(ctx context.Context, q repository.DBExecutor, id int64, from, to domain.RoundStatus) (bool, error) {
	args := m.Called(ctx, q, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoundRepository) AddToPrizePool(ctx context.Context, q repository.DBExecutor, id int64, amount int64) (int64, error) {
	args := m.Called(ctx, q, id, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoundRepository) SetPaused(ctx context.Context, q repository.DBExecutor, id int64, paused bool) error {
	args := m.Called(ctx, q, id, paused)
	return args.Error(0)
}

func (m *MockRoundRepository) SetDuration(ctx context.Context, q repository.DBExecutor, id int64, seconds int64) error {
	args := m.Called(ctx, q, id, seconds)
	return args.Error(0)
}

func (m *MockRoundRepository) CompleteRound(ctx context.Context, q repository.DBExecutor, id int64, status domain.RoundStatus, winnerUserID *int64, winnerAmount, houseCut int64, endedAt time.Time) error {
	args := m.Called(ctx, q, id, status, winnerUserID, winnerAmount, houseCut, endedAt)
	return args.Error(0)
}

// MockCalledNumberRepository is a mock implementation of repository.CalledNumberRepository.
type MockCalledNumberRepository struct {
	mock.Mock
}

func (m *MockCalledNumberRepository) InsertCalledNumber(ctx context.Context, q repository.DBExecutor, called *domain.CalledNumber) error {
	args := m.Called(ctx, q, called)
	return args.Error(0)
}

func (m *MockCalledNumberRepository) ListCalledNumbers(ctx context.Context, q repository.DBExecutor, roundID int64) ([]int, error) {
	args := m.Called(ctx, q, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

// MockCardRepository is a mock implementation of repository.CardRepository.
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) SeedCatalog(ctx context.Context, q repository.DBExecutor, cards []domain.Card) (int64, error) {
	args := m.Called(ctx, q, cards)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCardRepository) AssignCard(ctx context.Context, q repository.DBExecutor, assignment *domain.CardAssignment) error {
	args := m.Called(ctx, q, assignment)
	return args.Error(0)
}

func (m *MockCardRepository) CountUserAssignments(ctx context.Context, q repository.DBExecutor, roundID, userID int64) (int, error) {
	args := m.Called(ctx, q, roundID, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockCardRepository) ListUserAssignments(ctx context.Context, q repository.DBExecutor, roundID, userID int64) ([]domain.CardAssignment, error) {
	args := m.Called(ctx, q, roundID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CardAssignment), args.Error(1)
}

func (m *MockCardRepository) ListAssignments(ctx context.Context, q repository.DBExecutor, roundID int64) ([]domain.CardAssignment, error) {
	args := m.Called(ctx, q, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CardAssignment), args.Error(1)
}

func (m *MockCardRepository) ListTakenCardIDs(ctx context.Context, q repository.DBExecutor) ([]int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockCardRepository) ClearAssignments(ctx context.Context, q repository.DBExecutor) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockCardRepository) AppendPurchase(ctx context.Context, q repository.DBExecutor, record *domain.PurchaseRecord) error {
	args := m.Called(ctx, q, record)
	return args.Error(0)
}

func (m *MockCardRepository) SumSpendByUser(ctx context.Context, q repository.DBExecutor, roundID int64) ([]domain.UserSpend, error) {
	args := m.Called(ctx, q, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSpend), args.Error(1)
}

// MockSettingsRepository is a mock implementation of repository.SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) EnsureSettings(ctx context.Context, q repository.DBExecutor, defaults *domain.GameSettings) error {
	args := m.Called(ctx, q, defaults)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context, q repository.DBExecutor) (*domain.GameSettings, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSetting(ctx context.Context, q repository.DBExecutor, key domain.SettingKey, value int64) error {
	args := m.Called(ctx, q, key, value)
	return args.Error(0)
}

// MockLedgerRepository is a mock implementation of repository.LedgerRepository.
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) CreateLedgerEntry(ctx context.Context, q repository.DBExecutor, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, q, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListLedgerEntriesByUser(ctx context.Context, q repository.DBExecutor, userID int64, limit, offset int) ([]domain.LedgerEntry, int64, error) {
	args := m.Called(ctx, q, userID, limit, offset)
	return args.Get(0).([]domain.LedgerEntry), args.Get(1).(int64), args.Error(2)
}

// MockReportRepository is a mock implementation of repository.ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) AddHouseEarning(ctx context.Context, q repository.DBExecutor, earning *domain.HouseEarning) error {
	args := m.Called(ctx, q, earning)
	return args.Error(0)
}

func (m *MockReportRepository) GetStats(ctx context.Context, q repository.DBExecutor) (*domain.Stats, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

// MockPaymentRepository is a mock implementation of repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, q repository.DBExecutor, payment *domain.Payment) error {
	args := m.Called(ctx, q, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetPaymentForUpdate(ctx context.Context, q repository.DBExecutor, reference string) (*domain.Payment, error) {
	args := m.Called(ctx, q, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DecidePayment(ctx context.Context, q repository.DBExecutor, id int64, status domain.RequestStatus, adminID int64, at time.Time) error {
	args := m.Called(ctx, q, id, status, adminID, at)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListPendingPayments(ctx context.Context, q repository.DBExecutor) ([]domain.PendingPayment, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.PendingPayment), args.Error(1)
}

// MockWithdrawalRepository is a mock implementation of repository.WithdrawalRepository.
type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) CreateWithdrawal(ctx context.Context, q repository.DBExecutor, withdrawal *domain.Withdrawal) error {
	args := m.Called(ctx, q, withdrawal)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) GetWithdrawalForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Withdrawal, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockWithdrawalRepository) DecideWithdrawal(ctx context.Context, q repository.DBExecutor, id int64, status domain.RequestStatus, adminID int64, at time.Time) error {
	args := m.Called(ctx, q, id, status, adminID, at)
	return args.Error(0)
}

func (m *MockWithdrawalRepository) ListPendingWithdrawals(ctx context.Context, q repository.DBExecutor) ([]domain.PendingWithdrawal, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]domain.PendingWithdrawal), args.Error(1)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event domain.RoundEvent) {
	m.Called(event)
}

// testEnv wires every mock into a Dependencies value.
type testEnv struct {
	ctx         context.Context
	now         time.Time
	users       *MockUserRepository
	rounds      *MockRoundRepository
	called      *MockCalledNumberRepository
	cards       *MockCardRepository
	settings    *MockSettingsRepository
	ledger      *MockLedgerRepository
	reports     *MockReportRepository
	payments    *MockPaymentRepository
	withdrawals *MockWithdrawalRepository
	publisher   *MockPublisher
	beginner    *MockDBBeginner
	executor    *MockDBExecutor
	tx          *MockTxController
	deps        Dependencies
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	e := &testEnv{
		ctx:         context.Background(),
		now:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		users:       new(MockUserRepository),
		rounds:      new(MockRoundRepository),
		called:      new(MockCalledNumberRepository),
		cards:       new(MockCardRepository),
		settings:    new(MockSettingsRepository),
		ledger:      new(MockLedgerRepository),
		reports:     new(MockReportRepository),
		payments:    new(MockPaymentRepository),
		withdrawals: new(MockWithdrawalRepository),
		publisher:   new(MockPublisher),
		beginner:    new(MockDBBeginner),
		executor:    new(MockDBExecutor),
		tx:          new(MockTxController),
	}
	// Rollback is deferred on every path, including after a commit.
	e.tx.On("Rollback").Return(nil).Maybe()
	e.publisher.On("Publish", mock.Anything).Maybe()

	e.deps = Dependencies{
		DBBeginner:  e.beginner,
		DBExecutor:  e.executor,
		Users:       e.users,
		Rounds:      e.rounds,
		Called:      e.called,
		Cards:       e.cards,
		Settings:    e.settings,
		Ledger:      e.ledger,
		Reports:     e.reports,
		Payments:    e.payments,
		Withdrawals: e.withdrawals,
		BeginTx: func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			return e.tx, nil
		},
		CommitTx: func(tx db.TxController) error {
			return e.tx.Commit()
		},
		RollbackTx: func(tx db.TxController) {
			_ = e.tx.Rollback()
		},
		Publisher: e.publisher,
		Logger:    zap.NewNop(),
		Clock:     func() time.Time { return e.now },
	}
	return e
}

func (e *testEnv) assertExpectations(t *testing.T) {
	t.Helper()
	mock.AssertExpectationsForObjects(t,
		e.users, e.rounds, e.called, e.cards, e.settings, e.ledger,
		e.reports, e.payments, e.withdrawals, e.beginner, e.executor, e.tx,
	)
}

// expectBalance stubs AdjustBalance and the matching journal row.
func (e *testEnv) expectBalance(userID, delta, newBalance int64, entryType domain.LedgerEntryType) {
	e.users.On("AdjustBalance", e.ctx, mock.Anything, userID, delta).Return(newBalance, nil).Once()
	e.ledger.On("CreateLedgerEntry", e.ctx, mock.Anything, mock.MatchedBy(func(entry *domain.LedgerEntry) bool {
		return entry.UserID == userID && entry.Amount == delta && entry.Type == entryType &&
			entry.BalanceAfter == newBalance && entry.BalanceBefore == newBalance-delta
	})).Return(nil).Once()
}

// expectSuccessor stubs the round opened after a settlement.
func (e *testEnv) expectSuccessor(nextID, durationSeconds int64) {
	e.cards.On("ClearAssignments", e.ctx, mock.Anything).Return(nil).Once()
	e.rounds.On("CreateRound", e.ctx, mock.Anything, mock.MatchedBy(func(r *domain.Round) bool {
		return r.Status == domain.RoundStatusActive && r.PrizePool == 0 && r.DurationSeconds == durationSeconds
	})).Run(func(args mock.Arguments) {
		args.Get(2).(*domain.Round).ID = nextID
	}).Return(nil).Once()
	e.rounds.On("SetCurrentRound", e.ctx, mock.Anything, nextID).Return(nil).Once()
}

func activeRound(id, pool int64, startedAt time.Time) *domain.Round {
	return &domain.Round{
		ID:              id,
		Status:          domain.RoundStatusActive,
		PrizePool:       pool,
		DurationSeconds: 300,
		StartedAt:       startedAt,
	}
}
