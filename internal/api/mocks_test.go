// internal/api/mocks_test.go
package api_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bingo-engine/internal/domain"
)

// MockGameService is a mock implementation of service.GameService.
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Bootstrap(ctx context.Context) (*domain.Round, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockGameService) StartRound(ctx context.Context) (*domain.Round, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockGameService) BuyCard(ctx context.Context, externalUserID int64, cardID int) (*domain.Purchase, error) {
	args := m.Called(ctx, externalUserID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockGameService) CallNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGameService) PauseRound(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGameService) ResumeRound(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockGameService) ClaimWin(ctx context.Context, externalUserID int64, cardID int) (*domain.Settlement, error) {
	args := m.Called(ctx, externalUserID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockGameService) FindAllWinners(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockGameService) CheckRoundTimeout(ctx context.Context) (*domain.Settlement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockGameService) IsRoundExpired(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockGameService) CurrentRound(ctx context.Context) (*domain.RoundView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoundView), args.Error(1)
}

func (m *MockGameService) GetCalledNumbers(ctx context.Context, roundID int64) ([]int, error) {
	args := m.Called(ctx, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockGameService) ListAvailableCards(ctx context.Context) ([]domain.CardAvailability, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CardAvailability), args.Error(1)
}

func (m *MockGameService) GetCardGrid(cardID int) (domain.Grid, error) {
	args := m.Called(cardID)
	return args.Get(0).(domain.Grid), args.Error(1)
}

func (m *MockGameService) GetUserCards(ctx context.Context, externalUserID int64) ([]domain.UserCard, error) {
	args := m.Called(ctx, externalUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserCard), args.Error(1)
}

func (m *MockGameService) GetRoundResult(ctx context.Context, roundID int64) (*domain.Round, error) {
	args := m.Called(ctx, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

// MockWalletService is a mock implementation of service.WalletService.
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) RegisterUser(ctx context.Context, externalID int64, username string) (*domain.User, error) {
	args := m.Called(ctx, externalID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockWalletService) GetUser(ctx context.Context, externalID int64) (*domain.User, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockWalletService) RequestDeposit(ctx context.Context, externalID, amount int64, reference string) (*domain.Payment, error) {
	args := m.Called(ctx, externalID, amount, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockWalletService) RequestWithdrawal(ctx context.Context, externalID, amount int64, method, account string) (*domain.Withdrawal, error) {
	args := m.Called(ctx, externalID, amount, method, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockWalletService) GetLedgerHistory(ctx context.Context, externalID int64, limit, offset int) ([]domain.LedgerEntry, int64, error) {
	args := m.Called(ctx, externalID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Get(1).(int64), args.Error(2)
}

// MockAdminService is a mock implementation of service.AdminService.
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ResetRound(ctx context.Context, adminID int64) (*domain.Settlement, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockAdminService) StartRound(ctx context.Context, adminID int64) (*domain.Round, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockAdminService) PauseRound(ctx context.Context, adminID int64) error {
	return m.Called(ctx, adminID).Error(0)
}

func (m *MockAdminService) ResumeRound(ctx context.Context, adminID int64) error {
	return m.Called(ctx, adminID).Error(0)
}

func (m *MockAdminService) CallNumber(ctx context.Context, adminID int64) (int, error) {
	args := m.Called(ctx, adminID)
	return args.Int(0), args.Error(1)
}

func (m *MockAdminService) SetCardPrice(ctx context.Context, adminID, price int64) error {
	return m.Called(ctx, adminID, price).Error(0)
}

func (m *MockAdminService) SetHousePercent(ctx context.Context, adminID int64, percent int) error {
	return m.Called(ctx, adminID, percent).Error(0)
}

func (m *MockAdminService) SetWithdrawalFee(ctx context.Context, adminID int64, percent int) error {
	return m.Called(ctx, adminID, percent).Error(0)
}

func (m *MockAdminService) SetRoundDuration(ctx context.Context, adminID int64, seconds int64) error {
	return m.Called(ctx, adminID, seconds).Error(0)
}

func (m *MockAdminService) ApproveDeposit(ctx context.Context, adminID int64, reference string) (*domain.Payment, error) {
	args := m.Called(ctx, adminID, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockAdminService) RejectDeposit(ctx context.Context, adminID int64, reference string) (*domain.Payment, error) {
	args := m.Called(ctx, adminID, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockAdminService) ApproveWithdrawal(ctx context.Context, adminID, withdrawalID int64) (*domain.Withdrawal, error) {
	args := m.Called(ctx, adminID, withdrawalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockAdminService) RejectWithdrawal(ctx context.Context, adminID, withdrawalID int64) (*domain.Withdrawal, error) {
	args := m.Called(ctx, adminID, withdrawalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Withdrawal), args.Error(1)
}

func (m *MockAdminService) PendingDeposits(ctx context.Context, adminID int64) ([]domain.PendingPayment, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingPayment), args.Error(1)
}

func (m *MockAdminService) PendingWithdrawals(ctx context.Context, adminID int64) ([]domain.PendingWithdrawal, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingWithdrawal), args.Error(1)
}

func (m *MockAdminService) Stats(ctx context.Context, adminID int64) (*domain.Stats, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}
