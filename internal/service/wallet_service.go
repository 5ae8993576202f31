// internal/service/wallet_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/util"
)

// WalletService defines the player-facing money operations.
type WalletService interface {
	RegisterUser(ctx context.Context, externalID int64, username string) (*domain.User, error)
	GetUser(ctx context.Context, externalID int64) (*domain.User, error)
	RequestDeposit(ctx context.Context, externalID, amount int64, reference string) (*domain.Payment, error)
	RequestWithdrawal(ctx context.Context, externalID, amount int64, method, account string) (*domain.Withdrawal, error)
	GetLedgerHistory(ctx context.Context, externalID int64, limit, offset int) ([]domain.LedgerEntry, int64, error)
}

// walletService implements the WalletService interface.
type walletService struct {
	deps   Dependencies
	logger *zap.Logger
}

// NewWalletService creates a new instance of WalletService.
func NewWalletService(deps Dependencies) WalletService {
	deps = deps.withDefaults()
	return &walletService{deps: deps, logger: deps.Logger.Named("wallet")}
}

// RegisterUser creates the user on first contact and refreshes the display name afterwards.
func (s *walletService) RegisterUser(ctx context.Context, externalID int64, username string) (*domain.User, error) {
	if externalID <= 0 {
		return nil, fmt.Errorf("external id %d: %w", externalID, util.ErrInvalidInput)
	}
	user := domain.NewUser(externalID, strings.TrimSpace(username))
	if err := s.deps.Users.UpsertUser(ctx, s.deps.DBExecutor, user); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user with the current balance.
func (s *walletService) GetUser(ctx context.Context, externalID int64) (*domain.User, error) {
	user, err := s.deps.Users.GetUserByExternalID(ctx, s.deps.DBExecutor, externalID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// RequestDeposit records a pending deposit. An empty reference gets a generated one.
func (s *walletService) RequestDeposit(ctx context.Context, externalID, amount int64, reference string) (*domain.Payment, error) {
	if amount <= 0 {
		return nil, util.ErrInvalidAmount
	}
	user, err := s.deps.Users.GetUserByExternalID(ctx, s.deps.DBExecutor, externalID)
	if err != nil {
		return nil, fmt.Errorf("request deposit: %w", err)
	}

	reference = strings.TrimSpace(reference)
	if reference == "" {
		reference = uuid.NewString()
	}
	payment := domain.NewPayment(user.ID, amount, reference)
	if err := s.deps.Payments.CreatePayment(ctx, s.deps.DBExecutor, payment); err != nil {
		return nil, fmt.Errorf("request deposit: %w", err)
	}

	s.logger.Info("deposit requested",
		zap.Int64("user_id", user.ID),
		zap.Int64("amount", amount),
		zap.String("reference", reference),
	)
	return payment, nil
}

// RequestWithdrawal records a pending withdrawal with its fee fixed at the current rate.
// The balance is checked here and again, under lock, on approval.
func (s *walletService) RequestWithdrawal(ctx context.Context, externalID, amount int64, method, account string) (*domain.Withdrawal, error) {
	if amount <= 0 {
		return nil, util.ErrInvalidAmount
	}
	method, account = strings.TrimSpace(method), strings.TrimSpace(account)
	if method == "" || account == "" {
		return nil, fmt.Errorf("payout method and account are required: %w", util.ErrInvalidInput)
	}

	user, err := s.deps.Users.GetUserByExternalID(ctx, s.deps.DBExecutor, externalID)
	if err != nil {
		return nil, fmt.Errorf("request withdrawal: %w", err)
	}
	if user.Balance < amount {
		return nil, util.ErrInsufficientFunds
	}
	settings, err := s.deps.Settings.GetSettings(ctx, s.deps.DBExecutor)
	if err != nil {
		return nil, fmt.Errorf("request withdrawal: %w", err)
	}

	withdrawal := domain.NewWithdrawal(user.ID, amount, settings.WithdrawalFeePercent, method, account)
	if err := s.deps.Withdrawals.CreateWithdrawal(ctx, s.deps.DBExecutor, withdrawal); err != nil {
		return nil, fmt.Errorf("request withdrawal: %w", err)
	}

	s.logger.Info("withdrawal requested",
		zap.Int64("user_id", user.ID),
		zap.Int64("amount", amount),
		zap.Int64("fee", withdrawal.Fee),
	)
	return withdrawal, nil
}

// GetLedgerHistory retrieves a paginated list of balance movements for a user.
func (s *walletService) GetLedgerHistory(ctx context.Context, externalID int64, limit, offset int) ([]domain.LedgerEntry, int64, error) {
	user, err := s.deps.Users.GetUserByExternalID(ctx, s.deps.DBExecutor, externalID)
	if err != nil {
		return nil, 0, err
	}

	entries, totalCount, err := s.deps.Ledger.ListLedgerEntriesByUser(ctx, s.deps.DBExecutor, user.ID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve ledger history: %w", err)
	}
	return entries, totalCount, nil
}
