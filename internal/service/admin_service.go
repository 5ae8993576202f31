// internal/service/admin_service.go
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"bingo-engine/internal/config"
	"bingo-engine/internal/domain"
	"bingo-engine/internal/metrics"
	"bingo-engine/internal/util"
)

// AdminService defines privileged operations. Every method takes the caller's identity
// explicitly and fails with ErrUnauthorized, without side effects, unless it is the administrator.
type AdminService interface {
	ResetRound(ctx context.Context, adminID int64) (*domain.Settlement, error)
	StartRound(ctx context.Context, adminID int64) (*domain.Round, error)
	PauseRound(ctx context.Context, adminID int64) error
	ResumeRound(ctx context.Context, adminID int64) error
	CallNumber(ctx context.Context, adminID int64) (int, error)
	SetCardPrice(ctx context.Context, adminID, price int64) error
	SetHousePercent(ctx context.Context, adminID int64, percent int) error
	SetWithdrawalFee(ctx context.Context, adminID int64, percent int) error
	SetRoundDuration(ctx context.Context, adminID int64, seconds int64) error
	ApproveDeposit(ctx context.Context, adminID int64, reference string) (*domain.Payment, error)
	RejectDeposit(ctx context.Context, adminID int64, reference string) (*domain.Payment, error)
	ApproveWithdrawal(ctx context.Context, adminID, withdrawalID int64) (*domain.Withdrawal, error)
	RejectWithdrawal(ctx context.Context, adminID, withdrawalID int64) (*domain.Withdrawal, error)
	PendingDeposits(ctx context.Context, adminID int64) ([]domain.PendingPayment, error)
	PendingWithdrawals(ctx context.Context, adminID int64) ([]domain.PendingWithdrawal, error)
	Stats(ctx context.Context, adminID int64) (*domain.Stats, error)
}

type adminService struct {
	deps       Dependencies
	cfg        config.GameConfig
	game       GameService
	ledger     *Ledger
	settlement *SettlementService
	logger     *zap.Logger
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(deps Dependencies, cfg config.GameConfig, game GameService, ledger *Ledger, settlement *SettlementService) AdminService {
	deps = deps.withDefaults()
	return &adminService{
		deps:       deps,
		cfg:        cfg,
		game:       game,
		ledger:     ledger,
		settlement: settlement,
		logger:     deps.Logger.Named("admin"),
	}
}

func (s *adminService) authorize(adminID int64) error {
	if adminID != s.cfg.AdminID {
		s.logger.Warn("unauthorized admin attempt", zap.Int64("caller", adminID))
		return util.ErrUnauthorized
	}
	return nil
}

// ResetRound force-finishes the active round without refunds and opens a fresh one.
func (s *adminService) ResetRound(ctx context.Context, adminID int64) (*domain.Settlement, error) {
	if err := s.authorize(adminID); err != nil {
		return nil, err
	}
	started := time.Now()

	txController, txExecutor, err := s.deps.begin(ctx, "reset round")
	if err != nil {
		return nil, err
	}
	defer s.deps.RollbackTx(txController)

	round, err := s.deps.Rounds.GetCurrentRoundForUpdate(ctx, txExecutor)
	if err != nil {
		return nil, fmt.Errorf("reset round: %w", err)
	}
	result, err := s.settlement.reset(ctx, txExecutor, round)
	if err != nil {
		return nil, fmt.Errorf("reset round: %w", err)
	}
	result.started = started

	if err := s.deps.commit(txController, "reset round"); err != nil {
		return nil, err
	}
	s.settlement.announce(ctx, result)
	return result.settlement, nil
}

// StartRound opens a round when none is active.
func (s *adminService) StartRound(ctx context.Context, adminID int64) (*domain.Round, error) {
	if err := s.authorize(adminID); err != nil {
		return nil, err
	}
	return s.game.StartRound(ctx)
}

// PauseRound freezes calling.
func (s *adminService) PauseRound(ctx context.Context, adminID int64) error {
	if err := s.authorize(adminID); err != nil {
		return err
	}
	return s.game.PauseRound(ctx)
}

// ResumeRound unfreezes calling.
func (s *adminService) ResumeRound(ctx context.Context, adminID int64) error {
	if err := s.authorize(adminID); err != nil {
		return err
	}
	return s.game.ResumeRound(ctx)
}

// CallNumber draws one number by hand.
func (s *adminService) CallNumber(ctx context.Context, adminID int64) (int, error) {
	if err := s.authorize(adminID); err != nil {
		return 0, err
	}
	return s.game.CallNumber(ctx)
}

// SetCardPrice changes the price charged from the next purchase on.
func (s *adminService) SetCardPrice(ctx context.Context, adminID, price int64) error {
	if err := s.authorize(adminID); err != nil {
		return err
	}
	if price <= 0 {
		return util.ErrInvalidAmount
	}
	return s.updateSetting(ctx, domain.SettingCardPrice, price)
}

// SetHousePercent changes the cut taken at the next settlement.
func (s *adminService) SetHousePercent(ctx context.Context, adminID int64, percent int) error {
	if err := s.authorize(adminID); err != nil {
		return err
	}
	if percent < 0 || percent > 100 {
		return fmt.Errorf("house percent %d: %w", percent, util.ErrInvalidInput)
	}
	return s.updateSetting(ctx, domain.SettingHousePercent, int64(percent))
}

// SetWithdrawalFee changes the fee applied to new withdrawal requests.
func (s *adminService) SetWithdrawalFee(ctx context.Context, adminID int64, percent int) error {
	if err := s.authorize(adminID); err != nil {
		return err
	}
	if percent < 0 || percent > 100 {
		return fmt.Errorf("withdrawal fee %d: %w", percent, util.ErrInvalidInput)
	}
	return s.updateSetting(ctx, domain.SettingWithdrawalFee, int64(percent))
}

func (s *adminService) updateSetting(ctx context.Context, key domain.SettingKey, value int64) error {
	if err := s.deps.Settings.UpdateSetting(ctx, s.deps.DBExecutor, key, value); err != nil {
		return fmt.Errorf("update setting: %w", err)
	}
	s.logger.Info("setting changed", zap.String("key", string(key)), zap.Int64("value", value))
	return nil
}

// SetRoundDuration changes the active round's duration. Successor rounds inherit it.
func (s *adminService) SetRoundDuration(ctx context.Context, adminID int64, seconds int64) error {
	if err := s.authorize(adminID); err != nil {
		return err
	}
	if seconds <= 0 {
		return fmt.Errorf("round duration %d: %w", seconds, util.ErrInvalidInput)
	}

	txController, txExecutor, err := s.deps.begin(ctx, "set round duration")
	if err != nil {
		return err
	}
	defer s.deps.RollbackTx(txController)

	round, err := s.deps.Rounds.GetCurrentRoundForUpdate(ctx, txExecutor)
	if err != nil {
		return fmt.Errorf("set round duration: %w", err)
	}
	if err := s.deps.Rounds.SetDuration(ctx, txExecutor, round.ID, seconds); err != nil {
		return fmt.Errorf("set round duration: %w", err)
	}
	return s.deps.commit(txController, "set round duration")
}

// ApproveDeposit credits the deposit plus the configured bonus.
func (s *adminService) ApproveDeposit(ctx context.Context, adminID int64, reference string) (*domain.Payment, error) {
	return s.decideDeposit(ctx, adminID, reference, domain.RequestStatusApproved)
}

// RejectDeposit closes the deposit without moving money.
func (s *adminService) RejectDeposit(ctx context.Context, adminID int64, reference string) (*domain.Payment, error) {
	return s.decideDeposit(ctx, adminID, reference, domain.RequestStatusRejected)
}

func (s *adminService) decideDeposit(ctx context.Context, adminID int64, reference string, status domain.RequestStatus) (*domain.Payment, error) {
	if err := s.authorize(adminID); err != nil {
		return nil, err
	}
	op := "decide deposit"

	txController, txExecutor, err := s.deps.begin(ctx, op)
	if err != nil {
		return nil, err
	}
	defer s.deps.RollbackTx(txController)

	payment, err := s.deps.Payments.GetPaymentForUpdate(ctx, txExecutor, reference)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if payment.Status != domain.RequestStatusPending {
		return nil, util.ErrAlreadyProcessed
	}

	now := s.deps.Clock()
	if err := s.deps.Payments.DecidePayment(ctx, txExecutor, payment.ID, status, adminID, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if status == domain.RequestStatusApproved {
		ref := payment.Reference
		if _, err := s.ledger.Credit(ctx, txExecutor, payment.UserID, payment.Amount, domain.LedgerEntryDeposit, nil, &ref); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if s.cfg.DepositBonus > 0 {
			if _, err := s.ledger.Credit(ctx, txExecutor, payment.UserID, s.cfg.DepositBonus, domain.LedgerEntryDepositBonus, nil, &ref); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
		if err := s.deps.Users.AddTotalDeposited(ctx, txExecutor, payment.UserID, payment.Amount); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := s.deps.commit(txController, op); err != nil {
		return nil, err
	}

	payment.Status = status
	payment.ApprovedBy = &adminID
	payment.DecidedAt = &now
	s.logger.Info("deposit decided",
		zap.String("reference", payment.Reference),
		zap.Int64("user_id", payment.UserID),
		zap.Int64("amount", payment.Amount),
		zap.String("status", string(status)),
	)
	return payment, nil
}

// ApproveWithdrawal debits the full amount and books the fee as house revenue.
func (s *adminService) ApproveWithdrawal(ctx context.Context, adminID, withdrawalID int64) (*domain.Withdrawal, error) {
	return s.decideWithdrawal(ctx, adminID, withdrawalID, domain.RequestStatusApproved)
}

// RejectWithdrawal closes the withdrawal without moving money.
func (s *adminService) RejectWithdrawal(ctx context.Context, adminID, withdrawalID int64) (*domain.Withdrawal, error) {
	return s.decideWithdrawal(ctx, adminID, withdrawalID, domain.RequestStatusRejected)
}

func (s *adminService) decideWithdrawal(ctx context.Context, adminID, withdrawalID int64, status domain.RequestStatus) (*domain.Withdrawal, error) {
	if err := s.authorize(adminID); err != nil {
		return nil, err
	}
	op := "decide withdrawal"

	txController, txExecutor, err := s.deps.begin(ctx, op)
	if err != nil {
		return nil, err
	}
	defer s.deps.RollbackTx(txController)

	withdrawal, err := s.deps.Withdrawals.GetWithdrawalForUpdate(ctx, txExecutor, withdrawalID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if withdrawal.Status != domain.RequestStatusPending {
		return nil, util.ErrAlreadyProcessed
	}

	if status == domain.RequestStatusApproved {
		ref := strconv.FormatInt(withdrawal.ID, 10)
		// The balance may have changed since the request; Debit re-checks it under the row lock.
		if _, err := s.ledger.Debit(ctx, txExecutor, withdrawal.UserID, withdrawal.Amount, domain.LedgerEntryWithdrawal, nil, &ref); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if withdrawal.Fee > 0 {
			earning := domain.NewHouseEarning(domain.HouseEarningWithdrawalFee, withdrawal.Fee, nil)
			if err := s.deps.Reports.AddHouseEarning(ctx, txExecutor, earning); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	now := s.deps.Clock()
	if err := s.deps.Withdrawals.DecideWithdrawal(ctx, txExecutor, withdrawal.ID, status, adminID, now); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.deps.commit(txController, op); err != nil {
		return nil, err
	}

	if status == domain.RequestStatusApproved {
		metrics.AddHouseEarning(string(domain.HouseEarningWithdrawalFee), withdrawal.Fee)
	}
	withdrawal.Status = status
	withdrawal.DecidedBy = &adminID
	withdrawal.DecidedAt = &now
	s.logger.Info("withdrawal decided",
		zap.Int64("withdrawal_id", withdrawal.ID),
		zap.Int64("user_id", withdrawal.UserID),
		zap.Int64("amount", withdrawal.Amount),
		zap.Int64("fee", withdrawal.Fee),
		zap.String("status", string(status)),
	)
	return withdrawal, nil
}

// PendingDeposits lists deposits awaiting a decision.
func (s *adminService) PendingDeposits(ctx context.Context, adminID int64) ([]domain.PendingPayment, error) {
	if err := s.authorize(adminID); err != nil {
		return nil, err
	}
	return s.deps.Payments.ListPendingPayments(ctx, s.deps.DBExecutor)
}

// PendingWithdrawals lists withdrawals awaiting a decision.
func (s *adminService) PendingWithdrawals(ctx context.Context, adminID int64) ([]domain.PendingWithdrawal, error) {
	if err := s.authorize(adminID); err != nil {
		return nil, err
	}
	return s.deps.Withdrawals.ListPendingWithdrawals(ctx, s.deps.DBExecutor)
}

// Stats returns the aggregate report.
func (s *adminService) Stats(ctx context.Context, adminID int64) (*domain.Stats, error) {
	if err := s.authorize(adminID); err != nil {
		return nil, err
	}
	return s.deps.Reports.GetStats(ctx, s.deps.DBExecutor)
}
