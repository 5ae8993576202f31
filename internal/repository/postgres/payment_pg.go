// internal/repository/postgres/payment_pg.go
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

// PaymentRepository implements repository.PaymentRepository for PostgreSQL.
type PaymentRepository struct{}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository() repository.PaymentRepository {
	return &PaymentRepository{}
}

// CreatePayment inserts a pending deposit request.
func (r *PaymentRepository) CreatePayment(ctx context.Context, q repository.DBExecutor, payment *domain.Payment) error {
	query := `INSERT INTO payments (reference, user_id, amount, status, created_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, payment.Reference, payment.UserID, payment.Amount, payment.Status, payment.CreatedAt).
		Scan(&payment.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("payment reference %q: %w", payment.Reference, util.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetPaymentForUpdate locks a deposit by reference.
func (r *PaymentRepository) GetPaymentForUpdate(ctx context.Context, q repository.DBExecutor, reference string) (*domain.Payment, error) {
	var payment domain.Payment
	query := `SELECT id, reference, user_id, amount, status, approved_by, created_at, decided_at
              FROM payments WHERE reference = $1 FOR UPDATE`
	if err := q.GetContext(ctx, &payment, query, reference); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment %q: %w", reference, err)
	}
	return &payment, nil
}

// DecidePayment moves a pending deposit to its final status.
func (r *PaymentRepository) DecidePayment(ctx context.Context, q repository.DBExecutor, id int64, status domain.RequestStatus, adminID int64, at time.Time) error {
	result, err := q.ExecContext(ctx,
		`UPDATE payments SET status = $1, approved_by = $2, decided_at = $3 WHERE id = $4 AND status = 'pending'`,
		status, adminID, at, id)
	return checkDecided(result, err, "payment", id)
}

// ListPendingPayments lists pending deposits, oldest first.
func (r *PaymentRepository) ListPendingPayments(ctx context.Context, q repository.DBExecutor) ([]domain.PendingPayment, error) {
	pending := []domain.PendingPayment{}
	query := `SELECT p.id, p.reference, p.user_id, p.amount, p.status, p.approved_by, p.created_at, p.decided_at, u.username
              FROM payments p JOIN users u ON u.id = p.user_id
              WHERE p.status = 'pending' ORDER BY p.id`
	if err := q.SelectContext(ctx, &pending, query); err != nil {
		return nil, fmt.Errorf("failed to list pending payments: %w", err)
	}
	return pending, nil
}

// WithdrawalRepository implements repository.WithdrawalRepository for PostgreSQL.
type WithdrawalRepository struct{}

// NewWithdrawalRepository creates a new WithdrawalRepository.
func NewWithdrawalRepository() repository.WithdrawalRepository {
	return &WithdrawalRepository{}
}

const withdrawalColumns = `w.id, w.user_id, w.amount, w.fee, w.final_amount, w.payout_method, w.payout_account,
       w.status, w.decided_by, w.created_at, w.decided_at`

// CreateWithdrawal inserts a pending withdrawal.
func (r *WithdrawalRepository) CreateWithdrawal(ctx context.Context, q repository.DBExecutor, withdrawal *domain.Withdrawal) error {
	query := `INSERT INTO withdrawals (user_id, amount, fee, final_amount, payout_method, payout_account, status, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		withdrawal.UserID,
		withdrawal.Amount,
		withdrawal.Fee,
		withdrawal.FinalAmount,
		withdrawal.PayoutMethod,
		withdrawal.PayoutAccount,
		withdrawal.Status,
		withdrawal.CreatedAt,
	).Scan(&withdrawal.ID)
	if err != nil {
		return fmt.Errorf("failed to create withdrawal: %w", err)
	}
	return nil
}

// GetWithdrawalForUpdate locks a withdrawal by id.
func (r *WithdrawalRepository) GetWithdrawalForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Withdrawal, error) {
	var withdrawal domain.Withdrawal
	if err := q.GetContext(ctx, &withdrawal, `SELECT `+withdrawalColumns+` FROM withdrawals w WHERE w.id = $1 FOR UPDATE`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal %d: %w", id, err)
	}
	return &withdrawal, nil
}

// DecideWithdrawal moves a pending withdrawal to its final status.
func (r *WithdrawalRepository) DecideWithdrawal(ctx context.Context, q repository.DBExecutor, id int64, status domain.RequestStatus, adminID int64, at time.Time) error {
	result, err := q.ExecContext(ctx,
		`UPDATE withdrawals SET status = $1, decided_by = $2, decided_at = $3 WHERE id = $4 AND status = 'pending'`,
		status, adminID, at, id)
	return checkDecided(result, err, "withdrawal", id)
}

// ListPendingWithdrawals lists pending withdrawals, oldest first.
func (r *WithdrawalRepository) ListPendingWithdrawals(ctx context.Context, q repository.DBExecutor) ([]domain.PendingWithdrawal, error) {
	pending := []domain.PendingWithdrawal{}
	query := `SELECT ` + withdrawalColumns + `, u.username
              FROM withdrawals w JOIN users u ON u.id = w.user_id
              WHERE w.status = 'pending' ORDER BY w.id`
	if err := q.SelectContext(ctx, &pending, query); err != nil {
		return nil, fmt.Errorf("failed to list pending withdrawals: %w", err)
	}
	return pending, nil
}

func checkDecided(result sql.Result, err error, kind string, id int64) error {
	if err != nil {
		return fmt.Errorf("failed to decide %s %d: %w", kind, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for %s %d: %w", kind, id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, util.ErrAlreadyProcessed)
	}
	return nil
}
