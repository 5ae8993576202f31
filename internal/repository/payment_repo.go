// internal/repository/payment_repo.go
package repository

import (
	"context"
	"time"

	"bingo-engine/internal/domain"
)

// PaymentRepository manages deposit requests.
type PaymentRepository interface {
	// CreatePayment inserts a pending deposit; a reused reference yields ErrDuplicateEntry.
	CreatePayment(ctx context.Context, q DBExecutor, payment *domain.Payment) error
	// GetPaymentForUpdate locks a deposit by reference.
	GetPaymentForUpdate(ctx context.Context, q DBExecutor, reference string) (*domain.Payment, error)
	// DecidePayment records the admin decision on a pending deposit.
	DecidePayment(ctx context.Context, q DBExecutor, id int64, status domain.RequestStatus, adminID int64, at time.Time) error
	// ListPendingPayments lists pending deposits with usernames.
	ListPendingPayments(ctx context.Context, q DBExecutor) ([]domain.PendingPayment, error)
}

// WithdrawalRepository manages withdrawal requests.
type WithdrawalRepository interface {
	// CreateWithdrawal inserts a pending withdrawal.
	CreateWithdrawal(ctx context.Context, q DBExecutor, withdrawal *domain.Withdrawal) error
	// GetWithdrawalForUpdate locks a withdrawal by id.
	GetWithdrawalForUpdate(ctx context.Context, q DBExecutor, id int64) (*domain.Withdrawal, error)
	// DecideWithdrawal records the admin decision on a pending withdrawal.
	DecideWithdrawal(ctx context.Context, q DBExecutor, id int64, status domain.RequestStatus, adminID int64, at time.Time) error
	// ListPendingWithdrawals lists pending withdrawals with usernames.
	ListPendingWithdrawals(ctx context.Context, q DBExecutor) ([]domain.PendingWithdrawal, error)
}
