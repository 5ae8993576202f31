// internal/domain/payment.go
package domain

import "time"

// RequestStatus is shared by deposits and withdrawals: pending transitions once, then is terminal.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Payment is a deposit request awaiting admin approval.
type Payment struct {
	ID         int64         `db:"id" json:"id"`
	Reference  string        `db:"reference" json:"reference"`     // Unique external reference
	UserID     int64         `db:"user_id" json:"user_id"`         // Depositing user
	Amount     int64         `db:"amount" json:"amount"`           // Requested amount
	Status     RequestStatus `db:"status" json:"status"`           // pending, approved, rejected
	ApprovedBy *int64        `db:"approved_by" json:"approved_by"` // Admin identity that decided
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
	DecidedAt  *time.Time    `db:"decided_at" json:"decided_at"`
}

// NewPayment creates a pending deposit request.
func NewPayment(userID int64, amount int64, reference string) *Payment {
	return &Payment{
		Reference: reference,
		UserID:    userID,
		Amount:    amount,
		Status:    RequestStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// Withdrawal is a payout request. Fee and FinalAmount are fixed when the request is made.
type Withdrawal struct {
	ID            int64         `db:"id" json:"id"`
	UserID        int64         `db:"user_id" json:"user_id"`
	Amount        int64         `db:"amount" json:"amount"`             // Debited from the balance on approval
	Fee           int64         `db:"fee" json:"fee"`                   // Retained by the house
	FinalAmount   int64         `db:"final_amount" json:"final_amount"` // Paid out to the user
	PayoutMethod  string        `db:"payout_method" json:"payout_method"`
	PayoutAccount string        `db:"payout_account" json:"payout_account"`
	Status        RequestStatus `db:"status" json:"status"`
	DecidedBy     *int64        `db:"decided_by" json:"decided_by"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	DecidedAt     *time.Time    `db:"decided_at" json:"decided_at"`
}

// NewWithdrawal creates a pending withdrawal with its fee computed from feePercent.
func NewWithdrawal(userID, amount int64, feePercent int, method, account string) *Withdrawal {
	fee := PercentOf(amount, feePercent)
	return &Withdrawal{
		UserID:        userID,
		Amount:        amount,
		Fee:           fee,
		FinalAmount:   amount - fee,
		PayoutMethod:  method,
		PayoutAccount: account,
		Status:        RequestStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}

// PendingPayment is a pending deposit joined with the requesting user's name.
type PendingPayment struct {
	Payment
	Username string `db:"username" json:"username"`
}

// PendingWithdrawal is a pending withdrawal joined with the requesting user's name.
type PendingWithdrawal struct {
	Withdrawal
	Username string `db:"username" json:"username"`
}
