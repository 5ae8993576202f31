// internal/domain/ledger.go
package domain

import "time"

// LedgerEntryType classifies a balance movement.
type LedgerEntryType string

const (
	LedgerEntryPurchase     LedgerEntryType = "purchase"
	LedgerEntryPayout       LedgerEntryType = "payout"
	LedgerEntryRefund       LedgerEntryType = "refund"
	LedgerEntryDeposit      LedgerEntryType = "deposit"
	LedgerEntryDepositBonus LedgerEntryType = "deposit_bonus"
	LedgerEntryWithdrawal   LedgerEntryType = "withdrawal"
)

// LedgerEntry is an append-only record of one balance change.
type LedgerEntry struct {
	ID            int64           `db:"id" json:"id"`                         // Primary key, BIGSERIAL in DB
	UserID        int64           `db:"user_id" json:"user_id"`               // Affected user
	Type          LedgerEntryType `db:"entry_type" json:"type"`               // Kind of movement
	Amount        int64           `db:"amount" json:"amount"`                 // Signed change applied to the balance
	BalanceBefore int64           `db:"balance_before" json:"balance_before"` // Balance before the change
	BalanceAfter  int64           `db:"balance_after" json:"balance_after"`   // Balance after the change
	RoundID       *int64          `db:"round_id" json:"round_id"`             // Round for game movements
	Reference     *string         `db:"reference" json:"reference"`           // Payment reference or withdrawal id
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`         // Timestamp of record creation
}

// NewLedgerEntry creates a ledger entry for a change already applied to the balance.
func NewLedgerEntry(userID int64, entryType LedgerEntryType, amount, balanceAfter int64, roundID *int64, reference *string) *LedgerEntry {
	return &LedgerEntry{
		UserID:        userID,
		Type:          entryType,
		Amount:        amount,
		BalanceBefore: balanceAfter - amount,
		BalanceAfter:  balanceAfter,
		RoundID:       roundID,
		Reference:     reference,
		CreatedAt:     time.Now().UTC(),
	}
}

// HouseEarningSource labels where house revenue came from.
type HouseEarningSource string

const (
	HouseEarningRound         HouseEarningSource = "bingo_round"
	HouseEarningWithdrawalFee HouseEarningSource = "withdrawal_fee"
)

// HouseEarning is an append-only revenue entry.
type HouseEarning struct {
	ID        int64              `db:"id" json:"id"`
	Source    HouseEarningSource `db:"source" json:"source"`
	Amount    int64              `db:"amount" json:"amount"`
	RoundID   *int64             `db:"round_id" json:"round_id"`
	CreatedAt time.Time          `db:"created_at" json:"created_at"`
}

// NewHouseEarning creates a revenue entry.
func NewHouseEarning(source HouseEarningSource, amount int64, roundID *int64) *HouseEarning {
	return &HouseEarning{Source: source, Amount: amount, RoundID: roundID, CreatedAt: time.Now().UTC()}
}

// Stats is the admin aggregate report.
type Stats struct {
	TotalUsers         int64 `db:"total_users" json:"total_users"`
	TotalDeposits      int64 `db:"total_deposits" json:"total_deposits"`
	CurrentPrizePool   int64 `db:"current_prize_pool" json:"current_prize_pool"`
	TotalRounds        int64 `db:"total_rounds" json:"total_rounds"`
	TotalHouseEarnings int64 `db:"total_house_earnings" json:"total_house_earnings"`
}
