// internal/domain/money_test.go
package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPrizePool(t *testing.T) {
	cut, win := SplitPrizePool(60, 10)
	assert.Equal(t, int64(6), cut)
	assert.Equal(t, int64(54), win)

	cut, win = SplitPrizePool(25, 10)
	assert.Equal(t, int64(2), cut, "house cut rounds down")
	assert.Equal(t, int64(23), win)

	for pool := int64(0); pool <= 500; pool += 7 {
		for pct := 0; pct <= 100; pct += 3 {
			cut, win := SplitPrizePool(pool, pct)
			assert.Equal(t, pool, cut+win)
			assert.GreaterOrEqual(t, win, int64(0))
		}
	}
}

func TestNewWithdrawalFee(t *testing.T) {
	w := NewWithdrawal(1, 199, 5, "telebirr", "0911")
	assert.Equal(t, int64(9), w.Fee)
	assert.Equal(t, int64(190), w.FinalAmount)
	assert.Equal(t, RequestStatusPending, w.Status)
}

func TestSettlementSummary(t *testing.T) {
	payout := &Settlement{Kind: SettlementPayout, WinnerAmount: 54, HouseCut: 6, NextRoundID: 8}
	assert.Equal(t, "Winner paid 54. House earned 6. New round 8 started.", payout.Summary())

	refund := &Settlement{RoundID: 7, Kind: SettlementRefund, NextRoundID: 8, Refunds: []Refund{{UserID: 1, Amount: 40}, {UserID: 2, Amount: 40}}}
	assert.Equal(t, int64(80), refund.RefundedTotal())
	assert.Contains(t, refund.Summary(), "2 players refunded")

	closed := &Settlement{RoundID: 7, Kind: SettlementClosed, NextRoundID: 8}
	assert.Contains(t, closed.Summary(), "no players")
}

func TestNewLedgerEntry(t *testing.T) {
	e := NewLedgerEntry(3, LedgerEntryPurchase, -20, 80, nil, nil)
	assert.Equal(t, int64(100), e.BalanceBefore)
	assert.Equal(t, int64(80), e.BalanceAfter)
}
