// internal/service/ledger_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/util"
)

func TestLedger(t *testing.T) {
	t.Run("DebitRejectsNonPositive", func(t *testing.T) {
		e := newTestEnv(t)
		l := NewLedger(e.users, e.ledger, e.rounds)

		_, err := l.Debit(e.ctx, e.tx, 1, 0, domain.LedgerEntryPurchase, nil, nil)

		assert.ErrorIs(t, err, util.ErrInvalidAmount)
		e.assertExpectations(t)
	})

	t.Run("CreditJournalsBalances", func(t *testing.T) {
		e := newTestEnv(t)
		l := NewLedger(e.users, e.ledger, e.rounds)
		e.expectBalance(1, 30, 130, domain.LedgerEntryRefund)

		balance, err := l.Credit(e.ctx, e.tx, 1, 30, domain.LedgerEntryRefund, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(130), balance)
		e.assertExpectations(t)
	})

	t.Run("JournalFailureSurfaces", func(t *testing.T) {
		e := newTestEnv(t)
		l := NewLedger(e.users, e.ledger, e.rounds)
		e.users.On("AdjustBalance", e.ctx, e.tx, int64(1), int64(-20)).Return(int64(80), nil).Once()
		e.ledger.On("CreateLedgerEntry", e.ctx, e.tx, mock.Anything).Return(errors.New("disk full")).Once()

		_, err := l.Debit(e.ctx, e.tx, 1, 20, domain.LedgerEntryPurchase, nil, nil)

		assert.ErrorContains(t, err, "disk full")
		e.assertExpectations(t)
	})

	t.Run("TransferToPool", func(t *testing.T) {
		e := newTestEnv(t)
		l := NewLedger(e.users, e.ledger, e.rounds)
		e.expectBalance(1, -20, 0, domain.LedgerEntryPurchase)
		e.rounds.On("AddToPrizePool", e.ctx, e.tx, int64(7), int64(20)).Return(int64(20), nil).Once()

		balance, pool, err := l.TransferToPool(e.ctx, e.tx, 1, 20, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
		assert.Equal(t, int64(20), pool)
		e.assertExpectations(t)
	})

	t.Run("TransferStopsOnInsufficientFunds", func(t *testing.T) {
		e := newTestEnv(t)
		l := NewLedger(e.users, e.ledger, e.rounds)
		e.users.On("AdjustBalance", e.ctx, e.tx, int64(1), int64(-20)).Return(int64(0), util.ErrInsufficientFunds).Once()

		_, _, err := l.TransferToPool(e.ctx, e.tx, 1, 20, 7)

		assert.ErrorIs(t, err, util.ErrInsufficientFunds)
		e.rounds.AssertNotCalled(t, "AddToPrizePool", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		e.assertExpectations(t)
	})
}
