// internal/service/settlement_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/util"
)

func newTestSettlement(e *testEnv) *SettlementService {
	return NewSettlementService(e.deps, NewLedger(e.users, e.ledger, e.rounds))
}

func TestHandleWinner(t *testing.T) {
	t.Run("PaysWinnerAndOpensNextRound", func(t *testing.T) {
		e := newTestEnv(t)
		svc := newTestSettlement(e)

		e.rounds.On("GetCurrentRoundForUpdate", e.ctx, mock.Anything).Return(activeRound(7, 100, e.now.Add(-time.Minute)), nil).Once()
		e.rounds.On("TransitionStatus", e.ctx, mock.Anything, int64(7), domain.RoundStatusActive, domain.RoundStatusProcessing).Return(true, nil).Once()
		e.settings.On("GetSettings", e.ctx, mock.Anything).Return(&domain.GameSettings{CardPrice: 20, HousePercent: 15}, nil).Once()
		e.expectBalance(3, 85, 185, domain.LedgerEntryPayout)
		e.reports.On("AddHouseEarning", e.ctx, mock.Anything, mock.MatchedBy(func(h *domain.HouseEarning) bool {
			return h.Amount == 15
		})).Return(nil).Once()
		e.rounds.On("CompleteRound", e.ctx, mock.Anything, int64(7), domain.RoundStatusFinished, mock.Anything, int64(85), int64(15), e.now).Return(nil).Once()
		e.expectSuccessor(8, 300)
		e.tx.On("Commit").Return(nil).Once()

		settlement, err := svc.HandleWinner(e.ctx, 7, 3)

		require.NoError(t, err)
		assert.Equal(t, domain.SettlementPayout, settlement.Kind)
		require.NotNil(t, settlement.WinnerUserID)
		assert.Equal(t, int64(3), *settlement.WinnerUserID)
		assert.Equal(t, int64(100), settlement.WinnerAmount+settlement.HouseCut)
		e.publisher.AssertCalled(t, "Publish", mock.MatchedBy(func(ev domain.RoundEvent) bool {
			return ev.Type == domain.EventRoundStarted && ev.RoundID == 8
		}))
		e.assertExpectations(t)
	})

	t.Run("LostCompareAndSet", func(t *testing.T) {
		e := newTestEnv(t)
		svc := newTestSettlement(e)

		e.rounds.On("GetCurrentRoundForUpdate", e.ctx, mock.Anything).Return(activeRound(7, 100, e.now), nil).Once()
		e.rounds.On("TransitionStatus", e.ctx, mock.Anything, int64(7), domain.RoundStatusActive, domain.RoundStatusProcessing).Return(false, nil).Once()

		_, err := svc.HandleWinner(e.ctx, 7, 3)

		assert.ErrorIs(t, err, util.ErrAlreadyProcessed)
		e.users.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		e.tx.AssertNotCalled(t, "Commit")
		e.assertExpectations(t)
	})

	t.Run("RoundNoLongerCurrent", func(t *testing.T) {
		e := newTestEnv(t)
		svc := newTestSettlement(e)
		finished := activeRound(6, 0, e.now.Add(-time.Hour))
		finished.Status = domain.RoundStatusFinished

		e.rounds.On("GetCurrentRoundForUpdate", e.ctx, mock.Anything).Return(activeRound(7, 0, e.now), nil).Once()
		e.rounds.On("GetRoundByID", e.ctx, mock.Anything, int64(6)).Return(finished, nil).Once()

		_, err := svc.HandleWinner(e.ctx, 6, 3)

		assert.ErrorIs(t, err, util.ErrAlreadyProcessed)
		e.rounds.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		e.assertExpectations(t)
	})

	t.Run("UnknownRound", func(t *testing.T) {
		e := newTestEnv(t)
		svc := newTestSettlement(e)

		e.rounds.On("GetCurrentRoundForUpdate", e.ctx, mock.Anything).Return(activeRound(7, 0, e.now), nil).Once()
		e.rounds.On("GetRoundByID", e.ctx, mock.Anything, int64(99)).Return(nil, util.ErrRoundNotFound).Once()

		_, err := svc.HandleWinner(e.ctx, 99, 3)

		assert.ErrorIs(t, err, util.ErrNotFound)
		e.assertExpectations(t)
	})

	t.Run("ExpiredRoundIsRefunded", func(t *testing.T) {
		e := newTestEnv(t)
		svc := newTestSettlement(e)

		e.rounds.On("GetCurrentRoundForUpdate", e.ctx, mock.Anything).Return(activeRound(7, 80, e.now.Add(-301*time.Second)), nil).Once()
		e.rounds.On("TransitionStatus", e.ctx, mock.Anything, int64(7), domain.RoundStatusActive, domain.RoundStatusProcessing).Return(true, nil).Once()
		e.cards.On("SumSpendByUser", e.ctx, mock.Anything, int64(7)).Return([]domain.UserSpend{
			{UserID: 1, Cards: 2, Total: 40},
			{UserID: 2, Cards: 2, Total: 40},
		}, nil).Once()
		e.expectBalance(1, 40, 140, domain.LedgerEntryRefund)
		e.expectBalance(2, 40, 55, domain.LedgerEntryRefund)
		e.rounds.On("CompleteRound", e.ctx, mock.Anything, int64(7), domain.RoundStatusRefunded, (*int64)(nil), int64(0), int64(0), e.now).Return(nil).Once()
		e.expectSuccessor(8, 300)
		e.tx.On("Commit").Return(nil).Once()

		settlement, err := svc.HandleWinner(e.ctx, 7, 1)

		require.NoError(t, err)
		assert.Equal(t, domain.SettlementRefund, settlement.Kind)
		assert.Equal(t, domain.RoundStatusRefunded, settlement.Status)
		assert.Nil(t, settlement.WinnerUserID)
		assert.Equal(t, int64(80), settlement.RefundedTotal())
		assert.Equal(t, []domain.Refund{{UserID: 1, Amount: 40}, {UserID: 2, Amount: 40}}, settlement.Refunds)
		e.reports.AssertNotCalled(t, "AddHouseEarning", mock.Anything, mock.Anything, mock.Anything)
		e.assertExpectations(t)
	})

	t.Run("ClaimAtDeadlinePays", func(t *testing.T) {
		e := newTestEnv(t)
		svc := newTestSettlement(e)

		e.rounds.On("GetCurrentRoundForUpdate", e.ctx, mock.Anything).Return(activeRound(7, 100, e.now.Add(-300*time.Second)), nil).Once()
		e.rounds.On("TransitionStatus", e.ctx, mock.Anything, int64(7), domain.RoundStatusActive, domain.RoundStatusProcessing).Return(true, nil).Once()
		e.settings.On("GetSettings", e.ctx, mock.Anything).Return(&domain.GameSettings{CardPrice: 20, HousePercent: 10}, nil).Once()
		e.expectBalance(3, 90, 190, domain.LedgerEntryPayout)
		e.reports.On("AddHouseEarning", e.ctx, mock.Anything, mock.Anything).Return(nil).Once()
		e.rounds.On("CompleteRound", e.ctx, mock.Anything, int64(7), domain.RoundStatusFinished, mock.Anything, int64(90), int64(10), e.now).Return(nil).Once()
		e.expectSuccessor(8, 300)
		e.tx.On("Commit").Return(nil).Once()

		settlement, err := svc.HandleWinner(e.ctx, 7, 3)

		require.NoError(t, err)
		assert.Equal(t, domain.SettlementPayout, settlement.Kind)
		e.cards.AssertNotCalled(t, "SumSpendByUser", mock.Anything, mock.Anything, mock.Anything)
		e.assertExpectations(t)
	})

	t.Run("EmptyPoolRollsBack", func(t *testing.T) {
		e := newTestEnv(t)
		svc := newTestSettlement(e)

		e.rounds.On("GetCurrentRoundForUpdate", e.ctx, mock.Anything).Return(activeRound(7, 0, e.now), nil).Once()
		e.rounds.On("TransitionStatus", e.ctx, mock.Anything, int64(7), domain.RoundStatusActive, domain.RoundStatusProcessing).Return(true, nil).Once()

		_, err := svc.HandleWinner(e.ctx, 7, 3)

		assert.ErrorIs(t, err, util.ErrEmptyPrizePool)
		e.tx.AssertNotCalled(t, "Commit")
		e.tx.AssertCalled(t, "Rollback")
		e.assertExpectations(t)
	})
}

func TestRefundRound(t *testing.T) {
	t.Run("NoPurchasesClosesRound", func(t *testing.T) {
		e := newTestEnv(t)
		svc := newTestSettlement(e)
		round := activeRound(7, 0, e.now)
		round.DurationSeconds = 120

		e.rounds.On("GetCurrentRoundForUpdate", e.ctx, mock.Anything).Return(round, nil).Once()
		e.rounds.On("TransitionStatus", e.ctx, mock.Anything, int64(7), domain.RoundStatusActive, domain.RoundStatusProcessing).Return(true, nil).Once()
		e.cards.On("SumSpendByUser", e.ctx, mock.Anything, int64(7)).Return([]domain.UserSpend{}, nil).Once()
		e.rounds.On("CompleteRound", e.ctx, mock.Anything, int64(7), domain.RoundStatusFinished, (*int64)(nil), int64(0), int64(0), e.now).Return(nil).Once()
		// The successor inherits the duration.
		e.expectSuccessor(8, 120)
		e.tx.On("Commit").Return(nil).Once()

		settlement, err := svc.RefundRound(e.ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, domain.SettlementClosed, settlement.Kind)
		assert.Equal(t, "Round 7 closed (no players). New round 8 started.", settlement.Summary())
		e.assertExpectations(t)
	})

	t.Run("RefundsPriceAtPurchaseTime", func(t *testing.T) {
		e := newTestEnv(t)
		svc := newTestSettlement(e)

		e.rounds.On("GetCurrentRoundForUpdate", e.ctx, mock.Anything).Return(activeRound(7, 45, e.now), nil).Once()
		e.rounds.On("TransitionStatus", e.ctx, mock.Anything, int64(7), domain.RoundStatusActive, domain.RoundStatusProcessing).Return(true, nil).Once()
		// One card bought at 20 and one after a price change to 25.
		e.cards.On("SumSpendByUser", e.ctx, mock.Anything, int64(7)).Return([]domain.UserSpend{
			{UserID: 4, Cards: 1, Total: 20},
			{UserID: 9, Cards: 1, Total: 25},
		}, nil).Once()
		e.expectBalance(4, 20, 20, domain.LedgerEntryRefund)
		e.expectBalance(9, 25, 25, domain.LedgerEntryRefund)
		e.rounds.On("CompleteRound", e.ctx, mock.Anything, int64(7), domain.RoundStatusRefunded, (*int64)(nil), int64(0), int64(0), e.now).Return(nil).Once()
		e.expectSuccessor(8, 300)
		e.tx.On("Commit").Return(nil).Once()

		settlement, err := svc.RefundRound(e.ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, settlement.PrizePool, settlement.RefundedTotal())
		assert.Equal(t, "Round 7 timed out. 2 players refunded. New round 8 started.", settlement.Summary())
		e.assertExpectations(t)
	})
}
