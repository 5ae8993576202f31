// internal/service/settlement_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/metrics"
	"bingo-engine/internal/repository"
	"bingo-engine/internal/util"
)

// SettlementService ends rounds by payout or refund and opens the successor round.
// The active -> processing compare-and-set is the only guard against double settlement.
type SettlementService struct {
	deps   Dependencies
	ledger *Ledger
	logger *zap.Logger
}

// NewSettlementService creates a SettlementService.
func NewSettlementService(deps Dependencies, ledger *Ledger) *SettlementService {
	deps = deps.withDefaults()
	return &SettlementService{deps: deps, ledger: ledger, logger: deps.Logger.Named("settlement")}
}

// settled carries what the post-commit step needs.
type settled struct {
	settlement *domain.Settlement
	round      domain.Round
	next       *domain.Round
	started    time.Time
}

// HandleWinner pays the round's pool to winnerUserID minus the house cut.
// A round that has already expired is refunded instead.
func (s *SettlementService) HandleWinner(ctx context.Context, roundID, winnerUserID int64) (*domain.Settlement, error) {
	return s.settleByID(ctx, "handle winner", roundID, &winnerUserID)
}

// RefundRound returns every player's spend in the round.
func (s *SettlementService) RefundRound(ctx context.Context, roundID int64) (*domain.Settlement, error) {
	return s.settleByID(ctx, "refund round", roundID, nil)
}

func (s *SettlementService) settleByID(ctx context.Context, op string, roundID int64, winnerUserID *int64) (*domain.Settlement, error) {
	started := time.Now()
	txController, txExecutor, err := s.deps.begin(ctx, op)
	if err != nil {
		return nil, err
	}
	defer s.deps.RollbackTx(txController)

	round, err := s.lockRound(ctx, txExecutor, roundID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := s.settle(ctx, txExecutor, round, winnerUserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result.started = started

	if err := s.deps.commit(txController, op); err != nil {
		return nil, err
	}
	s.announce(ctx, result)
	return result.settlement, nil
}

// lockRound takes the current-round lock and checks roundID is still the current round.
func (s *SettlementService) lockRound(ctx context.Context, q repository.DBExecutor, roundID int64) (*domain.Round, error) {
	current, err := s.deps.Rounds.GetCurrentRoundForUpdate(ctx, q)
	if err != nil && !errors.Is(err, util.ErrRoundNotFound) {
		return nil, err
	}
	if current != nil && current.ID == roundID {
		return current, nil
	}
	// Only the current round can be active, so any other round has been settled already.
	if _, err := s.deps.Rounds.GetRoundByID(ctx, q, roundID); err != nil {
		return nil, err
	}
	return nil, util.ErrAlreadyProcessed
}

// settle runs on a transaction holding the current-round lock. A nil winner means refund.
func (s *SettlementService) settle(ctx context.Context, q repository.DBExecutor, round *domain.Round, winnerUserID *int64) (*settled, error) {
	if err := s.claim(ctx, q, round); err != nil {
		return nil, err
	}

	now := s.deps.Clock()
	// A claim after the deadline is refunded instead.
	if winnerUserID == nil || round.Overran(now) {
		return s.refund(ctx, q, round, now)
	}
	if round.PrizePool <= 0 {
		return nil, util.ErrEmptyPrizePool
	}
	return s.payout(ctx, q, round, *winnerUserID, now)
}

// claim moves the round active -> processing.
func (s *SettlementService) claim(ctx context.Context, q repository.DBExecutor, round *domain.Round) error {
	if round.Status != domain.RoundStatusActive {
		return util.ErrAlreadyProcessed
	}
	moved, err := s.deps.Rounds.TransitionStatus(ctx, q, round.ID, domain.RoundStatusActive, domain.RoundStatusProcessing)
	if err != nil {
		return err
	}
	if !moved {
		return util.ErrAlreadyProcessed
	}
	round.Status = domain.RoundStatusProcessing
	return nil
}

func (s *SettlementService) payout(ctx context.Context, q repository.DBExecutor, round *domain.Round, winnerUserID int64, now time.Time) (*settled, error) {
	settings, err := s.deps.Settings.GetSettings(ctx, q)
	if err != nil {
		return nil, err
	}
	houseCut, winnerAmount := domain.SplitPrizePool(round.PrizePool, settings.HousePercent)

	if _, err := s.ledger.Credit(ctx, q, winnerUserID, winnerAmount, domain.LedgerEntryPayout, &round.ID, nil); err != nil {
		return nil, fmt.Errorf("failed to credit winner %d: %w", winnerUserID, err)
	}
	earning := domain.NewHouseEarning(domain.HouseEarningRound, houseCut, &round.ID)
	if err := s.deps.Reports.AddHouseEarning(ctx, q, earning); err != nil {
		return nil, err
	}
	if err := s.deps.Rounds.CompleteRound(ctx, q, round.ID, domain.RoundStatusFinished, &winnerUserID, winnerAmount, houseCut, now); err != nil {
		return nil, err
	}

	next, err := s.openSuccessor(ctx, q, round.DurationSeconds)
	if err != nil {
		return nil, err
	}

	final := *round
	final.Status = domain.RoundStatusFinished
	final.WinnerUserID = &winnerUserID
	final.WinnerAmount = winnerAmount
	final.HouseCut = houseCut
	final.EndedAt = &now

	return &settled{
		settlement: &domain.Settlement{
			RoundID:      round.ID,
			Kind:         domain.SettlementPayout,
			Status:       domain.RoundStatusFinished,
			PrizePool:    round.PrizePool,
			WinnerUserID: &winnerUserID,
			WinnerAmount: winnerAmount,
			HouseCut:     houseCut,
			NextRoundID:  next.ID,
			SettledAt:    now,
		},
		round: final,
		next:  next,
	}, nil
}

func (s *SettlementService) refund(ctx context.Context, q repository.DBExecutor, round *domain.Round, now time.Time) (*settled, error) {
	spend, err := s.deps.Cards.SumSpendByUser(ctx, q, round.ID)
	if err != nil {
		return nil, err
	}

	kind, status := domain.SettlementClosed, domain.RoundStatusFinished
	refunds := make([]domain.Refund, 0, len(spend))
	if len(spend) > 0 {
		kind, status = domain.SettlementRefund, domain.RoundStatusRefunded
		// spend is ordered by user id, which fixes the user lock order.
		for _, sp := range spend {
			if _, err := s.ledger.Credit(ctx, q, sp.UserID, sp.Total, domain.LedgerEntryRefund, &round.ID, nil); err != nil {
				return nil, fmt.Errorf("failed to refund user %d: %w", sp.UserID, err)
			}
			refunds = append(refunds, domain.Refund{UserID: sp.UserID, Amount: sp.Total})
		}
	}

	if err := s.deps.Rounds.CompleteRound(ctx, q, round.ID, status, nil, 0, 0, now); err != nil {
		return nil, err
	}
	next, err := s.openSuccessor(ctx, q, round.DurationSeconds)
	if err != nil {
		return nil, err
	}

	final := *round
	final.Status = status
	final.EndedAt = &now

	return &settled{
		settlement: &domain.Settlement{
			RoundID:     round.ID,
			Kind:        kind,
			Status:      status,
			PrizePool:   round.PrizePool,
			Refunds:     refunds,
			NextRoundID: next.ID,
			SettledAt:   now,
		},
		round: final,
		next:  next,
	}, nil
}

// reset force-finishes the round without moving any money.
func (s *SettlementService) reset(ctx context.Context, q repository.DBExecutor, round *domain.Round) (*settled, error) {
	if err := s.claim(ctx, q, round); err != nil {
		return nil, err
	}
	now := s.deps.Clock()
	if err := s.deps.Rounds.CompleteRound(ctx, q, round.ID, domain.RoundStatusFinished, nil, 0, 0, now); err != nil {
		return nil, err
	}
	next, err := s.openSuccessor(ctx, q, round.DurationSeconds)
	if err != nil {
		return nil, err
	}

	final := *round
	final.Status = domain.RoundStatusFinished
	final.EndedAt = &now

	return &settled{
		settlement: &domain.Settlement{
			RoundID:     round.ID,
			Kind:        domain.SettlementReset,
			Status:      domain.RoundStatusFinished,
			PrizePool:   round.PrizePool,
			NextRoundID: next.ID,
			SettledAt:   now,
		},
		round: final,
		next:  next,
	}, nil
}

// openSuccessor releases every card and points the current-round reference at a fresh round.
func (s *SettlementService) openSuccessor(ctx context.Context, q repository.DBExecutor, durationSeconds int64) (*domain.Round, error) {
	if err := s.deps.Cards.ClearAssignments(ctx, q); err != nil {
		return nil, err
	}
	return openRound(ctx, s.deps, q, durationSeconds)
}

func openRound(ctx context.Context, deps Dependencies, q repository.DBExecutor, durationSeconds int64) (*domain.Round, error) {
	round := domain.NewRound(time.Duration(durationSeconds) * time.Second)
	round.StartedAt = deps.Clock()
	if err := deps.Rounds.CreateRound(ctx, q, round); err != nil {
		return nil, err
	}
	if err := deps.Rounds.SetCurrentRound(ctx, q, round.ID); err != nil {
		return nil, err
	}
	return round, nil
}

// announce runs after commit.
func (s *SettlementService) announce(ctx context.Context, result *settled) {
	st := result.settlement
	metrics.RecordSettlement(string(st.Kind), result.started)
	metrics.AddHouseEarning(string(domain.HouseEarningRound), st.HouseCut)
	metrics.SetPrizePool(0)

	s.deps.Cache.StoreRoundResult(ctx, &result.round)
	s.deps.Publisher.Publish(domain.NewRoundEvent(domain.EventRoundSettled, st.RoundID, st))
	s.deps.Publisher.Publish(domain.NewRoundEvent(domain.EventRoundStarted, result.next.ID, result.next))

	s.logger.Info("round settled",
		zap.Int64("round_id", st.RoundID),
		zap.String("kind", string(st.Kind)),
		zap.Int64("prize_pool", st.PrizePool),
		zap.Int64("winner_amount", st.WinnerAmount),
		zap.Int64("house_cut", st.HouseCut),
		zap.Int64("refunded", st.RefundedTotal()),
		zap.Int64("next_round_id", st.NextRoundID),
	)
}
