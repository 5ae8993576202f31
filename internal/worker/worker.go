// internal/worker/worker.go
package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/util"
)

// TimeoutChecker settles the current round once it has expired.
type TimeoutChecker interface {
	CheckRoundTimeout(ctx context.Context) (*domain.Settlement, error)
}

// NumberCaller draws the next number for the current round.
type NumberCaller interface {
	CallNumber(ctx context.Context) (int, error)
}

// TimeoutSweeper polls for expired rounds.
type TimeoutSweeper struct {
	checker  TimeoutChecker
	interval time.Duration
	logger   *zap.Logger
}

// NewTimeoutSweeper creates a sweeper that ticks every interval.
func NewTimeoutSweeper(checker TimeoutChecker, interval time.Duration, logger *zap.Logger) *TimeoutSweeper {
	return &TimeoutSweeper{checker: checker, interval: interval, logger: logger.Named("sweeper")}
}

// Run blocks until ctx is cancelled. Sweep failures are logged and retried on the next tick.
func (s *TimeoutSweeper) Run(ctx context.Context) error {
	s.logger.Info("timeout sweeper started", zap.Duration("interval", s.interval))
	return tick(ctx, s.interval, func(ctx context.Context) {
		settlement, err := s.checker.CheckRoundTimeout(ctx)
		if err != nil {
			s.logger.Error("timeout sweep failed", zap.Error(err))
			return
		}
		if settlement != nil {
			s.logger.Info("expired round settled",
				zap.Int64("round_id", settlement.RoundID),
				zap.String("kind", string(settlement.Kind)),
				zap.Int64("refunded", settlement.RefundedTotal()),
				zap.Int64("next_round_id", settlement.NextRoundID),
			)
		}
	})
}

// AutoCaller calls a number on the current round every interval.
type AutoCaller struct {
	caller   NumberCaller
	interval time.Duration
	logger   *zap.Logger
}

// NewAutoCaller creates an automatic caller.
func NewAutoCaller(caller NumberCaller, interval time.Duration, logger *zap.Logger) *AutoCaller {
	return &AutoCaller{caller: caller, interval: interval, logger: logger.Named("auto_caller")}
}

// Run blocks until ctx is cancelled.
func (a *AutoCaller) Run(ctx context.Context) error {
	a.logger.Info("automatic caller started", zap.Duration("interval", a.interval))
	return tick(ctx, a.interval, func(ctx context.Context) {
		number, err := a.caller.CallNumber(ctx)
		switch {
		case err == nil:
			a.logger.Debug("number called", zap.Int("number", number))
		case isIdle(err):
			a.logger.Debug("no number called", zap.Error(err))
		default:
			a.logger.Error("automatic call failed", zap.Error(err))
		}
	})
}

// isIdle reports outcomes that just mean there is nothing to call right now.
func isIdle(err error) bool {
	return errors.Is(err, util.ErrRoundPaused) ||
		errors.Is(err, util.ErrNoActiveRound) ||
		errors.Is(err, util.ErrNumbersExhausted)
}

func tick(ctx context.Context, interval time.Duration, fn func(context.Context)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			fn(ctx)
		}
	}
}
