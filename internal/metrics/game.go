// internal/metrics/game.go
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bingo-engine/internal/util"
)

var (
	purchaseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bingo_card_purchases_total",
			Help: "Card purchase attempts by result",
		},
		[]string{"result"},
	)

	purchaseDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bingo_card_purchase_duration_ms",
			Help:    "Card purchase duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"result"},
	)

	callTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bingo_number_calls_total",
			Help: "Number call attempts by result",
		},
		[]string{"result"},
	)

	settlementTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bingo_settlements_total",
			Help: "Settled rounds by kind (payout, refund, closed, reset)",
		},
		[]string{"kind"},
	)

	settlementDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bingo_settlement_duration_ms",
			Help:    "Settlement transaction duration in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"kind"},
	)

	houseEarnings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bingo_house_earnings_total",
			Help: "House revenue in the smallest currency unit by source",
		},
		[]string{"source"},
	)

	prizePool = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bingo_current_prize_pool",
		Help: "Prize pool of the active round",
	})
)

var resultLabels = []struct {
	err   error
	label string
}{
	{util.ErrInsufficientFunds, "insufficient_funds"},
	{util.ErrLimitExceeded, "limit_exceeded"},
	{util.ErrCardTaken, "card_taken"},
	{util.ErrNoActiveRound, "no_active_round"},
	{util.ErrRoundPaused, "paused"},
	{util.ErrNumbersExhausted, "exhausted"},
	{util.ErrNotFound, "not_found"},
	{util.ErrAlreadyProcessed, "already_processed"},
}

// Result turns an operation error into a low-cardinality label.
func Result(err error) string {
	if err == nil {
		return "success"
	}
	for _, r := range resultLabels {
		if errors.Is(err, r.err) {
			return r.label
		}
	}
	return "error"
}

// RecordPurchase records a buy_card attempt.
func RecordPurchase(err error, started time.Time) {
	res := Result(err)
	purchaseTotal.WithLabelValues(res).Inc()
	purchaseDuration.WithLabelValues(res).Observe(float64(time.Since(started).Milliseconds()))
}

// RecordCall records a call_number attempt.
func RecordCall(err error) {
	callTotal.WithLabelValues(Result(err)).Inc()
}

// RecordSettlement records a committed settlement.
func RecordSettlement(kind string, started time.Time) {
	settlementTotal.WithLabelValues(kind).Inc()
	settlementDuration.WithLabelValues(kind).Observe(float64(time.Since(started).Milliseconds()))
}

// AddHouseEarning adds committed house revenue.
func AddHouseEarning(source string, amount int64) {
	if amount > 0 {
		houseEarnings.WithLabelValues(source).Add(float64(amount))
	}
}

// SetPrizePool publishes the active round's pool.
func SetPrizePool(pool int64) {
	prizePool.Set(float64(pool))
}
