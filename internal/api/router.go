// internal/api/router.go
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bingo-engine/internal/api/handler"
	"bingo-engine/internal/metrics"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Game   *handler.GameHandler
	Wallet *handler.WalletHandler
	Admin  *handler.AdminHandler
	Events http.Handler // websocket endpoint, optional
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)   // Add a request ID to the context
	r.Use(middleware.RealIP)      // Use the real IP address
	r.Use(requestLogger(logger))  // Log HTTP requests
	r.Use(middleware.Recoverer)   // Recover from panics and return 500
	r.Use(metrics.HTTPMiddleware) // Count and time requests per route

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())
	if h.Events != nil {
		r.Handle("/ws", h.Events)
	}

	// Long-lived websocket connections stay outside the request timeout.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(handler.DefaultTimeout))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.Wallet.Register)
			r.Get("/{externalID}", h.Wallet.GetUser)
			r.Get("/{externalID}/cards", h.Wallet.GetUserCards)
			r.Get("/{externalID}/ledger", h.Wallet.GetLedgerHistory)
			r.Post("/{externalID}/deposits", h.Wallet.RequestDeposit)
			r.Post("/{externalID}/withdrawals", h.Wallet.RequestWithdrawal)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", h.Game.ListCards)
			r.Get("/{cardID}", h.Game.GetCard)
		})

		r.Route("/game", func(r chi.Router) {
			r.Get("/round", h.Game.CurrentRound)
			r.Get("/rounds/{roundID}", h.Game.GetRound)
			r.Get("/called", h.Game.CalledNumbers)
			r.Get("/winners", h.Game.Winners)
			r.Post("/buy", h.Game.BuyCard)
			r.Post("/claim", h.Game.ClaimWin)
		})

		// Every admin route carries admin_id, in the body for POST and the query for GET.
		r.Route("/admin", func(r chi.Router) {
			r.Post("/round/reset", h.Admin.ResetRound)
			r.Post("/round/start", h.Admin.StartRound)
			r.Post("/round/pause", h.Admin.PauseRound)
			r.Post("/round/resume", h.Admin.ResumeRound)
			r.Post("/round/call", h.Admin.CallNumber)

			r.Post("/settings/card-price", h.Admin.SetCardPrice)
			r.Post("/settings/house-percent", h.Admin.SetHousePercent)
			r.Post("/settings/withdrawal-fee", h.Admin.SetWithdrawalFee)
			r.Post("/settings/round-duration", h.Admin.SetRoundDuration)

			r.Get("/deposits", h.Admin.PendingDeposits)
			r.Post("/deposits/{reference}/approve", h.Admin.ApproveDeposit)
			r.Post("/deposits/{reference}/reject", h.Admin.RejectDeposit)
			r.Get("/withdrawals", h.Admin.PendingWithdrawals)
			r.Post("/withdrawals/{withdrawalID}/approve", h.Admin.ApproveWithdrawal)
			r.Post("/withdrawals/{withdrawalID}/reject", h.Admin.RejectWithdrawal)

			r.Get("/stats", h.Admin.Stats)
		})
	})

	return r
}

// requestLogger logs one line per request with the chi request id.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	log := logger.Named("http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
