// internal/api/handler/wallet.go
package handler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"bingo-engine/internal/api/types"
	"bingo-engine/internal/domain"
	"bingo-engine/internal/service"
	"bingo-engine/internal/util"
)

// WalletHandler handles HTTP requests related to players and their money.
type WalletHandler struct {
	service service.WalletService
	game    service.GameService
	logger  *zap.Logger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(svc service.WalletService, game service.GameService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		service: svc,
		game:    game,
		logger:  logger.Named("wallet_handler"),
	}
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	ExternalID int64  `json:"external_id"`
	Username   string `json:"username"`
}

// Register creates the player on first contact.
// POST /users
func (h *WalletHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	user, err := h.service.RegisterUser(r.Context(), req.ExternalID, req.Username)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, user)
}

// GetUser returns the player with the current balance.
// GET /users/{externalID}
func (h *WalletHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	externalID, err := int64Param(r, "externalID")
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	user, err := h.service.GetUser(r.Context(), externalID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, user)
}

// GetUserCards lists the player's cards in the current round.
// GET /users/{externalID}/cards
func (h *WalletHandler) GetUserCards(w http.ResponseWriter, r *http.Request) {
	externalID, err := int64Param(r, "externalID")
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	cards, err := h.game.GetUserCards(r.Context(), externalID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"data": cards})
}

// DepositRequest represents the request body for a deposit.
type DepositRequest struct {
	Amount    int64  `json:"amount"`
	Reference string `json:"reference"`
}

// RequestDeposit records a deposit for the administrator to approve.
// POST /users/{externalID}/deposits
func (h *WalletHandler) RequestDeposit(w http.ResponseWriter, r *http.Request) {
	externalID, err := int64Param(r, "externalID")
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	var req DepositRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}

	payment, err := h.service.RequestDeposit(r.Context(), externalID, req.Amount, req.Reference)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusAccepted, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Deposit of %d recorded with reference %s. Awaiting approval.", payment.Amount, payment.Reference),
		"payment": payment,
	})
}

// WithdrawRequest represents the request body for a withdrawal.
type WithdrawRequest struct {
	Amount  int64  `json:"amount"`
	Method  string `json:"method"`
	Account string `json:"account"`
}

// RequestWithdrawal records a withdrawal for the administrator to approve.
// POST /users/{externalID}/withdrawals
func (h *WalletHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	externalID, err := int64Param(r, "externalID")
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	var req WithdrawRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	if req.Method == "" || req.Account == "" {
		respondWithError(w, r, h.logger, util.ErrInvalidInput)
		return
	}

	withdrawal, err := h.service.RequestWithdrawal(r.Context(), externalID, req.Amount, req.Method, req.Account)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	message := fmt.Sprintf("Withdrawal of %d requested. Fee %d, you receive %d.",
		withdrawal.Amount, withdrawal.Fee, withdrawal.FinalAmount)
	respondWithJSON(w, h.logger, http.StatusAccepted, map[string]interface{}{
		"success":    true,
		"message":    message,
		"withdrawal": withdrawal,
	})
}

// GetLedgerHistory handles the balance history request.
// GET /users/{externalID}/ledger
func (h *WalletHandler) GetLedgerHistory(w http.ResponseWriter, r *http.Request) {
	externalID, err := int64Param(r, "externalID")
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	limit, offset := pagination(r)

	entries, totalCount, err := h.service.GetLedgerHistory(r.Context(), externalID, limit, offset)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, types.NewPage[domain.LedgerEntry](entries, limit, offset, totalCount))
}
