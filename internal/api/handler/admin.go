// internal/api/handler/admin.go
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"bingo-engine/internal/service"
	"bingo-engine/internal/util"
)

// AdminHandler exposes the administrator operations. The caller identity travels in every request
// and is checked by the service.
type AdminHandler struct {
	service service.AdminService
	logger  *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: svc,
		logger:  logger.Named("admin_handler"),
	}
}

// AdminRequest carries the caller identity and, for settings, the new value.
type AdminRequest struct {
	AdminID int64 `json:"admin_id"`
	Value   int64 `json:"value"`
}

func (h *AdminHandler) decode(w http.ResponseWriter, r *http.Request) (AdminRequest, bool) {
	var req AdminRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, h.logger, err)
		return req, false
	}
	return req, true
}

// adminQuery reads ?admin_id= on GET endpoints.
func adminQuery(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.URL.Query().Get("admin_id"), 10, 64)
	if err != nil {
		return 0, util.ErrUnauthorized
	}
	return id, nil
}

func (h *AdminHandler) ok(w http.ResponseWriter, message string, payload interface{}) {
	body := map[string]interface{}{"success": true, "message": message}
	if payload != nil {
		body["data"] = payload
	}
	respondWithJSON(w, h.logger, http.StatusOK, body)
}

// ResetRound force-finishes the round without refunds.
// POST /admin/round/reset
func (h *AdminHandler) ResetRound(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	settlement, err := h.service.ResetRound(r.Context(), req.AdminID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	h.ok(w, settlement.Summary(), settlement)
}

// StartRound opens a round when none is active.
// POST /admin/round/start
func (h *AdminHandler) StartRound(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	round, err := h.service.StartRound(r.Context(), req.AdminID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	h.ok(w, fmt.Sprintf("Round %d started.", round.ID), round)
}

// PauseRound freezes calling.
// POST /admin/round/pause
func (h *AdminHandler) PauseRound(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := h.service.PauseRound(r.Context(), req.AdminID); err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	h.ok(w, "Round paused.", nil)
}

// ResumeRound unfreezes calling.
// POST /admin/round/resume
func (h *AdminHandler) ResumeRound(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := h.service.ResumeRound(r.Context(), req.AdminID); err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	h.ok(w, "Round resumed.", nil)
}

// CallNumber draws the next number.
// POST /admin/round/call
func (h *AdminHandler) CallNumber(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	number, err := h.service.CallNumber(r.Context(), req.AdminID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	h.ok(w, fmt.Sprintf("Called %d.", number), map[string]int{"number": number})
}

// SetCardPrice handles POST /admin/settings/card-price.
func (h *AdminHandler) SetCardPrice(w http.ResponseWriter, r *http.Request) {
	h.setting(w, r, "Card price", func(req AdminRequest) error {
		return h.service.SetCardPrice(r.Context(), req.AdminID, req.Value)
	})
}

// SetHousePercent handles POST /admin/settings/house-percent.
func (h *AdminHandler) SetHousePercent(w http.ResponseWriter, r *http.Request) {
	h.setting(w, r, "House percent", func(req AdminRequest) error {
		return h.service.SetHousePercent(r.Context(), req.AdminID, int(req.Value))
	})
}

// SetWithdrawalFee handles POST /admin/settings/withdrawal-fee.
func (h *AdminHandler) SetWithdrawalFee(w http.ResponseWriter, r *http.Request) {
	h.setting(w, r, "Withdrawal fee", func(req AdminRequest) error {
		return h.service.SetWithdrawalFee(r.Context(), req.AdminID, int(req.Value))
	})
}

// SetRoundDuration handles POST /admin/settings/round-duration. Value is in seconds.
func (h *AdminHandler) SetRoundDuration(w http.ResponseWriter, r *http.Request) {
	h.setting(w, r, "Round duration", func(req AdminRequest) error {
		return h.service.SetRoundDuration(r.Context(), req.AdminID, req.Value)
	})
}

func (h *AdminHandler) setting(w http.ResponseWriter, r *http.Request, name string, apply func(AdminRequest) error) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	if err := apply(req); err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	h.ok(w, fmt.Sprintf("%s set to %d.", name, req.Value), nil)
}

// ApproveDeposit handles POST /admin/deposits/{reference}/approve.
func (h *AdminHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	h.decideDeposit(w, r, true)
}

// RejectDeposit handles POST /admin/deposits/{reference}/reject.
func (h *AdminHandler) RejectDeposit(w http.ResponseWriter, r *http.Request) {
	h.decideDeposit(w, r, false)
}

func (h *AdminHandler) decideDeposit(w http.ResponseWriter, r *http.Request, approve bool) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	reference := chi.URLParam(r, "reference")
	decide := h.service.RejectDeposit
	if approve {
		decide = h.service.ApproveDeposit
	}
	payment, err := decide(r.Context(), req.AdminID, reference)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	h.ok(w, fmt.Sprintf("Deposit %s %s.", payment.Reference, payment.Status), payment)
}

// ApproveWithdrawal handles POST /admin/withdrawals/{withdrawalID}/approve.
func (h *AdminHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.decideWithdrawal(w, r, true)
}

// RejectWithdrawal handles POST /admin/withdrawals/{withdrawalID}/reject.
func (h *AdminHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.decideWithdrawal(w, r, false)
}

func (h *AdminHandler) decideWithdrawal(w http.ResponseWriter, r *http.Request, approve bool) {
	withdrawalID, err := int64Param(r, "withdrawalID")
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	req, ok := h.decode(w, r)
	if !ok {
		return
	}
	decide := h.service.RejectWithdrawal
	if approve {
		decide = h.service.ApproveWithdrawal
	}
	withdrawal, err := decide(r.Context(), req.AdminID, withdrawalID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	h.ok(w, fmt.Sprintf("Withdrawal %d %s.", withdrawal.ID, withdrawal.Status), withdrawal)
}

// PendingDeposits handles GET /admin/deposits?admin_id=.
func (h *AdminHandler) PendingDeposits(w http.ResponseWriter, r *http.Request) {
	adminID, err := adminQuery(r)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	pending, err := h.service.PendingDeposits(r.Context(), adminID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"data": pending})
}

// PendingWithdrawals handles GET /admin/withdrawals?admin_id=.
func (h *AdminHandler) PendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	adminID, err := adminQuery(r)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	pending, err := h.service.PendingWithdrawals(r.Context(), adminID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"data": pending})
}

// Stats handles GET /admin/stats?admin_id=.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	adminID, err := adminQuery(r)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	stats, err := h.service.Stats(r.Context(), adminID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, stats)
}
