// internal/api/handler/game.go
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"bingo-engine/internal/service"
	"bingo-engine/internal/util"
)

// GameHandler handles the player-facing round endpoints.
type GameHandler struct {
	service service.GameService
	logger  *zap.Logger
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(svc service.GameService, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		service: svc,
		logger:  logger.Named("game_handler"),
	}
}

// CardRequest identifies a player and one of the catalog cards.
type CardRequest struct {
	ExternalID int64 `json:"external_id"`
	CardID     int   `json:"card_id"`
}

// ListCards reports every card and whether it is taken.
// GET /cards
func (h *GameHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.ListAvailableCards(r.Context())
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"data": cards})
}

// GetCard returns a card's grid.
// GET /cards/{cardID}
func (h *GameHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := intParam(r, "cardID")
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	grid, err := h.service.GetCardGrid(cardID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"card_id": cardID,
		"grid":    grid.Rows(),
	})
}

// CurrentRound returns the round in play with its called numbers.
// GET /game/round
func (h *GameHandler) CurrentRound(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.CurrentRound(r.Context())
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, view)
}

// GetRound returns a round's record, including the outcome once settled.
// GET /game/rounds/{roundID}
func (h *GameHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	roundID, err := int64Param(r, "roundID")
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	round, err := h.service.GetRoundResult(r.Context(), roundID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, round)
}

// CalledNumbers lists called numbers in call order. Without ?round it uses the current round.
// GET /game/called
func (h *GameHandler) CalledNumbers(w http.ResponseWriter, r *http.Request) {
	var roundID int64
	if raw := r.URL.Query().Get("round"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			respondWithError(w, r, h.logger, util.ErrInvalidInput)
			return
		}
		roundID = id
	}
	numbers, err := h.service.GetCalledNumbers(r.Context(), roundID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"data": numbers})
}

// BuyCard purchases a card for the current round.
// POST /game/buy
func (h *GameHandler) BuyCard(w http.ResponseWriter, r *http.Request) {
	var req CardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	if req.ExternalID <= 0 {
		respondWithError(w, r, h.logger, util.ErrInvalidInput)
		return
	}

	purchase, err := h.service.BuyCard(r.Context(), req.ExternalID, req.CardID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  fmt.Sprintf("Card %d purchased for %d. Balance: %d.", purchase.CardID, purchase.Price, purchase.NewBalance),
		"purchase": purchase,
	})
}

// ClaimWin checks a card against the called numbers and settles the round when it wins.
// POST /game/claim
func (h *GameHandler) ClaimWin(w http.ResponseWriter, r *http.Request) {
	var req CardRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	if req.ExternalID <= 0 {
		respondWithError(w, r, h.logger, util.ErrInvalidInput)
		return
	}

	settlement, err := h.service.ClaimWin(r.Context(), req.ExternalID, req.CardID)
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    settlement.Summary(),
		"settlement": settlement,
	})
}

// Winners lists users holding a winning card right now.
// GET /game/winners
func (h *GameHandler) Winners(w http.ResponseWriter, r *http.Request) {
	winners, err := h.service.FindAllWinners(r.Context())
	if err != nil {
		respondWithError(w, r, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{"data": winners})
}
