// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"bingo-engine/internal/util"
)

// DefaultTimeout bounds every request.
const DefaultTimeout = 15 * time.Second

// errorMapping turns an expected outcome into a status code and a message safe to show players.
type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: the first match wins.
var errorMappings = []errorMapping{
	{util.ErrInvalidAmount, http.StatusBadRequest, "Amount must be positive"},
	{util.ErrInvalidInput, http.StatusBadRequest, "Invalid input"},
	{util.ErrNotWinner, http.StatusBadRequest, "Not a winning card yet"},
	{util.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{util.ErrCardNotFound, http.StatusNotFound, "Card not found"},
	{util.ErrRoundNotFound, http.StatusNotFound, "Round not found"},
	{util.ErrNotFound, http.StatusNotFound, "Resource not found"},
	{util.ErrInsufficientFunds, http.StatusPaymentRequired, "Insufficient funds"},
	{util.ErrUnauthorized, http.StatusForbidden, "Not authorized"},
	{util.ErrNotCardOwner, http.StatusForbidden, "You do not hold this card in the current round"},
	{util.ErrLimitExceeded, http.StatusConflict, "Card limit for this round reached"},
	{util.ErrCardTaken, http.StatusConflict, "Card already taken"},
	{util.ErrNoActiveRound, http.StatusConflict, "No active round"},
	{util.ErrRoundActive, http.StatusConflict, "A round is already active"},
	{util.ErrRoundPaused, http.StatusConflict, "Round is paused"},
	{util.ErrNumbersExhausted, http.StatusConflict, "All numbers have been called"},
	{util.ErrAlreadyProcessed, http.StatusConflict, "Already processed"},
	{util.ErrEmptyPrizePool, http.StatusConflict, "Prize pool is empty"},
	{util.ErrDuplicateEntry, http.StatusConflict, "Duplicate entry"},
}

// StatusFor maps an error to its HTTP status and public message.
// Anything unrecognised is an infrastructure failure and gets a generic 500.
func StatusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if util.IsError(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, logger *zap.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal JSON response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError renders err. Only unexpected errors are logged, with the request id.
func respondWithError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	status, message := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("unhandled service error",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	respondWithJSON(w, logger, status, map[string]interface{}{"success": false, "error": message})
}

func decodeJSON(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return util.ErrInvalidInput
	}
	return nil
}

func int64Param(r *http.Request, name string) (int64, error) {
	v, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, util.ErrInvalidInput
	}
	return v, nil
}

func intParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, util.ErrInvalidInput
	}
	return v, nil
}

// pagination reads limit and offset, defaulting to 10 and 0.
func pagination(r *http.Request) (limit, offset int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset, err = strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
