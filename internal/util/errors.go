// internal/util/errors.go
package util

import (
	"errors"
	"fmt"
)

// Common application-specific errors. Every one of them is an expected outcome that
// callers render to the user; anything else is an infrastructure failure.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input provided")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLimitExceeded     = errors.New("card limit per round reached")
	ErrCardTaken         = errors.New("card already taken")
	ErrNoActiveRound     = errors.New("no active round")
	ErrRoundActive       = errors.New("a round is already active")
	ErrRoundPaused       = errors.New("round is paused")
	ErrNumbersExhausted  = errors.New("all numbers have been called")
	ErrAlreadyProcessed  = errors.New("already processed")
	ErrUnauthorized      = errors.New("not authorized")
	ErrEmptyPrizePool    = errors.New("prize pool is empty")
	ErrNotCardOwner      = errors.New("card is not held by this user in the current round")
	ErrNotWinner         = errors.New("card has no complete row or column")
	ErrDuplicateEntry    = errors.New("duplicate entry")

	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrCardNotFound       = fmt.Errorf("card %w", ErrNotFound)
	ErrRoundNotFound      = fmt.Errorf("round %w", ErrNotFound)
	ErrPaymentNotFound    = fmt.Errorf("payment %w", ErrNotFound)
	ErrWithdrawalNotFound = fmt.Errorf("withdrawal %w", ErrNotFound)
)

// IsError reports whether err matches target anywhere in its chain.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
