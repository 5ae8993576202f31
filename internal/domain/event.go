// internal/domain/event.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoundEventType names a broadcast event.
type RoundEventType string

const (
	EventRoundStarted  RoundEventType = "round_started"
	EventCardPurchased RoundEventType = "card_purchased"
	EventNumberCalled  RoundEventType = "number_called"
	EventRoundPaused   RoundEventType = "round_paused"
	EventRoundResumed  RoundEventType = "round_resumed"
	EventRoundSettled  RoundEventType = "round_settled"
)

// RoundEvent is pushed to realtime subscribers after the change commits.
type RoundEvent struct {
	ID      string         `json:"id"`
	Type    RoundEventType `json:"type"`
	RoundID int64          `json:"round_id"`
	Payload any            `json:"payload,omitempty"`
	At      time.Time      `json:"at"`
}

// NewRoundEvent stamps an event with a fresh id and time.
func NewRoundEvent(eventType RoundEventType, roundID int64, payload any) RoundEvent {
	return RoundEvent{
		ID:      uuid.NewString(),
		Type:    eventType,
		RoundID: roundID,
		Payload: payload,
		At:      time.Now().UTC(),
	}
}
