// internal/domain/user.go
package domain

import "time"

// User represents a player. Balance is owned by the wallet ledger and never written elsewhere.
type User struct {
	ID             int64     `db:"id" json:"id"`                           // Primary key, BIGSERIAL in DB
	ExternalID     int64     `db:"external_id" json:"external_id"`         // Stable identity from the chat/web front end
	Username       string    `db:"username" json:"username"`               // Display name
	Balance        int64     `db:"balance" json:"balance"`                 // Smallest currency unit, never negative
	TotalDeposited int64     `db:"total_deposited" json:"total_deposited"` // Sum of approved deposits
	CreatedAt      time.Time `db:"created_at" json:"created_at"`           // Timestamp of creation
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`           // Timestamp of last update
}

// NewUser creates a new User instance with an empty wallet.
func NewUser(externalID int64, username string) *User {
	now := time.Now().UTC()
	return &User{
		ExternalID: externalID,
		Username:   username,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
