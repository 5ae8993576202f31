// internal/repository/card_repo.go
package repository

import (
	"context"

	"bingo-engine/internal/domain"
)

// CardRepository manages the stored catalog, current assignments and purchase history.
type CardRepository interface {
	// SeedCatalog stores catalog cards, skipping ids already present, and returns how many were inserted.
	SeedCatalog(ctx context.Context, q DBExecutor, cards []domain.Card) (int64, error)
	// AssignCard binds a card to a user; a card already held yields ErrCardTaken.
	AssignCard(ctx context.Context, q DBExecutor, assignment *domain.CardAssignment) error
	// CountUserAssignments counts the cards a user holds in a round.
	CountUserAssignments(ctx context.Context, q DBExecutor, roundID, userID int64) (int, error)
	// ListUserAssignments lists the cards a user holds in a round, oldest first.
	ListUserAssignments(ctx context.Context, q DBExecutor, roundID, userID int64) ([]domain.CardAssignment, error)
	// ListAssignments lists every assignment in a round.
	ListAssignments(ctx context.Context, q DBExecutor, roundID int64) ([]domain.CardAssignment, error)
	// ListTakenCardIDs returns the ids of all currently assigned cards.
	ListTakenCardIDs(ctx context.Context, q DBExecutor) ([]int, error)
	// ClearAssignments removes every current assignment.
	ClearAssignments(ctx context.Context, q DBExecutor) error
	// AppendPurchase writes a permanent purchase history row.
	AppendPurchase(ctx context.Context, q DBExecutor, record *domain.PurchaseRecord) error
	// SumSpendByUser totals each user's purchases in a round, ordered by user id.
	SumSpendByUser(ctx context.Context, q DBExecutor, roundID int64) ([]domain.UserSpend, error)
}
