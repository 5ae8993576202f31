// internal/repository/postgres/card_pg.go
package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/repository"
	"bingo-engine/internal/util"
)

// CardRepository implements repository.CardRepository for PostgreSQL.
type CardRepository struct{}

// NewCardRepository creates a new CardRepository.
func NewCardRepository() repository.CardRepository {
	return &CardRepository{}
}

// SeedCatalog inserts catalog cards, leaving existing ids untouched so reloading never duplicates rows.
func (r *CardRepository) SeedCatalog(ctx context.Context, q repository.DBExecutor, cards []domain.Card) (int64, error) {
	var inserted int64
	for _, card := range cards {
		result, err := q.ExecContext(ctx, `INSERT INTO cards (id, numbers) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			card.ID, pq.Array(card.Grid.Numbers()))
		if err != nil {
			return inserted, fmt.Errorf("failed to seed card %d: %w", card.ID, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("failed to get rows affected for card %d: %w", card.ID, err)
		}
		inserted += n
	}
	return inserted, nil
}

// AssignCard inserts the assignment. The UNIQUE (card_id) constraint decides purchase races.
func (r *CardRepository) AssignCard(ctx context.Context, q repository.DBExecutor, assignment *domain.CardAssignment) error {
	query := `INSERT INTO user_cards (round_id, user_id, card_id, purchased_at) VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query, assignment.RoundID, assignment.UserID, assignment.CardID, assignment.PurchasedAt).
		Scan(&assignment.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrCardTaken
		}
		return fmt.Errorf("failed to assign card %d: %w", assignment.CardID, err)
	}
	return nil
}

// CountUserAssignments counts a user's cards in a round.
func (r *CardRepository) CountUserAssignments(ctx context.Context, q repository.DBExecutor, roundID, userID int64) (int, error) {
	var count int
	if err := q.GetContext(ctx, &count, `SELECT COUNT(*) FROM user_cards WHERE round_id = $1 AND user_id = $2`, roundID, userID); err != nil {
		return 0, fmt.Errorf("failed to count cards for user %d: %w", userID, err)
	}
	return count, nil
}

// ListUserAssignments lists a user's cards in a round.
func (r *CardRepository) ListUserAssignments(ctx context.Context, q repository.DBExecutor, roundID, userID int64) ([]domain.CardAssignment, error) {
	assignments := []domain.CardAssignment{}
	query := `SELECT id, round_id, user_id, card_id, purchased_at FROM user_cards
              WHERE round_id = $1 AND user_id = $2 ORDER BY purchased_at, id`
	if err := q.SelectContext(ctx, &assignments, query, roundID, userID); err != nil {
		return nil, fmt.Errorf("failed to list cards for user %d: %w", userID, err)
	}
	return assignments, nil
}

// ListAssignments lists every assignment in a round.
func (r *CardRepository) ListAssignments(ctx context.Context, q repository.DBExecutor, roundID int64) ([]domain.CardAssignment, error) {
	assignments := []domain.CardAssignment{}
	query := `SELECT id, round_id, user_id, card_id, purchased_at FROM user_cards WHERE round_id = $1 ORDER BY id`
	if err := q.SelectContext(ctx, &assignments, query, roundID); err != nil {
		return nil, fmt.Errorf("failed to list assignments for round %d: %w", roundID, err)
	}
	return assignments, nil
}

// ListTakenCardIDs returns currently assigned card ids.
func (r *CardRepository) ListTakenCardIDs(ctx context.Context, q repository.DBExecutor) ([]int, error) {
	ids := []int{}
	if err := q.SelectContext(ctx, &ids, `SELECT card_id FROM user_cards ORDER BY card_id`); err != nil {
		return nil, fmt.Errorf("failed to list taken cards: %w", err)
	}
	return ids, nil
}

// ClearAssignments releases every card for the next round.
func (r *CardRepository) ClearAssignments(ctx context.Context, q repository.DBExecutor) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM user_cards`); err != nil {
		return fmt.Errorf("failed to clear card assignments: %w", err)
	}
	return nil
}

// AppendPurchase writes the permanent history row.
func (r *CardRepository) AppendPurchase(ctx context.Context, q repository.DBExecutor, record *domain.PurchaseRecord) error {
	query := `INSERT INTO card_purchase_history (round_id, user_id, card_id, price_paid, purchased_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, record.RoundID, record.UserID, record.CardID, record.PricePaid, record.PurchasedAt).
		Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to append purchase history: %w", err)
	}
	return nil
}

// SumSpendByUser totals purchases per user for a round.
func (r *CardRepository) SumSpendByUser(ctx context.Context, q repository.DBExecutor, roundID int64) ([]domain.UserSpend, error) {
	spend := []domain.UserSpend{}
	query := `SELECT user_id, COUNT(*) AS cards, SUM(price_paid)::BIGINT AS total
              FROM card_purchase_history WHERE round_id = $1
              GROUP BY user_id ORDER BY user_id`
	if err := q.SelectContext(ctx, &spend, query, roundID); err != nil {
		return nil, fmt.Errorf("failed to sum purchases for round %d: %w", roundID, err)
	}
	return spend, nil
}
