// internal/repository/postgres/schema.go
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is applied in order inside one transaction. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              BIGSERIAL PRIMARY KEY,
		external_id     BIGINT NOT NULL UNIQUE,
		username        TEXT NOT NULL DEFAULT '',
		balance         BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
		total_deposited BIGINT NOT NULL DEFAULT 0,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS game_settings (
		id                     SMALLINT PRIMARY KEY CHECK (id = 1),
		card_price             BIGINT NOT NULL CHECK (card_price > 0),
		house_percent          INT NOT NULL CHECK (house_percent BETWEEN 0 AND 100),
		withdrawal_fee_percent INT NOT NULL CHECK (withdrawal_fee_percent BETWEEN 0 AND 100),
		updated_at             TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS game_rounds (
		id               BIGSERIAL PRIMARY KEY,
		status           TEXT NOT NULL CHECK (status IN ('active', 'processing', 'finished', 'refunded')),
		prize_pool       BIGINT NOT NULL DEFAULT 0 CHECK (prize_pool >= 0),
		duration_seconds BIGINT NOT NULL CHECK (duration_seconds > 0),
		is_paused        BOOLEAN NOT NULL DEFAULT FALSE,
		winner_user_id   BIGINT REFERENCES users (id),
		winner_amount    BIGINT NOT NULL DEFAULT 0,
		house_cut        BIGINT NOT NULL DEFAULT 0,
		started_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		ended_at         TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS game_rounds_single_active ON game_rounds (status) WHERE status = 'active'`,
	`CREATE TABLE IF NOT EXISTS current_round (
		id       SMALLINT PRIMARY KEY CHECK (id = 1),
		round_id BIGINT NOT NULL REFERENCES game_rounds (id)
	)`,
	`CREATE TABLE IF NOT EXISTS cards (
		id      INT PRIMARY KEY,
		numbers BIGINT[] NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_cards (
		id           BIGSERIAL PRIMARY KEY,
		round_id     BIGINT NOT NULL REFERENCES game_rounds (id),
		user_id      BIGINT NOT NULL REFERENCES users (id),
		card_id      INT NOT NULL UNIQUE REFERENCES cards (id),
		purchased_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_cards_round_user ON user_cards (round_id, user_id)`,
	`CREATE TABLE IF NOT EXISTS card_purchase_history (
		id           BIGSERIAL PRIMARY KEY,
		round_id     BIGINT NOT NULL REFERENCES game_rounds (id),
		user_id      BIGINT NOT NULL REFERENCES users (id),
		card_id      INT NOT NULL,
		price_paid   BIGINT NOT NULL CHECK (price_paid > 0),
		purchased_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_purchase_history_round ON card_purchase_history (round_id)`,
	`CREATE TABLE IF NOT EXISTS called_numbers (
		id        BIGSERIAL PRIMARY KEY,
		round_id  BIGINT NOT NULL REFERENCES game_rounds (id),
		number    SMALLINT NOT NULL CHECK (number BETWEEN 1 AND 75),
		called_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (round_id, number)
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id          BIGSERIAL PRIMARY KEY,
		reference   TEXT NOT NULL UNIQUE,
		user_id     BIGINT NOT NULL REFERENCES users (id),
		amount      BIGINT NOT NULL CHECK (amount > 0),
		status      TEXT NOT NULL DEFAULT 'pending',
		approved_by BIGINT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		decided_at  TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS withdrawals (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL REFERENCES users (id),
		amount         BIGINT NOT NULL CHECK (amount > 0),
		fee            BIGINT NOT NULL,
		final_amount   BIGINT NOT NULL,
		payout_method  TEXT NOT NULL,
		payout_account TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'pending',
		decided_by     BIGINT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		decided_at     TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS house_earnings (
		id         BIGSERIAL PRIMARY KEY,
		source     TEXT NOT NULL,
		amount     BIGINT NOT NULL,
		round_id   BIGINT REFERENCES game_rounds (id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS wallet_ledger (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT NOT NULL REFERENCES users (id),
		entry_type     TEXT NOT NULL,
		amount         BIGINT NOT NULL,
		balance_before BIGINT NOT NULL,
		balance_after  BIGINT NOT NULL,
		round_id       BIGINT REFERENCES game_rounds (id),
		reference      TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_wallet_ledger_user ON wallet_ledger (user_id, id DESC)`,
}

// Tables lists every engine table, children first, for test cleanup.
var Tables = []string{
	"wallet_ledger", "house_earnings", "withdrawals", "payments", "called_numbers",
	"card_purchase_history", "user_cards", "current_round", "game_rounds", "game_settings", "cards", "users",
}

// Migrate creates the schema if it does not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration step %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}
	return nil
}
