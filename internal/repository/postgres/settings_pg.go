// internal/repository/postgres/settings_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bingo-engine/internal/domain"
	"bingo-engine/internal/repository"
	"bingo-engine/internal/util"
)

// SettingsRepository implements repository.SettingsRepository for PostgreSQL.
type SettingsRepository struct{}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository() repository.SettingsRepository {
	return &SettingsRepository{}
}

var settingColumns = map[domain.SettingKey]string{
	domain.SettingCardPrice:     "card_price",
	domain.SettingHousePercent:  "house_percent",
	domain.SettingWithdrawalFee: "withdrawal_fee_percent",
}

// EnsureSettings inserts the defaults unless the row already exists.
func (r *SettingsRepository) EnsureSettings(ctx context.Context, q repository.DBExecutor, defaults *domain.GameSettings) error {
	query := `INSERT INTO game_settings (id, card_price, house_percent, withdrawal_fee_percent, updated_at)
              VALUES (1, $1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`
	if _, err := q.ExecContext(ctx, query, defaults.CardPrice, defaults.HousePercent, defaults.WithdrawalFeePercent, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to ensure game settings: %w", err)
	}
	return nil
}

// GetSettings reads the singleton row.
func (r *SettingsRepository) GetSettings(ctx context.Context, q repository.DBExecutor) (*domain.GameSettings, error) {
	var settings domain.GameSettings
	err := q.GetContext(ctx, &settings, `SELECT card_price, house_percent, withdrawal_fee_percent, updated_at FROM game_settings WHERE id = 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game settings %w", util.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get game settings: %w", err)
	}
	return &settings, nil
}

// UpdateSetting changes one whitelisted column.
func (r *SettingsRepository) UpdateSetting(ctx context.Context, q repository.DBExecutor, key domain.SettingKey, value int64) error {
	column, ok := settingColumns[key]
	if !ok {
		return fmt.Errorf("unknown setting %q: %w", key, util.ErrInvalidInput)
	}
	query := fmt.Sprintf(`UPDATE game_settings SET %s = $1, updated_at = $2 WHERE id = 1`, column)
	result, err := q.ExecContext(ctx, query, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update setting %s: %w", key, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for setting %s: %w", key, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("game settings %w", util.ErrNotFound)
	}
	return nil
}
