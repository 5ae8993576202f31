// internal/domain/settings.go
package domain

import "time"

// GameSettings is the singleton settings row read by every purchase and settlement.
type GameSettings struct {
	CardPrice            int64     `db:"card_price" json:"card_price"`
	HousePercent         int       `db:"house_percent" json:"house_percent"`
	WithdrawalFeePercent int       `db:"withdrawal_fee_percent" json:"withdrawal_fee_percent"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}

// SettingKey names an admin-adjustable setting column.
type SettingKey string

const (
	SettingCardPrice     SettingKey = "card_price"
	SettingHousePercent  SettingKey = "house_percent"
	SettingWithdrawalFee SettingKey = "withdrawal_fee_percent"
)
