// internal/domain/money.go
package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentOf returns floor(amount * percent / 100).
func PercentOf(amount int64, percent int) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromInt(int64(percent))).
		Div(hundred).
		Floor().
		IntPart()
}

// SplitPrizePool divides a pool into the house cut (rounded down) and the winner amount.
// houseCut + winnerAmount == pool always holds.
func SplitPrizePool(pool int64, housePercent int) (houseCut, winnerAmount int64) {
	houseCut = PercentOf(pool, housePercent)
	return houseCut, pool - houseCut
}
