package utils

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FormatBigInt renders amount in whole units given the number of decimals.
// Trailing zeros are trimmed: amount=1500000000, decimals=9 => "1.5".
func FormatBigInt(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

// ToBaseUnits scales a whole-unit amount to the base unit, truncating extra precision.
func ToBaseUnits(amount decimal.Decimal, decimals uint8) *big.Int {
	return amount.Shift(int32(decimals)).BigInt()
}
