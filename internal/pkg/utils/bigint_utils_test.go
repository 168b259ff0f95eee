package utils_test

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"capy_automator/internal/pkg/utils"
)

func TestFormatBigInt(t *testing.T) {
	tests := []struct {
		name     string
		amount   *big.Int
		decimals uint8
		want     string
	}{
		{"nil", nil, 9, "0"},
		{"zero", big.NewInt(0), 9, "0"},
		{"whole", big.NewInt(2_000_000_000), 9, "2"},
		{"fraction", big.NewInt(1_500_000_000), 9, "1.5"},
		{"dust", big.NewInt(1), 9, "0.000000001"},
		{"no decimals", big.NewInt(42), 0, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatBigInt(tt.amount, tt.decimals))
		})
	}
}

func TestToBaseUnits(t *testing.T) {
	assert.Equal(t, "50000000", utils.ToBaseUnits(decimal.RequireFromString("0.05"), 9).String())
	assert.Equal(t, "1", utils.ToBaseUnits(decimal.RequireFromString("1.9"), 0).String())
}
