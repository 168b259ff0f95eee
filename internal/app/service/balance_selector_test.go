package service_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capy_automator/internal/app/service"
	"capy_automator/internal/domain/entity"
)

func holdings(amounts ...uint64) []entity.TokenHolding {
	out := make([]entity.TokenHolding, len(amounts))
	for i, a := range amounts {
		out[i] = entity.TokenHolding{
			Reference: "0xcoin" + string(rune('a'+i)),
			AssetType: "0x2::coin::Coin<0x2::sui::SUI>",
			Amount:    a,
		}
	}
	return out
}

func TestSelectForPrice(t *testing.T) {
	tests := []struct {
		name     string
		amounts  []uint64
		price    int64
		expected []string
	}{
		{"crosses after two", []uint64{50, 30, 5}, 60, []string{"0xcoina", "0xcoinb"}},
		{"unsorted input", []uint64{5, 30, 50}, 60, []string{"0xcoinc", "0xcoinb"}},
		{"shortfall returns all", []uint64{10, 10}, 25, []string{"0xcoina", "0xcoinb"}},
		{"exact single", []uint64{60, 10}, 60, []string{"0xcoina"}},
		{"zero price", []uint64{10, 10}, 0, []string{}},
		{"negative price", []uint64{10, 10}, -5, []string{}},
		{"no holdings", nil, 5, []string{}},
		{"stable ties", []uint64{10, 20, 10, 10}, 35, []string{"0xcoinb", "0xcoina", "0xcoinc"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := service.SelectForPrice(holdings(test.amounts...), decimal.NewFromInt(test.price))
			assert.Equal(t, test.expected, got)
		})
	}
}

func TestSelectForPriceShortfallIsDetectableByCaller(t *testing.T) {
	h := holdings(10, 10)
	price := decimal.NewFromInt(25)

	refs := service.SelectForPrice(h, price)
	sum := service.SumHoldings(h, refs)

	require.True(t, sum.LessThan(price))
	err := entity.NewInsufficientBalanceError(price, sum)
	assert.ErrorIs(t, err, entity.ErrInsufficientBalance)
	assert.Equal(t, "insufficient balance: need 25, have 20", err.Error())
}

func TestSelectForPriceLargeAmountsStayExact(t *testing.T) {
	h := holdings(9_999_999_999, 9_999_999_999, 1)
	price := decimal.RequireFromString("19999999999")

	refs := service.SelectForPrice(h, price)
	require.Len(t, refs, 3)
	assert.True(t, service.SumHoldings(h, refs).Equal(decimal.RequireFromString("19999999999")))
}

// Randomised check of the prefix property: the selection is the shortest prefix of the
// amount-descending order whose sum reaches the price.
func TestSelectForPriceSmallestCrossingPrefix(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	for round := 0; round < 500; round++ {
		n := rng.IntN(8)
		amounts := make([]uint64, n)
		var total int64
		for i := range amounts {
			amounts[i] = uint64(rng.IntN(100))
			total += int64(amounts[i])
		}
		price := int64(rng.IntN(400)) + 1
		h := holdings(amounts...)

		refs := service.SelectForPrice(h, decimal.NewFromInt(price))
		sum := service.SumHoldings(h, refs)

		if total < price {
			assert.Len(t, refs, n)
			continue
		}
		require.True(t, sum.GreaterThanOrEqual(decimal.NewFromInt(price)))

		sorted := append([]entity.TokenHolding(nil), h...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Amount > sorted[j].Amount })
		for i, ref := range refs {
			assert.Equal(t, sorted[i].Reference, ref)
		}
		withoutLast := service.SumHoldings(h, refs[:len(refs)-1])
		assert.True(t, withoutLast.LessThan(decimal.NewFromInt(price)))
	}
}

func TestFilterHoldings(t *testing.T) {
	h := []entity.TokenHolding{
		{Reference: "a", AssetType: "0x2::coin::Coin<0x2::sui::SUI>", Amount: 1},
		{Reference: "b", AssetType: "0x2::coin::Coin<0xabc::usdc::USDC>", Amount: 2},
	}

	got := service.FilterHoldings(h, "coin::Coin<0x2::sui::SUI>")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Reference)
}
