package service

import (
	"sort"
	"strings"

	"capy_automator/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// SelectForPrice picks coin references to cover price, largest amounts first.
// Ties keep their input order. Selection stops as soon as the running sum reaches
// price; if all holdings together fall short, every reference is returned and the
// caller decides what a shortfall means.
func SelectForPrice(holdings []entity.TokenHolding, price decimal.Decimal) []string {
	if !price.IsPositive() {
		return []string{}
	}

	sorted := append([]entity.TokenHolding(nil), holdings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	selected := make([]string, 0, len(sorted))
	sum := decimal.Zero
	for _, h := range sorted {
		if sum.GreaterThanOrEqual(price) {
			break
		}
		selected = append(selected, h.Reference)
		sum = sum.Add(h.DecimalAmount())
	}
	return selected
}

// SumHoldings totals the amounts of the holdings whose reference is in refs.
func SumHoldings(holdings []entity.TokenHolding, refs []string) decimal.Decimal {
	wanted := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		wanted[ref] = struct{}{}
	}
	sum := decimal.Zero
	for _, h := range holdings {
		if _, ok := wanted[h.Reference]; ok {
			sum = sum.Add(h.DecimalAmount())
		}
	}
	return sum
}

// FilterHoldings keeps holdings whose type tag contains assetType.
func FilterHoldings(holdings []entity.TokenHolding, assetType string) []entity.TokenHolding {
	out := make([]entity.TokenHolding, 0, len(holdings))
	for _, h := range holdings {
		if assetType == "" || strings.Contains(h.AssetType, assetType) {
			out = append(out, h)
		}
	}
	return out
}
