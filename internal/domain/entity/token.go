package entity

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// TokenHolding is one spendable fungible-token object owned by a wallet.
// Amount is expressed in the coin's base unit (MIST for SUI).
type TokenHolding struct {
	Reference string `json:"reference"`
	AssetType string `json:"assetType"`
	Amount    uint64 `json:"amount"`
}

// DecimalAmount returns Amount as an exact decimal.
func (h TokenHolding) DecimalAmount() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(h.Amount), 0)
}

// Balance is the aggregated balance of one coin type for an address.
type Balance struct {
	CoinType string   `json:"coinType"`
	Symbol   string   `json:"symbol"`
	Decimals uint8    `json:"decimals"`
	Total    *big.Int `json:"-"`
}
