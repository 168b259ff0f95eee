package entity

import "github.com/shopspring/decimal"

// AssetHandle is an opaque on-chain object identifier.
type AssetHandle string

// Accessory is a purchasable cosmetic item. Price is denominated in whole coins.
type Accessory struct {
	Name  string          `json:"name" yaml:"name"`
	Price decimal.Decimal `json:"price" yaml:"price"`
}

// ExampleAsset describes one generic NFT minted at the end of every run.
type ExampleAsset struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	MediaURL    string `json:"mediaUrl" yaml:"mediaUrl"`
}

// OwnedAsset is an object owned by an address together with its full type tag.
type OwnedAsset struct {
	ID   AssetHandle `json:"id"`
	Type string      `json:"type"`
}
