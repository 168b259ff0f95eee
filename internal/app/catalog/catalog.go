package catalog

import (
	"strings"

	"capy_automator/internal/app/port"
	"capy_automator/internal/domain/entity"
)

const excludedMarker = "holiday"

// AssetCatalog is the read-only table of purchasable accessories and example NFTs.
type AssetCatalog struct {
	available []entity.Accessory
	examples  []entity.ExampleAsset
}

// New builds the catalog shipped with the binary.
func New() *AssetCatalog {
	return NewFromEntries(accessories, examples)
}

// NewWithAccessories replaces the built-in accessory table and keeps the built-in examples.
func NewWithAccessories(items []entity.Accessory) *AssetCatalog {
	return NewFromEntries(items, examples)
}

// NewFromEntries builds a catalog over the given tables. Accessories whose name
// contains "holiday" are dropped, keeping order.
func NewFromEntries(items []entity.Accessory, exampleAssets []entity.ExampleAsset) *AssetCatalog {
	filtered := make([]entity.Accessory, 0, len(items))
	for _, item := range items {
		if strings.Contains(item.Name, excludedMarker) {
			continue
		}
		filtered = append(filtered, item)
	}
	return &AssetCatalog{
		available: filtered,
		examples:  append([]entity.ExampleAsset(nil), exampleAssets...),
	}
}

// Available returns a copy of the eligible accessories.
func (c *AssetCatalog) Available() []entity.Accessory {
	return append([]entity.Accessory(nil), c.available...)
}

// PickRandom returns one eligible accessory chosen uniformly by rng.
func (c *AssetCatalog) PickRandom(rng port.RandomSource) (entity.Accessory, error) {
	if len(c.available) == 0 {
		return entity.Accessory{}, entity.ErrEmptyCatalog
	}
	return c.available[rng.IntN(len(c.available))], nil
}

// Examples returns a copy of the example NFT descriptors.
func (c *AssetCatalog) Examples() []entity.ExampleAsset {
	return append([]entity.ExampleAsset(nil), c.examples...)
}
