package catalog

import (
	"capy_automator/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Items sold by the capy item store. Prices are in SUI.
var accessories = []entity.Accessory{ //nolint:gochecknoglobals // static store listing
	{Name: "red hat", Price: decimal.RequireFromString("0.0001")},
	{Name: "blue hat", Price: decimal.RequireFromString("0.0001")},
	{Name: "cowboy hat", Price: decimal.RequireFromString("0.0002")},
	{Name: "top hat", Price: decimal.RequireFromString("0.0003")},
	{Name: "crown", Price: decimal.RequireFromString("0.001")},
	{Name: "sunglasses", Price: decimal.RequireFromString("0.0001")},
	{Name: "round glasses", Price: decimal.RequireFromString("0.0001")},
	{Name: "monocle", Price: decimal.RequireFromString("0.0002")},
	{Name: "bow tie", Price: decimal.RequireFromString("0.0001")},
	{Name: "scarf", Price: decimal.RequireFromString("0.0002")},
	{Name: "gold chain", Price: decimal.RequireFromString("0.0005")},
	{Name: "backpack", Price: decimal.RequireFromString("0.0003")},
	{Name: "angel wings", Price: decimal.RequireFromString("0.0008")},
	{Name: "dragon wings", Price: decimal.RequireFromString("0.001")},
	{Name: "holiday hat", Price: decimal.RequireFromString("0.0002")},
	{Name: "holiday sweater", Price: decimal.RequireFromString("0.0003")},
	{Name: "holiday scarf", Price: decimal.RequireFromString("0.0002")},
	{Name: "holiday antlers", Price: decimal.RequireFromString("0.0004")},
}

// Generic NFTs minted for every wallet after the capy lifecycle.
var examples = []entity.ExampleAsset{ //nolint:gochecknoglobals // static mint list
	{
		Name:        "Example NFT",
		Description: "An NFT created by Sui Wallet",
		MediaURL:    "ipfs://QmZPWWy5Si54R3d26toaqRiqvCH7HkGdXkxwUgCm2oKKM2?filename=img-sq-01.png",
	},
	{
		Name:        "Wizard Land",
		Description: "Expanding The Magic Land",
		MediaURL:    "https://gateway.pinata.cloud/ipfs/QmYfw8RbtdjPAF3LrC6S3wGVwWgn6QKq4LGS4HFS55adU2?w=800&h=450&c=crop",
	},
	{
		Name:        "Ethos 2048 Game",
		Description: "This player has unlocked the 2048 tile on Ethos 2048. They are a Winner!",
		MediaURL:    "https://arweave.net/QW9doLmmWdQ-7t8GZ85HtY8yzutoir8lGEJP9zOPQqA",
	},
	{
		Name:        "Sui Test Ecosystem",
		Description: "Get ready for the Suinami 🌊",
		MediaURL:    "ipfs://QmVnWhM2qYr9JkjGLaEVSZnCprRLDW8qns1oYYVXjnb4DA/sui.jpg",
	},
	{
		Name:        "Skull Sui",
		Description: "Skulls are emerging from the ground!",
		MediaURL:    "https://gateway.pinata.cloud/ipfs/QmcsJtucGrzkup9cZp2N8vvTc9zxuQtV85z3g2Rs4YRLGX",
	},
}
