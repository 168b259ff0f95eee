package configloader_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capy_automator/internal/infrastructure/configloader"
)

const minimal = `
contracts:
  packageID: "0xpkg"
  registry: "0xreg"
  capyMarket: "0xmarket"
  itemStore: "0xstore"
  eden: "0xeden"
`

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := configloader.Parse([]byte(minimal))
	require.NoError(t, err)

	assert.Equal(t, "testnet", cfg.Network.Name)
	assert.Equal(t, "0x2::sui::SUI", cfg.Coin.Type)
	assert.Equal(t, uint8(9), cfg.Coin.Decimals)
	assert.Equal(t, uint64(10000), cfg.Gas.Budget)
	assert.Equal(t, "wallets.txt", cfg.Files.Wallets)
	assert.Equal(t, "0x2", cfg.Contracts.NFTPackageID)
	assert.Equal(t, "devnet_nft", cfg.Contracts.NFTModule)

	mint, purchase, attach := cfg.SettleDelays()
	assert.Equal(t, 4*time.Second, mint)
	assert.Equal(t, 3*time.Second, purchase)
	assert.Equal(t, 3*time.Second, attach)

	lo, hi := cfg.ListingRange()
	assert.Equal(t, "0.01", lo.String())
	assert.Equal(t, "0.09", hi.String())
	assert.False(t, cfg.Listing.RelistExisting)
}

func TestParseKeepsExplicitZeroSettle(t *testing.T) {
	cfg, err := configloader.Parse([]byte(minimal + "settle:\n  mintMs: 0\n  attachMs: 250\n"))
	require.NoError(t, err)

	mint, purchase, attach := cfg.SettleDelays()
	assert.Zero(t, mint)
	assert.Equal(t, 3*time.Second, purchase)
	assert.Equal(t, 250*time.Millisecond, attach)
}

func TestTypeTags(t *testing.T) {
	cfg, err := configloader.Parse([]byte(minimal))
	require.NoError(t, err)

	assert.Equal(t, "0xpkg::capy::Capy", cfg.CapyType())
	assert.Equal(t, "0xpkg::capy_item::CapyItem", cfg.CapyItemType())
	assert.Equal(t, "0x2::coin::Coin<0x2::sui::SUI>", cfg.CoinObjectType())
}

func TestParseRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing package", "contracts:\n  registry: x\n"},
		{"missing eden", "contracts:\n  packageID: p\n  registry: r\n  capyMarket: m\n  itemStore: s\n"},
		{"inverted listing range", minimal + "listing:\n  minPrice: \"0.5\"\n  maxPrice: \"0.1\"\n"},
		{"bad listing number", minimal + "listing:\n  minPrice: abc\n"},
		{"bad limiter period", minimal + "network:\n  limiterPeriod: soon\n"},
		{"bad faucet balance", minimal + "faucet:\n  minBalance: lots\n"},
		{"malformed yaml", "contracts: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := configloader.Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o600))

	cfg, err := configloader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0xpkg", cfg.Contracts.PackageID)

	_, err = configloader.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestShippedConfigLoads(t *testing.T) {
	cfg, err := configloader.Load(filepath.Join("..", "..", "..", "config", "config.yml"))
	require.NoError(t, err)
	assert.Equal(t, "0x4c10b61966a34d3bb5c8a8f063e6b7445fc41f93::capy::Capy", cfg.CapyType())
	assert.False(t, cfg.Server.Enabled)
}
