package networkdefinition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capy_automator/internal/infrastructure/configloader"
	networkdefinition "capy_automator/internal/infrastructure/network/definition"
	"capy_automator/internal/pkg/logger"
)

func TestResolveKnownNetwork(t *testing.T) {
	def, err := networkdefinition.Resolve(configloader.NetworkConfig{Name: "Testnet"}, logger.NewNopAdapter())
	require.NoError(t, err)

	assert.Equal(t, "https://fullnode.testnet.sui.io", def.RPCURL)
	assert.Equal(t, "https://explorer.sui.io/address/0xabc?network=testnet", def.ExplorerLink("0xabc"))
}

func TestResolveAppliesOverrides(t *testing.T) {
	def, err := networkdefinition.Resolve(configloader.NetworkConfig{
		Name:           "devnet",
		RPCURL:         "http://node:9000",
		MarketplaceURL: "https://market.example",
	}, logger.NewNopAdapter())
	require.NoError(t, err)

	assert.Equal(t, "http://node:9000", def.RPCURL)
	assert.Equal(t, "https://faucet.devnet.sui.io/gas", def.FaucetURL)
	assert.Equal(t, "https://market.example/0x1", def.MarketplaceLink("0x1"))
}

func TestResolveUnknownNetwork(t *testing.T) {
	_, err := networkdefinition.Resolve(configloader.NetworkConfig{Name: "mainnet-fork"}, logger.NewNopAdapter())
	require.Error(t, err)

	def, err := networkdefinition.Resolve(configloader.NetworkConfig{Name: "mainnet-fork", RPCURL: "http://x"}, logger.NewNopAdapter())
	require.NoError(t, err)
	assert.Equal(t, "", def.ExplorerLink("0x1"))
}
