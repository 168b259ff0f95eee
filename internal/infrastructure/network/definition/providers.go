package networkdefinition

import (
	"fmt"
	"strings"

	"capy_automator/internal/app/port"
	"capy_automator/internal/infrastructure/configloader"
)

// NetworkDefinition holds the endpoints of one Sui network.
type NetworkDefinition struct {
	Identifier     string `json:"identifier" yaml:"identifier"` // "testnet", "devnet", ...
	Name           string `json:"name" yaml:"name"`
	RPCURL         string `json:"rpcUrl" yaml:"rpcUrl"`
	FaucetURL      string `json:"faucetUrl,omitempty" yaml:"faucetUrl,omitempty"`
	ExplorerURL    string `json:"explorerUrl" yaml:"explorerUrl"` // %s is the address
	MarketplaceURL string `json:"marketplaceUrl,omitempty" yaml:"marketplaceUrl,omitempty"`
}

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Testnet = NetworkDefinition{
		Identifier:     "testnet",
		Name:           "Sui Testnet",
		RPCURL:         "https://fullnode.testnet.sui.io",
		FaucetURL:      "https://faucet.testnet.sui.io/gas",
		ExplorerURL:    "https://explorer.sui.io/address/%s?network=testnet",
		MarketplaceURL: "https://testnet.capy.art/address/%s",
	}
	Devnet = NetworkDefinition{
		Identifier:     "devnet",
		Name:           "Sui Devnet",
		RPCURL:         "https://fullnode.devnet.sui.io",
		FaucetURL:      "https://faucet.devnet.sui.io/gas",
		ExplorerURL:    "https://explorer.sui.io/address/%s?network=devnet",
		MarketplaceURL: "https://devnet.capy.art/address/%s",
	}
	Localnet = NetworkDefinition{
		Identifier:  "localnet",
		Name:        "Sui Localnet",
		RPCURL:      "http://127.0.0.1:9000",
		FaucetURL:   "http://127.0.0.1:9123/gas",
		ExplorerURL: "https://explorer.sui.io/address/%s?network=local",
	}
)

var allKnownDefinitions = map[string]NetworkDefinition{ //nolint:gochecknoglobals // lookup table
	Testnet.Identifier:  Testnet,
	Devnet.Identifier:   Devnet,
	Localnet.Identifier: Localnet,
}

// Resolve picks the predefined network named in cfg and applies the configured overrides.
// A custom name is accepted as long as an rpcURL is configured for it.
func Resolve(cfg configloader.NetworkConfig, log port.Logger) (NetworkDefinition, error) {
	identifier := strings.ToLower(strings.TrimSpace(cfg.Name))
	def, ok := allKnownDefinitions[identifier]
	if !ok {
		if cfg.RPCURL == "" {
			return NetworkDefinition{}, fmt.Errorf("unknown network %q and no rpcURL configured", cfg.Name)
		}
		log.Warn(fmt.Sprintf("Network '%s' has no predefined definition, using configured endpoints only.", cfg.Name))
		def = NetworkDefinition{Identifier: identifier, Name: cfg.Name}
	}

	if cfg.RPCURL != "" {
		def.RPCURL = cfg.RPCURL
	}
	if cfg.FaucetURL != "" {
		def.FaucetURL = cfg.FaucetURL
	}
	if cfg.ExplorerURL != "" {
		def.ExplorerURL = cfg.ExplorerURL
	}
	if cfg.MarketplaceURL != "" {
		def.MarketplaceURL = cfg.MarketplaceURL
	}

	log.Debug("Network definition resolved", "network", def.Name, "rpc", def.RPCURL)
	return def, nil
}

// ExplorerLink renders the block explorer link for address, or "" when none is configured.
func (d NetworkDefinition) ExplorerLink(address string) string {
	return renderLink(d.ExplorerURL, address)
}

// MarketplaceLink renders the capy marketplace link for address, or "" when none is configured.
func (d NetworkDefinition) MarketplaceLink(address string) string {
	return renderLink(d.MarketplaceURL, address)
}

func renderLink(template, address string) string {
	if template == "" {
		return ""
	}
	if !strings.Contains(template, "%s") {
		return strings.TrimRight(template, "/") + "/" + address
	}
	return fmt.Sprintf(template, address)
}
