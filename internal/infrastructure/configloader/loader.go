package configloader

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// NetworkConfig selects the target network and tunes the RPC transport.
type NetworkConfig struct {
	Name                string `yaml:"name"`        // e.g., "testnet"
	RPCURL              string `yaml:"rpcURL"`      // overrides the predefined endpoint
	FaucetURL           string `yaml:"faucetURL"`   // overrides the predefined faucet
	ExplorerURL         string `yaml:"explorerURL"` // fmt template, %s is the address
	MarketplaceURL      string `yaml:"marketplaceURL"`
	RPCCallTimeoutMs    int64  `yaml:"rpcCallTimeoutMs"`
	ConnectionTimeoutMs int64  `yaml:"connectionTimeoutMs"`
	LimiterPeriod       string `yaml:"limiterPeriod"`
	LimiterBurst        int    `yaml:"limiterBurst"`
}

// ContractsConfig holds the deployed package and shared object ids of the capy game.
type ContractsConfig struct {
	PackageID    string `yaml:"packageID"`
	Registry     string `yaml:"registry"`
	CapyMarket   string `yaml:"capyMarket"`
	ItemStore    string `yaml:"itemStore"`
	Eden         string `yaml:"eden"`
	NFTPackageID string `yaml:"nftPackageID"`
	NFTModule    string `yaml:"nftModule"`
}

// CoinConfig describes the coin used for payments and balances.
type CoinConfig struct {
	Type     string `yaml:"type"`
	Symbol   string `yaml:"symbol"`
	Decimals uint8  `yaml:"decimals"`
}

// GasConfig holds the gas budget attached to every module call.
type GasConfig struct {
	Budget uint64 `yaml:"budget"`
}

// SettleConfig holds the fixed waits after state-changing calls.
// Pointers distinguish "unset" from an explicit zero delay.
type SettleConfig struct {
	MintMs     *int64 `yaml:"mintMs"`
	PurchaseMs *int64 `yaml:"purchaseMs"`
	AttachMs   *int64 `yaml:"attachMs"`
}

// ListingConfig bounds the random listing price, in whole coins.
// RelistExisting lists an already owned capy when the core lifecycle is skipped.
type ListingConfig struct {
	MinPrice       string `yaml:"minPrice"`
	MaxPrice       string `yaml:"maxPrice"`
	RelistExisting bool   `yaml:"relistExisting"`
}

// FilesConfig holds input file locations. Accessories is optional and replaces the built-in table.
type FilesConfig struct {
	Wallets     string `yaml:"wallets"`
	Accessories string `yaml:"accessories"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ServerConfig holds the optional status API settings.
type ServerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    string `yaml:"port"`
}

// FaucetConfig controls the optional pre-run top up.
type FaucetConfig struct {
	Enabled              bool   `yaml:"enabled"`
	MinBalance           string `yaml:"minBalance"` // whole coins
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
}

// CacheConfig holds configuration for caching.
type CacheConfig struct {
	DefaultExpirationMinutes int `yaml:"defaultExpirationMinutes"`
	CleanupIntervalMinutes   int `yaml:"cleanupIntervalMinutes"`
}

// Config is the top-level configuration structure. It is loaded once and never mutated.
type Config struct {
	Network   NetworkConfig   `yaml:"network"`
	Contracts ContractsConfig `yaml:"contracts"`
	Coin      CoinConfig      `yaml:"coin"`
	Gas       GasConfig       `yaml:"gas"`
	Settle    SettleConfig    `yaml:"settle"`
	Listing   ListingConfig   `yaml:"listing"`
	Files     FilesConfig     `yaml:"files"`
	Logging   LoggingConfig   `yaml:"logging"`
	Server    ServerConfig    `yaml:"server"`
	Faucet    FaucetConfig    `yaml:"faucet"`
	Cache     CacheConfig     `yaml:"cache"`
}

// Load reads the YAML configuration file from the given path and unmarshals it.
func Load(path string) (*Config, error) {
	logrus.Infof("Loading configuration from path: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals raw YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Network.Name == "" {
		cfg.Network.Name = "testnet"
		logrus.Infof("Network.Name not set, defaulting to %s", cfg.Network.Name)
	}
	if cfg.Network.RPCCallTimeoutMs <= 0 {
		cfg.Network.RPCCallTimeoutMs = 30000
	}
	if cfg.Network.ConnectionTimeoutMs <= 0 {
		cfg.Network.ConnectionTimeoutMs = 10000
	}
	if cfg.Network.LimiterPeriod == "" {
		cfg.Network.LimiterPeriod = "100ms"
	}
	if cfg.Network.LimiterBurst <= 0 {
		cfg.Network.LimiterBurst = 5
	}

	if cfg.Contracts.NFTPackageID == "" {
		cfg.Contracts.NFTPackageID = "0x2"
	}
	if cfg.Contracts.NFTModule == "" {
		cfg.Contracts.NFTModule = "devnet_nft"
	}

	if cfg.Coin.Type == "" {
		cfg.Coin.Type = "0x2::sui::SUI"
		logrus.Infof("Coin.Type not set, defaulting to %s", cfg.Coin.Type)
	}
	if cfg.Coin.Symbol == "" {
		cfg.Coin.Symbol = "SUI"
	}
	if cfg.Coin.Decimals == 0 {
		cfg.Coin.Decimals = 9
	}

	if cfg.Gas.Budget == 0 {
		cfg.Gas.Budget = 10000
		logrus.Infof("Gas.Budget not set, defaulting to %d", cfg.Gas.Budget)
	}

	cfg.Settle.MintMs = defaultMillis(cfg.Settle.MintMs, 4000)
	cfg.Settle.PurchaseMs = defaultMillis(cfg.Settle.PurchaseMs, 3000)
	cfg.Settle.AttachMs = defaultMillis(cfg.Settle.AttachMs, 3000)

	if cfg.Listing.MinPrice == "" {
		cfg.Listing.MinPrice = "0.01"
	}
	if cfg.Listing.MaxPrice == "" {
		cfg.Listing.MaxPrice = "0.09"
	}

	if cfg.Files.Wallets == "" {
		cfg.Files.Wallets = "wallets.txt"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}

	if cfg.Faucet.MinBalance == "" {
		cfg.Faucet.MinBalance = "0.05"
	}
	if cfg.Faucet.RequestTimeoutMillis <= 0 {
		cfg.Faucet.RequestTimeoutMillis = 10000
	}

	if cfg.Cache.DefaultExpirationMinutes <= 0 {
		cfg.Cache.DefaultExpirationMinutes = 60
	}
	if cfg.Cache.CleanupIntervalMinutes <= 0 {
		cfg.Cache.CleanupIntervalMinutes = 10
	}
}

func defaultMillis(v *int64, def int64) *int64 {
	if v == nil || *v < 0 {
		return &def
	}
	return v
}

// Validate checks the fields without sensible defaults.
func (c *Config) Validate() error {
	if c.Contracts.PackageID == "" {
		return fmt.Errorf("contracts.packageID is required")
	}
	for name, v := range map[string]string{
		"contracts.registry":   c.Contracts.Registry,
		"contracts.capyMarket": c.Contracts.CapyMarket,
		"contracts.itemStore":  c.Contracts.ItemStore,
		"contracts.eden":       c.Contracts.Eden,
	} {
		if v == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	minPrice, err := decimal.NewFromString(c.Listing.MinPrice)
	if err != nil {
		return fmt.Errorf("invalid listing.minPrice %q: %w", c.Listing.MinPrice, err)
	}
	maxPrice, err := decimal.NewFromString(c.Listing.MaxPrice)
	if err != nil {
		return fmt.Errorf("invalid listing.maxPrice %q: %w", c.Listing.MaxPrice, err)
	}
	if !minPrice.IsPositive() || maxPrice.LessThan(minPrice) {
		return fmt.Errorf("listing price range [%s, %s] is invalid", minPrice, maxPrice)
	}

	if _, err := decimal.NewFromString(c.Faucet.MinBalance); err != nil {
		return fmt.Errorf("invalid faucet.minBalance %q: %w", c.Faucet.MinBalance, err)
	}
	if _, err := time.ParseDuration(c.Network.LimiterPeriod); err != nil {
		return fmt.Errorf("invalid network.limiterPeriod %q: %w", c.Network.LimiterPeriod, err)
	}
	return nil
}

// SettleDelays converts the millisecond settings to durations.
func (c *Config) SettleDelays() (mint, purchase, attach time.Duration) {
	return millis(c.Settle.MintMs), millis(c.Settle.PurchaseMs), millis(c.Settle.AttachMs)
}

func millis(v *int64) time.Duration {
	if v == nil {
		return 0
	}
	return time.Duration(*v) * time.Millisecond
}

// ListingRange returns the parsed listing price bounds. Validate guarantees they parse.
func (c *Config) ListingRange() (decimal.Decimal, decimal.Decimal) {
	return decimal.RequireFromString(c.Listing.MinPrice), decimal.RequireFromString(c.Listing.MaxPrice)
}

// CapyType is the full type tag of a capy object.
func (c *Config) CapyType() string {
	return c.Contracts.PackageID + "::capy::Capy"
}

// CapyItemType is the full type tag of a purchased accessory.
func (c *Config) CapyItemType() string {
	return c.Contracts.PackageID + "::capy_item::CapyItem"
}

// CoinObjectType is the type tag of a coin object of the payment coin.
func (c *Config) CoinObjectType() string {
	return "0x2::coin::Coin<" + c.Coin.Type + ">"
}
