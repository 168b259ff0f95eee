package client

import (
	"context"
	"encoding/base64"
	stdjson "encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"capy_automator/internal/app/port"
	"capy_automator/internal/domain/entity"
	"capy_automator/internal/infrastructure/configloader"
	networkdefinition "capy_automator/internal/infrastructure/network/definition"
	"capy_automator/internal/pkg/metrics"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	pageLimit        = 50
	executionRequest = "WaitForLocalExecution"
)

// SuiClient implements port.ChainClient over the Sui fullnode JSON-RPC API.
type SuiClient struct {
	rpc            *rpc.Client
	netDef         networkdefinition.NetworkDefinition
	coin           configloader.CoinConfig
	gasBudget      uint64
	settle         entity.SettleDelays
	rpcCallTimeout time.Duration
	limiter        *rate.Limiter
	metadata       *cache.Cache
	logger         *zap.Logger
	metrics        *metrics.Recorder
}

var _ port.ChainClient = (*SuiClient)(nil)

// NewSuiClient dials the fullnode of netDef. The HTTP transport connects lazily.
func NewSuiClient(
	ctx context.Context,
	netDef networkdefinition.NetworkDefinition,
	cfg *configloader.Config,
	logger *zap.Logger,
	rec *metrics.Recorder,
) (*SuiClient, error) {
	period, err := time.ParseDuration(cfg.Network.LimiterPeriod)
	if err != nil {
		return nil, fmt.Errorf("invalid limiter period %q: %w", cfg.Network.LimiterPeriod, err)
	}

	dialCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Network.ConnectionTimeoutMs)*time.Millisecond)
	defer cancel()
	httpClient := &http.Client{Timeout: time.Duration(cfg.Network.RPCCallTimeoutMs) * time.Millisecond}
	rpcClient, err := rpc.DialOptions(dialCtx, netDef.RPCURL, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", netDef.RPCURL, err)
	}

	mint, purchase, attach := cfg.SettleDelays()
	return &SuiClient{
		rpc:            rpcClient,
		netDef:         netDef,
		coin:           cfg.Coin,
		gasBudget:      cfg.Gas.Budget,
		settle:         entity.SettleDelays{Mint: mint, Purchase: purchase, Attach: attach},
		rpcCallTimeout: time.Duration(cfg.Network.RPCCallTimeoutMs) * time.Millisecond,
		limiter:        rate.NewLimiter(rate.Every(period), cfg.Network.LimiterBurst),
		metadata: cache.New(
			time.Duration(cfg.Cache.DefaultExpirationMinutes)*time.Minute,
			time.Duration(cfg.Cache.CleanupIntervalMinutes)*time.Minute,
		),
		logger:  logger.Named("SuiClient"),
		metrics: rec,
	}, nil
}

// Close releases the underlying RPC connection.
func (c *SuiClient) Close() {
	c.rpc.Close()
}

// Definition returns the network definition for this client.
func (c *SuiClient) Definition() networkdefinition.NetworkDefinition {
	return c.netDef
}

// DeriveIdentity implements port.ChainClient. It needs no network access.
func (c *SuiClient) DeriveIdentity(_ context.Context, seedPhrase string) (entity.Identity, error) {
	return deriveIdentity(seedPhrase)
}

// GetBalance implements port.ChainClient. Balance and coin metadata are fetched in
// one batch unless the metadata is cached.
func (c *SuiClient) GetBalance(ctx context.Context, address string) (entity.Balance, error) {
	var balance balanceResponse
	meta, cached := c.cachedMetadata()
	if cached {
		if err := c.call(ctx, "suix_getBalance", &balance, address, c.coin.Type); err != nil {
			return entity.Balance{}, err
		}
	} else {
		var err error
		meta, err = c.balanceWithMetadata(ctx, address, &balance)
		if err != nil {
			return entity.Balance{}, err
		}
	}

	total, ok := new(big.Int).SetString(balance.TotalBalance, 10)
	if !ok {
		return entity.Balance{}, &entity.RemoteCallError{
			Method: "suix_getBalance",
			Err:    fmt.Errorf("malformed totalBalance %q", balance.TotalBalance),
		}
	}
	return entity.Balance{
		CoinType: c.coin.Type,
		Symbol:   meta.Symbol,
		Decimals: meta.Decimals,
		Total:    total,
	}, nil
}

func (c *SuiClient) balanceWithMetadata(ctx context.Context, address string, balance *balanceResponse) (coinMetadata, error) {
	batch := []rpc.BatchElem{
		{Method: "suix_getBalance", Args: []any{address, c.coin.Type}, Result: new(stdjson.RawMessage)},
		{Method: "suix_getCoinMetadata", Args: []any{c.coin.Type}, Result: new(stdjson.RawMessage)},
	}
	if err := c.batch(ctx, batch); err != nil {
		return coinMetadata{}, err
	}
	if batch[0].Error != nil {
		return coinMetadata{}, &entity.RemoteCallError{Method: batch[0].Method, Err: batch[0].Error}
	}
	if err := json.Unmarshal(*batch[0].Result.(*stdjson.RawMessage), balance); err != nil {
		return coinMetadata{}, &entity.RemoteCallError{Method: batch[0].Method, Err: err}
	}

	meta := c.fallbackMetadata()
	raw := *batch[1].Result.(*stdjson.RawMessage)
	switch {
	case batch[1].Error != nil:
		c.logger.Warn("Coin metadata unavailable, using configured values",
			zap.String("coinType", c.coin.Type), zap.Error(batch[1].Error))
		return meta, nil
	case len(raw) == 0 || string(raw) == "null":
		return meta, nil
	}
	var fetched coinMetadata
	if err := json.Unmarshal(raw, &fetched); err != nil {
		c.logger.Warn("Coin metadata malformed, using configured values", zap.Error(err))
		return meta, nil
	}
	if fetched.Symbol == "" {
		fetched.Symbol = meta.Symbol
	}
	c.metadata.Set(c.coin.Type, fetched, cache.DefaultExpiration)
	return fetched, nil
}

func (c *SuiClient) cachedMetadata() (coinMetadata, bool) {
	if v, ok := c.metadata.Get(c.coin.Type); ok {
		if meta, ok := v.(coinMetadata); ok {
			return meta, true
		}
	}
	return coinMetadata{}, false
}

func (c *SuiClient) fallbackMetadata() coinMetadata {
	return coinMetadata{Decimals: c.coin.Decimals, Symbol: c.coin.Symbol}
}

// GetFungibleHoldings implements port.ChainClient. Every page of suix_getAllCoins is read.
func (c *SuiClient) GetFungibleHoldings(ctx context.Context, address string) ([]entity.TokenHolding, error) {
	var holdings []entity.TokenHolding
	var cursor *string
	for {
		var page coinPage
		if err := c.call(ctx, "suix_getAllCoins", &page, address, cursor, pageLimit); err != nil {
			return nil, err
		}
		for _, coin := range page.Data {
			amount, err := strconv.ParseUint(coin.Balance, 10, 64)
			if err != nil {
				return nil, &entity.RemoteCallError{
					Method: "suix_getAllCoins",
					Err:    fmt.Errorf("coin %s has malformed balance %q: %w", coin.CoinObjectID, coin.Balance, err),
				}
			}
			holdings = append(holdings, entity.TokenHolding{
				Reference: coin.CoinObjectID,
				AssetType: "0x2::coin::Coin<" + coin.CoinType + ">",
				Amount:    amount,
			})
		}
		if !page.HasNextPage || page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}
	c.logger.Debug("Coins fetched", zap.String("address", address), zap.Int("count", len(holdings)))
	return holdings, nil
}

// GetOwnedAssets implements port.ChainClient. Every page of suix_getOwnedObjects is read.
func (c *SuiClient) GetOwnedAssets(ctx context.Context, address string) ([]entity.OwnedAsset, error) {
	query := map[string]any{
		"filter":  nil,
		"options": map[string]bool{"showType": true},
	}
	var assets []entity.OwnedAsset
	var cursor *string
	for {
		var page objectPage
		if err := c.call(ctx, "suix_getOwnedObjects", &page, address, query, cursor, pageLimit); err != nil {
			return nil, err
		}
		for _, obj := range page.Data {
			if obj.Data == nil {
				continue
			}
			assets = append(assets, entity.OwnedAsset{ID: entity.AssetHandle(obj.Data.ObjectID), Type: obj.Data.Type})
		}
		if !page.HasNextPage || page.NextCursor == nil {
			break
		}
		cursor = page.NextCursor
	}
	return assets, nil
}

// Invoke implements port.ChainClient. The node builds the transaction with
// unsafe_moveCall; it is signed locally and executed with effects and events.
func (c *SuiClient) Invoke(ctx context.Context, identity entity.Identity, call entity.ModuleCall) (*entity.OperationResult, error) {
	if identity.Signer == nil {
		return nil, fmt.Errorf("identity %s has no signer", identity.Address)
	}
	budget := call.GasBudget
	if budget == 0 {
		budget = c.gasBudget
	}
	typeArgs := call.TypeArguments
	if typeArgs == nil {
		typeArgs = []string{}
	}

	var built moveCallResponse
	if err := c.call(ctx, "unsafe_moveCall", &built,
		identity.Address, call.Package, call.Module, call.Function,
		typeArgs, call.Arguments, nil, strconv.FormatUint(budget, 10),
	); err != nil {
		return nil, err
	}

	txBytes, err := base64.StdEncoding.DecodeString(built.TxBytes)
	if err != nil {
		return nil, &entity.RemoteCallError{Method: "unsafe_moveCall", Err: fmt.Errorf("decode txBytes: %w", err)}
	}
	signature, err := identity.Signer.SignTransaction(txBytes)
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", call.Target(), err)
	}

	var raw stdjson.RawMessage
	options := map[string]bool{"showEffects": true, "showEvents": true}
	if err := c.call(ctx, "sui_executeTransactionBlock", &raw,
		built.TxBytes, []string{signature}, options, executionRequest,
	); err != nil {
		return nil, err
	}
	result, err := decodeExecution(raw)
	if err != nil {
		return nil, &entity.RemoteCallError{Method: call.Target(), Err: err}
	}
	c.logger.Debug("Transaction executed",
		zap.String("target", call.Target()),
		zap.String("digest", result.Digest),
		zap.Int("events", len(result.Events)))
	return result, nil
}

// Settle implements port.ChainClient.
func (c *SuiClient) Settle(ctx context.Context, kind entity.SettleKind) error {
	delay := c.settle.For(kind)
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// call performs one rate limited JSON-RPC call and decodes the result into out.
func (c *SuiClient) call(ctx context.Context, method string, out any, args ...any) (err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return &entity.RemoteCallError{Method: method, Err: err}
	}
	started := time.Now()
	defer func() { c.metrics.ObserveRPC(method, started, err) }()

	callCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()

	var raw stdjson.RawMessage
	if err := c.rpc.CallContext(callCtx, &raw, method, args...); err != nil {
		c.logger.Error("RPC call failed", zap.String("method", method), zap.Error(err))
		return &entity.RemoteCallError{Method: method, Err: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &entity.RemoteCallError{Method: method, Err: fmt.Errorf("decode result: %w", err)}
	}
	return nil
}

func (c *SuiClient) batch(ctx context.Context, elems []rpc.BatchElem) (err error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return &entity.RemoteCallError{Method: "batch", Err: err}
	}
	started := time.Now()
	defer func() { c.metrics.ObserveRPC("batch", started, err) }()

	callCtx, cancel := context.WithTimeout(ctx, c.rpcCallTimeout)
	defer cancel()
	if err := c.rpc.BatchCallContext(callCtx, elems); err != nil {
		return &entity.RemoteCallError{Method: "batch", Err: fmt.Errorf("RPC batch call failed: %w", err)}
	}
	return nil
}
