package service

import (
	"context"
	"fmt"
	"strings"

	"capy_automator/internal/app/catalog"
	"capy_automator/internal/app/port"
	"capy_automator/internal/domain/entity"
	"capy_automator/internal/infrastructure/configloader"
	"capy_automator/internal/pkg/metrics"
	"capy_automator/internal/pkg/utils"

	"github.com/shopspring/decimal"
)

// LifecyclePipelineImpl implements port.LifecyclePipeline.
type LifecyclePipelineImpl struct {
	chain   port.ChainClient
	catalog *catalog.AssetCatalog
	rng     port.RandomSource
	logger  port.Logger
	cfg     *configloader.Config
	metrics *metrics.Recorder
}

// NewLifecyclePipeline creates a new instance of LifecyclePipelineImpl.
func NewLifecyclePipeline(
	chain port.ChainClient,
	cat *catalog.AssetCatalog,
	rng port.RandomSource,
	l port.Logger,
	config *configloader.Config,
	rec *metrics.Recorder,
) port.LifecyclePipeline {
	return &LifecyclePipelineImpl{
		chain:   chain,
		catalog: cat,
		rng:     rng,
		logger:  l,
		cfg:     config,
		metrics: rec,
	}
}

// Run executes the stages for identity in order. The first failing stage ends the run;
// its error is captured in the returned result.
func (p *LifecyclePipelineImpl) Run(ctx context.Context, identity entity.Identity) entity.PipelineResult {
	res := entity.PipelineResult{Address: identity.Address, Outcome: entity.OutcomeSucceeded}

	owned, err := p.ownedCapys(ctx, identity.Address)
	p.metrics.StageDone(entity.StageIdempotencyCheck, err)
	if err != nil {
		res.Fail(entity.StageIdempotencyCheck, err)
		return res
	}

	if len(owned) > 0 {
		res.CoreSkipped = true
		p.logger.Info("Capys are already minted on this wallet, skipping", "count", len(owned))
		if p.cfg.Listing.RelistExisting {
			if !p.stage(&res, entity.StageList, func() error {
				return p.list(ctx, identity, owned[0].ID, &res)
			}) {
				return res
			}
		}
	} else if !p.runCore(ctx, identity, &res) {
		return res
	}

	p.stage(&res, entity.StageBatchMintExamples, func() error {
		return p.batchMintExamples(ctx, identity, &res)
	})
	return res
}

// runCore performs mint, purchase, attach, breed and list. It reports whether every stage succeeded.
func (p *LifecyclePipelineImpl) runCore(ctx context.Context, identity entity.Identity, res *entity.PipelineResult) bool {
	var first, second entity.AssetHandle
	ok := p.stage(res, entity.StageMintPrimary, func() error {
		var err error
		if first, err = p.mintCapy(ctx, identity); err != nil {
			return err
		}
		res.MintedAssets = append(res.MintedAssets, first)
		if second, err = p.mintCapy(ctx, identity); err != nil {
			return err
		}
		res.MintedAssets = append(res.MintedAssets, second)
		return nil
	})
	if !ok {
		return false
	}

	var item entity.AssetHandle
	if !p.stage(res, entity.StagePurchaseAccessory, func() error {
		var err error
		item, err = p.buyAccessory(ctx, identity, res)
		return err
	}) {
		return false
	}

	if !p.stage(res, entity.StageAttachAccessory, func() error {
		return p.attach(ctx, identity, first, item)
	}) {
		return false
	}

	var child entity.AssetHandle
	if !p.stage(res, entity.StageBreed, func() error {
		var err error
		child, err = p.breed(ctx, identity, first, second)
		return err
	}) {
		return false
	}
	res.ChildAsset = child

	return p.stage(res, entity.StageList, func() error {
		return p.list(ctx, identity, child, res)
	})
}

func (p *LifecyclePipelineImpl) stage(res *entity.PipelineResult, stage entity.Stage, fn func() error) bool {
	err := fn()
	p.metrics.StageDone(stage, err)
	if err != nil {
		res.Fail(stage, err)
		return false
	}
	return true
}

func (p *LifecyclePipelineImpl) ownedCapys(ctx context.Context, address string) ([]entity.OwnedAsset, error) {
	assets, err := p.chain.GetOwnedAssets(ctx, address)
	if err != nil {
		return nil, err
	}
	capyType := p.cfg.CapyType()
	out := make([]entity.OwnedAsset, 0, len(assets))
	for _, a := range assets {
		if matchesType(a.Type, capyType) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (p *LifecyclePipelineImpl) mintCapy(ctx context.Context, identity entity.Identity) (entity.AssetHandle, error) {
	p.logger.Info("Minting Capy")
	result, err := p.chain.Invoke(ctx, identity, p.capyCall("eden", "get_capy", nil,
		p.cfg.Contracts.Eden, p.cfg.Contracts.Registry))
	if err != nil {
		return "", err
	}
	if err := p.chain.Settle(ctx, entity.SettleMint); err != nil {
		return "", err
	}
	id, ok := firstID(result)
	if !ok {
		return "", fmt.Errorf("%w: get_capy emitted no event with an id (tx %s)", entity.ErrMintFailed, digest(result))
	}
	p.logger.Debug("Capy minted", "capy", id)
	return id, nil
}

func (p *LifecyclePipelineImpl) buyAccessory(ctx context.Context, identity entity.Identity, res *entity.PipelineResult) (entity.AssetHandle, error) {
	accessory, err := p.catalog.PickRandom(p.rng)
	if err != nil {
		return "", err
	}
	res.AccessoryName = accessory.Name
	p.logger.Info(fmt.Sprintf("Buying accessory %s", accessory.Name))

	holdings, err := p.chain.GetFungibleHoldings(ctx, identity.Address)
	if err != nil {
		return "", err
	}
	spendable := FilterHoldings(holdings, p.cfg.CoinObjectType())
	price := accessory.Price.Shift(int32(p.cfg.Coin.Decimals))
	coins := SelectForPrice(spendable, price)
	if have := SumHoldings(spendable, coins); have.LessThan(price) {
		return "", entity.NewInsufficientBalanceError(price, have)
	}

	result, err := p.chain.Invoke(ctx, identity, p.capyCall("capy_item", "buy_mul_coin", nil,
		p.cfg.Contracts.ItemStore, accessory.Name, coins))
	if err != nil {
		return "", err
	}
	if err := p.chain.Settle(ctx, entity.SettlePurchase); err != nil {
		return "", err
	}
	id, ok := firstID(result)
	if !ok {
		return "", fmt.Errorf("%w: buy_mul_coin emitted no event with an id (tx %s)", entity.ErrPurchaseFailed, digest(result))
	}
	res.Accessory = id
	return id, nil
}

func (p *LifecyclePipelineImpl) attach(ctx context.Context, identity entity.Identity, capy, item entity.AssetHandle) error {
	p.logger.Info("Adding accessory to Capy")
	_, err := p.chain.Invoke(ctx, identity, p.capyCall("capy", "add_item",
		[]string{p.cfg.CapyItemType()}, string(capy), string(item)))
	if err != nil {
		return err
	}
	return p.chain.Settle(ctx, entity.SettleAttach)
}

func (p *LifecyclePipelineImpl) breed(ctx context.Context, identity entity.Identity, first, second entity.AssetHandle) (entity.AssetHandle, error) {
	p.logger.Info("Breeding capys")
	result, err := p.chain.Invoke(ctx, identity, p.capyCall("capy", "breed_and_keep", nil,
		p.cfg.Contracts.Registry, string(first), string(second)))
	if err != nil {
		return "", err
	}
	id, ok := firstID(result)
	if !ok {
		return "", fmt.Errorf("%w: breed_and_keep emitted no event with an id (tx %s)", entity.ErrBreedFailed, digest(result))
	}
	return id, nil
}

func (p *LifecyclePipelineImpl) list(ctx context.Context, identity entity.Identity, capy entity.AssetHandle, res *entity.PipelineResult) error {
	price := p.listingPrice()
	p.logger.Info(fmt.Sprintf("Listing new Capy for %s %s", price.StringFixed(2), p.cfg.Coin.Symbol))
	scaled := utils.ToBaseUnits(price, p.cfg.Coin.Decimals)
	_, err := p.chain.Invoke(ctx, identity, p.capyCall("capy_market", "list",
		[]string{p.cfg.CapyType()}, p.cfg.Contracts.CapyMarket, string(capy), scaled.String()))
	if err != nil {
		return err
	}
	res.ListedAsset = capy
	res.ListingPrice = price.StringFixed(2)
	return nil
}

func (p *LifecyclePipelineImpl) batchMintExamples(ctx context.Context, identity entity.Identity, res *entity.PipelineResult) error {
	for _, ex := range p.catalog.Examples() {
		p.logger.Info(fmt.Sprintf("Minting: %s", ex.Name))
		call := entity.ModuleCall{
			Package:   p.cfg.Contracts.NFTPackageID,
			Module:    p.cfg.Contracts.NFTModule,
			Function:  "mint",
			Arguments: []any{ex.Name, ex.Description, ex.MediaURL},
			GasBudget: p.cfg.Gas.Budget,
		}
		if _, err := p.chain.Invoke(ctx, identity, call); err != nil {
			return fmt.Errorf("mint example %q: %w", ex.Name, err)
		}
		res.ExamplesMinted++
	}
	return nil
}

// listingPrice draws a price with two decimal places from the configured range.
func (p *LifecyclePipelineImpl) listingPrice() decimal.Decimal {
	lo, hi := p.cfg.ListingRange()
	loCents := lo.Shift(2).Ceil().IntPart()
	hiCents := hi.Shift(2).Floor().IntPart()
	if hiCents < loCents {
		hiCents = loCents
	}
	return decimal.New(loCents+p.rng.Int64N(hiCents-loCents+1), -2)
}

func (p *LifecyclePipelineImpl) capyCall(module, function string, typeArgs []string, args ...any) entity.ModuleCall {
	return entity.ModuleCall{
		Package:       p.cfg.Contracts.PackageID,
		Module:        module,
		Function:      function,
		TypeArguments: typeArgs,
		Arguments:     args,
		GasBudget:     p.cfg.Gas.Budget,
	}
}

func firstID(result *entity.OperationResult) (entity.AssetHandle, bool) {
	if result == nil {
		return "", false
	}
	return entity.FirstEventWithID(result.Events)
}

func digest(result *entity.OperationResult) string {
	if result == nil {
		return "unknown"
	}
	return result.Digest
}

// matchesType reports whether typeTag is want or a generic instantiation of it.
func matchesType(typeTag, want string) bool {
	return typeTag == want || strings.HasPrefix(typeTag, want+"<")
}
