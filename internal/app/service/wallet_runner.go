package service

import (
	"context"
	"fmt"
	"strings"

	"capy_automator/internal/app/port"
	"capy_automator/internal/domain/entity"
	"capy_automator/internal/infrastructure/configloader"
	"capy_automator/internal/pkg/metrics"
	"capy_automator/internal/pkg/utils"

	"github.com/shopspring/decimal"
)

var separatorLine = strings.Repeat("-", 100) //nolint:gochecknoglobals // constant banner

// RunSummary counts the outcomes of one batch.
type RunSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Summarize counts outcomes over results. Skipped counts wallets whose core lifecycle was skipped.
func Summarize(results []entity.PipelineResult) RunSummary {
	s := RunSummary{Total: len(results)}
	for _, r := range results {
		if r.Succeeded() {
			s.Succeeded++
		} else {
			s.Failed++
		}
		if r.CoreSkipped {
			s.Skipped++
		}
	}
	return s
}

// WalletRunner drives the pipeline over every wallet, one at a time.
type WalletRunner struct {
	chain    port.ChainClient
	pipeline port.LifecyclePipeline
	faucet   port.FaucetClient
	sink     port.ResultSink
	links    port.LinkRenderer
	logger   port.Logger
	cfg      *configloader.Config
	metrics  *metrics.Recorder
}

// NewWalletRunner creates a new WalletRunner. faucet and sink may be nil.
func NewWalletRunner(
	chain port.ChainClient,
	pipeline port.LifecyclePipeline,
	faucet port.FaucetClient,
	sink port.ResultSink,
	links port.LinkRenderer,
	l port.Logger,
	config *configloader.Config,
	rec *metrics.Recorder,
) *WalletRunner {
	return &WalletRunner{
		chain:    chain,
		pipeline: pipeline,
		faucet:   faucet,
		sink:     sink,
		links:    links,
		logger:   l,
		cfg:      config,
		metrics:  rec,
	}
}

// Run processes wallets in order. A failing wallet never stops the batch;
// only a cancelled ctx ends it early.
func (r *WalletRunner) Run(ctx context.Context, wallets []entity.Wallet) []entity.PipelineResult {
	r.logger.Info(fmt.Sprintf("Loaded %d wallets", len(wallets)))

	results := make([]entity.PipelineResult, 0, len(wallets))
	for _, w := range wallets {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("Run cancelled, remaining wallets skipped", "remaining", len(wallets)-len(results), "error", err)
			break
		}
		res := r.runWallet(ctx, w)
		r.report(res)
		results = append(results, res)
	}

	s := Summarize(results)
	r.logger.Info("Run finished", "total", s.Total, "succeeded", s.Succeeded, "failed", s.Failed, "skipped", s.Skipped)
	return results
}

func (r *WalletRunner) runWallet(ctx context.Context, w entity.Wallet) entity.PipelineResult {
	log := r.logger.With("line", w.LineNumber)

	identity, err := r.chain.DeriveIdentity(ctx, w.SeedPhrase)
	if err != nil {
		res := entity.PipelineResult{WalletLine: w.LineNumber}
		res.Fail(entity.StageIdentity, err)
		return res
	}

	balance, err := r.chain.GetBalance(ctx, identity.Address)
	if err != nil {
		res := entity.PipelineResult{WalletLine: w.LineNumber, Address: identity.Address}
		res.Fail(entity.StageIdentity, err)
		return res
	}
	log.Info(fmt.Sprintf("Sui Address: %s balance: %s %s",
		identity.Address, utils.FormatBigInt(balance.Total, balance.Decimals), r.symbol(balance)))

	r.topUp(ctx, log, identity.Address, balance)

	res := r.pipeline.Run(ctx, identity)
	res.WalletLine = w.LineNumber
	res.Balance = balance.Total
	res.BalanceText = utils.FormatBigInt(balance.Total, balance.Decimals)

	if final, err := r.chain.GetBalance(ctx, identity.Address); err != nil {
		log.Warn("Final balance unavailable", "error", err)
	} else {
		res.Balance = final.Total
		res.BalanceText = utils.FormatBigInt(final.Total, final.Decimals)
	}
	return res
}

// topUp asks the faucet for gas when the balance is below the configured threshold.
// Faucet problems are logged and never fail the wallet.
func (r *WalletRunner) topUp(ctx context.Context, log port.Logger, address string, balance entity.Balance) {
	if r.faucet == nil || !r.cfg.Faucet.Enabled {
		return
	}
	threshold := decimal.RequireFromString(r.cfg.Faucet.MinBalance).Shift(int32(balance.Decimals))
	have := decimal.Zero
	if balance.Total != nil {
		have = decimal.NewFromBigInt(balance.Total, 0)
	}
	if have.GreaterThanOrEqual(threshold) {
		return
	}
	log.Info("Balance below faucet threshold, requesting gas", "threshold", r.cfg.Faucet.MinBalance)
	if err := r.faucet.RequestGas(ctx, address); err != nil {
		log.Warn("Faucet request failed", "error", err)
	}
}

func (r *WalletRunner) report(res entity.PipelineResult) {
	log := r.logger.With("line", res.WalletLine)
	if res.Succeeded() {
		log.Info("Wallet finished", "address", res.Address, "balance", res.BalanceText,
			"core_skipped", res.CoreSkipped, "examples_minted", res.ExamplesMinted)
	} else {
		stage := "unknown"
		if res.FailedStage != nil {
			stage = res.FailedStage.String()
		}
		log.Error("Wallet failed", "address", res.Address, "stage", stage, "error", res.ErrorMessage())
	}

	if res.Address != "" && r.links != nil {
		if link := r.links.ExplorerLink(res.Address); link != "" {
			r.logger.Info(link)
		}
		if link := r.links.MarketplaceLink(res.Address); link != "" {
			r.logger.Info(link)
		}
	}
	r.logger.Info(separatorLine)

	r.metrics.WalletDone(res.Outcome)
	if r.sink != nil {
		r.sink.Record(res)
	}
}

func (r *WalletRunner) symbol(b entity.Balance) string {
	if strings.TrimSpace(b.Symbol) != "" {
		return b.Symbol
	}
	return r.cfg.Coin.Symbol
}
