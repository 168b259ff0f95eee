package port

import (
	"context"

	"capy_automator/internal/domain/entity"
)

// LifecyclePipeline runs the asset lifecycle for one derived identity.
type LifecyclePipeline interface {
	Run(ctx context.Context, identity entity.Identity) entity.PipelineResult
}

// ResultSink receives every finished wallet result.
type ResultSink interface {
	Record(result entity.PipelineResult)
}

// ResultStore exposes recorded results to readers such as the status API.
type ResultStore interface {
	ResultSink
	All() []entity.PipelineResult
	Failed() []entity.PipelineResult
}

// RandomSource is the subset of *rand.Rand (math/rand/v2) used for picks and prices.
type RandomSource interface {
	IntN(n int) int
	Int64N(n int64) int64
}

// LinkRenderer renders per-address links printed after every wallet.
type LinkRenderer interface {
	ExplorerLink(address string) string
	MarketplaceLink(address string) string
}
