package port

import (
	"context"

	"capy_automator/internal/domain/entity"
)

// ChainClient is the narrow request/response contract to the chain.
// Implementations own transport, key handling and settle timing.
type ChainClient interface {
	// DeriveIdentity derives the address and signing capability of a seed phrase.
	DeriveIdentity(ctx context.Context, seedPhrase string) (entity.Identity, error)

	// GetBalance returns the total native coin balance of address.
	GetBalance(ctx context.Context, address string) (entity.Balance, error)

	// GetFungibleHoldings lists every coin object owned by address.
	GetFungibleHoldings(ctx context.Context, address string) ([]entity.TokenHolding, error)

	// GetOwnedAssets lists every object owned by address with its type tag.
	GetOwnedAssets(ctx context.Context, address string) ([]entity.OwnedAsset, error)

	// Invoke signs and executes a module call as identity.
	Invoke(ctx context.Context, identity entity.Identity, call entity.ModuleCall) (*entity.OperationResult, error)

	// Settle blocks for the configured delay of kind, or until ctx is done.
	Settle(ctx context.Context, kind entity.SettleKind) error
}

// FaucetClient requests test coins for an address.
type FaucetClient interface {
	RequestGas(ctx context.Context, address string) error
}
