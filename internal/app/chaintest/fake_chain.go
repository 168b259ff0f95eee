// Package chaintest provides an in-memory port.ChainClient for tests.
package chaintest

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"capy_automator/internal/app/port"
	"capy_automator/internal/domain/entity"
)

// InvokeFunc builds the result of one Invoke call.
type InvokeFunc func(call entity.ModuleCall) (*entity.OperationResult, error)

// FakeChain records every request and answers from its configured state.
// Each address gets a deterministic fake identity derived from the seed phrase.
type FakeChain struct {
	mu sync.Mutex

	Holdings map[string][]entity.TokenHolding
	Owned    map[string][]entity.OwnedAsset
	Balances map[string]*big.Int

	// DeriveErr fails DeriveIdentity for the listed seed phrases.
	DeriveErr map[string]error
	// BalanceErr fails GetBalance for the listed addresses.
	BalanceErr map[string]error
	// OwnedErr fails GetOwnedAssets for every address when set.
	OwnedErr error
	// Handlers override Invoke per "module::function".
	Handlers map[string]InvokeFunc

	calls   []entity.ModuleCall
	callers []string
	settles []entity.SettleKind
	seq     int
}

var _ port.ChainClient = (*FakeChain)(nil)

// NewFakeChain creates an empty fake where every Invoke succeeds with a fresh id.
func NewFakeChain() *FakeChain {
	return &FakeChain{
		Holdings:   map[string][]entity.TokenHolding{},
		Owned:      map[string][]entity.OwnedAsset{},
		Balances:   map[string]*big.Int{},
		DeriveErr:  map[string]error{},
		BalanceErr: map[string]error{},
		Handlers:   map[string]InvokeFunc{},
	}
}

// AddressFor returns the address DeriveIdentity yields for seedPhrase.
func AddressFor(seedPhrase string) string {
	return fmt.Sprintf("0x%x", []byte(seedPhrase))
}

type fakeSigner struct{}

func (fakeSigner) SignTransaction(txBytes []byte) (string, error) {
	return fmt.Sprintf("sig:%d", len(txBytes)), nil
}

// DeriveIdentity implements port.ChainClient.
func (f *FakeChain) DeriveIdentity(_ context.Context, seedPhrase string) (entity.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.DeriveErr[seedPhrase]; err != nil {
		return entity.Identity{}, err
	}
	return entity.Identity{Address: AddressFor(seedPhrase), Signer: fakeSigner{}}, nil
}

// GetBalance implements port.ChainClient.
func (f *FakeChain) GetBalance(_ context.Context, address string) (entity.Balance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.BalanceErr[address]; err != nil {
		return entity.Balance{}, err
	}
	total := f.Balances[address]
	if total == nil {
		total = big.NewInt(0)
	}
	return entity.Balance{CoinType: "0x2::sui::SUI", Symbol: "SUI", Decimals: 9, Total: new(big.Int).Set(total)}, nil
}

// GetFungibleHoldings implements port.ChainClient.
func (f *FakeChain) GetFungibleHoldings(_ context.Context, address string) ([]entity.TokenHolding, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.TokenHolding(nil), f.Holdings[address]...), nil
}

// GetOwnedAssets implements port.ChainClient.
func (f *FakeChain) GetOwnedAssets(_ context.Context, address string) ([]entity.OwnedAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.OwnedErr != nil {
		return nil, f.OwnedErr
	}
	return append([]entity.OwnedAsset(nil), f.Owned[address]...), nil
}

// Invoke implements port.ChainClient. Without a handler it returns one event
// carrying a fresh id.
func (f *FakeChain) Invoke(_ context.Context, identity entity.Identity, call entity.ModuleCall) (*entity.OperationResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.callers = append(f.callers, identity.Address)
	f.seq++
	seq := f.seq
	handler := f.Handlers[call.Module+"::"+call.Function]
	f.mu.Unlock()

	if handler != nil {
		return handler(call)
	}
	return &entity.OperationResult{
		Digest: fmt.Sprintf("tx%d", seq),
		Events: []entity.Event{{
			Type:    call.Target(),
			Payload: map[string]any{"id": fmt.Sprintf("0xobj%d", seq)},
		}},
	}, nil
}

// Settle implements port.ChainClient. It records kind and returns immediately.
func (f *FakeChain) Settle(ctx context.Context, kind entity.SettleKind) error {
	f.mu.Lock()
	f.settles = append(f.settles, kind)
	f.mu.Unlock()
	return ctx.Err()
}

// Calls returns every invoked module call in order.
func (f *FakeChain) Calls() []entity.ModuleCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.ModuleCall(nil), f.calls...)
}

// CallNames returns "module::function" for every invoked call in order.
func (f *FakeChain) CallNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Module + "::" + c.Function
	}
	return out
}

// Callers returns the signer address of every invoked call in order.
func (f *FakeChain) Callers() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.callers...)
}

// Settles returns every settle kind requested in order.
func (f *FakeChain) Settles() []entity.SettleKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entity.SettleKind(nil), f.settles...)
}

// Fail makes module::function return err.
func (f *FakeChain) Fail(target string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Handlers[target] = func(call entity.ModuleCall) (*entity.OperationResult, error) {
		return nil, &entity.RemoteCallError{Method: call.Target(), Err: err}
	}
}

// NoEvents makes module::function succeed without any events.
func (f *FakeChain) NoEvents(target string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Handlers[target] = func(entity.ModuleCall) (*entity.OperationResult, error) {
		return &entity.OperationResult{Digest: "empty"}, nil
	}
}

// FixedRand is a deterministic port.RandomSource returning fixed draws clamped to n.
type FixedRand struct {
	Int   int
	Int64 int64
}

// IntN implements port.RandomSource.
func (r FixedRand) IntN(n int) int {
	if r.Int >= n {
		return n - 1
	}
	return r.Int
}

// Int64N implements port.RandomSource.
func (r FixedRand) Int64N(n int64) int64 {
	if r.Int64 >= n {
		return n - 1
	}
	return r.Int64
}
