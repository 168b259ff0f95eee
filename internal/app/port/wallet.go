package port

import "capy_automator/internal/domain/entity"

// WalletProvider defines the interface for fetching the wallets to process.
type WalletProvider interface {
	GetWallets() ([]entity.Wallet, error)
}
