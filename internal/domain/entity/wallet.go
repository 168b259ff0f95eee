package entity

// Wallet is a single entry of the wallets file.
type Wallet struct {
	SeedPhrase string `json:"-" yaml:"-"`
	LineNumber int    `json:"lineNumber" yaml:"lineNumber"`
}

// Signer signs serialized transaction bytes on behalf of an Identity.
// The returned string is the chain-specific encoded signature.
type Signer interface {
	SignTransaction(txBytes []byte) (string, error)
}

// Identity is the chain identity derived from a wallet seed phrase.
type Identity struct {
	Address string
	Signer  Signer
}
