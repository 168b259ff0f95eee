package client

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"capy_automator/internal/domain/entity"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/blake2b"
)

const (
	ed25519SchemeFlag = 0x00
	hardenedOffset    = 0x80000000
)

// suiDerivationPath is m/44'/784'/0'/0'/0', the first ed25519 account of a Sui wallet.
var suiDerivationPath = []uint32{44, 784, 0, 0, 0} //nolint:gochecknoglobals // fixed path

// transactionIntent prefixes every signed transaction: scope TransactionData, version V0, app Sui.
var transactionIntent = []byte{0, 0, 0} //nolint:gochecknoglobals // fixed prefix

// ed25519Signer signs transaction bytes with a derived key.
type ed25519Signer struct {
	key ed25519.PrivateKey
}

// SignTransaction returns base64(flag || signature || public key) over the intent digest.
func (s ed25519Signer) SignTransaction(txBytes []byte) (string, error) {
	msg := make([]byte, 0, len(transactionIntent)+len(txBytes))
	msg = append(msg, transactionIntent...)
	msg = append(msg, txBytes...)
	digest := blake2b.Sum256(msg)

	sig := ed25519.Sign(s.key, digest[:])
	pub := s.key.Public().(ed25519.PublicKey)

	out := make([]byte, 0, 1+len(sig)+len(pub))
	out = append(out, ed25519SchemeFlag)
	out = append(out, sig...)
	out = append(out, pub...)
	return base64.StdEncoding.EncodeToString(out), nil
}

// deriveIdentity turns a BIP-39 mnemonic into a Sui address and signer.
func deriveIdentity(mnemonic string) (entity.Identity, error) {
	normalized := strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
	seed, err := bip39.NewSeedWithErrorChecking(normalized, "")
	if err != nil {
		return entity.Identity{}, fmt.Errorf("invalid mnemonic: %w", err)
	}
	key := deriveEd25519Key(seed, suiDerivationPath)
	return entity.Identity{
		Address: addressFromPublicKey(key.Public().(ed25519.PublicKey)),
		Signer:  ed25519Signer{key: key},
	}, nil
}

// deriveEd25519Key walks a hardened-only SLIP-0010 path.
func deriveEd25519Key(seed []byte, path []uint32) ed25519.PrivateKey {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)
	key, chainCode := sum[:32], sum[32:]

	for _, index := range path {
		data := make([]byte, 0, 37)
		data = append(data, 0x00)
		data = append(data, key...)
		data = binary.BigEndian.AppendUint32(data, index|hardenedOffset)

		mac = hmac.New(sha512.New, chainCode)
		mac.Write(data)
		sum = mac.Sum(nil)
		key, chainCode = sum[:32], sum[32:]
	}
	return ed25519.NewKeyFromSeed(key)
}

// addressFromPublicKey returns 0x + hex(blake2b-256(flag || pubkey)).
func addressFromPublicKey(pub ed25519.PublicKey) string {
	buf := make([]byte, 0, 1+len(pub))
	buf = append(buf, ed25519SchemeFlag)
	buf = append(buf, pub...)
	sum := blake2b.Sum256(buf)
	return "0x" + hex.EncodeToString(sum[:])
}
