package walletloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capy_automator/internal/infrastructure/walletloader"
)

func writeWallets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wallets.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGetWalletsSkipsBlankLines(t *testing.T) {
	path := writeWallets(t, "alpha bravo charlie delta\n\n  echo foxtrot golf hotel  \n   \nindia juliet kilo lima\n")

	wallets, err := walletloader.NewWalletFileLoader(path, nil).GetWallets()

	require.NoError(t, err)
	require.Len(t, wallets, 3)
	assert.Equal(t, "alpha bravo charlie delta", wallets[0].SeedPhrase)
	assert.Equal(t, "echo foxtrot golf hotel", wallets[1].SeedPhrase)
	assert.Equal(t, "india juliet kilo lima", wallets[2].SeedPhrase)
	assert.Equal(t, []int{1, 3, 5}, []int{wallets[0].LineNumber, wallets[1].LineNumber, wallets[2].LineNumber})
}

func TestGetWalletsLengthBoundary(t *testing.T) {
	path := writeWallets(t, "0123456789\n0123456789a\r\n")
	var logged []string

	wallets, err := walletloader.NewWalletFileLoader(path, func(msg string, _ ...any) {
		logged = append(logged, msg)
	}).GetWallets()

	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, "0123456789a", wallets[0].SeedPhrase)
	assert.Contains(t, logged, "Skipped short lines in wallet file")
}

func TestGetWalletsMissingFile(t *testing.T) {
	_, err := walletloader.NewWalletFileLoader(filepath.Join(t.TempDir(), "absent.txt"), nil).GetWallets()
	assert.Error(t, err)
}
