package walletloader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"capy_automator/internal/app/port"
	"capy_automator/internal/domain/entity"
)

const defaultWalletFilePath = "wallets.txt"

// minSeedLength is exclusive: shorter or equal trimmed lines are treated as blanks.
const minSeedLength = 10

// WalletFileLoader implements the port.WalletProvider interface by loading seed phrases from a file.
type WalletFileLoader struct {
	filePath   string
	loggerInfo func(msg string, args ...any)
}

// NewWalletFileLoader creates a new WalletFileLoader. An empty path uses wallets.txt.
func NewWalletFileLoader(filePath string, loggerInfo func(msg string, args ...any)) port.WalletProvider {
	if filePath == "" {
		filePath = defaultWalletFilePath
	}
	return &WalletFileLoader{
		filePath:   filePath,
		loggerInfo: loggerInfo,
	}
}

// GetWallets reads one seed phrase per line. Lines are trimmed; lines of
// minSeedLength characters or fewer are skipped.
func (l *WalletFileLoader) GetWallets() ([]entity.Wallet, error) {
	file, err := os.Open(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet file %s: %w", l.filePath, err)
	}
	defer file.Close()

	var wallets []entity.Wallet
	scanner := bufio.NewScanner(file)
	lineNum := 0
	skipped := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) <= minSeedLength {
			if line != "" {
				skipped++
			}
			continue
		}
		wallets = append(wallets, entity.Wallet{SeedPhrase: line, LineNumber: lineNum})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning wallet file %s: %w", l.filePath, err)
	}

	if l.loggerInfo != nil {
		if skipped > 0 {
			l.loggerInfo("Skipped short lines in wallet file", "count", skipped, "path", l.filePath)
		}
		l.loggerInfo("Wallets loaded successfully from file", "count", len(wallets), "path", l.filePath)
	}
	return wallets, nil
}
