package catalogloader

import (
	"fmt"
	"os"
	"strings"

	"capy_automator/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AccessoryFileLoader reads an accessory table from a JSON file:
// [{"name": "...", "price": "0.05"}, ...]. Prices are in whole coins.
type AccessoryFileLoader struct {
	filePath   string
	loggerInfo func(msg string, args ...any)
	loggerWarn func(msg string, args ...any)
}

// NewAccessoryFileLoader creates a new AccessoryFileLoader.
func NewAccessoryFileLoader(filePath string, loggerInfo, loggerWarn func(msg string, args ...any)) *AccessoryFileLoader {
	return &AccessoryFileLoader{
		filePath:   filePath,
		loggerInfo: loggerInfo,
		loggerWarn: loggerWarn,
	}
}

// LoadAccessories parses the file. Entries without a name or with a negative
// price are skipped with a warning; a file with no usable entry is an error.
func (l *AccessoryFileLoader) LoadAccessories() ([]entity.Accessory, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read accessory file %s: %w", l.filePath, err)
	}

	var raw []entity.Accessory
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal accessories from %s: %w", l.filePath, err)
	}

	items := make([]entity.Accessory, 0, len(raw))
	for i, item := range raw {
		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" || item.Price.IsNegative() {
			if l.loggerWarn != nil {
				l.loggerWarn("Skipping invalid accessory entry", "path", l.filePath, "index", i, "name", item.Name)
			}
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("accessory file %s has no valid entries", l.filePath)
	}

	if l.loggerInfo != nil {
		l.loggerInfo("Accessories loaded successfully from file", "count", len(items), "path", l.filePath)
	}
	return items, nil
}
