package catalogloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capy_automator/internal/infrastructure/catalogloader"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accessories.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAccessories(t *testing.T) {
	path := writeFile(t, `[
		{"name": "sailor hat", "price": "0.05"},
		{"name": "  ", "price": "1"},
		{"name": "broken", "price": "-1"},
		{"name": "holiday scarf", "price": 0.2}
	]`)
	var warnings int

	items, err := catalogloader.NewAccessoryFileLoader(path, nil, func(string, ...any) { warnings++ }).LoadAccessories()

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "sailor hat", items[0].Name)
	assert.Equal(t, "0.05", items[0].Price.String())
	assert.Equal(t, "0.2", items[1].Price.String())
	assert.Equal(t, 2, warnings)
}

func TestLoadAccessoriesErrors(t *testing.T) {
	_, err := catalogloader.NewAccessoryFileLoader(filepath.Join(t.TempDir(), "absent.json"), nil, nil).LoadAccessories()
	assert.Error(t, err)

	_, err = catalogloader.NewAccessoryFileLoader(writeFile(t, `{"name": "x"}`), nil, nil).LoadAccessories()
	assert.Error(t, err)

	_, err = catalogloader.NewAccessoryFileLoader(writeFile(t, `[]`), nil, nil).LoadAccessories()
	assert.Error(t, err)
}
