package catalog_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capy_automator/internal/app/catalog"
	"capy_automator/internal/domain/entity"
)

func TestAvailableExcludesHoliday(t *testing.T) {
	c := catalog.New()

	available := c.Available()
	require.NotEmpty(t, available)
	for _, item := range available {
		assert.NotContains(t, item.Name, "holiday")
	}
}

func TestAvailablePreservesOrder(t *testing.T) {
	items := []entity.Accessory{
		{Name: "b", Price: decimal.NewFromInt(1)},
		{Name: "holiday a", Price: decimal.NewFromInt(1)},
		{Name: "a", Price: decimal.NewFromInt(2)},
		{Name: "c holiday", Price: decimal.NewFromInt(3)},
		{Name: "d", Price: decimal.NewFromInt(4)},
	}
	c := catalog.NewFromEntries(items, nil)

	names := make([]string, 0)
	for _, item := range c.Available() {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"b", "a", "d"}, names)
}

func TestPickRandomReturnsAvailableEntry(t *testing.T) {
	c := catalog.New()
	rng := rand.New(rand.NewPCG(1, 2))

	available := c.Available()
	for i := 0; i < 200; i++ {
		item, err := c.PickRandom(rng)
		require.NoError(t, err)
		assert.Contains(t, available, item)
		assert.False(t, strings.Contains(item.Name, "holiday"))
	}
}

func TestPickRandomCoversAllEntries(t *testing.T) {
	items := []entity.Accessory{{Name: "x"}, {Name: "y"}, {Name: "z"}}
	c := catalog.NewFromEntries(items, nil)
	rng := rand.New(rand.NewPCG(7, 7))

	seen := make(map[string]bool)
	for i := 0; i < 300; i++ {
		item, err := c.PickRandom(rng)
		require.NoError(t, err)
		seen[item.Name] = true
	}
	assert.Len(t, seen, 3)
}

func TestPickRandomEmptyCatalog(t *testing.T) {
	c := catalog.NewFromEntries([]entity.Accessory{{Name: "holiday only"}}, nil)

	_, err := c.PickRandom(rand.New(rand.NewPCG(1, 1)))
	require.ErrorIs(t, err, entity.ErrEmptyCatalog)
}

func TestExamples(t *testing.T) {
	c := catalog.New()

	examples := c.Examples()
	require.Len(t, examples, 5)
	assert.Equal(t, "Example NFT", examples[0].Name)
	assert.Equal(t, "Skull Sui", examples[4].Name)

	examples[0].Name = "mutated"
	assert.Equal(t, "Example NFT", c.Examples()[0].Name)
}

func TestNewWithAccessoriesKeepsExamples(t *testing.T) {
	c := catalog.NewWithAccessories([]entity.Accessory{
		{Name: "holiday hat", Price: decimal.RequireFromString("1")},
		{Name: "scarf", Price: decimal.RequireFromString("0.1")},
	})

	require.Len(t, c.Available(), 1)
	assert.Equal(t, "scarf", c.Available()[0].Name)
	assert.Len(t, c.Examples(), len(catalog.New().Examples()))
}
