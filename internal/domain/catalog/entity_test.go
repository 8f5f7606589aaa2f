//go:build unit

package catalog_test

import (
	"strings"
	"testing"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	option, err := catalog.NewOption("Extra rice", "", 100)
	require.NoError(t, err)

	t.Run("valid item", func(t *testing.T) {
		item, err := catalog.NewItem("Karaage Bento", availability.KindFood, 800, "items/karaage.jpg", "", 10, []catalog.Option{option})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, item.ID())
		assert.Equal(t, "Karaage Bento", item.Name())
		assert.Equal(t, availability.KindFood, item.Kind())
		assert.Equal(t, 800, item.UnitPrice())
		assert.Equal(t, 10, item.MaxPerOrder())
		assert.True(t, item.IsActive())
		assert.Len(t, item.Options(), 1)
	})

	t.Run("name is trimmed", func(t *testing.T) {
		item, err := catalog.NewItem("  Shake Bento  ", availability.KindStock, 900, "", "", 5, nil)
		require.NoError(t, err)
		assert.Equal(t, "Shake Bento", item.Name())
	})

	tests := []struct {
		name        string
		itemName    string
		kind        availability.ItemKind
		price       int
		maxPerOrder int
		errIs       error
	}{
		{name: "empty name", itemName: "   ", kind: availability.KindFood, price: 800, maxPerOrder: 10, errIs: catalog.ErrEmptyName},
		{name: "name too long", itemName: strings.Repeat("a", catalog.MaxNameLength+1), kind: availability.KindFood, price: 800, maxPerOrder: 10, errIs: catalog.ErrNameTooLong},
		{name: "invalid kind", itemName: "Bento", kind: availability.ItemKind("drink"), price: 800, maxPerOrder: 10, errIs: catalog.ErrInvalidKind},
		{name: "negative price", itemName: "Bento", kind: availability.KindFood, price: -1, maxPerOrder: 10, errIs: catalog.ErrNegativePrice},
		{name: "zero max per order", itemName: "Bento", kind: availability.KindFood, price: 800, maxPerOrder: 0, errIs: catalog.ErrInvalidMaxPerOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.NewItem(tt.itemName, tt.kind, tt.price, "", "", tt.maxPerOrder, nil)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestItemUpdate(t *testing.T) {
	item, err := catalog.NewItem("Karaage Bento", availability.KindFood, 800, "", "", 10, nil)
	require.NoError(t, err)

	t.Run("valid update replaces fields", func(t *testing.T) {
		err := item.Update("Karaage Bento L", availability.KindFood, 950, "items/karaage-l.jpg", "bigger", 5, false, nil)
		require.NoError(t, err)

		assert.Equal(t, "Karaage Bento L", item.Name())
		assert.Equal(t, 950, item.UnitPrice())
		assert.Equal(t, 5, item.MaxPerOrder())
		assert.False(t, item.IsActive())
	})

	t.Run("invalid update leaves entity untouched", func(t *testing.T) {
		err := item.Update("", availability.KindFood, 950, "", "", 5, true, nil)
		assert.ErrorIs(t, err, catalog.ErrEmptyName)
		assert.Equal(t, "Karaage Bento L", item.Name())
	})
}

func TestNewOption(t *testing.T) {
	t.Run("negative price rejected", func(t *testing.T) {
		_, err := catalog.NewOption("Extra rice", "", -100)
		assert.ErrorIs(t, err, catalog.ErrNegativePrice)
	})

	t.Run("zero price allowed", func(t *testing.T) {
		opt, err := catalog.NewOption("No pickles", "", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, opt.UnitPrice())
	})
}

func TestNewCategory(t *testing.T) {
	t.Run("valid category", func(t *testing.T) {
		c, err := catalog.NewCategory("Bento", 1)
		require.NoError(t, err)
		assert.Equal(t, "Bento", c.Title())
		assert.Equal(t, 1, c.SortPriority())
		assert.True(t, c.IsActive())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := catalog.NewCategory("  ", 1)
		assert.ErrorIs(t, err, catalog.ErrEmptyTitle)
	})
}
