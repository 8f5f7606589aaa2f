//go:build unit

package cart_test

import (
	"testing"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/cart"
	"takeout-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetQuantity(t *testing.T) {
	item := builder.NewItemOfferingBuilder().WithMaxQuantity(5).Build()

	t.Run("creates line with empty options", func(t *testing.T) {
		c := cart.New()
		c.SetQuantity(item, 2)

		line, ok := c.Line(item.ItemID)
		require.True(t, ok)
		assert.Equal(t, 2, line.Quantity)
		assert.Empty(t, line.Options)
	})

	t.Run("replaces quantity and retains options", func(t *testing.T) {
		c := cart.New()
		c.SetQuantity(item, 2)
		c.SetOptions(item, item.Options)

		c.SetQuantity(item, 4)

		line, ok := c.Line(item.ItemID)
		require.True(t, ok)
		assert.Equal(t, 4, line.Quantity)
		assert.Len(t, line.Options, 2)
	})

	t.Run("zero removes line and discards options", func(t *testing.T) {
		c := cart.New()
		c.SetQuantity(item, 2)
		c.SetOptions(item, item.Options)

		c.SetQuantity(item, 0)

		_, ok := c.Line(item.ItemID)
		assert.False(t, ok)
		assert.True(t, c.IsEmpty())

		// Re-adding starts from a clean line.
		c.SetQuantity(item, 1)
		line, _ := c.Line(item.ItemID)
		assert.Empty(t, line.Options)
	})

	t.Run("zero on absent line is a no-op", func(t *testing.T) {
		c := cart.New()
		c.SetQuantity(item, 0)
		assert.True(t, c.IsEmpty())
	})

	t.Run("clamps above max quantity", func(t *testing.T) {
		c := cart.New()
		c.SetQuantity(item, 99)

		line, _ := c.Line(item.ItemID)
		assert.Equal(t, 5, line.Quantity)
	})

	t.Run("clamps negative to removal", func(t *testing.T) {
		c := cart.New()
		c.SetQuantity(item, 2)
		c.SetQuantity(item, -3)
		assert.True(t, c.IsEmpty())
	})

	t.Run("idempotent for equal quantity", func(t *testing.T) {
		once := cart.New()
		once.SetQuantity(item, 3)

		twice := cart.New()
		twice.SetQuantity(item, 3)
		twice.SetQuantity(item, 3)

		assert.Empty(t, cmp.Diff(once, twice))
	})
}

func TestSetOptions(t *testing.T) {
	item := builder.NewItemOfferingBuilder().Build()

	t.Run("replaces full selection", func(t *testing.T) {
		c := cart.New()
		c.SetQuantity(item, 1)

		c.SetOptions(item, item.Options[:1])
		line, _ := c.Line(item.ItemID)
		assert.Len(t, line.Options, 1)

		c.SetOptions(item, item.Options[1:])
		line, _ = c.Line(item.ItemID)
		require.Len(t, line.Options, 1)
		assert.Equal(t, item.Options[1].OptionID, line.Options[0].OptionID)
	})

	t.Run("result is independent of prior selection", func(t *testing.T) {
		direct := cart.New()
		direct.SetQuantity(item, 1)
		direct.SetOptions(item, item.Options[1:])

		replaced := cart.New()
		replaced.SetQuantity(item, 1)
		replaced.SetOptions(item, item.Options)
		replaced.SetOptions(item, item.Options[1:])

		assert.Empty(t, cmp.Diff(direct, replaced))
	})

	t.Run("drops foreign options silently", func(t *testing.T) {
		foreign := availability.OptionOffering{OptionID: uuid.New(), Name: "Not mine", UnitPrice: 500}

		c := cart.New()
		c.SetQuantity(item, 1)
		c.SetOptions(item, []availability.OptionOffering{foreign, item.Options[0]})

		line, _ := c.Line(item.ItemID)
		require.Len(t, line.Options, 1)
		assert.Equal(t, item.Options[0].OptionID, line.Options[0].OptionID)
	})

	t.Run("deduplicates by option ID", func(t *testing.T) {
		c := cart.New()
		c.SetQuantity(item, 1)
		c.SetOptions(item, []availability.OptionOffering{item.Options[0], item.Options[0]})

		line, _ := c.Line(item.ItemID)
		assert.Len(t, line.Options, 1)
	})

	t.Run("ignored for absent line", func(t *testing.T) {
		c := cart.New()
		c.SetOptions(item, item.Options)
		assert.True(t, c.IsEmpty())
	})
}

func TestPricing(t *testing.T) {
	t.Run("line subtotal includes options per unit", func(t *testing.T) {
		item := builder.NewItemOfferingBuilder().WithUnitPrice(800).Build()

		c := cart.New()
		c.SetQuantity(item, 3)
		c.SetOptions(item, item.Options) // 100 + 150

		line, _ := c.Line(item.ItemID)
		assert.Equal(t, (800+100+150)*3, line.Subtotal())
		assert.Equal(t, 3150, line.Subtotal())
	})

	t.Run("cart total sums line subtotals", func(t *testing.T) {
		first := builder.NewItemOfferingBuilder().WithUnitPrice(800).Build()
		second := builder.NewItemOfferingBuilder().WithName("Shake Bento").WithUnitPrice(800).Build()

		c := cart.New()
		for _, item := range []availability.ItemOffering{first, second} {
			c.SetQuantity(item, 3)
			c.SetOptions(item, item.Options)
		}

		assert.Equal(t, 6300, c.Total())
		assert.Equal(t, 6, c.ItemCount())
	})

	t.Run("empty cart", func(t *testing.T) {
		c := cart.New()
		assert.Equal(t, 0, c.Total())
		assert.Equal(t, 0, c.ItemCount())
		assert.True(t, c.IsEmpty())
	})

	t.Run("free item keeps integer arithmetic", func(t *testing.T) {
		item := builder.NewItemOfferingBuilder().WithUnitPrice(0).WithOptions().Build()

		c := cart.New()
		c.SetQuantity(item, 4)
		assert.Equal(t, 0, c.Total())
		assert.Equal(t, 4, c.ItemCount())
	})
}

func TestClear(t *testing.T) {
	item := builder.NewItemOfferingBuilder().Build()

	c := cart.New()
	c.SetQuantity(item, 2)
	require.False(t, c.IsEmpty())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Total())
}
