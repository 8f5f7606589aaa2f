//go:build unit

package flow_test

import (
	"testing"
	"time"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/flow"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selection(day, hour int) availability.PickupSelection {
	return availability.PickupSelection{
		Date: wallclock.NewDate(2026, time.March, day),
		Time: wallclock.NewTimeOfDay(hour, 0),
	}
}

func TestWizardForwardPath(t *testing.T) {
	w := flow.New()
	assert.Equal(t, flow.StepPickup, w.Step)

	t.Run("pickup required before leaving first step", func(t *testing.T) {
		assert.ErrorIs(t, w.Next(), flow.ErrPickupRequired)
		assert.Equal(t, flow.StepPickup, w.Step)
	})

	w.SetPickup(selection(1, 12))
	require.NoError(t, w.Next())
	assert.Equal(t, flow.StepItems, w.Step)

	t.Run("empty cart blocks leaving item selection", func(t *testing.T) {
		assert.ErrorIs(t, w.Next(), flow.ErrEmptyCart)
		assert.Equal(t, flow.StepItems, w.Step)
	})

	item := builder.NewItemOfferingBuilder().Build()
	w.Cart.SetQuantity(item, 1)

	require.NoError(t, w.Next())
	assert.Equal(t, flow.StepUserInfo, w.Step)
	require.NoError(t, w.Next())
	assert.Equal(t, flow.StepConfirm, w.Step)

	t.Run("confirm is terminal", func(t *testing.T) {
		assert.ErrorIs(t, w.Next(), flow.ErrAtLastStep)
	})
}

func TestWizardBack(t *testing.T) {
	w := flow.New()
	w.SetPickup(selection(1, 12))
	require.NoError(t, w.Next())
	w.Cart.SetQuantity(builder.NewItemOfferingBuilder().Build(), 2)
	require.NoError(t, w.Next())

	require.NoError(t, w.Back())
	assert.Equal(t, flow.StepItems, w.Step)
	assert.False(t, w.Cart.IsEmpty(), "going back keeps the cart")

	require.NoError(t, w.Back())
	assert.Equal(t, flow.StepPickup, w.Step)
	assert.ErrorIs(t, w.Back(), flow.ErrAtFirstStep)
}

func TestPickupChangeResetsCart(t *testing.T) {
	item := builder.NewItemOfferingBuilder().Build()

	t.Run("different selection clears lines", func(t *testing.T) {
		w := flow.New()
		w.SetPickup(selection(1, 12))
		require.NoError(t, w.Next())
		w.Cart.SetQuantity(item, 2)
		require.False(t, w.Cart.IsEmpty())

		require.NoError(t, w.Back())
		w.SetPickup(selection(1, 18))

		assert.True(t, w.Cart.IsEmpty())
	})

	t.Run("same selection keeps lines", func(t *testing.T) {
		w := flow.New()
		w.SetPickup(selection(1, 12))
		require.NoError(t, w.Next())
		w.Cart.SetQuantity(item, 2)

		require.NoError(t, w.Back())
		w.SetPickup(selection(1, 12))

		assert.False(t, w.Cart.IsEmpty())
	})

	t.Run("first selection never clears", func(t *testing.T) {
		w := flow.New()
		w.Cart.SetQuantity(item, 1)
		w.SetPickup(selection(2, 10))
		assert.False(t, w.Cart.IsEmpty())
	})
}
