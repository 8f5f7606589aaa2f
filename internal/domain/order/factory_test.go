//go:build unit

package order_test

import (
	"testing"
	"time"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/cart"
	"takeout-api/internal/domain/order"
	"takeout-api/internal/pkg/clock"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFactory(now time.Time) *order.Factory {
	return order.NewFactory(&order.Services{Clock: clock.NewMockClock(now)})
}

func testContact(t *testing.T) order.Contact {
	t.Helper()
	contact, err := order.NewContact("Taro Yamada", "090-1234-5678", "taro@example.com")
	require.NoError(t, err)
	return contact
}

func TestCreateOrder(t *testing.T) {
	// Clock well before the pickup window.
	factory := testFactory(time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC))

	item := builder.NewItemOfferingBuilder().WithUnitPrice(800).WithMaxQuantity(5).Build()
	window := builder.NewWindowBuilder().
		WithDate(wallclock.NewDate(2026, time.March, 1)).
		WithTimes(wallclock.NewTimeOfDay(10, 0), wallclock.NewTimeOfDay(14, 0)).
		WithItems(item).
		Build()
	sel := availability.PickupSelection{Date: window.Date, Time: wallclock.NewTimeOfDay(12, 0)}

	t.Run("freezes lines and totals from the window", func(t *testing.T) {
		c := cart.New()
		c.SetQuantity(item, 3)
		c.SetOptions(item, item.Options) // 100 + 150

		o, err := factory.CreateOrder([]availability.Window{window}, sel, c, testContact(t))
		require.NoError(t, err)

		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, window.HourType, o.HourType())
		assert.Equal(t, sel.Date, o.PickupDate())
		assert.Equal(t, sel.Time, o.PickupTime())
		require.Len(t, o.Lines(), 1)
		assert.Equal(t, 3150, o.Lines()[0].Subtotal())
		assert.Equal(t, 3150, o.Total())
		assert.Equal(t, 3, o.ItemCount())
	})

	t.Run("no window rejects", func(t *testing.T) {
		c := cart.New()
		c.SetQuantity(item, 1)

		outside := availability.PickupSelection{Date: window.Date, Time: wallclock.NewTimeOfDay(15, 0)}
		_, err := factory.CreateOrder([]availability.Window{window}, outside, c, testContact(t))
		assert.ErrorIs(t, err, order.ErrNoWindow)
	})

	t.Run("empty cart rejects", func(t *testing.T) {
		_, err := factory.CreateOrder([]availability.Window{window}, sel, cart.New(), testContact(t))
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("past pickup rejects", func(t *testing.T) {
		lateFactory := testFactory(time.Date(2026, time.March, 1, 13, 0, 0, 0, time.UTC))

		c := cart.New()
		c.SetQuantity(item, 1)

		early := availability.PickupSelection{Date: window.Date, Time: wallclock.NewTimeOfDay(12, 0)}
		_, err := lateFactory.CreateOrder([]availability.Window{window}, early, c, testContact(t))
		assert.ErrorIs(t, err, order.ErrPickupInPast)

		// Still-future time on the same day is fine.
		later := availability.PickupSelection{Date: window.Date, Time: wallclock.NewTimeOfDay(13, 30)}
		_, err = lateFactory.CreateOrder([]availability.Window{window}, later, c, testContact(t))
		assert.NoError(t, err)
	})

	t.Run("vanished item rejects", func(t *testing.T) {
		gone := builder.NewItemOfferingBuilder().Build()
		c := cart.New()
		c.SetQuantity(gone, 1)

		_, err := factory.CreateOrder([]availability.Window{window}, sel, c, testContact(t))
		assert.ErrorIs(t, err, order.ErrItemUnavailable)
	})

	t.Run("over-cap quantity rejects instead of clamping", func(t *testing.T) {
		// Cart was filled while the cap was higher; the window now says 2.
		reduced := item
		reduced.MaxQuantity = 2
		reducedWindow := builder.NewWindowBuilder().
			WithDate(window.Date).
			WithTimes(window.Start, window.End).
			WithItems(reduced).
			Build()

		c := cart.New()
		c.SetQuantity(item, 4)

		_, err := factory.CreateOrder([]availability.Window{reducedWindow}, sel, c, testContact(t))
		assert.ErrorIs(t, err, order.ErrQuantityTooHigh)
	})

	t.Run("stale option selections are dropped", func(t *testing.T) {
		// The cart references an option the window no longer offers.
		stale := item
		stale.Options = append([]availability.OptionOffering{}, item.Options...)
		c := cart.New()
		c.SetQuantity(stale, 1)
		c.SetOptions(stale, stale.Options)

		slimmed := item
		slimmed.Options = item.Options[:1]
		slimmedWindow := builder.NewWindowBuilder().
			WithDate(window.Date).
			WithTimes(window.Start, window.End).
			WithItems(slimmed).
			Build()

		o, err := factory.CreateOrder([]availability.Window{slimmedWindow}, sel, c, testContact(t))
		require.NoError(t, err)
		require.Len(t, o.Lines(), 1)
		assert.Len(t, o.Lines()[0].Options(), 1)
		assert.Equal(t, (800+100)*1, o.Total())
	})
}

func TestOrderCancel(t *testing.T) {
	factory := testFactory(time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC))
	item := builder.NewItemOfferingBuilder().Build()
	window := builder.NewWindowBuilder().WithDate(wallclock.NewDate(2026, time.March, 1)).WithItems(item).Build()
	sel := availability.PickupSelection{Date: window.Date, Time: window.Start}

	c := cart.New()
	c.SetQuantity(item, 1)
	o, err := factory.CreateOrder([]availability.Window{window}, sel, c, testContact(t))
	require.NoError(t, err)

	require.NoError(t, o.Cancel())
	assert.Equal(t, order.StatusCanceled, o.Status())
	assert.False(t, o.IsActive())

	assert.ErrorIs(t, o.Cancel(), order.ErrNotCancelable)
}

func TestBindUser(t *testing.T) {
	factory := testFactory(time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC))
	item := builder.NewItemOfferingBuilder().Build()
	window := builder.NewWindowBuilder().WithDate(wallclock.NewDate(2026, time.March, 1)).WithItems(item).Build()

	c := cart.New()
	c.SetQuantity(item, 1)
	o, err := factory.CreateOrder(
		[]availability.Window{window},
		availability.PickupSelection{Date: window.Date, Time: window.Start},
		c, testContact(t),
	)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, o.UserID())

	id := uuid.New()
	o.BindUser(id)
	assert.Equal(t, id, o.UserID())
}

func TestNewContact(t *testing.T) {
	tests := []struct {
		name    string
		contact [3]string // name, phone, email
		errIs   error
	}{
		{name: "valid with email", contact: [3]string{"Taro", "090-1234-5678", "taro@example.com"}},
		{name: "valid without email", contact: [3]string{"Taro", "0312345678", ""}},
		{name: "empty name", contact: [3]string{" ", "090-1234-5678", ""}, errIs: order.ErrEmptyContactName},
		{name: "short phone", contact: [3]string{"Taro", "12345", ""}, errIs: order.ErrInvalidPhone},
		{name: "letters in phone", contact: [3]string{"Taro", "not-a-phone", ""}, errIs: order.ErrInvalidPhone},
		{name: "bad email", contact: [3]string{"Taro", "090-1234-5678", "not-an-email"}, errIs: order.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewContact(tt.contact[0], tt.contact[1], tt.contact[2])
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
