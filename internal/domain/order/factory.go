package order

import (
	"errors"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/cart"
	"takeout-api/internal/pkg/clock"
	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

var (
	ErrNoWindow        = errors.New("no orderable window for the pickup selection")
	ErrEmptyCart       = errors.New("cart has no lines")
	ErrPickupInPast    = errors.New("pickup time is in the past")
	ErrItemUnavailable = errors.New("item is not orderable in the pickup window")
	ErrQuantityTooHigh = errors.New("quantity exceeds the orderable maximum")
)

type Services struct {
	Clock clock.Clock
}

// Factory turns a session cart into an immutable order. The cart is the
// customer's wish; the windows passed in are the server's current truth, so
// every line is re-resolved against the window before anything is frozen.
type Factory struct {
	services *Services
}

func NewFactory(services *Services) *Factory {
	return &Factory{services: services}
}

// CreateOrder validates the pickup selection and cart against current
// availability and freezes price snapshots. Unlike the cart ledger, which
// clamps quietly while the customer is still choosing, submission is strict:
// vanished items and over-cap quantities reject the order instead of silently
// shrinking what the customer believes they bought.
func (f *Factory) CreateOrder(windows []availability.Window, sel availability.PickupSelection, c *cart.Cart, contact Contact) (*Order, error) {
	w, ok := availability.ResolveWindow(windows, sel)
	if !ok {
		return nil, ErrNoWindow
	}

	if c == nil || c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	now := f.services.Clock.Now()
	today := wallclock.DateOf(now)
	nowTime := wallclock.NewTimeOfDay(now.Hour(), now.Minute())
	if sel.Date.Before(today) || (sel.Date == today && sel.Time < nowTime) {
		return nil, ErrPickupInPast
	}

	lines := make([]Line, 0, len(c.Lines))
	total := 0
	for _, cl := range c.Lines {
		offering, ok := w.Item(cl.Item.ItemID)
		if !ok {
			return nil, ErrItemUnavailable
		}
		if cl.Quantity > offering.MaxQuantity {
			return nil, ErrQuantityTooHigh
		}

		options := make([]LineOption, 0, len(cl.Options))
		for _, chosen := range cl.Options {
			opt, ok := offering.Option(chosen.OptionID)
			if !ok {
				// Foreign options cannot be ordered; drop them the way the
				// ledger does instead of failing the whole order.
				continue
			}
			options = append(options, NewLineOption(opt.OptionID, opt.Name, opt.UnitPrice))
		}

		line := NewLine(offering.ItemID, offering.Name, offering.Kind, offering.UnitPrice, cl.Quantity, options)
		lines = append(lines, line)
		total += line.Subtotal()
	}

	return &Order{
		id:         uuid.New(),
		userID:     uuid.Nil, // bound by the usecase before persisting
		pickupDate: sel.Date,
		pickupTime: sel.Time,
		hourType:   w.HourType,
		status:     StatusConfirmed,
		lines:      lines,
		total:      total,
		contact:    contact,
	}, nil
}

// BindUser attaches the authenticated customer. Separate from CreateOrder so
// the factory stays a pure function of availability data and cart contents.
func (o *Order) BindUser(userID uuid.UUID) {
	o.userID = userID
}
