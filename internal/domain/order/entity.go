package order

import (
	"errors"
	"time"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

var (
	ErrNotCancelable  = errors.New("order can no longer be canceled")
	ErrNotCompletable = errors.New("order cannot be completed")
)

// LineOption is a priced add-on snapshot frozen at order time.
type LineOption struct {
	optionID  uuid.UUID
	name      string
	unitPrice int
}

func NewLineOption(optionID uuid.UUID, name string, unitPrice int) LineOption {
	return LineOption{optionID: optionID, name: name, unitPrice: unitPrice}
}

func (o LineOption) OptionID() uuid.UUID { return o.optionID }
func (o LineOption) Name() string        { return o.name }
func (o LineOption) UnitPrice() int      { return o.unitPrice }

// Line is one ordered item with its quantity and add-ons. Prices are frozen
// snapshots; later catalog edits do not touch placed orders.
type Line struct {
	itemID    uuid.UUID
	name      string
	kind      availability.ItemKind
	unitPrice int
	quantity  int
	options   []LineOption
}

func NewLine(itemID uuid.UUID, name string, kind availability.ItemKind, unitPrice, quantity int, options []LineOption) Line {
	return Line{
		itemID:    itemID,
		name:      name,
		kind:      kind,
		unitPrice: unitPrice,
		quantity:  quantity,
		options:   options,
	}
}

func (l Line) ItemID() uuid.UUID            { return l.itemID }
func (l Line) Name() string                 { return l.name }
func (l Line) Kind() availability.ItemKind  { return l.kind }
func (l Line) UnitPrice() int               { return l.unitPrice }
func (l Line) Quantity() int                { return l.quantity }
func (l Line) Options() []LineOption        { return l.options }

func (l Line) Subtotal() int {
	unit := l.unitPrice
	for _, o := range l.options {
		unit += o.unitPrice
	}
	return unit * l.quantity
}

// Order is a placed pickup order. OrderNumber is a human-facing sequence
// assigned by the database on insert; zero until then.
type Order struct {
	id          uuid.UUID
	orderNumber int64
	userID      uuid.UUID
	pickupDate  wallclock.Date
	pickupTime  wallclock.TimeOfDay
	hourType    string
	status      Status
	lines       []Line
	total       int
	contact     Contact
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructOrder(id uuid.UUID, orderNumber int64, userID uuid.UUID, pickupDate wallclock.Date, pickupTime wallclock.TimeOfDay, hourType string, status Status, lines []Line, total int, contact Contact, createdAt, updatedAt time.Time) *Order {
	return &Order{
		id:          id,
		orderNumber: orderNumber,
		userID:      userID,
		pickupDate:  pickupDate,
		pickupTime:  pickupTime,
		hourType:    hourType,
		status:      status,
		lines:       lines,
		total:       total,
		contact:     contact,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (o *Order) ID() uuid.UUID                  { return o.id }
func (o *Order) OrderNumber() int64             { return o.orderNumber }
func (o *Order) UserID() uuid.UUID              { return o.userID }
func (o *Order) PickupDate() wallclock.Date     { return o.pickupDate }
func (o *Order) PickupTime() wallclock.TimeOfDay { return o.pickupTime }
func (o *Order) HourType() string               { return o.hourType }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) Lines() []Line                  { return o.lines }
func (o *Order) Total() int                     { return o.total }
func (o *Order) Contact() Contact               { return o.contact }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }

func (o *Order) IsActive() bool {
	return o.status == StatusConfirmed
}

// Cancel marks a confirmed order canceled. Completed or already-canceled
// orders stay as they are.
func (o *Order) Cancel() error {
	if o.status != StatusConfirmed {
		return ErrNotCancelable
	}
	o.status = StatusCanceled
	return nil
}

// Complete marks a confirmed order handed over.
func (o *Order) Complete() error {
	if o.status != StatusConfirmed {
		return ErrNotCompletable
	}
	o.status = StatusCompleted
	return nil
}

// ItemCount sums line quantities, matching the storefront badge figure.
func (o *Order) ItemCount() int {
	count := 0
	for _, l := range o.lines {
		count += l.quantity
	}
	return count
}
