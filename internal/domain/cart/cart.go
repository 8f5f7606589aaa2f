// Package cart implements the order-composition ledger: per-item quantities,
// selected add-on options, and price aggregation. All amounts are integers in
// the smallest currency unit; there is no rounding anywhere.
package cart

import (
	"takeout-api/internal/domain/availability"

	"github.com/google/uuid"
)

// Line is one item's chosen quantity plus selected add-ons. A line with
// quantity zero never exists; setting zero removes the line.
type Line struct {
	Item     availability.ItemOffering     `json:"item"`
	Quantity int                           `json:"quantity"`
	Options  []availability.OptionOffering `json:"options,omitempty"`
}

// Subtotal is (unit price + sum of option prices) * quantity.
func (l Line) Subtotal() int {
	unit := l.Item.UnitPrice
	for _, o := range l.Options {
		unit += o.UnitPrice
	}
	return unit * l.Quantity
}

// Cart is the mutable in-progress order, owned by one reservation session.
// Lines keep insertion order for stable rendering.
type Cart struct {
	Lines []Line `json:"lines"`
}

func New() *Cart {
	return &Cart{}
}

// SetQuantity replaces the quantity for the item's line, creating or removing
// the line as needed. Out-of-range quantities are clamped to [0, MaxQuantity]
// rather than rejected; the UI controls only offer in-range values, so a
// violation is a caller bug the ledger absorbs. Selected options survive
// quantity changes.
func (c *Cart) SetQuantity(item availability.ItemOffering, quantity int) {
	if quantity < 0 {
		quantity = 0
	}
	if quantity > item.MaxQuantity {
		quantity = item.MaxQuantity
	}

	idx := c.lineIndex(item.ItemID)

	if quantity == 0 {
		if idx >= 0 {
			c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
		}
		return
	}

	if idx >= 0 {
		c.Lines[idx].Item = item
		c.Lines[idx].Quantity = quantity
		return
	}

	c.Lines = append(c.Lines, Line{Item: item, Quantity: quantity})
}

// SetOptions replaces the line's full option selection. Options that do not
// belong to the item are dropped silently; what remains is deduplicated and
// kept in the item's own option order. A call for an absent line is ignored.
func (c *Cart) SetOptions(item availability.ItemOffering, options []availability.OptionOffering) {
	idx := c.lineIndex(item.ItemID)
	if idx < 0 {
		return
	}

	requested := make(map[uuid.UUID]struct{}, len(options))
	for _, o := range options {
		requested[o.OptionID] = struct{}{}
	}

	var selected []availability.OptionOffering
	for _, o := range item.Options {
		if _, ok := requested[o.OptionID]; ok {
			selected = append(selected, o)
		}
	}
	c.Lines[idx].Options = selected
}

func (c *Cart) Line(itemID uuid.UUID) (Line, bool) {
	if idx := c.lineIndex(itemID); idx >= 0 {
		return c.Lines[idx], true
	}
	return Line{}, false
}

func (c *Cart) Total() int {
	total := 0
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount is the badge figure: the sum of quantities, not a price.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) lineIndex(itemID uuid.UUID) int {
	for i, l := range c.Lines {
		if l.Item.ItemID == itemID {
			return i
		}
	}
	return -1
}
