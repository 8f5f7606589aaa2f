package availability

import (
	"sort"

	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

// Window is one bookable pickup range on one day, together with everything
// orderable inside it. Windows are read-only reference data assembled on the
// query side; stock caps are already folded into each item's MaxQuantity.
type Window struct {
	Date       wallclock.Date
	Start      wallclock.TimeOfDay
	End        wallclock.TimeOfDay
	HourType   string
	Categories []CategoryOffering
}

type CategoryOffering struct {
	CategoryID   uuid.UUID
	Title        string
	SortPriority int
	Items        []ItemOffering
}

type ItemOffering struct {
	ItemID    uuid.UUID
	Name      string
	Kind      ItemKind
	ImageRef  string
	Note      string
	UnitPrice int
	// MaxQuantity is the lesser of the catalog's max-per-order and the
	// remaining stock reported for the window's date.
	MaxQuantity int
	Options     []OptionOffering
}

type OptionOffering struct {
	OptionID  uuid.UUID
	Name      string
	Note      string
	UnitPrice int
}

// PickupSelection is the user-chosen pickup date and time. It keys the lookup
// of the active window.
type PickupSelection struct {
	Date wallclock.Date
	Time wallclock.TimeOfDay
}

func (s PickupSelection) IsZero() bool {
	return s == PickupSelection{}
}

// Option returns the item's own option with the given ID, if any.
func (i ItemOffering) Option(optionID uuid.UUID) (OptionOffering, bool) {
	for _, o := range i.Options {
		if o.OptionID == optionID {
			return o, true
		}
	}
	return OptionOffering{}, false
}

// Item looks up an offering anywhere in the window by item ID.
func (w Window) Item(itemID uuid.UUID) (ItemOffering, bool) {
	for _, c := range w.Categories {
		for _, i := range c.Items {
			if i.ItemID == itemID {
				return i, true
			}
		}
	}
	return ItemOffering{}, false
}

// Contains reports whether the selection's time falls in [Start, End) on the
// window's date. Minute-granularity comparison, no timezone arithmetic.
func (w Window) Contains(sel PickupSelection) bool {
	return w.Date == sel.Date && sel.Time >= w.Start && sel.Time < w.End
}

// SortCategories orders categories by ascending sort priority, ties keeping
// insertion order.
func SortCategories(categories []CategoryOffering) {
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortPriority < categories[j].SortPriority
	})
}
