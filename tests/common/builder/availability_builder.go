//go:build unit || e2e

package builder

import (
	"time"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

// WindowBuilder assembles availability windows for tests: one lunch window
// with a single category holding a single two-option item by default.
type WindowBuilder struct {
	Date       wallclock.Date
	Start      wallclock.TimeOfDay
	End        wallclock.TimeOfDay
	HourType   string
	Categories []availability.CategoryOffering
}

func NewWindowBuilder() *WindowBuilder {
	return &WindowBuilder{
		Date:     wallclock.NewDate(2026, time.March, 1),
		Start:    wallclock.NewTimeOfDay(10, 0),
		End:      wallclock.NewTimeOfDay(14, 0),
		HourType: "lunch",
		Categories: []availability.CategoryOffering{
			{
				CategoryID:   uuid.New(),
				Title:        "Bento",
				SortPriority: 1,
				Items:        []availability.ItemOffering{NewItemOfferingBuilder().Build()},
			},
		},
	}
}

func (b *WindowBuilder) WithDate(d wallclock.Date) *WindowBuilder {
	b.Date = d
	return b
}

func (b *WindowBuilder) WithTimes(start, end wallclock.TimeOfDay) *WindowBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *WindowBuilder) WithHourType(label string) *WindowBuilder {
	b.HourType = label
	return b
}

func (b *WindowBuilder) WithCategories(categories ...availability.CategoryOffering) *WindowBuilder {
	b.Categories = categories
	return b
}

func (b *WindowBuilder) WithItems(items ...availability.ItemOffering) *WindowBuilder {
	b.Categories = []availability.CategoryOffering{
		{
			CategoryID:   uuid.New(),
			Title:        "Bento",
			SortPriority: 1,
			Items:        items,
		},
	}
	return b
}

func (b *WindowBuilder) Build() availability.Window {
	return availability.Window{
		Date:       b.Date,
		Start:      b.Start,
		End:        b.End,
		HourType:   b.HourType,
		Categories: b.Categories,
	}
}

type ItemOfferingBuilder struct {
	ItemID      uuid.UUID
	Name        string
	Kind        availability.ItemKind
	ImageRef    string
	Note        string
	UnitPrice   int
	MaxQuantity int
	Options     []availability.OptionOffering
}

func NewItemOfferingBuilder() *ItemOfferingBuilder {
	return &ItemOfferingBuilder{
		ItemID:      uuid.New(),
		Name:        "Karaage Bento",
		Kind:        availability.KindFood,
		ImageRef:    "items/karaage.jpg",
		UnitPrice:   800,
		MaxQuantity: 10,
		Options: []availability.OptionOffering{
			{OptionID: uuid.New(), Name: "Extra rice", UnitPrice: 100},
			{OptionID: uuid.New(), Name: "Miso soup", UnitPrice: 150},
		},
	}
}

func (b *ItemOfferingBuilder) WithName(name string) *ItemOfferingBuilder {
	b.Name = name
	return b
}

func (b *ItemOfferingBuilder) WithUnitPrice(price int) *ItemOfferingBuilder {
	b.UnitPrice = price
	return b
}

func (b *ItemOfferingBuilder) WithMaxQuantity(maxQty int) *ItemOfferingBuilder {
	b.MaxQuantity = maxQty
	return b
}

func (b *ItemOfferingBuilder) WithKind(kind availability.ItemKind) *ItemOfferingBuilder {
	b.Kind = kind
	return b
}

func (b *ItemOfferingBuilder) WithOptions(options ...availability.OptionOffering) *ItemOfferingBuilder {
	b.Options = options
	return b
}

func (b *ItemOfferingBuilder) Build() availability.ItemOffering {
	return availability.ItemOffering{
		ItemID:      b.ItemID,
		Name:        b.Name,
		Kind:        b.Kind,
		ImageRef:    b.ImageRef,
		Note:        b.Note,
		UnitPrice:   b.UnitPrice,
		MaxQuantity: b.MaxQuantity,
		Options:     b.Options,
	}
}
