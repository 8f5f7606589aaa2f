package queries

import (
	"context"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/domain/schedule"
	"takeout-api/internal/pkg/clock"
	"takeout-api/internal/pkg/config"
	"takeout-api/internal/pkg/errs"
	"takeout-api/internal/pkg/wallclock"

	"github.com/google/uuid"
)

var (
	ErrWindowNotFound   = errs.New("no pickup window for the selected date and time")
	ErrCorruptSchedule  = errs.New("stored schedule data is invalid")
	ErrRangeTooWide     = errs.New("availability range exceeds the configured maximum")
	ErrInvalidDateRange = errs.New("invalid date range")
)

// WindowSlotsView is one pickup window of a day flattened for the storefront
// time picker.
type WindowSlotsView struct {
	Date     wallclock.Date        `json:"date"`
	HourType string                `json:"hour_type"`
	Start    wallclock.TimeOfDay   `json:"start"`
	End      wallclock.TimeOfDay   `json:"end"`
	Times    []wallclock.TimeOfDay `json:"times"`
}

type AvailabilityQueries interface {
	// Windows assembles every pickup window from today through the
	// configured horizon, menus and stock caps included.
	Windows(ctx context.Context) ([]availability.Window, error)
	SelectableDates(ctx context.Context) ([]wallclock.Date, error)
	SlotsForDate(ctx context.Context, date wallclock.Date) ([]WindowSlotsView, error)
	ResolveWindow(ctx context.Context, sel availability.PickupSelection) (availability.Window, error)
}

type availabilityQueriesImpl struct {
	catalogStore  CatalogReadStore
	scheduleStore ScheduleReadStore
	stockStore    StockReadStore
	clock         clock.Clock
	orderCfg      config.OrderConfig
}

func NewAvailabilityQueries(
	catalogStore CatalogReadStore,
	scheduleStore ScheduleReadStore,
	stockStore StockReadStore,
	clock clock.Clock,
	orderCfg config.OrderConfig,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		catalogStore:  catalogStore,
		scheduleStore: scheduleStore,
		stockStore:    stockStore,
		clock:         clock,
		orderCfg:      orderCfg,
	}
}

func (q *availabilityQueriesImpl) Windows(ctx context.Context) ([]availability.Window, error) {
	from := wallclock.DateOf(q.clock.Now())
	to := from.AddDays(q.orderCfg.MaxAvailabilityDays - 1)
	return q.windowsInRange(ctx, from, to)
}

func (q *availabilityQueriesImpl) SelectableDates(ctx context.Context) ([]wallclock.Date, error) {
	windows, err := q.Windows(ctx)
	if err != nil {
		return nil, err
	}
	return availability.SelectableDates(windows), nil
}

func (q *availabilityQueriesImpl) SlotsForDate(ctx context.Context, date wallclock.Date) ([]WindowSlotsView, error) {
	windows, err := q.windowsInRange(ctx, date, date)
	if err != nil {
		return nil, err
	}

	views := make([]WindowSlotsView, 0, len(windows))
	for _, w := range windows {
		views = append(views, WindowSlotsView{
			Date:     w.Date,
			HourType: w.HourType,
			Start:    w.Start,
			End:      w.End,
			Times:    availability.TimeSlots(w, q.orderCfg.SlotStepMinutes),
		})
	}
	return views, nil
}

func (q *availabilityQueriesImpl) ResolveWindow(ctx context.Context, sel availability.PickupSelection) (availability.Window, error) {
	windows, err := q.windowsInRange(ctx, sel.Date, sel.Date)
	if err != nil {
		return availability.Window{}, err
	}

	window, ok := availability.ResolveWindow(windows, sel)
	if !ok {
		return availability.Window{}, ErrWindowNotFound
	}
	return window, nil
}

func (q *availabilityQueriesImpl) windowsInRange(ctx context.Context, from, to wallclock.Date) ([]availability.Window, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	if from.DaysUntil(to) >= q.orderCfg.MaxAvailabilityDays {
		return nil, ErrRangeTooWide
	}

	weekly, specials, err := q.loadSchedule(ctx, from, to)
	if err != nil {
		return nil, err
	}

	categories, err := q.catalogStore.FindCategories(ctx, false)
	if err != nil {
		return nil, err
	}
	items, err := q.catalogStore.FindItems(ctx, nil, false)
	if err != nil {
		return nil, err
	}
	stock, err := q.loadStock(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var windows []availability.Window
	for d := from; !to.Before(d); d = d.AddDays(1) {
		blocks := schedule.EffectiveBlocks(d, weekly, specials)
		if len(blocks) == 0 {
			continue
		}
		offerings := buildCategoryOfferings(d, categories, items, stock)
		if len(offerings) == 0 {
			continue
		}
		for _, block := range blocks {
			windows = append(windows, availability.Window{
				Date:       d,
				Start:      block.Start(),
				End:        block.End(),
				HourType:   block.Label(),
				Categories: offerings,
			})
		}
	}
	return windows, nil
}

func (q *availabilityQueriesImpl) loadSchedule(
	ctx context.Context,
	from, to wallclock.Date,
) ([]*schedule.BusinessHour, []*schedule.SpecialSchedule, error) {
	hourViews, err := q.scheduleStore.FindBusinessHours(ctx)
	if err != nil {
		return nil, nil, err
	}
	specialViews, err := q.scheduleStore.FindSpecialSchedules(ctx, from, to)
	if err != nil {
		return nil, nil, err
	}

	weekly := make([]*schedule.BusinessHour, 0, len(hourViews))
	for _, v := range hourViews {
		block, blockErr := schedule.NewHourBlock(v.Label, v.Start, v.End)
		if blockErr != nil {
			return nil, nil, errs.Mark(blockErr, ErrCorruptSchedule)
		}
		weekly = append(weekly, schedule.ReconstructBusinessHour(v.ID, v.Weekday, block, v.IsActive, v.CreatedAt, v.UpdatedAt))
	}

	specials := make([]*schedule.SpecialSchedule, 0, len(specialViews))
	for _, v := range specialViews {
		blocks := make([]schedule.HourBlock, 0, len(v.Blocks))
		for _, b := range v.Blocks {
			block, blockErr := schedule.NewHourBlock(b.Label, b.Start, b.End)
			if blockErr != nil {
				return nil, nil, errs.Mark(blockErr, ErrCorruptSchedule)
			}
			blocks = append(blocks, block)
		}
		specials = append(specials, schedule.ReconstructSpecialSchedule(v.ID, v.Date, v.IsClosed, blocks, v.Note, v.CreatedAt, v.UpdatedAt))
	}

	return weekly, specials, nil
}

func (q *availabilityQueriesImpl) loadStock(ctx context.Context, from, to wallclock.Date) (map[uuid.UUID]map[wallclock.Date]int, error) {
	rows, err := q.stockStore.FindLevels(ctx, from, to)
	if err != nil {
		return nil, err
	}
	stock := make(map[uuid.UUID]map[wallclock.Date]int, len(rows))
	for _, row := range rows {
		byDate, ok := stock[row.ItemID]
		if !ok {
			byDate = make(map[wallclock.Date]int)
			stock[row.ItemID] = byDate
		}
		byDate[row.Date] = row.Remaining
	}
	return stock, nil
}

// buildCategoryOfferings projects the active catalog onto one date. Stock-kind
// items with no remaining stock that day are left out entirely; empty
// categories are dropped with them.
func buildCategoryOfferings(
	date wallclock.Date,
	categories []*CategoryView,
	items []*ItemView,
	stock map[uuid.UUID]map[wallclock.Date]int,
) []availability.CategoryOffering {
	itemsByCategory := make(map[uuid.UUID][]availability.ItemOffering)
	for _, item := range items {
		offering, ok := buildItemOffering(date, item, stock)
		if !ok {
			continue
		}
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], offering)
	}

	offerings := make([]availability.CategoryOffering, 0, len(categories))
	for _, category := range categories {
		categoryItems := itemsByCategory[category.ID]
		if len(categoryItems) == 0 {
			continue
		}
		offerings = append(offerings, availability.CategoryOffering{
			CategoryID:   category.ID,
			Title:        category.Title,
			SortPriority: category.SortPriority,
			Items:        categoryItems,
		})
	}
	availability.SortCategories(offerings)
	return offerings
}

func buildItemOffering(
	date wallclock.Date,
	item *ItemView,
	stock map[uuid.UUID]map[wallclock.Date]int,
) (availability.ItemOffering, bool) {
	maxQuantity := item.MaxPerOrder
	if availability.ItemKind(item.Kind) == availability.KindStock {
		remaining := stock[item.ID][date]
		if remaining <= 0 {
			return availability.ItemOffering{}, false
		}
		maxQuantity = min(maxQuantity, remaining)
	}

	options := make([]availability.OptionOffering, 0, len(item.Options))
	for _, opt := range item.Options {
		options = append(options, availability.OptionOffering{
			OptionID:  opt.ID,
			Name:      opt.Name,
			Note:      opt.Note,
			UnitPrice: opt.UnitPrice,
		})
	}

	return availability.ItemOffering{
		ItemID:      item.ID,
		Name:        item.Name,
		Kind:        availability.ItemKind(item.Kind),
		ImageRef:    item.ImageRef,
		Note:        item.Note,
		UnitPrice:   item.UnitPrice,
		MaxQuantity: maxQuantity,
		Options:     options,
	}, true
}
