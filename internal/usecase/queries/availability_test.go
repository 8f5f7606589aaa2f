//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/pkg/clock"
	"takeout-api/internal/pkg/config"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) wallclock.TimeOfDay {
	return wallclock.NewTimeOfDay(h, m)
}

// March 2026: the 1st is a Sunday, the 2nd a Monday, the 3rd a Tuesday.
func march(day int) wallclock.Date {
	return wallclock.NewDate(2026, time.March, day)
}

type fakeCatalogStore struct {
	categories []*queries.CategoryView
	items      []*queries.ItemView
}

func (f *fakeCatalogStore) FindCategories(_ context.Context, includeInactive bool) ([]*queries.CategoryView, error) {
	out := make([]*queries.CategoryView, 0, len(f.categories))
	for _, c := range f.categories {
		if includeInactive || c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCatalogStore) FindCategoryByID(_ context.Context, id uuid.UUID) (*queries.CategoryView, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, queries.ErrCategoryNotFound
}

func (f *fakeCatalogStore) FindItems(_ context.Context, categoryID *uuid.UUID, includeInactive bool) ([]*queries.ItemView, error) {
	out := make([]*queries.ItemView, 0, len(f.items))
	for _, i := range f.items {
		if categoryID != nil && i.CategoryID != *categoryID {
			continue
		}
		if includeInactive || i.IsActive {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *fakeCatalogStore) FindItemByID(_ context.Context, id uuid.UUID) (*queries.ItemView, error) {
	for _, i := range f.items {
		if i.ID == id {
			return i, nil
		}
	}
	return nil, queries.ErrItemNotFound
}

type fakeScheduleStore struct {
	hours    []*queries.BusinessHourView
	specials []*queries.SpecialScheduleView
}

func (f *fakeScheduleStore) FindBusinessHours(_ context.Context) ([]*queries.BusinessHourView, error) {
	return f.hours, nil
}

func (f *fakeScheduleStore) FindSpecialSchedules(_ context.Context, from, to wallclock.Date) ([]*queries.SpecialScheduleView, error) {
	out := make([]*queries.SpecialScheduleView, 0, len(f.specials))
	for _, s := range f.specials {
		if !s.Date.Before(from) && !to.Before(s.Date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeScheduleStore) FindSpecialScheduleByID(_ context.Context, id uuid.UUID) (*queries.SpecialScheduleView, error) {
	for _, s := range f.specials {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, queries.ErrSpecialScheduleNotFound
}

type fakeStockStore struct {
	rows []queries.StockLevelRow
}

func (f *fakeStockStore) FindLevels(_ context.Context, from, to wallclock.Date) ([]queries.StockLevelRow, error) {
	out := make([]queries.StockLevelRow, 0, len(f.rows))
	for _, r := range f.rows {
		if !r.Date.Before(from) && !to.Before(r.Date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStockStore) FindLevelsByItem(_ context.Context, itemID uuid.UUID, from, to wallclock.Date) ([]queries.StockLevelRow, error) {
	all, _ := f.FindLevels(context.Background(), from, to)
	out := make([]queries.StockLevelRow, 0, len(all))
	for _, r := range all {
		if r.ItemID == itemID {
			out = append(out, r)
		}
	}
	return out, nil
}

type availabilityFixture struct {
	queries   queries.AvailabilityQueries
	bentoCat  uuid.UUID
	drinksCat uuid.UUID
	karaageID uuid.UUID
	puddingID uuid.UUID
	teaID     uuid.UUID
}

// newAvailabilityFixture wires a three-day horizon starting Sunday March 1:
// Sunday has an active lunch block plus an inactive dinner block, Monday is
// specially closed, Tuesday has no weekly hours but a special "event" block.
// The catalog holds one food item and two stock items; tea has stock on
// Sunday only, pudding has no stock rows at all.
func newAvailabilityFixture() *availabilityFixture {
	f := &availabilityFixture{
		bentoCat:  uuid.New(),
		drinksCat: uuid.New(),
		karaageID: uuid.New(),
		puddingID: uuid.New(),
		teaID:     uuid.New(),
	}

	scheduleStore := &fakeScheduleStore{
		hours: []*queries.BusinessHourView{
			{ID: uuid.New(), Weekday: time.Sunday, Label: "lunch", Start: at(10, 0), End: at(14, 0), IsActive: true},
			{ID: uuid.New(), Weekday: time.Sunday, Label: "dinner", Start: at(17, 0), End: at(20, 0), IsActive: false},
			{ID: uuid.New(), Weekday: time.Monday, Label: "lunch", Start: at(10, 0), End: at(14, 0), IsActive: true},
		},
		specials: []*queries.SpecialScheduleView{
			{ID: uuid.New(), Date: march(2), IsClosed: true},
			{ID: uuid.New(), Date: march(3), Blocks: []queries.SpecialScheduleBlockView{
				{Label: "event", Start: at(11, 0), End: at(13, 0)},
			}},
		},
	}

	catalogStore := &fakeCatalogStore{
		categories: []*queries.CategoryView{
			{ID: f.bentoCat, Title: "Bento", SortPriority: 2, IsActive: true},
			{ID: f.drinksCat, Title: "Drinks", SortPriority: 1, IsActive: true},
		},
		items: []*queries.ItemView{
			{ID: f.karaageID, CategoryID: f.bentoCat, Name: "Karaage Bento", Kind: "food", UnitPrice: 800, MaxPerOrder: 5, IsActive: true},
			{ID: f.puddingID, CategoryID: f.bentoCat, Name: "Pudding", Kind: "stock", UnitPrice: 300, MaxPerOrder: 4, IsActive: true},
			{ID: f.teaID, CategoryID: f.drinksCat, Name: "Barley Tea", Kind: "stock", UnitPrice: 200, MaxPerOrder: 10, IsActive: true},
		},
	}

	stockStore := &fakeStockStore{
		rows: []queries.StockLevelRow{
			{ItemID: f.teaID, Date: march(1), Remaining: 3},
			{ItemID: f.teaID, Date: march(3), Remaining: 0},
		},
	}

	mockClock := clock.NewMockClock(march(1).Time(time.UTC).Add(8 * time.Hour))
	orderCfg := config.OrderConfig{
		SlotStepMinutes:     30,
		CartSessionTTL:      2 * time.Hour,
		MaxAvailabilityDays: 3,
	}

	f.queries = queries.NewAvailabilityQueries(catalogStore, scheduleStore, stockStore, mockClock, orderCfg)
	return f
}

func TestAvailabilityWindows(t *testing.T) {
	f := newAvailabilityFixture()
	ctx := context.Background()

	windows, err := f.queries.Windows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	sunday := windows[0]
	assert.Equal(t, march(1), sunday.Date)
	assert.Equal(t, "lunch", sunday.HourType)
	assert.Equal(t, at(10, 0), sunday.Start)
	assert.Equal(t, at(14, 0), sunday.End)

	tuesday := windows[1]
	assert.Equal(t, march(3), tuesday.Date)
	assert.Equal(t, "event", tuesday.HourType)
	assert.Equal(t, at(11, 0), tuesday.Start)
	assert.Equal(t, at(13, 0), tuesday.End)
}

func TestAvailabilityWindowMenus(t *testing.T) {
	f := newAvailabilityFixture()
	ctx := context.Background()

	windows, err := f.queries.Windows(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	t.Run("stock caps fold into max quantity", func(t *testing.T) {
		sunday := windows[0]
		require.Len(t, sunday.Categories, 2)

		// Sort priority puts Drinks (1) ahead of Bento (2).
		drinks := sunday.Categories[0]
		assert.Equal(t, "Drinks", drinks.Title)
		require.Len(t, drinks.Items, 1)
		assert.Equal(t, 3, drinks.Items[0].MaxQuantity)

		// Pudding has no stock rows, so only the food item survives.
		bento := sunday.Categories[1]
		assert.Equal(t, "Bento", bento.Title)
		require.Len(t, bento.Items, 1)
		assert.Equal(t, f.karaageID, bento.Items[0].ItemID)
		assert.Equal(t, 5, bento.Items[0].MaxQuantity)
	})

	t.Run("zero stock drops item and empty category", func(t *testing.T) {
		tuesday := windows[1]
		require.Len(t, tuesday.Categories, 1)
		assert.Equal(t, "Bento", tuesday.Categories[0].Title)
		require.Len(t, tuesday.Categories[0].Items, 1)
		assert.Equal(t, f.karaageID, tuesday.Categories[0].Items[0].ItemID)
	})
}

func TestAvailabilitySelectableDates(t *testing.T) {
	f := newAvailabilityFixture()

	dates, err := f.queries.SelectableDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []wallclock.Date{march(1), march(3)}, dates)
}

func TestAvailabilitySlotsForDate(t *testing.T) {
	f := newAvailabilityFixture()

	slots, err := f.queries.SlotsForDate(context.Background(), march(1))
	require.NoError(t, err)
	require.Len(t, slots, 1)

	got := make([]string, len(slots[0].Times))
	for i, tm := range slots[0].Times {
		got[i] = tm.String()
	}
	assert.Equal(t, []string{
		"10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
	}, got)

	closed, err := f.queries.SlotsForDate(context.Background(), march(2))
	require.NoError(t, err)
	assert.Empty(t, closed)
}

func TestAvailabilityResolveWindow(t *testing.T) {
	f := newAvailabilityFixture()
	ctx := context.Background()

	t.Run("selection inside a window resolves", func(t *testing.T) {
		w, err := f.queries.ResolveWindow(ctx, availability.PickupSelection{Date: march(1), Time: at(12, 0)})
		require.NoError(t, err)
		assert.Equal(t, "lunch", w.HourType)
	})

	t.Run("end time is exclusive", func(t *testing.T) {
		_, err := f.queries.ResolveWindow(ctx, availability.PickupSelection{Date: march(1), Time: at(14, 0)})
		assert.ErrorIs(t, err, queries.ErrWindowNotFound)
	})

	t.Run("closed day has no window", func(t *testing.T) {
		_, err := f.queries.ResolveWindow(ctx, availability.PickupSelection{Date: march(2), Time: at(12, 0)})
		assert.ErrorIs(t, err, queries.ErrWindowNotFound)
	})
}

func TestAvailabilityCorruptSchedule(t *testing.T) {
	scheduleStore := &fakeScheduleStore{
		hours: []*queries.BusinessHourView{
			// End before start cannot be rebuilt into an hour block.
			{ID: uuid.New(), Weekday: time.Sunday, Label: "lunch", Start: at(14, 0), End: at(10, 0), IsActive: true},
		},
	}
	mockClock := clock.NewMockClock(march(1).Time(time.UTC))
	q := queries.NewAvailabilityQueries(
		&fakeCatalogStore{}, scheduleStore, &fakeStockStore{}, mockClock,
		config.OrderConfig{SlotStepMinutes: 30, MaxAvailabilityDays: 3},
	)

	_, err := q.Windows(context.Background())
	assert.ErrorIs(t, err, queries.ErrCorruptSchedule)
}
