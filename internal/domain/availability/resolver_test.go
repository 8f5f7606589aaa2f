//go:build unit

package availability_test

import (
	"testing"
	"time"

	"takeout-api/internal/domain/availability"
	"takeout-api/internal/pkg/wallclock"
	"takeout-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) wallclock.TimeOfDay {
	return wallclock.NewTimeOfDay(h, m)
}

func on(day int) wallclock.Date {
	return wallclock.NewDate(2026, time.March, day)
}

func TestResolveWindow(t *testing.T) {
	lunch := builder.NewWindowBuilder().WithDate(on(1)).WithTimes(at(10, 0), at(14, 0)).WithHourType("lunch").Build()
	dinner := builder.NewWindowBuilder().WithDate(on(1)).WithTimes(at(17, 0), at(20, 0)).WithHourType("dinner").Build()
	nextDay := builder.NewWindowBuilder().WithDate(on(2)).WithTimes(at(10, 0), at(14, 0)).Build()
	windows := []availability.Window{lunch, dinner, nextDay}

	tests := []struct {
		name     string
		sel      availability.PickupSelection
		want     string
		notFound bool
	}{
		{
			name: "time inside first window",
			sel:  availability.PickupSelection{Date: on(1), Time: at(12, 0)},
			want: "lunch",
		},
		{
			name: "start time is inclusive",
			sel:  availability.PickupSelection{Date: on(1), Time: at(17, 0)},
			want: "dinner",
		},
		{
			name:     "end time is exclusive",
			sel:      availability.PickupSelection{Date: on(1), Time: at(14, 0)},
			notFound: true,
		},
		{
			name:     "between windows",
			sel:      availability.PickupSelection{Date: on(1), Time: at(15, 0)},
			notFound: true,
		},
		{
			name: "date filters windows",
			sel:  availability.PickupSelection{Date: on(2), Time: at(12, 0)},
			want: "lunch",
		},
		{
			name:     "date with no windows",
			sel:      availability.PickupSelection{Date: on(3), Time: at(12, 0)},
			notFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := availability.ResolveWindow(windows, tt.sel)
			if tt.notFound {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, w.HourType)
			assert.Equal(t, tt.sel.Date, w.Date)
		})
	}

	t.Run("empty window list", func(t *testing.T) {
		_, ok := availability.ResolveWindow(nil, availability.PickupSelection{Date: on(1), Time: at(12, 0)})
		assert.False(t, ok)
	})

	t.Run("first match wins on overlap", func(t *testing.T) {
		a := builder.NewWindowBuilder().WithDate(on(1)).WithTimes(at(10, 0), at(14, 0)).WithHourType("first").Build()
		b := builder.NewWindowBuilder().WithDate(on(1)).WithTimes(at(12, 0), at(16, 0)).WithHourType("second").Build()

		w, ok := availability.ResolveWindow([]availability.Window{a, b}, availability.PickupSelection{Date: on(1), Time: at(13, 0)})
		require.True(t, ok)
		assert.Equal(t, "first", w.HourType)
	})
}

func TestSelectableDates(t *testing.T) {
	windows := []availability.Window{
		builder.NewWindowBuilder().WithDate(on(2)).Build(),
		builder.NewWindowBuilder().WithDate(on(1)).Build(),
		builder.NewWindowBuilder().WithDate(on(2)).WithHourType("dinner").Build(),
	}

	dates := availability.SelectableDates(windows)
	assert.Equal(t, []wallclock.Date{on(2), on(1)}, dates)

	assert.Empty(t, availability.SelectableDates(nil))
}

func TestTimeSlots(t *testing.T) {
	tests := []struct {
		name  string
		start wallclock.TimeOfDay
		end   wallclock.TimeOfDay
		step  int
		want  []string
	}{
		{
			name:  "even division excludes end",
			start: at(10, 0), end: at(11, 0), step: 30,
			want: []string{"10:00", "10:30"},
		},
		{
			name:  "uneven division keeps partial slot start",
			start: at(10, 0), end: at(11, 10), step: 30,
			want: []string{"10:00", "10:30", "11:00"},
		},
		{
			name:  "fifteen minute stepping",
			start: at(9, 0), end: at(10, 0), step: 15,
			want: []string{"09:00", "09:15", "09:30", "09:45"},
		},
		{
			name:  "inverted window yields nothing",
			start: at(14, 0), end: at(10, 0), step: 30,
			want: nil,
		},
		{
			name:  "empty window yields nothing",
			start: at(10, 0), end: at(10, 0), step: 30,
			want: nil,
		},
		{
			name:  "non-positive step yields nothing",
			start: at(10, 0), end: at(11, 0), step: 0,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := builder.NewWindowBuilder().WithTimes(tt.start, tt.end).Build()
			slots := availability.TimeSlots(w, tt.step)

			got := make([]string, len(slots))
			for i, s := range slots {
				got[i] = s.String()
			}
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWindowItemLookup(t *testing.T) {
	item := builder.NewItemOfferingBuilder().Build()
	w := builder.NewWindowBuilder().WithItems(item).Build()

	found, ok := w.Item(item.ItemID)
	require.True(t, ok)
	assert.Equal(t, item.Name, found.Name)

	_, ok = w.Item(uuid.New())
	assert.False(t, ok)

	opt, ok := item.Option(item.Options[0].OptionID)
	require.True(t, ok)
	assert.Equal(t, item.Options[0].Name, opt.Name)

	_, ok = item.Option(uuid.New())
	assert.False(t, ok)
}

func TestSortCategoriesStable(t *testing.T) {
	categories := []availability.CategoryOffering{
		{Title: "c", SortPriority: 2},
		{Title: "a", SortPriority: 1},
		{Title: "b", SortPriority: 2},
	}

	availability.SortCategories(categories)

	titles := make([]string, len(categories))
	for i, c := range categories {
		titles[i] = c.Title
	}
	assert.Equal(t, []string{"a", "c", "b"}, titles)
}
