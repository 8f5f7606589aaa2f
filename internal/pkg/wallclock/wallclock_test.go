//go:build unit

package wallclock_test

import (
	"encoding/json"
	"testing"
	"time"

	"takeout-api/internal/pkg/wallclock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date round-trips", func(t *testing.T) {
		d, err := wallclock.ParseDate("2026-03-01")
		require.NoError(t, err)
		assert.Equal(t, wallclock.NewDate(2026, time.March, 1), d)
		assert.Equal(t, "2026-03-01", d.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"", "2026/03/01", "2026-13-01", "20260301", "2026-02-30"} {
			_, err := wallclock.ParseDate(s)
			assert.ErrorIs(t, err, wallclock.ErrInvalidDate, s)
		}
	})
}

func TestDateOrdering(t *testing.T) {
	a := wallclock.NewDate(2026, time.March, 1)
	b := wallclock.NewDate(2026, time.March, 2)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Before(a))
	assert.Equal(t, 1, a.DaysUntil(b))
	assert.Equal(t, -1, b.DaysUntil(a))
	assert.Equal(t, b, a.AddDays(1))
}

func TestDateAddDaysCrossesMonth(t *testing.T) {
	d := wallclock.NewDate(2026, time.February, 28)
	assert.Equal(t, wallclock.NewDate(2026, time.March, 1), d.AddDays(1))
}

func TestTimeOfDay(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		tod, err := wallclock.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, wallclock.NewTimeOfDay(9, 30), tod)
		assert.Equal(t, "09:30", tod.String())
		assert.Equal(t, 9, tod.Hour())
		assert.Equal(t, 30, tod.Minute())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"", "9:30:00", "24:00", "09:60", "abc"} {
			_, err := wallclock.ParseTimeOfDay(s)
			assert.ErrorIs(t, err, wallclock.ErrInvalidTimeOfDay, s)
		}
	})
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		Date wallclock.Date      `json:"date"`
		Time wallclock.TimeOfDay `json:"time"`
	}

	in := payload{
		Date: wallclock.NewDate(2026, time.April, 10),
		Time: wallclock.NewTimeOfDay(17, 45),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-04-10","time":"17:45"}`, string(data))

	var out payload
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
