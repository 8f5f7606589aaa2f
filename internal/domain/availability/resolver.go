package availability

import "takeout-api/internal/pkg/wallclock"

// ResolveWindow finds the window covering the pickup selection. The first
// match in list order wins; overlapping windows on one date are a data error
// the server is authoritative for, not something resolved here. A false
// return is a normal outcome: nothing is orderable at that date and time.
func ResolveWindow(windows []Window, sel PickupSelection) (Window, bool) {
	for _, w := range windows {
		if w.Contains(sel) {
			return w, true
		}
	}
	return Window{}, false
}

// SelectableDates projects the distinct dates having at least one window,
// in first-appearance order. Used to restrict the storefront date picker.
func SelectableDates(windows []Window) []wallclock.Date {
	seen := make(map[wallclock.Date]struct{}, len(windows))
	dates := make([]wallclock.Date, 0, len(windows))
	for _, w := range windows {
		if _, ok := seen[w.Date]; ok {
			continue
		}
		seen[w.Date] = struct{}{}
		dates = append(dates, w.Date)
	}
	return dates
}

// TimeSlots enumerates pickup times from Start inclusive to End exclusive,
// stepping by stepMinutes. Integer-minute arithmetic only. An inverted window
// or non-positive step yields an empty slice rather than failing.
func TimeSlots(w Window, stepMinutes int) []wallclock.TimeOfDay {
	if stepMinutes <= 0 || w.Start >= w.End {
		return nil
	}

	step := wallclock.TimeOfDay(stepMinutes)
	slots := make([]wallclock.TimeOfDay, 0, int((w.End-w.Start+step-1)/step))
	for t := w.Start; t < w.End; t += step {
		slots = append(slots, t)
	}
	return slots
}
