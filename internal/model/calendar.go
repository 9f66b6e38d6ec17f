package model

import "time"

// BuildCalendar expands a window into the ordered sequence of eligible exam
// days. Sundays are always skipped; this mirrors the institution's fixed
// policy and is deliberately not configurable.
func BuildCalendar(window CalendarWindow) ([]time.Time, error) {
	start := truncateToDate(window.Start)
	end := truncateToDate(window.End)

	if start.After(end) {
		return nil, ErrInvalidRange
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		if current.Weekday() == time.Sunday {
			continue
		}
		days = append(days, current)
	}

	if len(days) == 0 {
		return nil, ErrEmptyCalendar
	}
	return days, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
