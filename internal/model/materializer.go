package model

import (
	"slices"
	"time"

	"github.com/limaJavier/examscheduling/internal/fd"
)

// materialize maps a raw solver assignment onto concrete dates, rooms and
// time-of-day windows. Ordering is (date, start time) ascending; beyond that
// the input subject order is preserved, so the result is deterministic for a
// given input.
func materialize(
	solution fd.Solution,
	compiled *compiledModel,
	subjects []Subject,
	rooms []Room,
	days []time.Time,
	settings resolvedSettings,
) []ScheduleItem {
	schedule := make([]ScheduleItem, 0, len(subjects))
	for i, subject := range subjects {
		window := settings.window(subject.Kind)
		schedule = append(schedule, ScheduleItem{
			Subject:   subject,
			Room:      rooms[solution[compiled.roomVars[i]]],
			Date:      days[solution[compiled.dayVars[i]]],
			StartTime: window.start,
			EndTime:   window.end,
		})
	}

	slices.SortStableFunc(schedule, func(a, b ScheduleItem) int {
		if comparison := a.Date.Compare(b.Date); comparison != 0 {
			return comparison
		}
		return settings.window(a.Subject.Kind).startMinutes - settings.window(b.Subject.Kind).startMinutes
	})

	return schedule
}
