package model

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// slotsMatchable checks a necessary condition for feasibility when double
// booking is disallowed: subjects must be injectively matchable to compatible
// (day, room) slots. A matching deficit proves infeasibility outright; a full
// matching proves nothing since gap constraints are not considered here.
func slotsMatchable(subjects []Subject, rooms []Room, totalDays int) (bool, error) {
	subjectsAny := lo.Map(lo.Range(len(subjects)), func(subject int, _ int) any { return subject })

	slotsAny := make([]any, 0, totalDays*len(rooms))
	for day := range totalDays {
		for roomIdx := range rooms {
			slotsAny = append(slotsAny, [2]int{day, roomIdx})
		}
	}

	neighbors := func(subjectAny any, slotAny any) (bool, error) {
		subject := subjects[subjectAny.(int)]
		slot := slotAny.([2]int)
		return compatible(subject, rooms[slot[1]]), nil
	}

	graph, err := bipartitegraph.NewBipartiteGraph(subjectsAny, slotsAny, neighbors)
	if err != nil {
		return false, err
	}

	return len(graph.LargestMatching()) >= len(subjects), nil
}

func (scheduler *fdScheduler) Verify(schedule []ScheduleItem, input ScheduleInput) bool {
	settings, err := resolveSettings(input.Settings)
	if err != nil {
		return false
	}
	days, err := BuildCalendar(input.Window)
	if err != nil {
		return false
	}

	if len(schedule) != len(input.Subjects) {
		return false
	}

	dayIndices := make(map[string]int, len(days))
	for i, day := range days {
		dayIndices[day.Format(dateLayout)] = i
	}

	scheduledSubjects := make(map[uint64]bool, len(schedule))
	occupancy := make(map[[2]int]bool)
	daysByDifficulty := make(map[Difficulty][]int)

	for _, item := range schedule {
		// Check that:
		// - Exam date is an eligible calendar day
		// - Subject and room belong to the input snapshot
		// - Each subject is scheduled exactly once
		// - Room kind is compatible with the subject kind
		// - Time window matches the subject kind
		dayIndex, eligibleDay := dayIndices[item.Date.Format(dateLayout)]
		_, knownSubject := lo.Find(input.Subjects, func(subject Subject) bool { return subject.Id == item.Subject.Id })
		roomIdx := lo.IndexOf(lo.Map(input.Rooms, func(room Room, _ int) uint64 { return room.Id }), item.Room.Id)
		window := settings.window(item.Subject.Kind)

		if !eligibleDay ||
			!knownSubject ||
			scheduledSubjects[item.Subject.Id] ||
			roomIdx < 0 ||
			!compatible(item.Subject, input.Rooms[roomIdx]) ||
			item.StartTime != window.start ||
			item.EndTime != window.end {
			return false
		}

		slot := [2]int{dayIndex, roomIdx}
		if !settings.allowMultipleExamsPerSlot && occupancy[slot] {
			return false
		}

		scheduledSubjects[item.Subject.Id] = true
		occupancy[slot] = true
		daysByDifficulty[item.Subject.Difficulty] = append(daysByDifficulty[item.Subject.Difficulty], dayIndex)
	}

	// Same-difficulty gap rules: hard-hard and medium-medium pairs only
	return gapRespected(daysByDifficulty[Hard], settings.hardGapDays) &&
		gapRespected(daysByDifficulty[Medium], settings.mediumGapDays)
}

func gapRespected(dayIndices []int, gap int) bool {
	if gap <= 0 {
		return true
	}
	for i := range dayIndices {
		for j := i + 1; j < len(dayIndices); j++ {
			distance := dayIndices[i] - dayIndices[j]
			if distance < 0 {
				distance = -distance
			}
			if distance < gap {
				return false
			}
		}
	}
	return true
}
