package model

import (
	"context"

	"github.com/limaJavier/examscheduling/internal/fd"
)

// Scheduler turns a snapshot of subjects, rooms and settings into an ordered
// exam schedule, or reports why none could be produced.
type Scheduler interface {
	// Build runs the full pipeline: calendar construction, constraint
	// compilation, solving and materialization. Failures surface as
	// ErrInvalidRange, ErrEmptyCalendar, ErrEmptySubjectSet, ErrEmptyRoomSet,
	// NoCompatibleRoomError, ErrInfeasible or ErrUnknown; the engine never
	// relaxes constraints or retries on its own.
	Build(ctx context.Context, input ScheduleInput) ([]ScheduleItem, error)

	// Verify re-checks a produced schedule against the input's constraints.
	Verify(schedule []ScheduleItem, input ScheduleInput) bool
}

func NewScheduler(solver fd.Solver) Scheduler {
	return &fdScheduler{solver: solver}
}
