package model

import (
	"context"
	"fmt"

	"github.com/limaJavier/examscheduling/internal/fd"
)

type fdScheduler struct {
	solver fd.Solver
}

func (scheduler *fdScheduler) Build(ctx context.Context, input ScheduleInput) ([]ScheduleItem, error) {
	//** Resolve settings once; no attribute probing past this point
	settings, err := resolveSettings(input.Settings)
	if err != nil {
		return nil, err
	}

	//** Build calendar
	days, err := BuildCalendar(input.Window)
	if err != nil {
		return nil, err
	}

	//** Compile constraint model
	compiled, err := compile(input.Subjects, input.Rooms, days, settings)
	if err != nil {
		return nil, err
	}

	//** Cheap infeasibility pre-check: without double-booking every subject
	//** needs its own (day, room) slot
	if !settings.allowMultipleExamsPerSlot {
		matchable, err := slotsMatchable(input.Subjects, input.Rooms, len(days))
		if err != nil {
			return nil, fmt.Errorf("slot matching pre-check failed: %v", err)
		} else if !matchable {
			return nil, ErrInfeasible
		}
	}

	//** Solve
	solution, outcome, err := scheduler.solver.Solve(ctx, compiled.model)
	if err != nil {
		return nil, fmt.Errorf("solver backend failed: %v", err)
	}
	switch outcome {
	case fd.Infeasible:
		return nil, ErrInfeasible
	case fd.Unknown:
		return nil, ErrUnknown
	}

	//** Materialize
	return materialize(solution, compiled, input.Subjects, input.Rooms, days, settings), nil
}
