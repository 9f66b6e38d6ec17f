package model

import (
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/examscheduling/internal/fd"
)

// compiledModel carries the finite-domain instance together with the
// per-subject variable handles needed to read a solution back.
type compiledModel struct {
	model    *fd.Model
	dayVars  []fd.Var
	roomVars []fd.Var
}

// compatible reports whether a subject may sit in a room. Only two pairings
// are forbidden: theory exams in labs and practical exams in classrooms. A
// room of any other kind accepts both.
func compatible(subject Subject, room Room) bool {
	return !(subject.Kind == Theory && room.Kind == Lab) &&
		!(subject.Kind == Practical && room.Kind == Classroom)
}

// compile builds the constraint model: one day variable and one room variable
// per subject plus the room-compatibility, double-booking and difficulty-gap
// constraint families.
func compile(subjects []Subject, rooms []Room, days []time.Time, settings resolvedSettings) (*compiledModel, error) {
	if len(subjects) == 0 {
		return nil, ErrEmptySubjectSet
	} else if len(rooms) == 0 {
		return nil, ErrEmptyRoomSet
	}

	compiled := &compiledModel{
		model:    fd.NewModel(),
		dayVars:  make([]fd.Var, len(subjects)),
		roomVars: make([]fd.Var, len(subjects)),
	}

	//** Declare variables
	for i := range subjects {
		compiled.dayVars[i] = compiled.model.NewVar(0, len(days)-1)
		compiled.roomVars[i] = compiled.model.NewVar(0, len(rooms)-1)
	}

	//** Room-type compatibility
	for i, subject := range subjects {
		if !lo.SomeBy(rooms, func(room Room) bool { return compatible(subject, room) }) {
			return nil, NoCompatibleRoomError{Subject: subject}
		}
		for roomIdx, room := range rooms {
			if !compatible(subject, room) {
				compiled.model.Forbid(compiled.roomVars[i], roomIdx)
			}
		}
	}

	//** No double-booking: same day and same room is forbidden for every pair
	if !settings.allowMultipleExamsPerSlot {
		for i := range subjects {
			for j := i + 1; j < len(subjects); j++ {
				compiled.model.Require(fd.Clause{
					fd.Neq(compiled.dayVars[i], compiled.dayVars[j]),
					fd.Neq(compiled.roomVars[i], compiled.roomVars[j]),
				})
			}
		}
	}

	//** Difficulty gaps: only same-difficulty pairs are constrained (the
	//** hard/medium cross pair and anything involving easy stay free)
	for i := range subjects {
		for j := i + 1; j < len(subjects); j++ {
			gap := 0
			if subjects[i].Difficulty == Hard && subjects[j].Difficulty == Hard {
				gap = settings.hardGapDays
			} else if subjects[i].Difficulty == Medium && subjects[j].Difficulty == Medium {
				gap = settings.mediumGapDays
			}
			if gap <= 0 {
				continue
			}
			compiled.model.Require(fd.Clause{
				fd.LeOffset(compiled.dayVars[i], gap, compiled.dayVars[j]),
				fd.LeOffset(compiled.dayVars[j], gap, compiled.dayVars[i]),
			})
		}
	}

	return compiled, nil
}
