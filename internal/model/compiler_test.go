package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testDays(count int) []time.Time {
	days := make([]time.Time, count)
	for i := range days {
		days[i] = date(2026, time.June, 1).AddDate(0, 0, i)
	}
	return days
}

func mustResolve(t *testing.T, settings SchedulingSettings) resolvedSettings {
	resolved, err := resolveSettings(settings)
	assert.Nil(t, err)
	return resolved
}

func TestCompileEmptyInputs(t *testing.T) {
	settings := mustResolve(t, DefaultSettings())
	room := Room{Id: 1, Name: "A-101", Kind: Classroom}
	subject := Subject{Id: 1, Code: "CS101", Kind: Theory, Difficulty: Easy}

	_, err := compile(nil, []Room{room}, testDays(5), settings)
	assert.ErrorIs(t, err, ErrEmptySubjectSet)

	_, err = compile([]Subject{subject}, nil, testDays(5), settings)
	assert.ErrorIs(t, err, ErrEmptyRoomSet)
}

func TestCompileNoCompatibleRoom(t *testing.T) {
	settings := mustResolve(t, DefaultSettings())
	practical := Subject{Id: 7, Code: "PH201L", Kind: Practical, Difficulty: Easy}
	classrooms := []Room{
		{Id: 1, Name: "A-101", Kind: Classroom},
		{Id: 2, Name: "A-102", Kind: Classroom},
	}

	_, err := compile([]Subject{practical}, classrooms, testDays(5), settings)

	var noRoom NoCompatibleRoomError
	assert.ErrorAs(t, err, &noRoom)
	assert.Equal(t, practical, noRoom.Subject)
}

func TestCompileVariableAndClauseCounts(t *testing.T) {
	settings := mustResolve(t, SchedulingSettings{HardGapDays: 2, MediumGapDays: 1})
	subjects := []Subject{
		{Id: 1, Kind: Theory, Difficulty: Hard},
		{Id: 2, Kind: Theory, Difficulty: Hard},
		{Id: 3, Kind: Practical, Difficulty: Medium},
		{Id: 4, Kind: Theory, Difficulty: Easy},
	}
	rooms := []Room{
		{Id: 1, Kind: Classroom},
		{Id: 2, Kind: Lab},
	}

	compiled, err := compile(subjects, rooms, testDays(6), settings)

	assert.Nil(t, err)
	assert.Equal(t, 8, compiled.model.Vars()) // Day and room variable per subject
	// 6 double-booking pairs + 1 hard-hard gap pair; the single medium subject
	// and the hard/medium cross pairs generate nothing
	assert.Equal(t, 7, compiled.model.Clauses())
}

func TestCompileSkipsDoubleBookingWhenAllowed(t *testing.T) {
	settings := mustResolve(t, SchedulingSettings{AllowMultipleExamsPerSlot: true})
	subjects := []Subject{
		{Id: 1, Kind: Theory, Difficulty: Easy},
		{Id: 2, Kind: Theory, Difficulty: Easy},
		{Id: 3, Kind: Theory, Difficulty: Easy},
	}
	rooms := []Room{{Id: 1, Kind: Classroom}}

	compiled, err := compile(subjects, rooms, testDays(3), settings)

	assert.Nil(t, err)
	assert.Zero(t, compiled.model.Clauses())
}

func TestCompileSkipsGapsWhenZero(t *testing.T) {
	settings := mustResolve(t, SchedulingSettings{AllowMultipleExamsPerSlot: true, HardGapDays: 0})
	subjects := []Subject{
		{Id: 1, Kind: Theory, Difficulty: Hard},
		{Id: 2, Kind: Theory, Difficulty: Hard},
	}
	rooms := []Room{{Id: 1, Kind: Classroom}}

	compiled, err := compile(subjects, rooms, testDays(3), settings)

	assert.Nil(t, err)
	assert.Zero(t, compiled.model.Clauses())
}

func TestCompatibility(t *testing.T) {
	theory := Subject{Kind: Theory}
	practical := Subject{Kind: Practical}

	assert.True(t, compatible(theory, Room{Kind: Classroom}))
	assert.False(t, compatible(theory, Room{Kind: Lab}))
	assert.True(t, compatible(practical, Room{Kind: Lab}))
	assert.False(t, compatible(practical, Room{Kind: Classroom}))

	// A room of an unrecognized kind accepts both; only the two forbidden
	// pairings are encoded
	untyped := Room{Kind: ""}
	assert.True(t, compatible(theory, untyped))
	assert.True(t, compatible(practical, untyped))
}
