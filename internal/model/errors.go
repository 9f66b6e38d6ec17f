package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange    = errors.New("calendar start date is after end date")
	ErrEmptyCalendar   = errors.New("no eligible exam day in calendar window")
	ErrEmptySubjectSet = errors.New("no subjects to schedule")
	ErrEmptyRoomSet    = errors.New("no rooms to schedule into")
	ErrInfeasible      = errors.New("no feasible schedule exists under the given constraints")
	ErrUnknown         = errors.New("solver budget exhausted without a schedule or an infeasibility proof")
)

// NoCompatibleRoomError is reported during compilation when a subject has no
// room of a compatible kind.
type NoCompatibleRoomError struct {
	Subject Subject
}

func (err NoCompatibleRoomError) Error() string {
	return fmt.Sprintf("subject %v (%v) has no compatible room", err.Subject.Code, err.Subject.Kind)
}
