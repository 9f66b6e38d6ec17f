package model

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
)

type SubjectKind string

const (
	Theory    SubjectKind = "Theory"
	Practical SubjectKind = "Practical"
)

type RoomKind string

const (
	Classroom RoomKind = "Classroom"
	Lab       RoomKind = "Lab"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

type Subject struct {
	Id              uint64
	Code            string
	Name            string
	Kind            SubjectKind
	Semester        string
	Difficulty      Difficulty
	DurationMinutes uint64 `mapstructure:"durationMinutes"`
}

type Room struct {
	Id       uint64
	Name     string
	Kind     RoomKind
	Capacity uint64
}

// CalendarWindow is an inclusive date range of candidate exam days.
type CalendarWindow struct {
	Start time.Time
	End   time.Time
}

// SchedulingSettings tunes a single scheduling run. Zero-valued window strings
// fall back to the defaults during resolution; gap days are taken at face
// value, so programmatic callers should start from DefaultSettings.
type SchedulingSettings struct {
	AllowMultipleExamsPerSlot bool
	HardGapDays               int
	MediumGapDays             int
	TheoryWindow              string
	PracticalWindow           string
}

// ScheduleItem is one scheduled exam. Items are created by materialization
// only and never mutated afterwards.
type ScheduleItem struct {
	Subject   Subject
	Room      Room
	Date      time.Time
	StartTime string
	EndTime   string
}

// ScheduleInput is the immutable snapshot consumed by one scheduling run.
type ScheduleInput struct {
	Subjects []Subject
	Rooms    []Room
	Window   CalendarWindow
	Settings SchedulingSettings
}

const dateLayout = "2006-01-02"

type rawWindow struct {
	Start string
	End   string
}

type rawSettings struct {
	AllowMultipleExamsPerSlot *bool `mapstructure:"allowMultipleExamsPerSlot"`
	HardGapDays               *int  `mapstructure:"hardGapDays"`
	MediumGapDays             *int  `mapstructure:"mediumGapDays"`
	TheoryWindow              string
	PracticalWindow           string
}

type rawScheduleInput struct {
	Subjects []Subject
	Rooms    []Room
	Window   rawWindow
	Settings rawSettings
}

func InputFromJson(file string) (ScheduleInput, error) {
	bytes, _ := os.ReadFile(file)
	var inputJson map[string]any
	err := json.Unmarshal(bytes, &inputJson)
	if err != nil {
		return ScheduleInput{}, err
	}

	var rawInput rawScheduleInput
	mapstructure.Decode(inputJson, &rawInput)
	return processRawInput(rawInput)
}

// processRawInput resolves dates and fills absent settings with defaults, so
// the engine never probes for missing attributes downstream.
func processRawInput(rawInput rawScheduleInput) (ScheduleInput, error) {
	start, err := time.Parse(dateLayout, rawInput.Window.Start)
	if err != nil {
		return ScheduleInput{}, fmt.Errorf("cannot parse window start date %q: %v", rawInput.Window.Start, err)
	}
	end, err := time.Parse(dateLayout, rawInput.Window.End)
	if err != nil {
		return ScheduleInput{}, fmt.Errorf("cannot parse window end date %q: %v", rawInput.Window.End, err)
	}

	settings := DefaultSettings()
	if rawInput.Settings.AllowMultipleExamsPerSlot != nil {
		settings.AllowMultipleExamsPerSlot = *rawInput.Settings.AllowMultipleExamsPerSlot
	}
	if rawInput.Settings.HardGapDays != nil {
		settings.HardGapDays = *rawInput.Settings.HardGapDays
	}
	if rawInput.Settings.MediumGapDays != nil {
		settings.MediumGapDays = *rawInput.Settings.MediumGapDays
	}
	if rawInput.Settings.TheoryWindow != "" {
		settings.TheoryWindow = rawInput.Settings.TheoryWindow
	}
	if rawInput.Settings.PracticalWindow != "" {
		settings.PracticalWindow = rawInput.Settings.PracticalWindow
	}

	return ScheduleInput{
		Subjects: rawInput.Subjects,
		Rooms:    rawInput.Rooms,
		Window:   CalendarWindow{Start: start, End: end},
		Settings: settings,
	}, nil
}
