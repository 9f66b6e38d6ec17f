package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultHardGapDays     = 2
	DefaultMediumGapDays   = 1
	DefaultTheoryWindow    = "09:00 AM - 12:00 PM"
	DefaultPracticalWindow = "02:00 PM - 05:00 PM"

	clockLayout     = "03:04 PM"
	windowSeparator = " - "
)

func DefaultSettings() SchedulingSettings {
	return SchedulingSettings{
		AllowMultipleExamsPerSlot: false,
		HardGapDays:               DefaultHardGapDays,
		MediumGapDays:             DefaultMediumGapDays,
		TheoryWindow:              DefaultTheoryWindow,
		PracticalWindow:           DefaultPracticalWindow,
	}
}

// timeWindow is a parsed time-of-day slot. startMinutes (minutes from
// midnight) orders slots within a day.
type timeWindow struct {
	start        string
	end          string
	startMinutes int
}

// resolvedSettings is the fully defaulted form of SchedulingSettings computed
// once before compilation.
type resolvedSettings struct {
	allowMultipleExamsPerSlot bool
	hardGapDays               int
	mediumGapDays             int
	theory                    timeWindow
	practical                 timeWindow
}

func resolveSettings(settings SchedulingSettings) (resolvedSettings, error) {
	if settings.HardGapDays < 0 || settings.MediumGapDays < 0 {
		return resolvedSettings{}, fmt.Errorf("gap days must be non-negative: hard=%v medium=%v", settings.HardGapDays, settings.MediumGapDays)
	}

	theoryRaw, practicalRaw := settings.TheoryWindow, settings.PracticalWindow
	if theoryRaw == "" {
		theoryRaw = DefaultTheoryWindow
	}
	if practicalRaw == "" {
		practicalRaw = DefaultPracticalWindow
	}

	theory, err := parseWindow(theoryRaw)
	if err != nil {
		return resolvedSettings{}, fmt.Errorf("invalid theory window: %v", err)
	}
	practical, err := parseWindow(practicalRaw)
	if err != nil {
		return resolvedSettings{}, fmt.Errorf("invalid practical window: %v", err)
	}

	return resolvedSettings{
		allowMultipleExamsPerSlot: settings.AllowMultipleExamsPerSlot,
		hardGapDays:               settings.HardGapDays,
		mediumGapDays:             settings.MediumGapDays,
		theory:                    theory,
		practical:                 practical,
	}, nil
}

// window returns the time-of-day slot for a subject kind. Every non-theory
// subject takes the practical window.
func (settings resolvedSettings) window(kind SubjectKind) timeWindow {
	if kind == Theory {
		return settings.theory
	}
	return settings.practical
}

func parseWindow(raw string) (timeWindow, error) {
	parts := strings.Split(raw, windowSeparator)
	if len(parts) != 2 {
		return timeWindow{}, fmt.Errorf("window %q must be formatted as %q", raw, "09:00 AM - 12:00 PM")
	}

	start, err := time.Parse(clockLayout, parts[0])
	if err != nil {
		return timeWindow{}, fmt.Errorf("cannot parse window start %q: %v", parts[0], err)
	}
	if _, err := time.Parse(clockLayout, parts[1]); err != nil {
		return timeWindow{}, fmt.Errorf("cannot parse window end %q: %v", parts[1], err)
	}

	return timeWindow{
		start:        parts[0],
		end:          parts[1],
		startMinutes: start.Hour()*60 + start.Minute(),
	}, nil
}
