package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefaultSettings(t *testing.T) {
	settings, err := resolveSettings(DefaultSettings())

	assert.Nil(t, err)
	assert.False(t, settings.allowMultipleExamsPerSlot)
	assert.Equal(t, DefaultHardGapDays, settings.hardGapDays)
	assert.Equal(t, DefaultMediumGapDays, settings.mediumGapDays)
	assert.Equal(t, timeWindow{start: "09:00 AM", end: "12:00 PM", startMinutes: 9 * 60}, settings.theory)
	assert.Equal(t, timeWindow{start: "02:00 PM", end: "05:00 PM", startMinutes: 14 * 60}, settings.practical)
}

func TestResolveSettingsFillsEmptyWindows(t *testing.T) {
	settings, err := resolveSettings(SchedulingSettings{})

	assert.Nil(t, err)
	assert.Equal(t, "09:00 AM", settings.theory.start)
	assert.Equal(t, "02:00 PM", settings.practical.start)
	assert.Zero(t, settings.hardGapDays) // Explicit zero gaps are honored
}

func TestResolveSettingsRejectsNegativeGaps(t *testing.T) {
	settings := DefaultSettings()
	settings.HardGapDays = -1

	_, err := resolveSettings(settings)

	assert.Error(t, err)
}

func TestResolveSettingsRejectsMalformedWindow(t *testing.T) {
	scenarios := []string{
		"09:00 - 12:00",
		"09:00 AM",
		"morning - noon",
		"09:00 AM - 12:00 PM - 01:00 PM",
	}

	for _, scenario := range scenarios {
		settings := DefaultSettings()
		settings.TheoryWindow = scenario

		_, err := resolveSettings(settings)

		assert.Error(t, err, scenario)
	}
}

func TestWindowBySubjectKind(t *testing.T) {
	settings, err := resolveSettings(DefaultSettings())

	assert.Nil(t, err)
	assert.Equal(t, settings.theory, settings.window(Theory))
	assert.Equal(t, settings.practical, settings.window(Practical))
}
