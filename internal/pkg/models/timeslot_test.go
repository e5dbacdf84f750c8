package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeSlot(t *testing.T) {
	slot, ok := ParseTimeSlot("morning")
	assert.True(t, ok)
	assert.Equal(t, TimeSlotMorning, slot)

	_, ok = ParseTimeSlot("midnight")
	assert.False(t, ok)
	_, ok = ParseTimeSlot("")
	assert.False(t, ok)
}

func TestTimeSlotWindow(t *testing.T) {
	start, end := TimeSlotMorning.Window()
	assert.Equal(t, 9, start)
	assert.Equal(t, 12, end)

	start, end = TimeSlotAfternoon.Window()
	assert.Equal(t, 12, start)
	assert.Equal(t, 15, end)

	start, end = TimeSlotEvening.Window()
	assert.Equal(t, 15, start)
	assert.Equal(t, 18, end)
}

func TestTimeSlotEndedBy(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	at := func(hour, min int) time.Time {
		return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		slot  TimeSlot
		now   time.Time
		ended bool
	}{
		{"morning before window opens", TimeSlotMorning, at(8, 0), false},
		{"morning mid window", TimeSlotMorning, at(11, 59), false},
		{"morning at window end", TimeSlotMorning, at(12, 0), true},
		{"morning in the afternoon", TimeSlotMorning, at(14, 30), true},
		{"evening same moment still open", TimeSlotEvening, at(14, 30), false},
		{"evening after end of day", TimeSlotEvening, at(19, 0), true},
		{"yesterday's slot always ended", TimeSlotEvening, day.AddDate(0, 0, 1), true},
		{"tomorrow never ended", TimeSlotMorning, day.AddDate(0, 0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ended, tt.slot.EndedBy(day, tt.now))
		})
	}
}
