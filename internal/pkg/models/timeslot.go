package models

import "time"

// TimeSlot is a fixed named pickup window. The slot label is the canonical
// stored representation; the clock window is derived from it.
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotEvening   TimeSlot = "evening"
)

// slotWindows maps each named slot to its start/end hour of day.
var slotWindows = map[TimeSlot][2]int{
	TimeSlotMorning:   {9, 12},
	TimeSlotAfternoon: {12, 15},
	TimeSlotEvening:   {15, 18},
}

// ParseTimeSlot resolves a slot label; ok is false for unknown labels.
func ParseTimeSlot(label string) (TimeSlot, bool) {
	slot := TimeSlot(label)
	_, ok := slotWindows[slot]
	return slot, ok
}

// Window returns the start and end hour of the slot.
func (t TimeSlot) Window() (startHour, endHour int) {
	w := slotWindows[t]
	return w[0], w[1]
}

// IsValid reports whether the slot is one of the fixed named slots.
func (t TimeSlot) IsValid() bool {
	_, ok := slotWindows[t]
	return ok
}

// EndedBy reports whether the slot's window on the given day is already
// over at the reference time.
func (t TimeSlot) EndedBy(day, now time.Time) bool {
	_, end := t.Window()
	slotEnd := time.Date(day.Year(), day.Month(), day.Day(), end, 0, 0, 0, day.Location())
	return !now.Before(slotEnd)
}
