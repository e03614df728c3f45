package wizard

import (
	"errors"
	"fmt"
	"strings"
)

// Interview slots live on a fixed day-by-time grid: every weekday, 9:00 AM
// through 5:45 PM in 15-minute increments. A slot string is
// "<Day> at <time>", e.g. "Monday at 9:00 AM".

var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var TimeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	var out []string
	for hour24 := 9; hour24 <= 17; hour24++ {
		for _, min := range []string{"00", "15", "30", "45"} {
			hour := hour24
			suffix := "AM"
			if hour24 >= 12 {
				suffix = "PM"
			}
			if hour24 > 12 {
				hour = hour24 - 12
			}
			out = append(out, fmt.Sprintf("%d:%s %s", hour, min, suffix))
		}
	}
	return out
}

var (
	ErrUnknownSlot  = errors.New("slot is not on the interview grid")
	ErrSlotConflict = errors.New("slot overlaps an existing selection")
	ErrTooManySlots = errors.New("maximum number of interview slots reached")
)

// FormatSlot renders the canonical "<Day> at <time>" form.
func FormatSlot(day, timeOfDay string) string {
	return day + " at " + timeOfDay
}

// ParseSlot splits a slot string into its day and time parts.
func ParseSlot(slot string) (day, timeOfDay string, ok bool) {
	parts := strings.SplitN(slot, " at ", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func timeSlotIndex(timeOfDay string) int {
	for i, t := range TimeSlots {
		if t == timeOfDay {
			return i
		}
	}
	return -1
}

func validDay(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// AddInterviewSlot appends a slot to the selection, enforcing the grid, the
// same-day adjacency check, and the cap of 8. Re-adding an already-selected
// slot leaves the selection unchanged. The adjacency test compares grid
// indices with a distance of < 1, so on the current 15-minute grid only
// exact collisions are caught, and those are absorbed by the duplicate
// no-op first.
func (d *Draft) AddInterviewSlot(slot string) error {
	day, timeOfDay, ok := ParseSlot(slot)
	if !ok || !validDay(day) {
		return ErrUnknownSlot
	}
	idx := timeSlotIndex(timeOfDay)
	if idx < 0 {
		return ErrUnknownSlot
	}
	for _, existing := range d.InterviewSlots {
		if existing == slot {
			return nil
		}
	}
	if len(d.InterviewSlots) >= MaxInterviewSlots {
		return ErrTooManySlots
	}
	for _, existing := range d.InterviewSlots {
		exDay, exTime, ok := ParseSlot(existing)
		if !ok || exDay != day {
			continue
		}
		exIdx := timeSlotIndex(exTime)
		if exIdx < 0 {
			continue
		}
		if abs(idx-exIdx) < 1 {
			return ErrSlotConflict
		}
	}
	d.InterviewSlots = append(d.InterviewSlots, slot)
	return nil
}

// RemoveInterviewSlot drops a slot from the selection; unknown slots are
// ignored.
func (d *Draft) RemoveInterviewSlot(slot string) {
	for i, s := range d.InterviewSlots {
		if s == slot {
			d.InterviewSlots = append(d.InterviewSlots[:i], d.InterviewSlots[i+1:]...)
			return
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
