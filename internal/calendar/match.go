package calendar

import "time"

// startTolerance aligns events entered with slight clock skew to the slot
// they were meant for.
const startTolerance = 5 * time.Minute

// EventMatchesSlot decides whether an event belongs to a concrete slot
// occurrence. The rules are ordered; the first rule that fires wins:
//
//  1. normalize midnight-crossing intervals (end at or before start gains a day)
//  2. exact start match within a small tolerance
//  3. wall-clock hour window, tolerant of day boundaries
//  4. event fully contained in the slot
//  5. event starts within the slot
//  6. the slot covers at least half of the event's duration
//
// Zero event times never match.
func EventMatchesSlot(eventStart, eventEnd, slotStart, slotEnd time.Time) bool {
	if eventStart.IsZero() || eventEnd.IsZero() {
		return false
	}

	// Rule 1: midnight-crossing normalization.
	if !slotEnd.After(slotStart) {
		slotEnd = slotEnd.Add(24 * time.Hour)
	}
	if !eventEnd.After(eventStart) {
		eventEnd = eventEnd.Add(24 * time.Hour)
	}

	// Rule 2: exact start match.
	diff := eventStart.Sub(slotStart)
	if diff < 0 {
		diff = -diff
	}
	if diff < startTolerance {
		return true
	}

	// Rule 3: wall-clock window. Timestamp comparison breaks down across day
	// boundaries, so compare the time of day, stretching slots that span
	// midnight past 24 and lifting early-morning events into the same frame.
	slotStartHour := clockHours(slotStart)
	slotEndHour := clockHours(slotEnd)
	if slotEndHour <= slotStartHour {
		slotEndHour += 24
	}
	eventHour := clockHours(eventStart)
	if slotEndHour > 24 && eventHour < slotStartHour {
		eventHour += 24
	}
	if eventHour >= slotStartHour && eventHour < slotEndHour {
		return true
	}

	// Rule 4: containment.
	if !eventStart.Before(slotStart) && !eventEnd.After(slotEnd) {
		return true
	}

	// Rule 5: start falls inside the slot.
	if !eventStart.Before(slotStart) && eventStart.Before(slotEnd) {
		return true
	}

	// Rule 6: majority overlap.
	overlapStart := eventStart
	if slotStart.After(overlapStart) {
		overlapStart = slotStart
	}
	overlapEnd := eventEnd
	if slotEnd.Before(overlapEnd) {
		overlapEnd = slotEnd
	}
	overlap := overlapEnd.Sub(overlapStart)
	duration := eventEnd.Sub(eventStart)
	if overlap > 0 && duration > 0 && 2*overlap >= duration {
		return true
	}

	return false
}
