package calendar

// IndexEventsByDate builds a day-key to event list mapping for one bucketing
// pass. An event appears under its start day and, when it runs past midnight,
// under every further day through its end day, each day at most once. The
// index is ephemeral: rebuilt per call, never reused.
func IndexEventsByDate(events []Event) map[string][]Event {
	index := make(map[string][]Event, len(events))

	for _, ev := range events {
		if ev.Start.IsZero() {
			continue
		}
		key := DateKey(ev.Start)
		index[key] = append(index[key], ev)

		if ev.End.IsZero() || isSameDay(ev.Start, ev.End) {
			continue
		}

		// Walk the remaining days the event touches.
		for day := startOfDay(ev.Start).AddDate(0, 0, 1); !day.After(startOfDay(ev.End)); day = day.AddDate(0, 0, 1) {
			dayKey := DateKey(day)
			if containsEvent(index[dayKey], ev.ID) {
				continue
			}
			index[dayKey] = append(index[dayKey], ev)
		}
	}

	return index
}

func containsEvent(events []Event, id string) bool {
	for _, ev := range events {
		if ev.ID == id {
			return true
		}
	}
	return false
}
