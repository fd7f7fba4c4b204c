package calendar

import "time"

// RangeFor computes the visible date range for the view, both bounds at local
// midnight inclusive. Weeks start on Sunday.
func RangeFor(opts Options) (start, end time.Time) {
	day := startOfDay(opts.CurrentDate)
	switch opts.View {
	case ViewMonth:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		end = start.AddDate(0, 1, -1)
	case ViewWeek:
		start = day.AddDate(0, 0, -int(day.Weekday()))
		end = start.AddDate(0, 0, 6)
	default:
		start, end = day, day
	}
	return start, end
}

// Group runs one bucketing pass: for each day of the visible range and each
// template recurring on that weekday, it collects the not-yet-claimed events
// matching the template's concrete slot into a bucket. An event is claimed by
// at most one bucket; day order then template input order break ties, so
// callers must keep template order stable for reproducible results. Events
// claimed nowhere come back in Result.Ungrouped in input order.
func Group(events []Event, templates []Template, opts Options) Result {
	rangeStart, rangeEnd := RangeFor(opts)
	index := IndexEventsByDate(events)
	claimed := make(map[string]struct{}, len(events))

	result := Result{Buckets: []DisplayEvent{}, Ungrouped: []Event{}}

	for day := rangeStart; !day.After(rangeEnd); day = day.AddDate(0, 0, 1) {
		dayEvents := index[DateKey(day)]

		for _, tmpl := range templates {
			if tmpl.DayOfWeek != day.Weekday() {
				continue
			}

			startH, startM := ParseTimeOfDay(tmpl.StartTime)
			endH, endM := ParseTimeOfDay(tmpl.EndTime)
			slotStart := CombineDateAndTime(day, startH, startM)
			slotEnd := CombineDateAndTime(day, endH, endM)
			if !slotEnd.After(slotStart) {
				slotEnd = slotEnd.Add(24 * time.Hour)
			}

			bucket := Bucket{
				TemplateID: tmpl.ID,
				Label:      tmpl.Label,
				Day:        day,
				Start:      slotStart,
				End:        slotEnd,
				Required:   tmpl.RequiredStaff,
				Events:     []Event{},
			}

			for _, ev := range dayEvents {
				if _, taken := claimed[ev.ID]; taken {
					continue
				}
				// Matching runs on the event's original start/end, which also
				// covers events carried over from a prior day by the index.
				if !EventMatchesSlot(ev.Start, ev.End, slotStart, slotEnd) {
					continue
				}
				claimed[ev.ID] = struct{}{}
				bucket.Events = append(bucket.Events, ev)
				bucket.Filled += ev.AssignedStaff
			}

			result.Buckets = append(result.Buckets, displayEvent(bucket))
		}
	}

	for _, ev := range events {
		if _, taken := claimed[ev.ID]; !taken {
			result.Ungrouped = append(result.Ungrouped, ev)
		}
	}

	return result
}
