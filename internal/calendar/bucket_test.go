package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Jan 10 2025 is a Friday.
var friday = time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local)

func TestRangeFor(t *testing.T) {
	testCases := []struct {
		name      string
		opts      Options
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "day view",
			opts:      Options{View: ViewDay, CurrentDate: at(10, 15, 30)},
			wantStart: at(10, 0, 0),
			wantEnd:   at(10, 0, 0),
		},
		{
			name:      "week view starts Sunday",
			opts:      Options{View: ViewWeek, CurrentDate: friday},
			wantStart: at(5, 0, 0),
			wantEnd:   at(11, 0, 0),
		},
		{
			name:      "week view from a Sunday",
			opts:      Options{View: ViewWeek, CurrentDate: at(5, 12, 0)},
			wantStart: at(5, 0, 0),
			wantEnd:   at(11, 0, 0),
		},
		{
			name:      "week view from a Saturday",
			opts:      Options{View: ViewWeek, CurrentDate: at(11, 12, 0)},
			wantStart: at(5, 0, 0),
			wantEnd:   at(11, 0, 0),
		},
		{
			name:      "month view",
			opts:      Options{View: ViewMonth, CurrentDate: friday},
			wantStart: at(1, 0, 0),
			wantEnd:   at(31, 0, 0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := RangeFor(tc.opts)
			assert.True(t, tc.wantStart.Equal(start), "start: got %v, want %v", start, tc.wantStart)
			assert.True(t, tc.wantEnd.Equal(end), "end: got %v, want %v", end, tc.wantEnd)
		})
	}
}

func TestRangeForWeekAlwaysSundayToSaturday(t *testing.T) {
	for offset := 0; offset < 14; offset++ {
		current := friday.AddDate(0, 0, offset)
		start, end := RangeFor(Options{View: ViewWeek, CurrentDate: current})

		assert.Equal(t, time.Sunday, start.Weekday(), "current %v", current)
		assert.Equal(t, time.Saturday, end.Weekday(), "current %v", current)
		assert.True(t, start.AddDate(0, 0, 6).Equal(end))
	}
}

func TestGroupFilledBucket(t *testing.T) {
	events := []Event{
		{ID: "e1", Start: at(10, 18, 0), End: at(10, 22, 0), AssignedStaff: 2},
	}
	templates := []Template{
		{ID: "t1", DayOfWeek: time.Friday, StartTime: "18:00", EndTime: "22:00", Label: "Dinner", RequiredStaff: 2},
	}

	result := Group(events, templates, Options{View: ViewDay, CurrentDate: friday})

	require.Len(t, result.Buckets, 1)
	assert.Empty(t, result.Ungrouped)

	bucket := result.Buckets[0].Resource.Bucket
	assert.Equal(t, 2, bucket.Filled)
	assert.Equal(t, 2, bucket.Required)
	assert.Equal(t, StatusConfirmed, result.Buckets[0].Resource.Status)
	assert.Equal(t, "Dinner: 2/2", result.Buckets[0].Title)
	require.Len(t, bucket.Events, 1)
	assert.Equal(t, "e1", bucket.Events[0].ID)
}

func TestGroupNoTemplateForWeekday(t *testing.T) {
	events := []Event{
		{ID: "e1", Start: at(10, 18, 0), End: at(10, 22, 0), AssignedStaff: 2},
	}
	templates := []Template{
		{ID: "t1", DayOfWeek: time.Saturday, StartTime: "18:00", EndTime: "22:00", Label: "Dinner", RequiredStaff: 2},
	}

	result := Group(events, templates, Options{View: ViewDay, CurrentDate: friday})

	assert.Empty(t, result.Buckets)
	require.Len(t, result.Ungrouped, 1)
	assert.Equal(t, "e1", result.Ungrouped[0].ID)
}

func TestGroupStatusDerivation(t *testing.T) {
	testCases := []struct {
		name     string
		assigned int
		required int
		want     BucketStatus
	}{
		{name: "filled meets required", assigned: 3, required: 3, want: StatusConfirmed},
		{name: "filled exceeds required", assigned: 4, required: 3, want: StatusConfirmed},
		{name: "partially filled", assigned: 1, required: 3, want: StatusPending},
		{name: "empty", assigned: 0, required: 3, want: StatusUnassigned},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events := []Event{
				{ID: "e1", Start: at(10, 18, 0), End: at(10, 22, 0), AssignedStaff: tc.assigned},
			}
			templates := []Template{
				{ID: "t1", DayOfWeek: time.Friday, StartTime: "18:00", EndTime: "22:00", Label: "Dinner", RequiredStaff: tc.required},
			}

			result := Group(events, templates, Options{View: ViewDay, CurrentDate: friday})

			require.Len(t, result.Buckets, 1)
			assert.Equal(t, tc.want, result.Buckets[0].Resource.Status)
		})
	}
}

func TestGroupEmptyBucketIsEmitted(t *testing.T) {
	templates := []Template{
		{ID: "t1", DayOfWeek: time.Friday, StartTime: "18:00", EndTime: "22:00", Label: "Dinner", RequiredStaff: 3},
	}

	result := Group(nil, templates, Options{View: ViewDay, CurrentDate: friday})

	require.Len(t, result.Buckets, 1)
	assert.Equal(t, StatusUnassigned, result.Buckets[0].Resource.Status)
	assert.Equal(t, "Dinner: 0/3", result.Buckets[0].Title)
	assert.Empty(t, result.Ungrouped)
}

func TestGroupFirstTemplateClaimsOverlappingEvent(t *testing.T) {
	events := []Event{
		{ID: "e1", Start: at(10, 18, 0), End: at(10, 22, 0), AssignedStaff: 1},
	}
	templates := []Template{
		{ID: "t1", DayOfWeek: time.Friday, StartTime: "18:00", EndTime: "22:00", Label: "First", RequiredStaff: 1},
		{ID: "t2", DayOfWeek: time.Friday, StartTime: "18:00", EndTime: "22:00", Label: "Second", RequiredStaff: 1},
	}

	result := Group(events, templates, Options{View: ViewDay, CurrentDate: friday})

	require.Len(t, result.Buckets, 2)
	assert.Equal(t, 1, result.Buckets[0].Resource.Bucket.Filled)
	assert.Len(t, result.Buckets[0].Resource.Bucket.Events, 1)
	assert.Equal(t, 0, result.Buckets[1].Resource.Bucket.Filled)
	assert.Empty(t, result.Buckets[1].Resource.Bucket.Events)
}

func TestGroupMidnightCrossingClaimedOnce(t *testing.T) {
	// Friday 22:00 through Saturday 02:00 against a Friday midnight template
	// viewed over the whole week: the Friday bucket claims it via the
	// exact-start rule and no Saturday bucket double-counts it.
	events := []Event{
		{ID: "e1", Start: at(10, 22, 0), End: at(11, 2, 0), AssignedStaff: 1},
	}
	templates := []Template{
		{ID: "t1", DayOfWeek: time.Friday, StartTime: "22:00", EndTime: "02:00", Label: "Close", RequiredStaff: 1},
		{ID: "t2", DayOfWeek: time.Saturday, StartTime: "22:00", EndTime: "02:00", Label: "Close", RequiredStaff: 1},
	}

	result := Group(events, templates, Options{View: ViewWeek, CurrentDate: friday})

	require.Len(t, result.Buckets, 2)
	assert.Empty(t, result.Ungrouped)

	fridayBucket := result.Buckets[0].Resource.Bucket
	saturdayBucket := result.Buckets[1].Resource.Bucket
	require.Len(t, fridayBucket.Events, 1)
	assert.Equal(t, "e1", fridayBucket.Events[0].ID)
	assert.Equal(t, StatusConfirmed, result.Buckets[0].Resource.Status)
	assert.Empty(t, saturdayBucket.Events)
	assert.Equal(t, StatusUnassigned, result.Buckets[1].Resource.Status)
}

func TestGroupEveryEventClaimedExactlyOnce(t *testing.T) {
	events := []Event{
		{ID: "e1", Start: at(10, 18, 0), End: at(10, 22, 0), AssignedStaff: 1},
		{ID: "e2", Start: at(10, 18, 5), End: at(10, 22, 0), AssignedStaff: 1},
		{ID: "e3", Start: at(10, 22, 0), End: at(11, 2, 0), AssignedStaff: 1},
		{ID: "e4", Start: at(8, 9, 0), End: at(8, 12, 0), AssignedStaff: 1},
		{ID: "e5", Start: time.Time{}, End: time.Time{}, AssignedStaff: 1},
	}
	templates := []Template{
		{ID: "t1", DayOfWeek: time.Friday, StartTime: "18:00", EndTime: "22:00", Label: "Dinner", RequiredStaff: 2},
		{ID: "t2", DayOfWeek: time.Friday, StartTime: "22:00", EndTime: "02:00", Label: "Close", RequiredStaff: 1},
	}

	result := Group(events, templates, Options{View: ViewWeek, CurrentDate: friday})

	seen := make(map[string]int)
	for _, de := range result.Buckets {
		for _, ev := range de.Resource.Bucket.Events {
			seen[ev.ID]++
		}
	}
	for _, ev := range result.Ungrouped {
		seen[ev.ID]++
	}

	require.Len(t, seen, len(events))
	for _, ev := range events {
		assert.Equal(t, 1, seen[ev.ID], "event %s", ev.ID)
	}
}

func TestGroupIsIdempotentAndPure(t *testing.T) {
	events := []Event{
		{ID: "e1", Start: at(10, 18, 0), End: at(10, 22, 0), AssignedStaff: 2},
		{ID: "e2", Start: at(10, 22, 0), End: at(11, 2, 0), AssignedStaff: 1},
	}
	templates := []Template{
		{ID: "t1", DayOfWeek: time.Friday, StartTime: "18:00", EndTime: "22:00", Label: "Dinner", RequiredStaff: 2},
		{ID: "t2", DayOfWeek: time.Friday, StartTime: "22:00", EndTime: "02:00", Label: "Close", RequiredStaff: 1},
	}
	eventsCopy := append([]Event(nil), events...)
	templatesCopy := append([]Template(nil), templates...)
	opts := Options{View: ViewWeek, CurrentDate: friday}

	first := Group(events, templates, opts)
	second := Group(events, templates, opts)

	assert.Equal(t, first, second)
	assert.Equal(t, eventsCopy, events)
	assert.Equal(t, templatesCopy, templates)
}

func TestGroupMalformedTemplateTimesDegradeToMidnight(t *testing.T) {
	events := []Event{
		{ID: "e1", Start: at(10, 0, 0), End: at(10, 4, 0), AssignedStaff: 1},
	}
	templates := []Template{
		{ID: "t1", DayOfWeek: time.Friday, StartTime: "bogus", EndTime: "also-bogus", Label: "Broken", RequiredStaff: 1},
	}

	result := Group(events, templates, Options{View: ViewDay, CurrentDate: friday})

	// Both times parse to 00:00, so the slot becomes a full 24h window
	// anchored at midnight and still claims the event.
	require.Len(t, result.Buckets, 1)
	bucket := result.Buckets[0].Resource.Bucket
	assert.True(t, bucket.Start.Equal(at(10, 0, 0)))
	assert.True(t, bucket.End.Equal(at(11, 0, 0)))
	require.Len(t, bucket.Events, 1)
	assert.Empty(t, result.Ungrouped)
}
