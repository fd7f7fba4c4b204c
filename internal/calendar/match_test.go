package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(day int, hour, minute int) time.Time {
	return time.Date(2025, 1, day, hour, minute, 0, 0, time.Local)
}

func TestEventMatchesSlot(t *testing.T) {
	testCases := []struct {
		name       string
		eventStart time.Time
		eventEnd   time.Time
		slotStart  time.Time
		slotEnd    time.Time
		want       bool
	}{
		{
			name:       "exact start",
			eventStart: at(10, 18, 0), eventEnd: at(10, 22, 0),
			slotStart: at(10, 18, 0), slotEnd: at(10, 22, 0),
			want: true,
		},
		{
			name:       "start within tolerance",
			eventStart: at(10, 18, 4), eventEnd: at(10, 22, 0),
			slotStart: at(10, 18, 0), slotEnd: at(10, 22, 0),
			want: true,
		},
		{
			name:       "start past tolerance still inside hour window",
			eventStart: at(10, 19, 30), eventEnd: at(10, 21, 0),
			slotStart: at(10, 18, 0), slotEnd: at(10, 22, 0),
			want: true,
		},
		{
			name:       "starts before window with majority overlap",
			eventStart: at(10, 16, 0), eventEnd: at(10, 20, 0),
			slotStart: at(10, 18, 0), slotEnd: at(10, 22, 0),
			want: true,
		},
		{
			name:       "starts before window with minority overlap",
			eventStart: at(10, 15, 0), eventEnd: at(10, 20, 0),
			slotStart: at(10, 18, 0), slotEnd: at(10, 22, 0),
			want: false,
		},
		{
			name:       "disjoint",
			eventStart: at(10, 8, 0), eventEnd: at(10, 12, 0),
			slotStart: at(10, 18, 0), slotEnd: at(10, 22, 0),
			want: false,
		},
		{
			name:       "midnight slot matches late evening event",
			eventStart: at(10, 23, 0), eventEnd: at(11, 1, 0),
			slotStart: at(10, 22, 0), slotEnd: at(10, 2, 0),
			want: true,
		},
		{
			name:       "midnight slot matches early morning event",
			eventStart: at(11, 1, 0), eventEnd: at(11, 3, 0),
			slotStart: at(10, 22, 0), slotEnd: at(10, 2, 0),
			want: true,
		},
		{
			name:       "midnight slot end hour is exclusive",
			eventStart: at(11, 2, 0), eventEnd: at(11, 4, 0),
			slotStart: at(10, 22, 0), slotEnd: at(10, 2, 0),
			want: false,
		},
		{
			name:       "midnight-crossing event with exact start",
			eventStart: at(10, 22, 0), eventEnd: at(10, 2, 0),
			slotStart: at(10, 22, 0), slotEnd: at(10, 2, 0),
			want: true,
		},
		{
			name:       "slot end hour is exclusive",
			eventStart: at(10, 22, 0), eventEnd: at(10, 23, 0),
			slotStart: at(10, 18, 0), slotEnd: at(10, 22, 0),
			want: false,
		},
		{
			name:       "zero event start never matches",
			eventStart: time.Time{}, eventEnd: at(10, 22, 0),
			slotStart: at(10, 18, 0), slotEnd: at(10, 22, 0),
			want: false,
		},
		{
			name:       "zero event end never matches",
			eventStart: at(10, 18, 0), eventEnd: time.Time{},
			slotStart: at(10, 18, 0), slotEnd: at(10, 22, 0),
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EventMatchesSlot(tc.eventStart, tc.eventEnd, tc.slotStart, tc.slotEnd)
			assert.Equal(t, tc.want, got)
		})
	}
}

// An event that started the previous evening and runs past midnight must
// still be matchable against the next day's occurrence of a midnight slot,
// since the date index carries it into that day.
func TestEventMatchesSlotCrossDayCarryOver(t *testing.T) {
	eventStart := at(10, 22, 0) // Friday evening
	eventEnd := at(11, 2, 0)

	slotStart := at(11, 22, 0) // Saturday's occurrence of the same window
	slotEnd := at(12, 2, 0)

	assert.True(t, EventMatchesSlot(eventStart, eventEnd, slotStart, slotEnd))
}
