package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseInstant(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "RFC3339",
			input: "2025-01-10T18:00:00Z",
			want:  time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC),
		},
		{
			name:  "date and time without zone",
			input: "2025-01-10T18:00:00",
			want:  time.Date(2025, 1, 10, 18, 0, 0, 0, time.Local),
		},
		{
			name:  "date only",
			input: "2025-01-10",
			want:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		},
		{
			name:  "garbage",
			input: "not-a-date",
			want:  time.Time{},
		},
		{
			name:  "empty",
			input: "",
			want:  time.Time{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseInstant(tc.input)
			assert.True(t, tc.want.Equal(got), "got %v, want %v", got, tc.want)
		})
	}
}

func TestDateKeyUsesLocalDateComponents(t *testing.T) {
	morning := time.Date(2025, 1, 10, 0, 1, 0, 0, time.Local)
	night := time.Date(2025, 1, 10, 23, 59, 0, 0, time.Local)

	assert.Equal(t, "2025-01-10", DateKey(morning))
	assert.Equal(t, DateKey(morning), DateKey(night))
}

func TestParseTimeOfDay(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		wantHours   int
		wantMinutes int
	}{
		{name: "standard", input: "18:30", wantHours: 18, wantMinutes: 30},
		{name: "midnight", input: "00:00", wantHours: 0, wantMinutes: 0},
		{name: "out of range parses as-is", input: "25:99", wantHours: 25, wantMinutes: 99},
		{name: "hours only", input: "7", wantHours: 7, wantMinutes: 0},
		{name: "non-numeric", input: "ab:cd", wantHours: 0, wantMinutes: 0},
		{name: "empty", input: "", wantHours: 0, wantMinutes: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, m := ParseTimeOfDay(tc.input)
			assert.Equal(t, tc.wantHours, h)
			assert.Equal(t, tc.wantMinutes, m)
		})
	}
}

func TestCombineDateAndTime(t *testing.T) {
	base := time.Date(2025, 1, 10, 13, 45, 59, 123, time.Local)

	got := CombineDateAndTime(base, 18, 30)

	assert.Equal(t, time.Date(2025, 1, 10, 18, 30, 0, 0, time.Local), got)
	assert.Zero(t, got.Second())
	assert.Zero(t, got.Nanosecond())
}
