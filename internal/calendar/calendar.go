// Package calendar groups concrete shift occurrences into buckets defined by
// recurring weekly templates, for display on the hub scheduling calendar.
//
// The package is pure: it performs no I/O, keeps no state between calls and
// never mutates its inputs. Malformed input degrades the result instead of
// failing it, so a calendar render always gets something to draw.
package calendar

import (
	"fmt"
	"time"
)

// View selects the visible date range for a bucketing pass.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// IsValid checks if the View is valid
func (v View) IsValid() bool {
	switch v {
	case ViewMonth, ViewWeek, ViewDay:
		return true
	}
	return false
}

// Event is one concrete shift occurrence on the calendar. AssignedStaff is
// computed by the data-fetching layer; this package never inspects booking
// payloads itself. A zero Start or End marks an event whose source date could
// not be parsed: it matches no slot and is returned ungrouped.
type Event struct {
	ID            string    `json:"id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	AssignedStaff int       `json:"assigned_staff"`
}

// Template is a recurring weekly time slot defined by a hub admin.
// StartTime and EndTime are wall-clock "HH:MM" strings; an EndTime at or
// before StartTime means the slot runs past midnight into the next day.
type Template struct {
	ID            string       `json:"id"`
	DayOfWeek     time.Weekday `json:"day_of_week"`
	StartTime     string       `json:"start_time"`
	EndTime       string       `json:"end_time"`
	Label         string       `json:"label"`
	RequiredStaff int          `json:"required_staff"`
}

// BucketStatus is the fill state of a bucket, derived from its counts.
type BucketStatus string

const (
	StatusConfirmed  BucketStatus = "confirmed"
	StatusPending    BucketStatus = "pending"
	StatusUnassigned BucketStatus = "unassigned"
)

// Bucket is one template occurrence on one calendar day and the events
// claimed into it.
type Bucket struct {
	TemplateID string    `json:"template_id"`
	Label      string    `json:"label"`
	Day        time.Time `json:"day"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Filled     int       `json:"filled"`
	Required   int       `json:"required"`
	Events     []Event   `json:"events"`
}

// Status derives the fill state. Confirmed wins over unassigned when the
// template requires no staff.
func (b Bucket) Status() BucketStatus {
	switch {
	case b.Filled >= b.Required:
		return StatusConfirmed
	case b.Filled > 0:
		return StatusPending
	default:
		return StatusUnassigned
	}
}

// Resource is the display payload attached to a bucket event.
type Resource struct {
	Type   string       `json:"type"`
	Status BucketStatus `json:"status"`
	Bucket Bucket       `json:"bucket"`
}

// DisplayEvent is the renderable aggregate handed to the calendar UI.
type DisplayEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Resource Resource  `json:"resource"`
}

// Options describes the visible window of one bucketing pass.
type Options struct {
	View        View
	CurrentDate time.Time
}

// Result is the output of a bucketing pass. Every input event appears exactly
// once: either inside one bucket's event list or in Ungrouped.
type Result struct {
	Buckets   []DisplayEvent `json:"bucket_events"`
	Ungrouped []Event        `json:"ungrouped_events"`
}

// displayEvent builds the renderable wrapper for a bucket.
func displayEvent(b Bucket) DisplayEvent {
	return DisplayEvent{
		ID:    fmt.Sprintf("bucket-%s-%d", b.TemplateID, b.Day.UnixMilli()),
		Title: fmt.Sprintf("%s: %d/%d", b.Label, b.Filled, b.Required),
		Start: b.Start,
		End:   b.End,
		Resource: Resource{
			Type:   "bucket",
			Status: b.Status(),
			Bucket: b,
		},
	}
}
