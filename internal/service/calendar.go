package service

import (
	"errors"
	"fmt"
	"time"

	"hospogo-backend/internal/calendar"
	"hospogo-backend/internal/database/models"
	apperrors "hospogo-backend/internal/errors"
	"hospogo-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarService assembles the bucketed calendar for a hub. It loads the
// hub's shifts and templates, computes the assigned-staff count for each
// shift from its assignment rows, and hands plain values to the calendar
// package for grouping.
type CalendarService struct {
	hubRepo      repository.HubRepositoryInterface
	shiftRepo    repository.ShiftRepositoryInterface
	templateRepo repository.ShiftTemplateRepositoryInterface
}

// NewCalendarService creates a new calendar service
func NewCalendarService(
	hubRepo repository.HubRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	templateRepo repository.ShiftTemplateRepositoryInterface,
) *CalendarService {
	return &CalendarService{
		hubRepo:      hubRepo,
		shiftRepo:    shiftRepo,
		templateRepo: templateRepo,
	}
}

// CalendarResponse represents the bucketed calendar for one visible range
type CalendarResponse struct {
	HubID           uuid.UUID               `json:"hub_id"`
	View            calendar.View           `json:"view"`
	RangeStart      time.Time               `json:"range_start"`
	RangeEnd        time.Time               `json:"range_end"`
	BucketEvents    []calendar.DisplayEvent `json:"bucket_events"`
	UngroupedEvents []calendar.Event        `json:"ungrouped_events"`
}

// Buckets returns the bucketed calendar of a hub for the range containing
// date under the given view.
func (s *CalendarService) Buckets(hubID uuid.UUID, view calendar.View, date time.Time) (*CalendarResponse, error) {
	if !view.IsValid() {
		return nil, apperrors.ErrInvalidView
	}

	if _, err := s.hubRepo.GetByID(hubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHubNotFound
		}
		return nil, fmt.Errorf("failed to get hub: %w", err)
	}

	opts := calendar.Options{View: view, CurrentDate: date}
	rangeStart, rangeEnd := calendar.RangeFor(opts)

	// rangeEnd is midnight of the last visible day. Fetch with an exclusive
	// upper bound one day later so shifts starting late on that day are
	// included; the overlap query already picks up shifts that started the
	// previous evening and run past midnight into the range.
	shifts, err := s.shiftRepo.GetByHubAndRange(hubID, rangeStart, rangeEnd.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}

	templates, err := s.templateRepo.GetByHubID(hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift templates: %w", err)
	}

	result := calendar.Group(toCalendarEvents(shifts), toCalendarTemplates(templates), opts)

	return &CalendarResponse{
		HubID:           hubID,
		View:            view,
		RangeStart:      rangeStart,
		RangeEnd:        rangeEnd,
		BucketEvents:    result.Buckets,
		UngroupedEvents: result.Ungrouped,
	}, nil
}

// toCalendarEvents maps shift rows to calendar events, flattening each
// shift's assignments into a single assigned-staff count.
func toCalendarEvents(shifts []models.Shift) []calendar.Event {
	events := make([]calendar.Event, len(shifts))
	for i, shift := range shifts {
		events[i] = calendar.Event{
			ID:            shift.ID.String(),
			Start:         shift.StartAt,
			End:           shift.EndAt,
			AssignedStaff: shift.AssignedStaffCount(),
		}
	}
	return events
}

// toCalendarTemplates maps template rows to calendar templates, preserving
// the repository's position order so bucket claiming stays deterministic.
func toCalendarTemplates(templates []models.ShiftTemplate) []calendar.Template {
	out := make([]calendar.Template, len(templates))
	for i, t := range templates {
		out[i] = calendar.Template{
			ID:            t.ID.String(),
			DayOfWeek:     time.Weekday(t.DayOfWeek),
			StartTime:     t.StartTime,
			EndTime:       t.EndTime,
			Label:         t.Label,
			RequiredStaff: t.RequiredStaff,
		}
	}
	return out
}
