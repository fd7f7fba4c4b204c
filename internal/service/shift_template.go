package service

import (
	"errors"
	"fmt"
	"regexp"

	"hospogo-backend/internal/database/models"
	apperrors "hospogo-backend/internal/errors"
	"hospogo-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// timeOfDayPattern is the strict wall-clock format accepted at the API
// boundary. The bucketing engine itself is lenient with stored values, but
// new templates must be well-formed.
var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ShiftTemplateService handles business logic for shift templates
type ShiftTemplateService struct {
	repo      repository.ShiftTemplateRepositoryInterface
	hubRepo   repository.HubRepositoryInterface
	validator *validator.Validate
}

// NewShiftTemplateService creates a new shift template service
func NewShiftTemplateService(repo repository.ShiftTemplateRepositoryInterface, hubRepo repository.HubRepositoryInterface, validator *validator.Validate) *ShiftTemplateService {
	return &ShiftTemplateService{repo: repo, hubRepo: hubRepo, validator: validator}
}

// CreateShiftTemplateRequest represents the request to create a shift template
type CreateShiftTemplateRequest struct {
	HubID         uuid.UUID `json:"hub_id" validate:"required"`
	DayOfWeek     int       `json:"day_of_week" validate:"min=0,max=6"`
	StartTime     string    `json:"start_time" validate:"required"`
	EndTime       string    `json:"end_time" validate:"required"`
	Label         string    `json:"label" validate:"required,min=1,max=120"`
	RequiredStaff int       `json:"required_staff" validate:"min=0"`
}

// UpdateShiftTemplateRequest represents the request to update a shift template
type UpdateShiftTemplateRequest struct {
	DayOfWeek     *int    `json:"day_of_week,omitempty"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	Label         *string `json:"label,omitempty"`
	RequiredStaff *int    `json:"required_staff,omitempty"`
}

// ShiftTemplateResponse represents the response for shift template operations
type ShiftTemplateResponse struct {
	ID            uuid.UUID `json:"id"`
	HubID         uuid.UUID `json:"hub_id"`
	DayOfWeek     int       `json:"day_of_week"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Label         string    `json:"label"`
	RequiredStaff int       `json:"required_staff"`
	Position      int       `json:"position"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

// Create creates a new shift template. Templates where end_time is at or
// before start_time are valid and mean the slot crosses midnight.
func (s *ShiftTemplateService) Create(req *CreateShiftTemplateRequest) (*ShiftTemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !timeOfDayPattern.MatchString(req.StartTime) || !timeOfDayPattern.MatchString(req.EndTime) {
		return nil, apperrors.ErrInvalidTimeOfDay
	}

	hub, err := s.hubRepo.GetByID(req.HubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHubNotFound
		}
		return nil, fmt.Errorf("failed to get hub: %w", err)
	}
	if hub.Status == models.HubStatusSuspended {
		return nil, apperrors.ErrHubSuspended
	}

	exists, err := s.repo.ExistsDuplicate(req.HubID, req.DayOfWeek, req.StartTime, req.EndTime, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check duplicate template: %w", err)
	}
	if exists {
		return nil, apperrors.ErrShiftTemplateExists
	}

	position, err := s.repo.NextPosition(req.HubID)
	if err != nil {
		return nil, fmt.Errorf("failed to determine template position: %w", err)
	}

	template := &models.ShiftTemplate{
		HubID:         req.HubID,
		DayOfWeek:     req.DayOfWeek,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Label:         req.Label,
		RequiredStaff: req.RequiredStaff,
		Position:      position,
	}

	if err := s.repo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create shift template: %w", err)
	}

	return s.toResponse(template), nil
}

// GetByID retrieves a shift template by ID
func (s *ShiftTemplateService) GetByID(id uuid.UUID) (*ShiftTemplateResponse, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get shift template: %w", err)
	}

	return s.toResponse(template), nil
}

// GetByHub retrieves all templates of a hub in stable position order
func (s *ShiftTemplateService) GetByHub(hubID uuid.UUID) ([]ShiftTemplateResponse, error) {
	if _, err := s.hubRepo.GetByID(hubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHubNotFound
		}
		return nil, fmt.Errorf("failed to get hub: %w", err)
	}

	templates, err := s.repo.GetByHubID(hubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift templates: %w", err)
	}

	responses := make([]ShiftTemplateResponse, len(templates))
	for i, template := range templates {
		responses[i] = *s.toResponse(&template)
	}
	return responses, nil
}

// Update updates a shift template
func (s *ShiftTemplateService) Update(id uuid.UUID, req *UpdateShiftTemplateRequest) (*ShiftTemplateResponse, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get shift template: %w", err)
	}

	if req.DayOfWeek != nil {
		if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			return nil, apperrors.ErrInvalidDayOfWeek
		}
		template.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		if !timeOfDayPattern.MatchString(*req.StartTime) {
			return nil, apperrors.ErrInvalidTimeOfDay
		}
		template.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !timeOfDayPattern.MatchString(*req.EndTime) {
			return nil, apperrors.ErrInvalidTimeOfDay
		}
		template.EndTime = *req.EndTime
	}
	if req.Label != nil {
		if *req.Label == "" {
			return nil, apperrors.NewValidationError("label", "must not be empty")
		}
		template.Label = *req.Label
	}
	if req.RequiredStaff != nil {
		if *req.RequiredStaff < 0 {
			return nil, apperrors.NewValidationError("required_staff", "must not be negative")
		}
		template.RequiredStaff = *req.RequiredStaff
	}

	exists, err := s.repo.ExistsDuplicate(template.HubID, template.DayOfWeek, template.StartTime, template.EndTime, &template.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check duplicate template: %w", err)
	}
	if exists {
		return nil, apperrors.ErrShiftTemplateExists
	}

	if err := s.repo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update shift template: %w", err)
	}

	return s.toResponse(template), nil
}

// Delete deletes a shift template
func (s *ShiftTemplateService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftTemplateNotFound
		}
		return fmt.Errorf("failed to get shift template: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift template: %w", err)
	}

	return nil
}

// toResponse converts a shift template model to response
func (s *ShiftTemplateService) toResponse(t *models.ShiftTemplate) *ShiftTemplateResponse {
	return &ShiftTemplateResponse{
		ID:            t.ID,
		HubID:         t.HubID,
		DayOfWeek:     t.DayOfWeek,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		Label:         t.Label,
		RequiredStaff: t.RequiredStaff,
		Position:      t.Position,
		CreatedAt:     t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     t.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
