package service

import (
	"errors"
	"fmt"
	"time"

	"hospogo-backend/internal/database/models"
	apperrors "hospogo-backend/internal/errors"
	"hospogo-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftService handles business logic for shifts and their assignments
type ShiftService struct {
	repo             repository.ShiftRepositoryInterface
	hubRepo          repository.HubRepositoryInterface
	templateRepo     repository.ShiftTemplateRepositoryInterface
	professionalRepo repository.ProfessionalRepositoryInterface
	validator        *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(
	repo repository.ShiftRepositoryInterface,
	hubRepo repository.HubRepositoryInterface,
	templateRepo repository.ShiftTemplateRepositoryInterface,
	professionalRepo repository.ProfessionalRepositoryInterface,
	validator *validator.Validate,
) *ShiftService {
	return &ShiftService{
		repo:             repo,
		hubRepo:          hubRepo,
		templateRepo:     templateRepo,
		professionalRepo: professionalRepo,
		validator:        validator,
	}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	HubID      uuid.UUID  `json:"hub_id" validate:"required"`
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
	StartAt    time.Time  `json:"start_at" validate:"required"`
	EndAt      time.Time  `json:"end_at" validate:"required"`
	Notes      string     `json:"notes,omitempty"`
}

// UpdateShiftRequest represents the request to update a shift
type UpdateShiftRequest struct {
	StartAt *time.Time          `json:"start_at,omitempty"`
	EndAt   *time.Time          `json:"end_at,omitempty"`
	Status  *models.ShiftStatus `json:"status,omitempty"`
	Notes   *string             `json:"notes,omitempty"`
}

// ShiftResponse represents the response for shift operations
type ShiftResponse struct {
	ID            uuid.UUID          `json:"id"`
	HubID         uuid.UUID          `json:"hub_id"`
	TemplateID    *uuid.UUID         `json:"template_id,omitempty"`
	StartAt       time.Time          `json:"start_at"`
	EndAt         time.Time          `json:"end_at"`
	Status        models.ShiftStatus `json:"status"`
	Notes         string             `json:"notes,omitempty"`
	AssignedStaff int                `json:"assigned_staff"`
	Assignments   []AssignmentInfo   `json:"assignments,omitempty"`
}

// AssignmentInfo is the assignment detail embedded in a shift response
type AssignmentInfo struct {
	ProfessionalID uuid.UUID               `json:"professional_id"`
	Status         models.AssignmentStatus `json:"status"`
}

// ShiftListResponse represents a paginated list of shifts
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new shift. StartAt and EndAt are absolute timestamps, so
// a shift that runs past midnight simply ends on the next calendar day.
func (s *ShiftService) Create(req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.EndAt.After(req.StartAt) {
		return nil, apperrors.ErrInvalidTimeRange
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

	if req.TemplateID != nil {
		template, err := s.templateRepo.GetByID(*req.TemplateID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrShiftTemplateNotFound
			}
			return nil, fmt.Errorf("failed to get shift template: %w", err)
		}
		if template.HubID != req.HubID {
			return nil, apperrors.NewValidationError("template_id", "template belongs to a different hub")
		}
	}

	shift := &models.Shift{
		HubID:      req.HubID,
		TemplateID: req.TemplateID,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Status:     models.ShiftStatusOpen,
		Notes:      req.Notes,
	}

	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// GetByID retrieves a shift by ID
func (s *ShiftService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// GetByHub retrieves shifts of a hub with pagination. When openOnly is set,
// only open shifts are returned.
func (s *ShiftService) GetByHub(hubID uuid.UUID, page, pageSize int, openOnly bool) (*ShiftListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	if _, err := s.hubRepo.GetByID(hubID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHubNotFound
		}
		return nil, fmt.Errorf("failed to get hub: %w", err)
	}

	offset := (page - 1) * pageSize

	var (
		shifts []models.Shift
		total  int64
		err    error
	)
	if openOnly {
		shifts, total, err = s.repo.GetOpenByHub(hubID, pageSize, offset)
	} else {
		shifts, total, err = s.repo.GetByHubID(hubID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i, shift := range shifts {
		responses[i] = *s.toResponse(&shift)
	}

	return &ShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a shift
func (s *ShiftService) Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.StartAt != nil {
		shift.StartAt = *req.StartAt
	}
	if req.EndAt != nil {
		shift.EndAt = *req.EndAt
	}
	if !shift.EndAt.After(shift.StartAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		shift.Status = *req.Status
	}
	if req.Notes != nil {
		shift.Notes = *req.Notes
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// Delete deletes a shift
func (s *ShiftService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	return nil
}

// Assign books a professional onto a shift. The assignment starts out
// pending; once the shift reaches its template's required staff it flips
// to booked.
func (s *ShiftService) Assign(shiftID, professionalID uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	if shift.Status != models.ShiftStatusOpen {
		return nil, apperrors.ErrShiftNotOpen
	}

	professional, err := s.professionalRepo.GetByID(professionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfessionalNotFound
		}
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}
	if !professional.IsActive {
		return nil, apperrors.NewValidationError("professional_id", "professional is inactive")
	}

	if _, err := s.repo.GetAssignment(shiftID, professionalID); err == nil {
		return nil, apperrors.ErrShiftAssignmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}

	conflict, err := s.repo.CheckConflict(professionalID, shift.StartAt, shift.EndAt, &shift.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check schedule conflict: %w", err)
	}
	if conflict {
		return nil, apperrors.ErrScheduleConflict
	}

	if shift.TemplateID != nil {
		template, err := s.templateRepo.GetByID(*shift.TemplateID)
		if err == nil && template.RequiredStaff > 0 && shift.AssignedStaffCount() >= template.RequiredStaff {
			return nil, apperrors.ErrShiftFullyStaffed
		}
	}

	assignment := &models.ShiftAssignment{
		ShiftID:        shiftID,
		ProfessionalID: professionalID,
		Status:         models.AssignmentStatusPending,
	}
	if err := s.repo.CreateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	// Reload so the new assignment is reflected in the fill count.
	shift, err = s.repo.GetByID(shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload shift: %w", err)
	}

	if shift.TemplateID != nil {
		template, terr := s.templateRepo.GetByID(*shift.TemplateID)
		if terr == nil && template.RequiredStaff > 0 && shift.AssignedStaffCount() >= template.RequiredStaff {
			shift.Status = models.ShiftStatusBooked
			if err := s.repo.Update(shift); err != nil {
				return nil, fmt.Errorf("failed to update shift status: %w", err)
			}
		}
	}

	return s.toResponse(shift), nil
}

// Unassign removes a professional from a shift. A booked shift reopens.
func (s *ShiftService) Unassign(shiftID, professionalID uuid.UUID) error {
	shift, err := s.repo.GetByID(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	if _, err := s.repo.GetAssignment(shiftID, professionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := s.repo.DeleteAssignment(shiftID, professionalID); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	if shift.Status == models.ShiftStatusBooked {
		shift.Status = models.ShiftStatusOpen
		if err := s.repo.Update(shift); err != nil {
			return fmt.Errorf("failed to reopen shift: %w", err)
		}
	}

	return nil
}

// UpdateAssignmentStatus confirms or declines an existing assignment
func (s *ShiftService) UpdateAssignmentStatus(shiftID, professionalID uuid.UUID, status models.AssignmentStatus) error {
	if !status.IsValid() {
		return apperrors.ErrInvalidStatus
	}

	assignment, err := s.repo.GetAssignment(shiftID, professionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	assignment.Status = status
	if err := s.repo.UpdateAssignment(assignment); err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}

	return nil
}

// toResponse converts a shift model to response
func (s *ShiftService) toResponse(shift *models.Shift) *ShiftResponse {
	assignments := make([]AssignmentInfo, len(shift.Assignments))
	for i, a := range shift.Assignments {
		assignments[i] = AssignmentInfo{
			ProfessionalID: a.ProfessionalID,
			Status:         a.Status,
		}
	}

	return &ShiftResponse{
		ID:            shift.ID,
		HubID:         shift.HubID,
		TemplateID:    shift.TemplateID,
		StartAt:       shift.StartAt,
		EndAt:         shift.EndAt,
		Status:        shift.Status,
		Notes:         shift.Notes,
		AssignedStaff: shift.AssignedStaffCount(),
		Assignments:   assignments,
	}
}
