package service

import (
	"errors"
	"fmt"

	"hospogo-backend/internal/database/models"
	apperrors "hospogo-backend/internal/errors"
	"hospogo-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfessionalService handles business logic for professionals
type ProfessionalService struct {
	repo      repository.ProfessionalRepositoryInterface
	validator *validator.Validate
}

// NewProfessionalService creates a new professional service
func NewProfessionalService(repo repository.ProfessionalRepositoryInterface, validator *validator.Validate) *ProfessionalService {
	return &ProfessionalService{repo: repo, validator: validator}
}

// CreateProfessionalRequest represents the request to create a professional
type CreateProfessionalRequest struct {
	Email       string                  `json:"email" validate:"required,email"`
	DisplayName string                  `json:"display_name" validate:"required,min=1,max=120"`
	Role        models.ProfessionalRole `json:"role" validate:"required"`
}

// UpdateProfessionalRequest represents the request to update a professional
type UpdateProfessionalRequest struct {
	DisplayName *string                  `json:"display_name,omitempty"`
	Role        *models.ProfessionalRole `json:"role,omitempty"`
	IsActive    *bool                    `json:"is_active,omitempty"`
}

// ProfessionalResponse represents the response for professional operations
type ProfessionalResponse struct {
	ID          uuid.UUID               `json:"id"`
	Email       string                  `json:"email"`
	DisplayName string                  `json:"display_name"`
	Role        models.ProfessionalRole `json:"role"`
	IsActive    bool                    `json:"is_active"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// ProfessionalListResponse represents a paginated list of professionals
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new professional
func (s *ProfessionalService) Create(req *CreateProfessionalRequest) (*ProfessionalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown professional role")
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrProfessionalExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check professional email: %w", err)
	}

	professional := &models.Professional{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		IsActive:    true,
	}

	if err := s.repo.Create(professional); err != nil {
		return nil, fmt.Errorf("failed to create professional: %w", err)
	}

	return s.toResponse(professional), nil
}

// GetByID retrieves a professional by ID
func (s *ProfessionalService) GetByID(id uuid.UUID) (*ProfessionalResponse, error) {
	professional, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfessionalNotFound
		}
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}

	return s.toResponse(professional), nil
}

// GetAll retrieves professionals with pagination. When activeOnly is set,
// inactive accounts are filtered out.
func (s *ProfessionalService) GetAll(page, pageSize int, activeOnly bool) (*ProfessionalListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize

	var (
		professionals []models.Professional
		total         int64
		err           error
	)
	if activeOnly {
		professionals, total, err = s.repo.GetActive(pageSize, offset)
	} else {
		professionals, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get professionals: %w", err)
	}

	responses := make([]ProfessionalResponse, len(professionals))
	for i, professional := range professionals {
		responses[i] = *s.toResponse(&professional)
	}

	return &ProfessionalListResponse{
		Professionals: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update updates a professional
func (s *ProfessionalService) Update(id uuid.UUID, req *UpdateProfessionalRequest) (*ProfessionalResponse, error) {
	professional, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfessionalNotFound
		}
		return nil, fmt.Errorf("failed to get professional: %w", err)
	}

	if req.DisplayName != nil {
		professional.DisplayName = *req.DisplayName
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", "unknown professional role")
		}
		professional.Role = *req.Role
	}
	if req.IsActive != nil {
		professional.IsActive = *req.IsActive
	}

	if err := s.repo.Update(professional); err != nil {
		return nil, fmt.Errorf("failed to update professional: %w", err)
	}

	return s.toResponse(professional), nil
}

// Delete deletes a professional
func (s *ProfessionalService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProfessionalNotFound
		}
		return fmt.Errorf("failed to get professional: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete professional: %w", err)
	}

	return nil
}

// toResponse converts a professional model to response
func (s *ProfessionalService) toResponse(p *models.Professional) *ProfessionalResponse {
	return &ProfessionalResponse{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        p.Role,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
