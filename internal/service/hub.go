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

// HubService handles business logic for hubs
type HubService struct {
	repo      repository.HubRepositoryInterface
	validator *validator.Validate
}

// NewHubService creates a new hub service
func NewHubService(repo repository.HubRepositoryInterface, validator *validator.Validate) *HubService {
	return &HubService{repo: repo, validator: validator}
}

// CreateHubRequest represents the request to create a hub
type CreateHubRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=80"`
	Title    string `json:"title" validate:"required,min=1,max=120"`
	Address  string `json:"address,omitempty" validate:"max=200"`
	Timezone string `json:"timezone,omitempty" validate:"max=60"`
}

// UpdateHubRequest represents the request to update a hub
type UpdateHubRequest struct {
	Title    *string           `json:"title,omitempty"`
	Address  *string           `json:"address,omitempty"`
	Timezone *string           `json:"timezone,omitempty"`
	Status   *models.HubStatus `json:"status,omitempty"`
}

// HubResponse represents the response for hub operations
type HubResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Title     string           `json:"title"`
	Address   string           `json:"address"`
	Timezone  string           `json:"timezone"`
	Status    models.HubStatus `json:"status"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
}

// HubListResponse represents a paginated list of hubs
type HubListResponse struct {
	Hubs     []HubResponse `json:"hubs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Create creates a new hub
func (s *HubService) Create(req *CreateHubRequest) (*HubResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrHubExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check hub name: %w", err)
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "Local"
	}

	hub := &models.Hub{
		Name:     req.Name,
		Title:    req.Title,
		Address:  req.Address,
		Timezone: timezone,
		Status:   models.HubStatusActive,
	}

	if err := s.repo.Create(hub); err != nil {
		return nil, fmt.Errorf("failed to create hub: %w", err)
	}

	return s.toResponse(hub), nil
}

// GetByID retrieves a hub by ID
func (s *HubService) GetByID(id uuid.UUID) (*HubResponse, error) {
	hub, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHubNotFound
		}
		return nil, fmt.Errorf("failed to get hub: %w", err)
	}

	return s.toResponse(hub), nil
}

// GetAll retrieves hubs with pagination
func (s *HubService) GetAll(page, pageSize int) (*HubListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	hubs, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get hubs: %w", err)
	}

	responses := make([]HubResponse, len(hubs))
	for i, hub := range hubs {
		responses[i] = *s.toResponse(&hub)
	}

	return &HubListResponse{
		Hubs:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a hub
func (s *HubService) Update(id uuid.UUID, req *UpdateHubRequest) (*HubResponse, error) {
	hub, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHubNotFound
		}
		return nil, fmt.Errorf("failed to get hub: %w", err)
	}

	if req.Title != nil {
		hub.Title = *req.Title
	}
	if req.Address != nil {
		hub.Address = *req.Address
	}
	if req.Timezone != nil {
		hub.Timezone = *req.Timezone
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		hub.Status = *req.Status
	}

	if err := s.repo.Update(hub); err != nil {
		return nil, fmt.Errorf("failed to update hub: %w", err)
	}

	return s.toResponse(hub), nil
}

// Delete deletes a hub
func (s *HubService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHubNotFound
		}
		return fmt.Errorf("failed to get hub: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete hub: %w", err)
	}

	return nil
}

// toResponse converts a hub model to response
func (s *HubService) toResponse(hub *models.Hub) *HubResponse {
	return &HubResponse{
		ID:        hub.ID,
		Name:      hub.Name,
		Title:     hub.Title,
		Address:   hub.Address,
		Timezone:  hub.Timezone,
		Status:    hub.Status,
		CreatedAt: hub.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: hub.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
