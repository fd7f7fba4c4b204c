package service

import (
	"time"

	"hospogo-backend/internal/calendar"
	"hospogo-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// HubServiceInterface defines the interface for hub service operations
type HubServiceInterface interface {
	Create(req *CreateHubRequest) (*HubResponse, error)
	GetByID(id uuid.UUID) (*HubResponse, error)
	GetAll(page, pageSize int) (*HubListResponse, error)
	Update(id uuid.UUID, req *UpdateHubRequest) (*HubResponse, error)
	Delete(id uuid.UUID) error
}

// ProfessionalServiceInterface defines the interface for professional service operations
type ProfessionalServiceInterface interface {
	Create(req *CreateProfessionalRequest) (*ProfessionalResponse, error)
	GetByID(id uuid.UUID) (*ProfessionalResponse, error)
	GetAll(page, pageSize int, activeOnly bool) (*ProfessionalListResponse, error)
	Update(id uuid.UUID, req *UpdateProfessionalRequest) (*ProfessionalResponse, error)
	Delete(id uuid.UUID) error
}

// ShiftTemplateServiceInterface defines the interface for shift template service operations
type ShiftTemplateServiceInterface interface {
	Create(req *CreateShiftTemplateRequest) (*ShiftTemplateResponse, error)
	GetByID(id uuid.UUID) (*ShiftTemplateResponse, error)
	GetByHub(hubID uuid.UUID) ([]ShiftTemplateResponse, error)
	Update(id uuid.UUID, req *UpdateShiftTemplateRequest) (*ShiftTemplateResponse, error)
	Delete(id uuid.UUID) error
}

// ShiftServiceInterface defines the interface for shift service operations
type ShiftServiceInterface interface {
	Create(req *CreateShiftRequest) (*ShiftResponse, error)
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	GetByHub(hubID uuid.UUID, page, pageSize int, openOnly bool) (*ShiftListResponse, error)
	Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error)
	Delete(id uuid.UUID) error
	Assign(shiftID, professionalID uuid.UUID) (*ShiftResponse, error)
	Unassign(shiftID, professionalID uuid.UUID) error
	UpdateAssignmentStatus(shiftID, professionalID uuid.UUID, status models.AssignmentStatus) error
}

// CalendarServiceInterface defines the interface for calendar service operations
type CalendarServiceInterface interface {
	Buckets(hubID uuid.UUID, view calendar.View, date time.Time) (*CalendarResponse, error)
}
