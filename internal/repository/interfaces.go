package repository

import (
	"time"

	"hospogo-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// HubRepositoryInterface defines the interface for hub repository operations
type HubRepositoryInterface interface {
	Create(hub *models.Hub) error
	GetByID(id uuid.UUID) (*models.Hub, error)
	GetByName(name string) (*models.Hub, error)
	GetAll(limit, offset int) ([]models.Hub, int64, error)
	Update(hub *models.Hub) error
	Delete(id uuid.UUID) error
}

// ProfessionalRepositoryInterface defines the interface for professional repository operations
type ProfessionalRepositoryInterface interface {
	Create(professional *models.Professional) error
	GetByID(id uuid.UUID) (*models.Professional, error)
	GetByEmail(email string) (*models.Professional, error)
	GetAll(limit, offset int) ([]models.Professional, int64, error)
	GetActive(limit, offset int) ([]models.Professional, int64, error)
	Update(professional *models.Professional) error
	Delete(id uuid.UUID) error
}

// ShiftTemplateRepositoryInterface defines the interface for shift template repository operations
type ShiftTemplateRepositoryInterface interface {
	Create(template *models.ShiftTemplate) error
	GetByID(id uuid.UUID) (*models.ShiftTemplate, error)
	GetByHubID(hubID uuid.UUID) ([]models.ShiftTemplate, error)
	GetByHubAndDay(hubID uuid.UUID, dayOfWeek int) ([]models.ShiftTemplate, error)
	ExistsDuplicate(hubID uuid.UUID, dayOfWeek int, startTime, endTime string, excludeID *uuid.UUID) (bool, error)
	NextPosition(hubID uuid.UUID) (int, error)
	Update(template *models.ShiftTemplate) error
	Delete(id uuid.UUID) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetByHubID(hubID uuid.UUID, limit, offset int) ([]models.Shift, int64, error)
	GetByHubAndRange(hubID uuid.UUID, from, to time.Time) ([]models.Shift, error)
	GetOpenByHub(hubID uuid.UUID, limit, offset int) ([]models.Shift, int64, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
	CreateAssignment(assignment *models.ShiftAssignment) error
	GetAssignment(shiftID, professionalID uuid.UUID) (*models.ShiftAssignment, error)
	UpdateAssignment(assignment *models.ShiftAssignment) error
	DeleteAssignment(shiftID, professionalID uuid.UUID) error
	CheckConflict(professionalID uuid.UUID, startAt, endAt time.Time, excludeShiftID *uuid.UUID) (bool, error)
}
