package testutils

import (
	"time"

	"hospogo-backend/internal/database/models"

	"github.com/google/uuid"
)

// HubFactory provides methods to create test Hub data
type HubFactory struct{}

// NewHubFactory creates a new HubFactory
func NewHubFactory() *HubFactory {
	return &HubFactory{}
}

// Create creates a test Hub with default values
func (f *HubFactory) Create() *models.Hub {
	return &models.Hub{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "tonys-" + uuid.NewString()[:8],
		Title:    "Tony's Barbershop",
		Address:  "12 High Street",
		Timezone: "Local",
		Status:   models.HubStatusActive,
	}
}

// WithName sets a custom name for the hub
func (f *HubFactory) WithName(name string) *models.Hub {
	hub := f.Create()
	hub.Name = name
	return hub
}

// Suspended creates a suspended hub
func (f *HubFactory) Suspended() *models.Hub {
	hub := f.Create()
	hub.Status = models.HubStatusSuspended
	return hub
}

// ProfessionalFactory provides methods to create test Professional data
type ProfessionalFactory struct{}

// NewProfessionalFactory creates a new ProfessionalFactory
func NewProfessionalFactory() *ProfessionalFactory {
	return &ProfessionalFactory{}
}

// Create creates a test Professional with default values
func (f *ProfessionalFactory) Create() *models.Professional {
	return &models.Professional{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:       uuid.NewString()[:8] + "@example.com",
		DisplayName: "Jo Test",
		Role:        models.RoleBarber,
		IsActive:    true,
	}
}

// WithRole sets a custom role for the professional
func (f *ProfessionalFactory) WithRole(role models.ProfessionalRole) *models.Professional {
	p := f.Create()
	p.Role = role
	return p
}

// Inactive creates an inactive professional
func (f *ProfessionalFactory) Inactive() *models.Professional {
	p := f.Create()
	p.IsActive = false
	return p
}

// ShiftTemplateFactory provides methods to create test ShiftTemplate data
type ShiftTemplateFactory struct{}

// NewShiftTemplateFactory creates a new ShiftTemplateFactory
func NewShiftTemplateFactory() *ShiftTemplateFactory {
	return &ShiftTemplateFactory{}
}

// Create creates a Friday dinner template for the given hub
func (f *ShiftTemplateFactory) Create(hubID uuid.UUID) *models.ShiftTemplate {
	return &models.ShiftTemplate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		HubID:         hubID,
		DayOfWeek:     5,
		StartTime:     "18:00",
		EndTime:       "22:00",
		Label:         "Dinner",
		RequiredStaff: 2,
	}
}

// WithSlot sets a custom day and time window
func (f *ShiftTemplateFactory) WithSlot(hubID uuid.UUID, dayOfWeek int, startTime, endTime string) *models.ShiftTemplate {
	t := f.Create(hubID)
	t.DayOfWeek = dayOfWeek
	t.StartTime = startTime
	t.EndTime = endTime
	return t
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates an open shift for the given hub and times
func (f *ShiftFactory) Create(hubID uuid.UUID, startAt, endAt time.Time) *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		HubID:   hubID,
		StartAt: startAt,
		EndAt:   endAt,
		Status:  models.ShiftStatusOpen,
	}
}

// FromTemplate creates a shift linked to a template
func (f *ShiftFactory) FromTemplate(template *models.ShiftTemplate, startAt, endAt time.Time) *models.Shift {
	shift := f.Create(template.HubID, startAt, endAt)
	shift.TemplateID = &template.ID
	return shift
}
