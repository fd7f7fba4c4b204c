package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift represents one concrete occurrence on a hub's calendar. EndAt may
// fall on the next calendar day for shifts that run past midnight.
type Shift struct {
	BaseModel
	HubID      uuid.UUID   `json:"hub_id" gorm:"type:uuid;not null;index" validate:"required"`
	TemplateID *uuid.UUID  `json:"template_id,omitempty" gorm:"type:uuid;index"`
	StartAt    time.Time   `json:"start_at" gorm:"not null;index" validate:"required"`
	EndAt      time.Time   `json:"end_at" gorm:"not null" validate:"required"`
	Status     ShiftStatus `json:"status" gorm:"type:varchar(20);not null;default:'open'"`
	Notes      string      `json:"notes" gorm:"type:text"`

	// Relationships
	Hub         Hub               `json:"hub,omitempty" gorm:"foreignKey:HubID;constraint:OnDelete:CASCADE"`
	Template    *ShiftTemplate    `json:"template,omitempty" gorm:"foreignKey:TemplateID;constraint:OnDelete:SET NULL"`
	Assignments []ShiftAssignment `json:"assignments,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// AssignedStaffCount sums the assignments that fill the shift.
func (s *Shift) AssignedStaffCount() int {
	count := 0
	for _, a := range s.Assignments {
		if a.Status.CountsTowardFill() {
			count++
		}
	}
	return count
}
