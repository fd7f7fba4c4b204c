package models

import (
	"github.com/google/uuid"
)

// ShiftTemplate represents a recurring weekly time slot defined by a hub
// admin, e.g. "Friday dinner rush, 18:00-02:00, needs 3 staff". StartTime
// and EndTime are wall-clock HH:MM strings; an end at or before the start
// means the slot runs past midnight.
type ShiftTemplate struct {
	BaseModel
	HubID         uuid.UUID `json:"hub_id" gorm:"type:uuid;not null;index" validate:"required"`
	DayOfWeek     int       `json:"day_of_week" gorm:"not null" validate:"min=0,max=6"`
	StartTime     string    `json:"start_time" gorm:"size:5;not null" validate:"required"`
	EndTime       string    `json:"end_time" gorm:"size:5;not null" validate:"required"`
	Label         string    `json:"label" gorm:"size:120;not null" validate:"required,min=1,max=120"`
	RequiredStaff int       `json:"required_staff" gorm:"not null;default:1" validate:"min=0"`
	// Position preserves authoring order; bucketing iterates templates in
	// this order and it decides which template claims an ambiguous event.
	Position int `json:"position" gorm:"not null;default:0"`

	// Relationships
	Hub Hub `json:"hub,omitempty" gorm:"foreignKey:HubID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftTemplate
func (ShiftTemplate) TableName() string {
	return "shift_templates"
}
