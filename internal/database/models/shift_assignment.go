package models

import (
	"github.com/google/uuid"
)

// ShiftAssignment links a professional to a shift
type ShiftAssignment struct {
	BaseModel
	ShiftID        uuid.UUID        `json:"shift_id" gorm:"type:uuid;not null;index:idx_shift_professional,unique" validate:"required"`
	ProfessionalID uuid.UUID        `json:"professional_id" gorm:"type:uuid;not null;index:idx_shift_professional,unique" validate:"required"`
	Status         AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	// Relationships
	Shift        Shift        `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	Professional Professional `json:"professional,omitempty" gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftAssignment
func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}
