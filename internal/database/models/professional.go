package models

// Professional represents a gig worker who picks up shifts at hubs
type Professional struct {
	BaseModel
	Email       string           `json:"email" gorm:"size:120;not null;uniqueIndex" validate:"required,email"`
	DisplayName string           `json:"display_name" gorm:"size:120;not null" validate:"required,min=1,max=120"`
	Role        ProfessionalRole `json:"role" gorm:"type:varchar(30);not null" validate:"required"`
	IsActive    bool             `json:"is_active" gorm:"default:true"`

	// Relationships
	Assignments []ShiftAssignment `json:"assignments,omitempty" gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Professional
func (Professional) TableName() string {
	return "professionals"
}
