package models

// Hub represents a venue (barbershop, bar, restaurant) that posts shifts
type Hub struct {
	BaseModel
	Name     string    `json:"name" gorm:"size:80;not null;uniqueIndex" validate:"required,min=1,max=80"`
	Title    string    `json:"title" gorm:"size:120;not null" validate:"required,min=1,max=120"`
	Address  string    `json:"address" gorm:"size:200" validate:"max=200"`
	Timezone string    `json:"timezone" gorm:"size:60;default:'Local'"`
	Status   HubStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	// Relationships
	Templates []ShiftTemplate `json:"templates,omitempty" gorm:"foreignKey:HubID;constraint:OnDelete:CASCADE"`
	Shifts    []Shift         `json:"shifts,omitempty" gorm:"foreignKey:HubID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Hub
func (Hub) TableName() string {
	return "hubs"
}
