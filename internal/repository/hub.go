package repository

import (
	"hospogo-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HubRepository handles database operations for hubs
type HubRepository struct {
	db *gorm.DB
}

// NewHubRepository creates a new hub repository
func NewHubRepository(db *gorm.DB) *HubRepository {
	return &HubRepository{db: db}
}

// Create creates a new hub
func (r *HubRepository) Create(hub *models.Hub) error {
	return r.db.Create(hub).Error
}

// GetByID retrieves a hub by ID
func (r *HubRepository) GetByID(id uuid.UUID) (*models.Hub, error) {
	var hub models.Hub
	err := r.db.First(&hub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hub, nil
}

// GetByName retrieves a hub by its unique name
func (r *HubRepository) GetByName(name string) (*models.Hub, error) {
	var hub models.Hub
	err := r.db.First(&hub, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &hub, nil
}

// GetAll retrieves all hubs with pagination
func (r *HubRepository) GetAll(limit, offset int) ([]models.Hub, int64, error) {
	var hubs []models.Hub
	var total int64

	if err := r.db.Model(&models.Hub{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&hubs).Error
	return hubs, total, err
}

// Update updates a hub
func (r *HubRepository) Update(hub *models.Hub) error {
	return r.db.Save(hub).Error
}

// Delete deletes a hub
func (r *HubRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Hub{}, "id = ?", id).Error
}
