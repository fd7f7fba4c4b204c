package repository

import (
	"hospogo-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftTemplateRepository handles database operations for shift templates
type ShiftTemplateRepository struct {
	db *gorm.DB
}

// NewShiftTemplateRepository creates a new shift template repository
func NewShiftTemplateRepository(db *gorm.DB) *ShiftTemplateRepository {
	return &ShiftTemplateRepository{db: db}
}

// Create creates a new shift template
func (r *ShiftTemplateRepository) Create(template *models.ShiftTemplate) error {
	return r.db.Create(template).Error
}

// GetByID retrieves a shift template by ID
func (r *ShiftTemplateRepository) GetByID(id uuid.UUID) (*models.ShiftTemplate, error) {
	var template models.ShiftTemplate
	err := r.db.First(&template, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

// GetByHubID retrieves all templates for a hub in authoring order. The order
// must stay stable between calls: bucketing resolves overlapping slots by
// first-claim-wins over this exact sequence.
func (r *ShiftTemplateRepository) GetByHubID(hubID uuid.UUID) ([]models.ShiftTemplate, error) {
	var templates []models.ShiftTemplate
	err := r.db.Where("hub_id = ?", hubID).
		Order("position ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&templates).Error
	return templates, err
}

// GetByHubAndDay retrieves a hub's templates recurring on one weekday
func (r *ShiftTemplateRepository) GetByHubAndDay(hubID uuid.UUID, dayOfWeek int) ([]models.ShiftTemplate, error) {
	var templates []models.ShiftTemplate
	err := r.db.Where("hub_id = ? AND day_of_week = ?", hubID, dayOfWeek).
		Order("position ASC").
		Order("created_at ASC").
		Find(&templates).Error
	return templates, err
}

// ExistsDuplicate checks whether a hub already has a template for the same
// weekday and time window
func (r *ShiftTemplateRepository) ExistsDuplicate(hubID uuid.UUID, dayOfWeek int, startTime, endTime string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.ShiftTemplate{}).Where(
		"hub_id = ? AND day_of_week = ? AND start_time = ? AND end_time = ?",
		hubID, dayOfWeek, startTime, endTime,
	)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// NextPosition returns the next authoring position for a hub's templates
func (r *ShiftTemplateRepository) NextPosition(hubID uuid.UUID) (int, error) {
	var max *int
	err := r.db.Model(&models.ShiftTemplate{}).
		Where("hub_id = ?", hubID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// Update updates a shift template
func (r *ShiftTemplateRepository) Update(template *models.ShiftTemplate) error {
	return r.db.Save(template).Error
}

// Delete deletes a shift template
func (r *ShiftTemplateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftTemplate{}, "id = ?", id).Error
}
