package repository

import (
	"hospogo-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfessionalRepository handles database operations for professionals
type ProfessionalRepository struct {
	db *gorm.DB
}

// NewProfessionalRepository creates a new professional repository
func NewProfessionalRepository(db *gorm.DB) *ProfessionalRepository {
	return &ProfessionalRepository{db: db}
}

// Create creates a new professional
func (r *ProfessionalRepository) Create(professional *models.Professional) error {
	return r.db.Create(professional).Error
}

// GetByID retrieves a professional by ID
func (r *ProfessionalRepository) GetByID(id uuid.UUID) (*models.Professional, error) {
	var professional models.Professional
	err := r.db.First(&professional, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

// GetByEmail retrieves a professional by email
func (r *ProfessionalRepository) GetByEmail(email string) (*models.Professional, error) {
	var professional models.Professional
	err := r.db.First(&professional, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

// GetAll retrieves all professionals with pagination
func (r *ProfessionalRepository) GetAll(limit, offset int) ([]models.Professional, int64, error) {
	var professionals []models.Professional
	var total int64

	if err := r.db.Model(&models.Professional{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("display_name ASC").Limit(limit).Offset(offset).Find(&professionals).Error
	return professionals, total, err
}

// GetActive retrieves active professionals with pagination
func (r *ProfessionalRepository) GetActive(limit, offset int) ([]models.Professional, int64, error) {
	var professionals []models.Professional
	var total int64

	query := r.db.Model(&models.Professional{}).Where("is_active = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("display_name ASC").Limit(limit).Offset(offset).Find(&professionals).Error
	return professionals, total, err
}

// Update updates a professional
func (r *ProfessionalRepository) Update(professional *models.Professional) error {
	return r.db.Save(professional).Error
}

// Delete deletes a professional
func (r *ProfessionalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Professional{}, "id = ?", id).Error
}
