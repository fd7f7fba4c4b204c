package repository

import (
	"time"

	"hospogo-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID with its assignments
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Preload("Assignments").First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByHubID retrieves all shifts for a hub with pagination
func (r *ShiftRepository) GetByHubID(hubID uuid.UUID, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	if err := r.db.Model(&models.Shift{}).Where("hub_id = ?", hubID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Assignments").
		Where("hub_id = ?", hubID).
		Order("start_at ASC").
		Limit(limit).Offset(offset).
		Find(&shifts).Error
	return shifts, total, err
}

// GetByHubAndRange retrieves a hub's non-cancelled shifts overlapping
// [from, to), assignments preloaded. Shifts that start before the window but
// run into it (midnight-crossers) are included by the overlap condition.
func (r *ShiftRepository) GetByHubAndRange(hubID uuid.UUID, from, to time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Preload("Assignments").
		Where("hub_id = ? AND status != ? AND start_at < ? AND end_at > ?",
			hubID, models.ShiftStatusCancelled, to, from).
		Order("start_at ASC").
		Find(&shifts).Error
	return shifts, err
}

// GetOpenByHub retrieves a hub's open shifts starting after now
func (r *ShiftRepository) GetOpenByHub(hubID uuid.UUID, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	query := r.db.Model(&models.Shift{}).
		Where("hub_id = ? AND status = ? AND start_at >= ?", hubID, models.ShiftStatusOpen, time.Now())
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Assignments").
		Where("hub_id = ? AND status = ? AND start_at >= ?", hubID, models.ShiftStatusOpen, time.Now()).
		Order("start_at ASC").
		Limit(limit).Offset(offset).
		Find(&shifts).Error
	return shifts, total, err
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}

// CreateAssignment adds a professional to a shift
func (r *ShiftRepository) CreateAssignment(assignment *models.ShiftAssignment) error {
	return r.db.Create(assignment).Error
}

// GetAssignment retrieves one shift-professional assignment
func (r *ShiftRepository) GetAssignment(shiftID, professionalID uuid.UUID) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	err := r.db.First(&assignment, "shift_id = ? AND professional_id = ?", shiftID, professionalID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// UpdateAssignment updates an assignment
func (r *ShiftRepository) UpdateAssignment(assignment *models.ShiftAssignment) error {
	return r.db.Save(assignment).Error
}

// DeleteAssignment removes a professional from a shift
func (r *ShiftRepository) DeleteAssignment(shiftID, professionalID uuid.UUID) error {
	return r.db.Delete(&models.ShiftAssignment{}, "shift_id = ? AND professional_id = ?", shiftID, professionalID).Error
}

// CheckConflict checks whether a professional already fills a shift
// overlapping [startAt, endAt), excluding declined assignments
func (r *ShiftRepository) CheckConflict(professionalID uuid.UUID, startAt, endAt time.Time, excludeShiftID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.ShiftAssignment{}).
		Joins("JOIN shifts ON shifts.id = shift_assignments.shift_id").
		Where("shift_assignments.professional_id = ? AND shift_assignments.status != ?",
			professionalID, models.AssignmentStatusDeclined).
		Where("shifts.status != ? AND shifts.start_at < ? AND shifts.end_at > ?",
			models.ShiftStatusCancelled, endAt, startAt)

	if excludeShiftID != nil {
		query = query.Where("shifts.id != ?", *excludeShiftID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}
