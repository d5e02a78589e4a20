package repositories

import (
	"context"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// TimesheetRepository handles timesheet data access
type TimesheetRepository struct {
	db *gorm.DB
}

// NewTimesheetRepository creates a new timesheet repository
func NewTimesheetRepository(db *gorm.DB) *TimesheetRepository {
	return &TimesheetRepository{db: db}
}

// Create inserts a timesheet entry
func (r *TimesheetRepository) Create(ctx context.Context, entry *models.TimesheetEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID gets an entry by id
func (r *TimesheetRepository) GetByID(ctx context.Context, id string) (*models.TimesheetEntry, error) {
	var entry models.TimesheetEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByMission lists the entries logged against a mission, oldest first
func (r *TimesheetRepository) ListByMission(ctx context.Context, missionID string) ([]*models.TimesheetEntry, error) {
	var entries []*models.TimesheetEntry
	err := r.db.WithContext(ctx).
		Preload("Collaborator").
		Where("mission_id = ?", missionID).
		Order("date_worked ASC").
		Find(&entries).Error
	return entries, err
}

// Delete removes an entry by id
func (r *TimesheetRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.TimesheetEntry{}, "id = ?", id).Error
}
