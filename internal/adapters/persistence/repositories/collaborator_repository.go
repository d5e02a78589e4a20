package repositories

import (
	"context"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// collaboratorRepository is the GORM implementation of CollaboratorRepository
type collaboratorRepository struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new collaborator repository
func NewCollaboratorRepository(db *gorm.DB) CollaboratorRepository {
	return &collaboratorRepository{db: db}
}

func (r *collaboratorRepository) Create(ctx context.Context, c *models.Collaborator) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *collaboratorRepository) GetByID(ctx context.Context, id string) (*models.Collaborator, error) {
	var c models.Collaborator
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *collaboratorRepository) GetByAuthID(ctx context.Context, authID string) (*models.Collaborator, error) {
	var c models.Collaborator
	err := r.db.WithContext(ctx).First(&c, "auth_id = ?", authID).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *collaboratorRepository) GetByEmail(ctx context.Context, email string) (*models.Collaborator, error) {
	var c models.Collaborator
	err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *collaboratorRepository) List(ctx context.Context) ([]*models.Collaborator, error) {
	var collabs []*models.Collaborator
	err := r.db.WithContext(ctx).
		Order("last_name ASC").
		Find(&collabs).Error
	return collabs, err
}

func (r *collaboratorRepository) Update(ctx context.Context, c *models.Collaborator) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete soft deletes a collaborator. Rows are never hard-deleted so
// historical mission and timesheet references stay resolvable.
func (r *collaboratorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Collaborator{}, "id = ?", id).Error
}
