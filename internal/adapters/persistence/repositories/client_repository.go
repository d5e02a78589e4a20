package repositories

import (
	"context"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// clientRepository is the GORM implementation of ClientRepository
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, c *models.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) GetByName(ctx context.Context, name string) (*models.Client, error) {
	var c models.Client
	err := r.db.WithContext(ctx).First(&c, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*models.Client, error) {
	var clients []*models.Client
	err := r.db.WithContext(ctx).Order("name ASC").Find(&clients).Error
	return clients, err
}
