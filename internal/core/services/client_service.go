package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"

	"gorm.io/gorm"
)

// ClientService handles client lookups and on-demand creation
type ClientService struct {
	clientRepo repositories.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repositories.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// List returns all clients ordered by name
func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	return s.clientRepo.List(ctx)
}

// Create inserts a client with a trimmed, non-empty name. An existing client
// with the same name is returned as-is.
func (s *ClientService) Create(ctx context.Context, name string) (*models.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrClientRequired
	}

	existing, err := s.clientRepo.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &models.Client{Name: name}
	if err := s.clientRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
