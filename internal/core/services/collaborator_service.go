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

// CollaboratorService handles staff onboarding and maintenance
type CollaboratorService struct {
	collabRepo repositories.CollaboratorRepository
}

// NewCollaboratorService creates a new collaborator service
func NewCollaboratorService(collabRepo repositories.CollaboratorRepository) *CollaboratorService {
	return &CollaboratorService{collabRepo: collabRepo}
}

// CreateCollaboratorInput represents onboarding input
type CreateCollaboratorInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Grade     string `json:"grade"`
	Email     string `json:"email"`
}

// UpdateCollaboratorInput represents a grade or contact change
type UpdateCollaboratorInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Grade     *string `json:"grade,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// Create onboards a collaborator
func (s *CollaboratorService) Create(ctx context.Context, input *CreateCollaboratorInput) (*models.Collaborator, error) {
	first := strings.TrimSpace(input.FirstName)
	last := strings.TrimSpace(input.LastName)
	email := strings.TrimSpace(input.Email)
	if first == "" || last == "" || email == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.Grade(input.Grade).IsValid() {
		return nil, domain.ErrInvalidGrade
	}

	if _, err := s.collabRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &models.Collaborator{
		FirstName: first,
		LastName:  last,
		Grade:     input.Grade,
		Email:     email,
	}
	if err := s.collabRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID gets a collaborator by id
func (s *CollaboratorService) GetByID(ctx context.Context, id string) (*models.Collaborator, error) {
	c, err := s.collabRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollaboratorNotFound
		}
		return nil, err
	}
	return c, nil
}

// List returns the full roster ordered by last name
func (s *CollaboratorService) List(ctx context.Context) ([]*models.Collaborator, error) {
	return s.collabRepo.List(ctx)
}

// Update applies grade/contact changes
func (s *CollaboratorService) Update(ctx context.Context, id string, input *UpdateCollaboratorInput) (*models.Collaborator, error) {
	c, err := s.collabRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollaboratorNotFound
		}
		return nil, err
	}

	if input.FirstName != nil {
		c.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		c.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Grade != nil {
		if !domain.Grade(*input.Grade).IsValid() {
			return nil, domain.ErrInvalidGrade
		}
		c.Grade = *input.Grade
	}
	if input.Email != nil {
		c.Email = strings.TrimSpace(*input.Email)
	}

	if err := s.collabRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete soft deletes a collaborator; mission and timesheet references stay
// intact.
func (s *CollaboratorService) Delete(ctx context.Context, id string) error {
	if _, err := s.collabRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCollaboratorNotFound
		}
		return err
	}
	return s.collabRepo.Delete(ctx, id)
}
