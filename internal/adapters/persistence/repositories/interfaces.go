package repositories

import (
	"context"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
)

// UserRepository defines auth account data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
}

// RefreshTokenRepository defines refresh token data access
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// LoginLogRepository defines login journal data access. Rows are append-only.
type LoginLogRepository interface {
	Create(ctx context.Context, log *models.LoginLog) error
	List(ctx context.Context, offset, limit int) ([]*models.LoginLog, int64, error)
}

// CollaboratorRepository defines staff data access
type CollaboratorRepository interface {
	Create(ctx context.Context, c *models.Collaborator) error
	GetByID(ctx context.Context, id string) (*models.Collaborator, error)
	GetByAuthID(ctx context.Context, authID string) (*models.Collaborator, error)
	GetByEmail(ctx context.Context, email string) (*models.Collaborator, error)
	List(ctx context.Context) ([]*models.Collaborator, error)
	Update(ctx context.Context, c *models.Collaborator) error
	Delete(ctx context.Context, id string) error
}

// ClientRepository defines client data access
type ClientRepository interface {
	Create(ctx context.Context, c *models.Client) error
	GetByID(ctx context.Context, id string) (*models.Client, error)
	GetByName(ctx context.Context, name string) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
}
