package repositories

import (
	"context"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// loginLogRepository is the GORM implementation of LoginLogRepository
type loginLogRepository struct {
	db *gorm.DB
}

// NewLoginLogRepository creates a new login log repository
func NewLoginLogRepository(db *gorm.DB) LoginLogRepository {
	return &loginLogRepository{db: db}
}

func (r *loginLogRepository) Create(ctx context.Context, log *models.LoginLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *loginLogRepository) List(ctx context.Context, offset, limit int) ([]*models.LoginLog, int64, error) {
	var logs []*models.LoginLog
	var total int64

	r.db.WithContext(ctx).Model(&models.LoginLog{}).Count(&total)

	err := r.db.WithContext(ctx).
		Preload("User").
		Order("login_time DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error

	return logs, total, err
}
