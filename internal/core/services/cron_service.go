package services

import (
	"context"
	"log"
	"time"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs scheduled maintenance: a morning due-date scan and a
// nightly purge of expired refresh tokens.
type CronService struct {
	db       *gorm.DB
	tokens   repositories.RefreshTokenRepository
	schedule *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		db:       db,
		tokens:   repositories.NewRefreshTokenRepository(db),
		schedule: cron.New(),
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	// 08:30 daily: log missions due within the next 7 days.
	s.schedule.AddFunc("30 8 * * *", s.scanDueDates)

	// 02:00 daily: drop expired refresh tokens.
	s.schedule.AddFunc("0 2 * * *", s.purgeExpiredTokens)

	s.schedule.Start()
	log.Println("cron service started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.schedule.Stop()
	<-ctx.Done()
	log.Println("cron service stopped")
}

func (s *CronService) scanDueDates() {
	horizon := time.Now().AddDate(0, 0, 7)

	var missions []models.Mission
	err := s.db.
		Where("due_date IS NOT NULL AND due_date <= ? AND stage NOT IN ?", horizon,
			[]string{"livrable_envoye", "simple_suivi"}).
		Order("due_date ASC").
		Find(&missions).Error
	if err != nil {
		log.Printf("due-date scan failed: %v", err)
		return
	}

	for _, m := range missions {
		log.Printf("reminder: mission %s (%s) due %s, stage %s",
			m.DossierNumber, m.ClientName, m.DueDate.Format("2006-01-02"), m.Stage)
	}
}

func (s *CronService) purgeExpiredTokens() {
	n, err := s.tokens.DeleteExpired(context.Background())
	if err != nil {
		log.Printf("refresh token purge failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("purged %d expired refresh tokens", n)
	}
}
