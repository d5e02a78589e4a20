package config

import (
	"errors"
	"log"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedDatabase inserts the baseline records the application expects: the
// INTERNE client and, when SEED_ADMIN_EMAIL is set, an initial partner
// account. Safe to run on every startup.
func SeedDatabase(db *gorm.DB) error {
	if err := seedInternalClient(db); err != nil {
		return err
	}
	return seedAdmin(db)
}

func seedInternalClient(db *gorm.DB) error {
	var client models.Client
	err := db.Where("name = ?", domain.InternalClientName).First(&client).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	client = models.Client{Name: domain.InternalClientName}
	if err := db.Create(&client).Error; err != nil {
		return err
	}

	log.Printf("seeded internal client %q", domain.InternalClientName)
	return nil
}

func seedAdmin(db *gorm.DB) error {
	email := getEnv("SEED_ADMIN_EMAIL", "")
	if email == "" {
		return nil
	}

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	pass := getEnv("SEED_ADMIN_PASSWORD", "changeme123")
	hashed, err := password.Hash(pass)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user = models.User{
			Email:    email,
			Password: hashed,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		collab := models.Collaborator{
			FirstName: getEnv("SEED_ADMIN_FIRST_NAME", "Admin"),
			LastName:  getEnv("SEED_ADMIN_LAST_NAME", "JMC"),
			Grade:     string(domain.GradePartner),
			Email:     email,
			AuthID:    &user.ID,
		}
		if err := tx.Create(&collab).Error; err != nil {
			return err
		}

		log.Printf("seeded admin account %s", email)
		return nil
	})
}
