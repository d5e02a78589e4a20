package services

import (
	"fmt"
	"testing"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func newMissionService(db *gorm.DB) *MissionService {
	return NewMissionService(
		repositories.NewMissionRepository(db),
		repositories.NewTimesheetRepository(db),
		repositories.NewClientRepository(db),
		repositories.NewCollaboratorRepository(db),
	)
}

func seedCollaborator(t *testing.T, db *gorm.DB, first, last, grade string) *models.Collaborator {
	t.Helper()

	c := &models.Collaborator{
		FirstName: first,
		LastName:  last,
		Grade:     grade,
		Email:     fmt.Sprintf("%s.%s@jmc-conseils.gn", first, last),
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	t.Helper()

	c := &models.Client{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

// financeActor is a Manager-grade actor passing the finance gate
func financeActor(c *models.Collaborator) Actor {
	return Actor{CollaboratorID: &c.ID, Grade: "Manager"}
}

func juniorActor(c *models.Collaborator) Actor {
	return Actor{CollaboratorID: &c.ID, Grade: "Junior"}
}

func ptr[T any](v T) *T {
	return &v
}
