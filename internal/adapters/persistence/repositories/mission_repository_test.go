package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
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

func seedMission(t *testing.T, repo *MissionRepository, clientID, creatorID *string) *models.Mission {
	t.Helper()

	m := &models.Mission{
		DossierNumber: "2026-001",
		ClientID:      clientID,
		Title:         "Revue fiscale",
		Service:       "TLS",
		Stage:         "opportunite",
		Currency:      "GNF",
		CreatedBy:     creatorID,
	}
	require.NoError(t, repo.Create(context.Background(), m, nil))
	return m
}

func TestGroupedCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewMissionRepository(db)
	ctx := context.Background()

	var queries []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		queries = append(queries, tx.Statement.SQL.String())
	}))

	clientA := &models.Client{Name: "Société Minière de Boké"}
	clientB := &models.Client{Name: "Banque Centrale"}
	require.NoError(t, db.Create(clientA).Error)
	require.NoError(t, db.Create(clientB).Error)

	creator := &models.Collaborator{
		FirstName: "Fatou", LastName: "Sow", Grade: "Senior",
		Email: "fatou.sow@jmc-conseils.gn",
	}
	require.NoError(t, db.Create(creator).Error)

	seedMission(t, repo, &clientA.ID, &creator.ID)
	seedMission(t, repo, &clientA.ID, &creator.ID)
	seedMission(t, repo, &clientB.ID, nil)

	byClient, err := repo.CountByClient(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byClient[clientA.ID])
	assert.Equal(t, int64(1), byClient[clientB.ID])

	byCreator, err := repo.CountByCreator(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{creator.ID: 2}, byCreator)

	// MySQL rejects a bare "key" alias (reserved word); sqlite does not, so
	// guard the generated SQL itself.
	require.NotEmpty(t, queries)
	for _, q := range queries {
		assert.NotContains(t, strings.ToLower(q), " as key")
	}
}

func TestMissionLinkRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewMissionRepository(db)
	ctx := context.Background()

	a := &models.Collaborator{FirstName: "Mamadou", LastName: "Diallo", Grade: "Partner", Email: "mamadou.diallo@jmc-conseils.gn"}
	b := &models.Collaborator{FirstName: "Aissatou", LastName: "Bah", Grade: "Junior", Email: "aissatou.bah@jmc-conseils.gn"}
	require.NoError(t, db.Create(a).Error)
	require.NoError(t, db.Create(b).Error)

	m := &models.Mission{
		DossierNumber: "2026-002",
		Title:         "Assistance comptable",
		Service:       "GCS",
		Stage:         "opportunite",
		Currency:      "GNF",
	}
	require.NoError(t, repo.Create(ctx, m, []string{a.ID, b.ID}))

	links, err := repo.GetLinks(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, links, 2)

	require.NoError(t, repo.ReplaceLinks(ctx, m.ID, []string{b.ID}))
	links, err = repo.GetLinks(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, b.ID, links[0].CollaboratorID)

	require.NoError(t, repo.Delete(ctx, m.ID))
	links, err = repo.GetLinks(ctx, m.ID)
	require.NoError(t, err)
	assert.Empty(t, links)
}
