package services

import (
	"context"
	"testing"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionsPerClient(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	statsSvc := NewStatsService(
		repositories.NewMissionRepository(db),
		repositories.NewClientRepository(db),
		repositories.NewCollaboratorRepository(db),
	)
	missionSvc := newMissionService(db)

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	busy := seedClient(t, db, "Société Minière de Boké")
	idle := seedClient(t, db, "Banque Centrale")

	for _, dossier := range []string{"2026-001", "2026-002"} {
		input := validCreateInput(partner.ID)
		input.DossierNumber = dossier
		input.ClientID = &busy.ID
		input.ClientName = ""
		_, err := missionSvc.Create(ctx, input, financeActor(partner))
		require.NoError(t, err)
	}

	stats, err := statsSvc.MissionsPerClient(ctx)
	require.NoError(t, err)

	byName := map[string]int64{}
	for _, s := range stats {
		byName[s.ClientName] = s.MissionCount
	}
	assert.EqualValues(t, 2, byName[busy.Name])
	assert.EqualValues(t, 0, byName[idle.Name], "clients without missions appear with a zero count")
	assert.Len(t, stats, 2)
}

func TestMissionsPerCollaborator(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	statsSvc := NewStatsService(
		repositories.NewMissionRepository(db),
		repositories.NewClientRepository(db),
		repositories.NewCollaboratorRepository(db),
	)
	missionSvc := newMissionService(db)

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	idle := seedCollaborator(t, db, "Ousmane", "Camara", "Junior")

	_, err := missionSvc.Create(ctx, validCreateInput(partner.ID), financeActor(partner))
	require.NoError(t, err)

	stats, err := statsSvc.MissionsPerCollaborator(ctx)
	require.NoError(t, err)

	byID := map[string]int64{}
	for _, s := range stats {
		byID[s.CollaboratorID] = s.MissionsCreated
	}
	assert.EqualValues(t, 1, byID[partner.ID])
	assert.EqualValues(t, 0, byID[idle.ID], "collaborators without missions appear with a zero count")
}
