package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateInput(partnerID string) *CreateMissionInput {
	return &CreateMissionInput{
		DossierNumber:  "2026-001",
		ClientName:     "Société Minière de Boké",
		Title:          "Audit fiscal annuel",
		Service:        "TLS",
		CategoryCode:   "B",
		PrestationCode: "B2",
		Billable:       true,
		PartnerID:      &partnerID,
	}
}

func TestCreateMission(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	manager := seedCollaborator(t, db, "Aissatou", "Bah", "Manager")

	input := validCreateInput(partner.ID)
	input.FeesAmount = ptr(5000.0)

	mission, err := svc.Create(ctx, input, financeActor(manager))
	require.NoError(t, err)

	assert.NotEmpty(t, mission.ID)
	assert.Equal(t, "2026-001", mission.DossierNumber)
	assert.Equal(t, "opportunite", mission.Stage, "stage defaults to the first pipeline step")
	assert.Equal(t, "GNF", mission.Currency, "currency defaults to GNF")
	assert.True(t, mission.Billable)
	require.NotNil(t, mission.FeesAmount)
	assert.Equal(t, 5000.0, *mission.FeesAmount)
	require.NotNil(t, mission.CreatedBy)
	assert.Equal(t, manager.ID, *mission.CreatedBy)

	// The client was created on the fly from its name.
	var client models.Client
	require.NoError(t, db.Where("name = ?", "Société Minière de Boké").First(&client).Error)
	require.NotNil(t, mission.ClientID)
	assert.Equal(t, client.ID, *mission.ClientID)
}

func TestCreateMissionReusesExistingClient(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	existing := seedClient(t, db, "Banque Centrale")

	input := validCreateInput(partner.ID)
	input.ClientName = "  Banque Centrale  "

	mission, err := svc.Create(ctx, input, financeActor(partner))
	require.NoError(t, err)
	assert.Equal(t, existing.ID, *mission.ClientID)

	var count int64
	db.Model(&models.Client{}).Count(&count)
	assert.EqualValues(t, 1, count, "no duplicate client row")
}

func TestCreateMissionRequiresDossier(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	input := validCreateInput(partner.ID)
	input.DossierNumber = "   "

	_, err := svc.Create(context.Background(), input, financeActor(partner))
	assert.ErrorIs(t, err, domain.ErrDossierRequired)
}

func TestCreateMissionUnknownPrestation(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	input := validCreateInput(partner.ID)
	input.PrestationCode = "C1" // belongs to category C, not B

	_, err := svc.Create(context.Background(), input, financeActor(partner))
	assert.ErrorIs(t, err, domain.ErrUnknownPrestation)
}

func TestCreateMissionTitlePrefilledFromPrestation(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	input := validCreateInput(partner.ID)
	input.Title = ""

	mission, err := svc.Create(context.Background(), input, financeActor(partner))
	require.NoError(t, err)
	assert.Equal(t, "Déclarations Fiscales et Travaux de Fin d'Année", mission.Title)
}

func TestCreateMissionBillableRequiresPartner(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	manager := seedCollaborator(t, db, "Aissatou", "Bah", "Manager")

	input := validCreateInput("")
	input.PartnerID = nil
	_, err := svc.Create(ctx, input, financeActor(manager))
	assert.ErrorIs(t, err, domain.ErrPartnerRequired)

	// A non-Partner responsible is rejected too.
	input = validCreateInput(manager.ID)
	_, err = svc.Create(ctx, input, financeActor(manager))
	assert.ErrorIs(t, err, ErrNotAPartner)
}

func TestCreateMissionInternalClientForcesNonBillable(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)

	seedClient(t, db, domain.InternalClientName)
	manager := seedCollaborator(t, db, "Aissatou", "Bah", "Manager")

	input := validCreateInput("")
	input.PartnerID = nil
	input.ClientName = domain.InternalClientName
	input.Billable = true
	input.FeesAmount = ptr(1000.0)

	mission, err := svc.Create(context.Background(), input, financeActor(manager))
	require.NoError(t, err)

	assert.False(t, mission.Billable, "INTERNE client forces non-billable")
	assert.Nil(t, mission.FeesAmount, "non-billable missions carry no amounts")
	assert.Nil(t, mission.PartnerID, "no partner needed for internal work")
}

func TestCreateMissionInternalCategoryForcesNonBillable(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)

	manager := seedCollaborator(t, db, "Aissatou", "Bah", "Manager")

	input := validCreateInput("")
	input.PartnerID = nil
	input.CategoryCode = "F"
	input.PrestationCode = "F1"
	input.Billable = true

	mission, err := svc.Create(context.Background(), input, financeActor(manager))
	require.NoError(t, err)
	assert.False(t, mission.Billable, "category F forces non-billable")
}

func TestCreateMissionFinanceGateStripsAmounts(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	junior := seedCollaborator(t, db, "Ousmane", "Camara", "Junior")

	input := validCreateInput(partner.ID)
	input.FeesAmount = ptr(5000.0)
	input.InvoiceAmount = ptr(3000.0)

	mission, err := svc.Create(context.Background(), input, juniorActor(junior))
	require.NoError(t, err)

	assert.Nil(t, mission.FeesAmount, "junior-submitted amounts must not be stored")
	assert.Nil(t, mission.InvoiceAmount)
}

func TestCreateMissionRejectsNegativeAmounts(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	input := validCreateInput(partner.ID)
	input.FeesAmount = ptr(-1.0)

	_, err := svc.Create(context.Background(), input, financeActor(partner))
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestCreateMissionWithAssignees(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	senior := seedCollaborator(t, db, "Fatou", "Sow", "Senior")
	junior := seedCollaborator(t, db, "Ousmane", "Camara", "Junior")

	input := validCreateInput(partner.ID)
	input.AssigneeIDs = []string{senior.ID, junior.ID}

	mission, err := svc.Create(ctx, input, financeActor(partner))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, mission.ID, financeActor(partner))
	require.NoError(t, err)
	assert.Len(t, got.Assignees, 2)
}

func TestGetMissionFinanceVisibility(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	junior := seedCollaborator(t, db, "Ousmane", "Camara", "Junior")

	input := validCreateInput(partner.ID)
	input.FeesAmount = ptr(5000.0)
	mission, err := svc.Create(ctx, input, financeActor(partner))
	require.NoError(t, err)

	full, err := svc.GetByID(ctx, mission.ID, financeActor(partner))
	require.NoError(t, err)
	require.NotNil(t, full.FeesAmount)
	assert.Equal(t, 5000.0, *full.FeesAmount)

	masked, err := svc.GetByID(ctx, mission.ID, juniorActor(junior))
	require.NoError(t, err)
	assert.Nil(t, masked.FeesAmount, "finance fields hidden below Manager grade")
	assert.Empty(t, masked.Currency)
}

func TestUpdateMissionKeepsFinanceForNonFinanceActor(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	junior := seedCollaborator(t, db, "Ousmane", "Camara", "Junior")

	input := validCreateInput(partner.ID)
	input.FeesAmount = ptr(5000.0)
	mission, err := svc.Create(ctx, input, financeActor(partner))
	require.NoError(t, err)

	update := &UpdateMissionInput{
		DossierNumber:  mission.DossierNumber,
		ClientName:     mission.ClientName,
		Title:          "Audit fiscal annuel 2026",
		Service:        mission.Service,
		CategoryCode:   mission.CategoryCode,
		PrestationCode: mission.PrestationCode,
		Stage:          "lettre_envoyee",
		Billable:       true,
		PartnerID:      &partner.ID,
		FeesAmount:     ptr(1.0), // must be ignored
	}

	updated, err := svc.Update(ctx, mission.ID, update, juniorActor(junior))
	require.NoError(t, err)

	assert.Equal(t, "Audit fiscal annuel 2026", updated.Title)
	assert.Equal(t, "lettre_envoyee", updated.Stage)
	require.NotNil(t, updated.FeesAmount)
	assert.Equal(t, 5000.0, *updated.FeesAmount, "stored finance values survive non-finance edits")
}

func TestUpdateMissionReplacesAssignees(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	senior := seedCollaborator(t, db, "Fatou", "Sow", "Senior")
	junior := seedCollaborator(t, db, "Ousmane", "Camara", "Junior")

	input := validCreateInput(partner.ID)
	input.AssigneeIDs = []string{senior.ID}
	mission, err := svc.Create(ctx, input, financeActor(partner))
	require.NoError(t, err)

	update := &UpdateMissionInput{
		DossierNumber:  mission.DossierNumber,
		ClientName:     mission.ClientName,
		Title:          mission.Title,
		Service:        mission.Service,
		CategoryCode:   mission.CategoryCode,
		PrestationCode: mission.PrestationCode,
		Stage:          mission.Stage,
		Billable:       true,
		PartnerID:      &partner.ID,
		AssigneeIDs:    &[]string{junior.ID},
	}
	_, err = svc.Update(ctx, mission.ID, update, financeActor(partner))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, mission.ID, financeActor(partner))
	require.NoError(t, err)
	require.Len(t, got.Assignees, 1)
	assert.Equal(t, junior.ID, got.Assignees[0].ID)
}

func TestDeleteMissionCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	senior := seedCollaborator(t, db, "Fatou", "Sow", "Senior")

	input := validCreateInput(partner.ID)
	input.AssigneeIDs = []string{senior.ID}
	mission, err := svc.Create(ctx, input, financeActor(partner))
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.TimesheetEntry{
		MissionID:      mission.ID,
		CollaboratorID: senior.ID,
		DateWorked:     mission.CreatedAt,
		HoursWorked:    2,
	}).Error)

	require.NoError(t, svc.Delete(ctx, mission.ID))

	var links, entries int64
	db.Model(&models.MissionCollaborator{}).Where("mission_id = ?", mission.ID).Count(&links)
	db.Model(&models.TimesheetEntry{}).Where("mission_id = ?", mission.ID).Count(&entries)
	assert.Zero(t, links, "collaborator links removed with the mission")
	assert.Zero(t, entries, "timesheet entries removed with the mission")

	_, err = svc.GetByID(ctx, mission.ID, financeActor(partner))
	assert.ErrorIs(t, err, ErrMissionNotFound)
}

func TestListMissionsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	actor := financeActor(partner)

	a := validCreateInput(partner.ID)
	a.DossierNumber = "2026-001"
	a.ClientName = "Société Minière de Boké"
	_, err := svc.Create(ctx, a, actor)
	require.NoError(t, err)

	b := validCreateInput(partner.ID)
	b.DossierNumber = "2026-002"
	b.ClientName = "Banque Centrale"
	b.Service = "GCS"
	b.Stage = "lettre_signee"
	_, err = svc.Create(ctx, b, actor)
	require.NoError(t, err)

	list := func(f *repositories.MissionFilter) []*models.MissionResponse {
		out, _, err := svc.List(ctx, &ListInput{Filter: f, Limit: 50}, actor)
		require.NoError(t, err)
		return out
	}

	assert.Len(t, list(&repositories.MissionFilter{}), 2)

	got := list(&repositories.MissionFilter{Service: "GCS"})
	require.Len(t, got, 1)
	assert.Equal(t, "2026-002", got[0].DossierNumber)

	got = list(&repositories.MissionFilter{Search: "minière"})
	require.Len(t, got, 1, "search is case-insensitive on client name")
	assert.Equal(t, "2026-001", got[0].DossierNumber)

	got = list(&repositories.MissionFilter{Stage: "lettre_signee", Service: "GCS"})
	assert.Len(t, got, 1, "filters combine with AND")

	got = list(&repositories.MissionFilter{Stage: "lettre_signee", Service: "TLS"})
	assert.Empty(t, got)
}

func TestDuplicateMission(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	senior := seedCollaborator(t, db, "Fatou", "Sow", "Senior")

	input := validCreateInput(partner.ID)
	input.AssigneeIDs = []string{senior.ID}
	src, err := svc.Create(ctx, input, financeActor(partner))
	require.NoError(t, err)

	dup, err := svc.Duplicate(ctx, src.ID, financeActor(partner))
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, "2026-001-copy", dup.DossierNumber)
	assert.Equal(t, src.Title, dup.Title)

	got, err := svc.GetByID(ctx, dup.ID, financeActor(partner))
	require.NoError(t, err)
	assert.Empty(t, got.Assignees, "assignees are not copied")
}

func TestComposeSituationEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newMissionService(db)
	ctx := context.Background()

	partner := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")
	input := validCreateInput(partner.ID)
	input.SituationState = ptr("Dossier en cours de revue.")
	input.SituationActions = ptr("Relancer le client pour les pièces manquantes.")
	mission, err := svc.Create(ctx, input, financeActor(partner))
	require.NoError(t, err)

	email, err := svc.ComposeSituationEmail(ctx, mission.ID, "client@example.com")
	require.NoError(t, err)

	assert.Equal(t, "Point de situation – 2026-001 – Société Minière de Boké", email.Subject)
	assert.Contains(t, email.Body, "Dossier en cours de revue.")
	assert.Contains(t, email.Body, "Relancer le client")
	assert.Contains(t, email.Body, "Opportunité")
	assert.True(t, strings.HasPrefix(email.MailtoURI, "mailto:client%40example.com?subject="))
}
