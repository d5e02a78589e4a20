package services

import (
	"context"
	"testing"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollaboratorLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewCollaboratorService(repositories.NewCollaboratorRepository(db))
	ctx := context.Background()

	created, err := svc.Create(ctx, &CreateCollaboratorInput{
		FirstName: "  Fatou ",
		LastName:  "Sow",
		Grade:     "Senior",
		Email:     "fatou.sow@jmc-conseils.gn",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fatou", created.FirstName, "names are trimmed")
	assert.NotEmpty(t, created.ID)

	_, err = svc.Create(ctx, &CreateCollaboratorInput{
		FirstName: "Autre", LastName: "Personne", Grade: "Junior",
		Email: "fatou.sow@jmc-conseils.gn",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	_, err = svc.Create(ctx, &CreateCollaboratorInput{
		FirstName: "X", LastName: "Y", Grade: "Intern", Email: "x@y.gn",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidGrade)

	// Promotion.
	updated, err := svc.Update(ctx, created.ID, &UpdateCollaboratorInput{Grade: ptr("Manager")})
	require.NoError(t, err)
	assert.Equal(t, "Manager", updated.Grade)

	_, err = svc.Update(ctx, created.ID, &UpdateCollaboratorInput{Grade: ptr("Boss")})
	assert.ErrorIs(t, err, domain.ErrInvalidGrade)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrCollaboratorNotFound)
}

func TestClientCreateIsIdempotentByName(t *testing.T) {
	db := newTestDB(t)
	svc := NewClientService(repositories.NewClientRepository(db))
	ctx := context.Background()

	first, err := svc.Create(ctx, "  Société Minière de Boké  ")
	require.NoError(t, err)
	assert.Equal(t, "Société Minière de Boké", first.Name)

	second, err := svc.Create(ctx, "Société Minière de Boké")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same name resolves to the same client")

	_, err = svc.Create(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrClientRequired)

	clients, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)
}
