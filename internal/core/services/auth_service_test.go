package services

import (
	"context"
	"testing"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/config"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	return NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewRefreshTokenRepository(db),
		repositories.NewLoginLogRepository(db),
		repositories.NewCollaboratorRepository(db),
		cfg,
	)
}

func TestRegisterLinksCollaborator(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	collab := seedCollaborator(t, db, "Mamadou", "Diallo", "Partner")

	result, err := svc.Register(ctx, &RegisterInput{Email: collab.Email, Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)

	var linked models.Collaborator
	require.NoError(t, db.First(&linked, "id = ?", collab.ID).Error)
	require.NotNil(t, linked.AuthID)
	assert.Equal(t, result.User.ID, *linked.AuthID)

	_, err = svc.Register(ctx, &RegisterInput{Email: collab.Email, Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(context.Background(), &RegisterInput{Email: "a@b.gn", Password: "short"})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginWritesOneJournalRow(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "user@jmc-conseils.gn", Password: "secret123"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, &LoginInput{Email: "user@jmc-conseils.gn", Password: "secret123"}, "go-test/1.0")
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)

	var logs []models.LoginLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1, "exactly one journal row per login")
	assert.Equal(t, result.User.ID, logs[0].UserID)
	assert.Equal(t, "go-test/1.0", logs[0].UserAgent)

	_, err = svc.Login(ctx, &LoginInput{Email: "user@jmc-conseils.gn", Password: "wrong-password"}, "go-test/1.0")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	db.Find(&logs)
	assert.Len(t, logs, 1, "failed logins are not journaled")
}

func TestRefreshRotation(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterInput{Email: "user@jmc-conseils.gn", Password: "secret123"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, reg.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, reg.RefreshToken, rotated.RefreshToken)

	// The old token is single-use.
	_, err = svc.Refresh(ctx, reg.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// The new one still works.
	_, err = svc.Refresh(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterInput{Email: "user@jmc-conseils.gn", Password: "secret123"})
	require.NoError(t, err)
	login, err := svc.Login(ctx, &LoginInput{Email: "user@jmc-conseils.gn", Password: "secret123"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.LogoutAll(ctx, reg.User.ID))

	_, err = svc.Refresh(ctx, reg.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestSessionCapabilities(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	collab := seedCollaborator(t, db, "Aissatou", "Bah", "Manager")
	reg, err := svc.Register(ctx, &RegisterInput{Email: collab.Email, Password: "secret123"})
	require.NoError(t, err)

	session, err := svc.Session(ctx, reg.User.ID)
	require.NoError(t, err)
	require.NotNil(t, session.Collaborator)
	assert.Equal(t, "Manager", session.Grade)
	assert.True(t, session.CanEditFinance)
	assert.True(t, session.CanViewAuditLog)
}

func TestSessionFailsClosedWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &RegisterInput{Email: "nobody@jmc-conseils.gn", Password: "secret123"})
	require.NoError(t, err)

	session, err := svc.Session(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Nil(t, session.Collaborator)
	assert.Empty(t, session.Grade)
	assert.False(t, session.CanEditFinance, "no profile means no capabilities")
	assert.False(t, session.CanViewAuditLog)

	assert.Equal(t, domain.Grade(""), svc.GradeOf(ctx, reg.User.ID))
}
