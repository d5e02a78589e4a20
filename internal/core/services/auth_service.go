package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/models"
	"github.com/Rajo-Lahatra/JMC/internal/adapters/persistence/repositories"
	"github.com/Rajo-Lahatra/JMC/internal/config"
	"github.com/Rajo-Lahatra/JMC/internal/core/domain"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/jwt"
	"github.com/Rajo-Lahatra/JMC/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrWeakPassword       = errors.New("password does not meet requirements")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	loginLogRepo     repositories.LoginLogRepository
	collabRepo       repositories.CollaboratorRepository
	cfg              *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	loginLogRepo repositories.LoginLogRepository,
	collabRepo repositories.CollaboratorRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		loginLogRepo:     loginLogRepo,
		collabRepo:       collabRepo,
		cfg:              cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionInfo describes the authenticated caller: the auth account, the
// matching collaborator row (nil when none is linked) and the capabilities
// derived from its grade.
type SessionInfo struct {
	User            *models.User         `json:"user"`
	Collaborator    *models.Collaborator `json:"collaborator,omitempty"`
	Grade           string               `json:"grade,omitempty"`
	CanEditFinance  bool                 `json:"can_edit_finance"`
	CanViewAuditLog bool                 `json:"can_view_audit_log"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// Register creates a new auth account. If a collaborator row already exists
// for the email, it is linked via auth_id so the grade resolves on login.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	if !password.Validate(input.Password) {
		return nil, ErrWeakPassword
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    input.Email,
		Password: hashed,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Link the staff profile if one was onboarded with this email.
	if collab, err := s.collabRepo.GetByEmail(ctx, input.Email); err == nil && collab.AuthID == nil {
		collab.AuthID = &user.ID
		if err := s.collabRepo.Update(ctx, collab); err != nil {
			log.Printf("warn: could not link collaborator %s to auth account: %v", collab.ID, err)
		}
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

// Login authenticates a user and writes exactly one login journal row.
func (s *AuthService) Login(ctx context.Context, input *LoginInput, userAgent string) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	entry := &models.LoginLog{
		UserID:    user.ID,
		LoginTime: time.Now(),
		UserAgent: userAgent,
	}
	if err := s.loginLogRepo.Create(ctx, entry); err != nil {
		// The journal is best-effort; a failed write must not block sign-in.
		log.Printf("warn: login log write failed for %s: %v", user.ID, err)
	}

	return &AuthResponse{User: user, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

// Refresh rotates a refresh token and returns a fresh pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	stored, err := s.refreshTokenRepo.GetByTokenHash(ctx, password.HashToken(refreshToken))
	if err != nil {
		return nil, ErrInvalidToken
	}
	if stored.IsRevoked() {
		return nil, ErrTokenRevoked
	}
	if stored.IsExpired() {
		return nil, ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if err := s.refreshTokenRepo.RevokeByTokenHash(ctx, stored.TokenHash); err != nil {
		return nil, err
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

// Logout revokes a single refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.refreshTokenRepo.RevokeByTokenHash(ctx, password.HashToken(refreshToken))
}

// LogoutAll revokes every refresh token of a user
func (s *AuthService) LogoutAll(ctx context.Context, userID string) error {
	return s.refreshTokenRepo.RevokeAllByUserID(ctx, userID)
}

// Session resolves the caller's session: auth account, collaborator row and
// grade-derived capabilities. A user with no collaborator row gets an empty
// grade and no capabilities (fail-closed).
func (s *AuthService) Session(ctx context.Context, userID string) (*SessionInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	info := &SessionInfo{User: user}

	collab, err := s.collabRepo.GetByAuthID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return info, nil
	}

	grade := domain.Grade(collab.Grade)
	info.Collaborator = collab
	info.Grade = collab.Grade
	info.CanEditFinance = domain.CanEditFinance(grade)
	info.CanViewAuditLog = domain.CanViewAuditLog(grade)
	return info, nil
}

// Collaborator returns the collaborator linked to an auth account
func (s *AuthService) Collaborator(ctx context.Context, userID string) (*models.Collaborator, error) {
	return s.collabRepo.GetByAuthID(ctx, userID)
}

// GradeOf returns the grade of the collaborator linked to an auth account.
// Missing links resolve to the empty grade.
func (s *AuthService) GradeOf(ctx context.Context, userID string) domain.Grade {
	collab, err := s.collabRepo.GetByAuthID(ctx, userID)
	if err != nil {
		return ""
	}
	return domain.Grade(collab.Grade)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*domain.TokenPair, error) {
	access, err := jwt.GenerateAccessToken(user.ID, user.Email, s.cfg.JWT.Secret, s.cfg.JWT.AccessTokenMins)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.NewString()
	refresh, err := jwt.GenerateRefreshToken(user.ID, tokenID, s.cfg.JWT.RefreshSecret, s.cfg.JWT.RefreshTokenDays)
	if err != nil {
		return nil, err
	}

	stored := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: password.HashToken(refresh),
		ExpiresAt: jwt.GetExpiryTime(s.cfg.JWT.RefreshTokenDays),
	}
	if err := s.refreshTokenRepo.Create(ctx, stored); err != nil {
		return nil, err
	}

	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
