package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spec-kit/job-tracker/internal/auth"
	"github.com/spec-kit/job-tracker/internal/config"
	"github.com/spec-kit/job-tracker/internal/domain"
	"github.com/spec-kit/job-tracker/internal/repository"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

const invalidCredentials = "invalid credentials"

// AuthService coordinates registration, login and logout flows.
type AuthService struct {
	users       repository.UserRepository
	tokenMgr    *auth.TokenManager
	revocations auth.RevocationStore
	bcryptCost  int
	dummyHash   string
	logger      *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	Revocations auth.RevocationStore
	Logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) (*AuthService, error) {
	revocations := deps.Revocations
	if revocations == nil {
		revocations = auth.NewNoopRevocationStore()
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Compared against on unknown usernames so both failure paths cost one bcrypt check.
	dummy, err := auth.HashPassword("job-tracker-unknown-user", cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &AuthService{
		users:       deps.UserRepo,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL()),
		revocations: revocations,
		bcryptCost:  cfg.Auth.BcryptCost,
		dummyHash:   dummy,
		logger:      logger,
	}, nil
}

// Register creates an account. It does not start a session.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = domain.NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("Username and password are required", nil)
	}
	if utf8.RuneCountInString(password) < domain.MinPasswordLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters", domain.MinPasswordLength), nil)
	}
	if len(password) > auth.MaxPasswordBytes {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes), nil)
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewConflict("Username already taken", nil)
	} else if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if apperrors.HasCode(err, apperrors.CodeConflict) {
			return nil, apperrors.NewConflict("Username already taken", nil)
		}
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return user, nil
}

// Login verifies credentials and issues a session. Unknown usernames and
// wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, domain.Session, error) {
	username = domain.NormalizeUsername(username)
	if username == "" || password == "" {
		return nil, domain.Session{}, apperrors.NewUnauthorized(invalidCredentials)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if !apperrors.HasCode(err, apperrors.CodeNotFound) {
			return nil, domain.Session{}, err
		}
		_ = auth.PasswordMatches(s.dummyHash, password)
		s.logger.Info("login rejected", zap.String("username", username))
		return nil, domain.Session{}, apperrors.NewUnauthorized(invalidCredentials)
	}
	if !auth.PasswordMatches(user.PasswordHash, password) {
		s.logger.Info("login rejected", zap.String("username", username))
		return nil, domain.Session{}, apperrors.NewUnauthorized(invalidCredentials)
	}

	session, err := s.tokenMgr.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, domain.Session{}, apperrors.NewInternalError(err)
	}
	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, session, nil
}

// Logout revokes the token until its natural expiry. Missing or invalid
// tokens are ignored so logout always succeeds for the caller.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.tokenMgr.ParseToken(token)
	if err != nil {
		return nil
	}
	principal := claims.Principal()
	if err := s.revocations.Revoke(ctx, principal.TokenID, principal.ExpiresAt); err != nil {
		return apperrors.NewInternalError(err)
	}
	s.logger.Info("user logged out", zap.String("user_id", principal.UserID))
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Revocations exposes the revocation store shared with the middleware.
func (s *AuthService) Revocations() auth.RevocationStore {
	return s.revocations
}
