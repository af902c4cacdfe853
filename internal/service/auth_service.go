package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/post-service/internal/auth"
	"github.com/spec-kit/post-service/internal/config"
	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/repository"
	apperrors "github.com/spec-kit/post-service/pkg/util/errorutil"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	burner     *auth.Burner
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes),
		burner:     auth.NewBurner(cfg.Auth.BcryptCost),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account with the least-privileged role and
// issues a token for it. The plaintext password is hashed before
// persisting and never returned.
func (s *AuthService) Register(ctx context.Context, name, password string) (*domain.User, string, time.Time, error) {
	if _, err := s.users.GetByName(ctx, name); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("name already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Login verifies credentials and issues a token. Unknown names and
// wrong passwords produce the same generic unauthorized outcome, and an
// unknown name still pays for a hash comparison.
func (s *AuthService) Login(ctx context.Context, name, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.burner.Compare(password)
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
