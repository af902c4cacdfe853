package service

import (
	"context"

	"github.com/spec-kit/post-service/internal/domain"
	"github.com/spec-kit/post-service/internal/repository"
)

// UserService exposes read access to accounts.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all registered accounts.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// GetByID returns a single account.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
