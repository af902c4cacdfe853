package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/post-service/internal/config"
	"github.com/spec-kit/post-service/internal/domain"
	apperrors "github.com/spec-kit/post-service/pkg/util/errorutil"
)

type fakeUserRepo struct {
	byName map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.byName[user.Name] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range f.byName {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByName(_ context.Context, name string) (*domain.User, error) {
	if user, ok := f.byName[name]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(f.byName))
	for _, user := range f.byName {
		users = append(users, *user)
	}
	return users, nil
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 60,
			BcryptCost:      bcrypt.MinCost,
		},
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)
	ctx := context.Background()

	user, token, exp, err := svc.Register(ctx, "alice", "secret-word")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, domain.RoleUser, user.Role)
	require.NotEmpty(t, token)
	require.False(t, exp.IsZero())

	t.Run("plaintext never stored", func(t *testing.T) {
		stored := repo.byName["alice"]
		require.NotEqual(t, "secret-word", stored.PasswordHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-word")))
	})

	t.Run("token decodes back to subject and role", func(t *testing.T) {
		claims, err := svc.TokenManager().ParseToken(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.Subject)
		require.Equal(t, domain.RoleUser, claims.Role)
	})

	t.Run("duplicate name conflicts and keeps original hash", func(t *testing.T) {
		originalHash := repo.byName["alice"].PasswordHash

		_, _, _, err := svc.Register(ctx, "alice", "other-word")
		require.Error(t, err)
		require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
		require.Equal(t, originalHash, repo.byName["alice"].PasswordHash)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)
	ctx := context.Background()

	_, _, _, err := svc.Register(ctx, "alice", "secret-word")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, token, _, err := svc.Login(ctx, "alice", "secret-word")
		require.NoError(t, err)
		require.Equal(t, "alice", user.Name)
		require.NotEmpty(t, token)
	})

	t.Run("wrong password and unknown name fail identically", func(t *testing.T) {
		_, _, _, wrongErr := svc.Login(ctx, "alice", "wrong-word")
		_, _, _, unknownErr := svc.Login(ctx, "nobody", "wrong-word")

		require.Error(t, wrongErr)
		require.Error(t, unknownErr)
		require.Equal(t, apperrors.ToDomainError(wrongErr).Code, apperrors.ToDomainError(unknownErr).Code)
		require.Equal(t, apperrors.ToDomainError(wrongErr).Message, apperrors.ToDomainError(unknownErr).Message)
		require.Equal(t, apperrors.ToDomainError(wrongErr).HTTPStatus, apperrors.ToDomainError(unknownErr).HTTPStatus)
	})
}
