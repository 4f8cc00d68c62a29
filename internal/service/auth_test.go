package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tdrmf/foundation-api/internal/domain"
	"github.com/tdrmf/foundation-api/internal/repository"
	"github.com/tdrmf/foundation-api/internal/service"
)

type stubUserRepo struct {
	users  map[string]domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:  map[string]domain.User{},
		nextID: 1,
	}
}

func (r *stubUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return domain.User{}, repository.ErrUserEmailExists
	}

	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = user

	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, exists := r.users[email]
	if !exists {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc := service.NewAuthService(repo)

	user, err := svc.Register(context.Background(), domain.User{
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.NotEqual(t, "correct-horse", user.Password, "password must be stored hashed")

	stored := repo.users["admin@example.com"]
	err = bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct-horse"))
	assert.NoError(t, err)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := service.NewAuthService(repo)

	_, err := svc.Register(context.Background(), domain.User{
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), domain.User{
		Email:    "admin@example.com",
		Password: "other-password",
	})
	assert.ErrorIs(t, err, service.ErrUserEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := newStubUserRepo()
	svc := service.NewAuthService(repo)

	_, err := svc.Register(context.Background(), domain.User{
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "admin@example.com", "battery-staple")
		assert.ErrorIs(t, err, service.ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
