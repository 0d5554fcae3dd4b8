package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zestyflow/models"
	"zestyflow/repositories"
	"zestyflow/utils"
)

// mockUserRepository simulates the user store during tests.
type mockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *models.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	FindByIDFunc    func(ctx context.Context, id int) (*models.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func testTokens() *utils.TokenManager {
	return utils.NewTokenManager("test-secret", 24*time.Hour)
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("hashes password and normalizes email", func(t *testing.T) {
		var created *models.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				created = user
				user.ID = 7
				return nil
			},
		}
		svc := NewAuthService(repo, testTokens())

		token, user, err := svc.Signup(context.Background(), models.SignupRequest{
			Name:     "Alice",
			Email:    "  Alice@X.com ",
			Phone:    "12345",
			Password: "password123",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, "alice@x.com", created.Email)
		assert.Equal(t, models.LocationTypeHome, created.LocationType)
		assert.NotEqual(t, "password123", created.PasswordHash)

		ok, err := utils.VerifyPassword(created.PasswordHash, "password123")
		require.NoError(t, err)
		assert.True(t, ok)

		assert.NotEmpty(t, token)
		assert.Equal(t, 7, user.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				return repositories.ErrDuplicateEmail
			},
		}
		svc := NewAuthService(repo, testTokens())

		_, _, err := svc.Signup(context.Background(), models.SignupRequest{
			Name: "Alice", Email: "alice@x.com", Phone: "12345", Password: "password123",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("negative age", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepository{}, testTokens())
		age := -1

		_, _, err := svc.Signup(context.Background(), models.SignupRequest{
			Name: "Alice", Email: "alice@x.com", Phone: "12345", Password: "password123", Age: &age,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown location type falls back to home", func(t *testing.T) {
		var created *models.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				created = user
				return nil
			},
		}
		svc := NewAuthService(repo, testTokens())

		_, _, err := svc.Signup(context.Background(), models.SignupRequest{
			Name: "Alice", Email: "alice@x.com", Phone: "12345", Password: "password123",
			LocationType: "spaceship",
		})
		require.NoError(t, err)
		assert.Equal(t, models.LocationTypeHome, created.LocationType)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	alice := &models.User{ID: 1, Email: "alice@x.com", PasswordHash: hash}

	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
			if email == "alice@x.com" {
				return alice, nil
			}
			return nil, repositories.ErrNotFound
		},
	}
	svc := NewAuthService(repo, testTokens())

	t.Run("success", func(t *testing.T) {
		token, user, err := svc.Login(context.Background(), models.LoginRequest{
			Email: "Alice@X.com", Password: "correct-password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, _, wrongPw := svc.Login(context.Background(), models.LoginRequest{
			Email: "alice@x.com", Password: "wrong-password",
		})
		_, _, noUser := svc.Login(context.Background(), models.LoginRequest{
			Email: "nobody@x.com", Password: "correct-password",
		})

		assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
		assert.ErrorIs(t, noUser, ErrInvalidCredentials)
		assert.Equal(t, wrongPw.Error(), noUser.Error())
	})

	t.Run("store failure is not a credential error", func(t *testing.T) {
		broken := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*models.User, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := NewAuthService(broken, testTokens())

		_, _, err := svc.Login(context.Background(), models.LoginRequest{
			Email: "alice@x.com", Password: "correct-password",
		})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Me(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id int) (*models.User, error) {
				return &models.User{ID: id, Email: "alice@x.com"}, nil
			},
		}
		svc := NewAuthService(repo, testTokens())

		user, err := svc.Me(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "alice@x.com", user.Email)
	})

	t.Run("vanished user", func(t *testing.T) {
		svc := NewAuthService(&mockUserRepository{}, testTokens())

		_, err := svc.Me(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
