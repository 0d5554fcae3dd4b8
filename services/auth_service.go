package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"zestyflow/models"
	"zestyflow/repositories"
	"zestyflow/utils"
)

// UserRepository is the persistence surface the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
}

type AuthService struct {
	users  UserRepository
	tokens *utils.TokenManager
}

func NewAuthService(users UserRepository, tokens *utils.TokenManager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// dummyHash is verified whenever the email does not resolve, so both
// login failure paths cost one argon2 comparison.
var dummyHash = sync.OnceValue(func() string {
	h, _ := utils.HashPassword("zestyflow-no-such-user")
	return h
})

// Signup registers a new user and issues a token, exactly as on login.
// The unique index on email decides duplicates; a pre-check would race.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (string, *models.User, error) {
	if req.Age != nil && *req.Age < 0 {
		return "", nil, fmt.Errorf("%w: age must be non-negative", ErrInvalidInput)
	}

	locationType := req.LocationType
	if !models.ValidLocationType(locationType) {
		locationType = models.LocationTypeHome
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		Location:     req.Location,
		LocationType: locationType,
		PasswordHash: hash,
		Age:          req.Age,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return "", nil, ErrAlreadyExists
		}
		return "", nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error so nothing leaks about which failed.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return "", nil, err
	}

	hash := dummyHash()
	if user != nil {
		hash = user.PasswordHash
	}

	ok, verifyErr := utils.VerifyPassword(hash, req.Password)
	if user == nil || verifyErr != nil || !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Me resolves the authenticated user's record. The user can vanish
// between token issuance and this lookup.
func (s *AuthService) Me(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
