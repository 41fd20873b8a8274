package service

import (
	"context"
	"errors"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email or password do not match.
// Callers must not distinguish unknown email from wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies dashboard logins and admin claims.
type AuthService interface {
	// Login returns the user when email and password match.
	Login(ctx context.Context, email, password string) (*model.User, error)

	// IsAdmin reports whether the user carries the administrator claim.
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	users repository.UserRepository
}

// NewAuthService creates an AuthService backed by the given user repository.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authServiceImpl{users: users}
}

// Login verifies the password against the stored bcrypt hash.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IsAdmin looks up the user's administrator flag.
func (s *authServiceImpl) IsAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}
