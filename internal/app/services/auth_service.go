package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/pkg/apperrors"
	"github.com/emrah/lessonhub/internal/pkg/auth"
)

// AuthService defines the interface for credential checks
type AuthService interface {
	// Authenticate verifies a username/password pair against the stored
	// hash and returns the matching user. Unknown username and wrong
	// password both surface as ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// userCredentialStore is the slice of the user repository the auth service needs
type userCredentialStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	users userCredentialStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(users userCredentialStore) AuthService {
	return &authServiceImpl{
		users: users,
	}
}

func (s *authServiceImpl) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}
