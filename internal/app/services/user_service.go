package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/pkg/apperrors"
	"github.com/emrah/lessonhub/internal/pkg/auth"
)

// UserService defines the interface for user management operations
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) error
}

type userStore interface {
	GetAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	users userStore
}

// NewUserService creates a new user service instance
func NewUserService(users userStore) UserService {
	return &userServiceImpl{
		users: users,
	}
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return apperrors.NewValidationError("username cannot be empty")
	}
	if req.Password == "" {
		return apperrors.NewValidationError("password cannot be empty")
	}
	if strings.TrimSpace(req.Role) == "" {
		return apperrors.NewValidationError("role cannot be empty")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: strings.TrimSpace(req.Username),
		Password: hashed,
		Role:     models.Role(req.Role),
	}

	return s.users.Create(ctx, user)
}
