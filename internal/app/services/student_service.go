package services

import (
	"context"
	"strings"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/pkg/apperrors"
)

// StudentService defines the interface for student management operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) error
}

type studentStore interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students studentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students studentStore) StudentService {
	return &studentServiceImpl{
		students: students,
	}
}

func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.students.GetAll(ctx)
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}

	student := &models.Student{
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		Phone:      req.Phone,
		Instrument: req.Instrument,
	}

	return s.students.Create(ctx, student)
}
