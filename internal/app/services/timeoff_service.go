package services

import (
	"context"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/pkg/apperrors"
)

// TimeOffService defines the interface for instructor time-off operations
type TimeOffService interface {
	ListForInstructor(ctx context.Context, instructorID int64) ([]models.TimeOff, error)
	AddTimeOff(ctx context.Context, instructorID int64, req *dto.CreateTimeOffRequest) error
}

type timeOffStore interface {
	GetByInstructor(ctx context.Context, instructorID int64) ([]models.TimeOff, error)
	Create(ctx context.Context, entry *models.TimeOff) error
}

// timeOffServiceImpl implements the TimeOffService interface
type timeOffServiceImpl struct {
	timeOff timeOffStore
}

// NewTimeOffService creates a new time-off service instance
func NewTimeOffService(timeOff timeOffStore) TimeOffService {
	return &timeOffServiceImpl{
		timeOff: timeOff,
	}
}

func (s *timeOffServiceImpl) ListForInstructor(ctx context.Context, instructorID int64) ([]models.TimeOff, error) {
	return s.timeOff.GetByInstructor(ctx, instructorID)
}

func (s *timeOffServiceImpl) AddTimeOff(ctx context.Context, instructorID int64, req *dto.CreateTimeOffRequest) error {
	if req.StartDate == "" || req.EndDate == "" {
		return apperrors.NewValidationError("start_date and end_date are required")
	}

	entry := &models.TimeOff{
		InstructorID: instructorID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}

	return s.timeOff.Create(ctx, entry)
}
