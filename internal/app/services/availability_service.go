package services

import (
	"context"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/pkg/apperrors"
)

// AvailabilityService defines the interface for instructor availability operations
type AvailabilityService interface {
	ListForInstructor(ctx context.Context, instructorID int64) ([]models.Availability, error)
	// AddAvailability expands the submitted weekday list into one row per
	// day, each sharing the submitted start and end time.
	AddAvailability(ctx context.Context, instructorID int64, req *dto.CreateAvailabilityRequest) error
}

type availabilityStore interface {
	GetByInstructor(ctx context.Context, instructorID int64) ([]models.Availability, error)
	CreateBatch(ctx context.Context, entries []*models.Availability) error
}

// availabilityServiceImpl implements the AvailabilityService interface
type availabilityServiceImpl struct {
	availability availabilityStore
}

// NewAvailabilityService creates a new availability service instance
func NewAvailabilityService(availability availabilityStore) AvailabilityService {
	return &availabilityServiceImpl{
		availability: availability,
	}
}

func (s *availabilityServiceImpl) ListForInstructor(ctx context.Context, instructorID int64) ([]models.Availability, error) {
	return s.availability.GetByInstructor(ctx, instructorID)
}

func (s *availabilityServiceImpl) AddAvailability(ctx context.Context, instructorID int64, req *dto.CreateAvailabilityRequest) error {
	if len(req.DaysOfWeek) == 0 {
		return apperrors.NewValidationError("days_of_week cannot be empty")
	}
	if req.StartTime == "" || req.EndTime == "" {
		return apperrors.NewValidationError("start_time and end_time are required")
	}

	entries := make([]*models.Availability, 0, len(req.DaysOfWeek))
	for _, day := range req.DaysOfWeek {
		entries = append(entries, &models.Availability{
			InstructorID: instructorID,
			DayOfWeek:    day,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
		})
	}

	return s.availability.CreateBatch(ctx, entries)
}
