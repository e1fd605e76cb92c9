package services

import (
	"context"
	"fmt"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/pkg/apperrors"
)

// LessonService defines the interface for lesson operations
type LessonService interface {
	// ListLessons returns every lesson, decorated with the student name.
	ListLessons(ctx context.Context) ([]models.Lesson, error)
	// ListInstructorLessons returns only lessons assigned to instructorID.
	ListInstructorLessons(ctx context.Context, instructorID int64) ([]models.Lesson, error)
	CreateLesson(ctx context.Context, req *dto.CreateLessonRequest) error
	// UpdateNotes mutates the notes of a lesson owned by instructorID.
	// A missing lesson and a lesson owned by someone else are reported
	// uniformly as ErrLessonNotOwned.
	UpdateNotes(ctx context.Context, instructorID int64, req *dto.UpdateLessonNotesRequest) error
}

type lessonStore interface {
	GetAll(ctx context.Context) ([]models.Lesson, error)
	GetByInstructor(ctx context.Context, instructorID int64) ([]models.Lesson, error)
	Create(ctx context.Context, lesson *models.Lesson) error
	UpdateNotes(ctx context.Context, lessonID, instructorID int64, notes string) (int64, error)
}

// lessonServiceImpl implements the LessonService interface
type lessonServiceImpl struct {
	lessons lessonStore
}

// NewLessonService creates a new lesson service instance
func NewLessonService(lessons lessonStore) LessonService {
	return &lessonServiceImpl{
		lessons: lessons,
	}
}

func (s *lessonServiceImpl) ListLessons(ctx context.Context) ([]models.Lesson, error) {
	return s.lessons.GetAll(ctx)
}

func (s *lessonServiceImpl) ListInstructorLessons(ctx context.Context, instructorID int64) ([]models.Lesson, error) {
	return s.lessons.GetByInstructor(ctx, instructorID)
}

func (s *lessonServiceImpl) CreateLesson(ctx context.Context, req *dto.CreateLessonRequest) error {
	if req.StudentID <= 0 {
		return apperrors.NewValidationError("student_id must be positive")
	}
	if req.InstructorID <= 0 {
		return apperrors.NewValidationError("instructor_id must be positive")
	}
	if req.LessonDate == "" {
		return apperrors.NewValidationError("lesson_date cannot be empty")
	}
	if req.LessonTime == "" {
		return apperrors.NewValidationError("lesson_time cannot be empty")
	}

	lesson := &models.Lesson{
		StudentID:       req.StudentID,
		InstructorID:    req.InstructorID,
		LessonDate:      req.LessonDate,
		LessonTime:      req.LessonTime,
		Duration:        req.Duration,
		Instrument:      req.Instrument,
		ReminderEnabled: req.ReminderEnabled,
	}

	return s.lessons.Create(ctx, lesson)
}

func (s *lessonServiceImpl) UpdateNotes(ctx context.Context, instructorID int64, req *dto.UpdateLessonNotesRequest) error {
	if req.LessonID <= 0 {
		return apperrors.NewValidationError("lesson_id must be positive")
	}

	affected, err := s.lessons.UpdateNotes(ctx, req.LessonID, instructorID, req.Notes)
	if err != nil {
		return fmt.Errorf("error updating notes: %w", err)
	}

	if affected == 0 {
		return apperrors.ErrLessonNotOwned
	}

	return nil
}
