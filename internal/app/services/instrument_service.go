package services

import (
	"context"
	"strings"

	"github.com/emrah/lessonhub/internal/app/models"
	"github.com/emrah/lessonhub/internal/app/models/dto"
	"github.com/emrah/lessonhub/internal/pkg/apperrors"
)

// InstrumentService defines the interface for instructor instrument operations
type InstrumentService interface {
	ListForInstructor(ctx context.Context, instructorID int64) ([]models.InstructorInstrument, error)
	AddInstrument(ctx context.Context, instructorID int64, req *dto.CreateInstrumentRequest) error
}

type instrumentStore interface {
	GetByInstructor(ctx context.Context, instructorID int64) ([]models.InstructorInstrument, error)
	Create(ctx context.Context, entry *models.InstructorInstrument) error
}

// instrumentServiceImpl implements the InstrumentService interface
type instrumentServiceImpl struct {
	instruments instrumentStore
}

// NewInstrumentService creates a new instrument service instance
func NewInstrumentService(instruments instrumentStore) InstrumentService {
	return &instrumentServiceImpl{
		instruments: instruments,
	}
}

func (s *instrumentServiceImpl) ListForInstructor(ctx context.Context, instructorID int64) ([]models.InstructorInstrument, error) {
	return s.instruments.GetByInstructor(ctx, instructorID)
}

func (s *instrumentServiceImpl) AddInstrument(ctx context.Context, instructorID int64, req *dto.CreateInstrumentRequest) error {
	if strings.TrimSpace(req.Instrument) == "" {
		return apperrors.NewValidationError("instrument cannot be empty")
	}

	entry := &models.InstructorInstrument{
		InstructorID: instructorID,
		Instrument:   strings.TrimSpace(req.Instrument),
	}

	return s.instruments.Create(ctx, entry)
}
