package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrah/lessonhub/internal/app/models"
)

// InstrumentRepository handles database operations for instructor instruments
type InstrumentRepository struct {
	db *pgxpool.Pool
}

// NewInstrumentRepository creates a new instrument repository
func NewInstrumentRepository(db *pgxpool.Pool) *InstrumentRepository {
	return &InstrumentRepository{
		db: db,
	}
}

// GetByInstructor retrieves all instruments taught by one instructor
func (r *InstrumentRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]models.InstructorInstrument, error) {
	query := `
		SELECT id, instructor_id, instrument
		FROM instructor_instruments
		WHERE instructor_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error listing instruments: %w", err)
	}
	defer rows.Close()

	entries := make([]models.InstructorInstrument, 0)
	for rows.Next() {
		var entry models.InstructorInstrument
		if err := rows.Scan(&entry.ID, &entry.InstructorID, &entry.Instrument); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Create inserts a new instructor instrument
func (r *InstrumentRepository) Create(ctx context.Context, entry *models.InstructorInstrument) error {
	query := `
		INSERT INTO instructor_instruments (instructor_id, instrument)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, entry.InstructorID, entry.Instrument).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("error creating instrument: %w", err)
	}

	return nil
}
