package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrah/lessonhub/internal/app/models"
)

// TimeOffRepository handles database operations for instructor time off
type TimeOffRepository struct {
	db *pgxpool.Pool
}

// NewTimeOffRepository creates a new time-off repository
func NewTimeOffRepository(db *pgxpool.Pool) *TimeOffRepository {
	return &TimeOffRepository{
		db: db,
	}
}

// GetByInstructor retrieves all time-off rows owned by one instructor
func (r *TimeOffRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]models.TimeOff, error) {
	query := `
		SELECT id, instructor_id, start_date::text, end_date::text
		FROM time_off
		WHERE instructor_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error listing time off: %w", err)
	}
	defer rows.Close()

	entries := make([]models.TimeOff, 0)
	for rows.Next() {
		var entry models.TimeOff
		if err := rows.Scan(
			&entry.ID,
			&entry.InstructorID,
			&entry.StartDate,
			&entry.EndDate,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Create inserts a new time-off row
func (r *TimeOffRepository) Create(ctx context.Context, entry *models.TimeOff) error {
	query := `
		INSERT INTO time_off (instructor_id, start_date, end_date)
		VALUES ($1, $2::date, $3::date)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		entry.InstructorID, entry.StartDate, entry.EndDate,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("error creating time off: %w", err)
	}

	return nil
}
