package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrah/lessonhub/internal/app/models"
)

// AvailabilityRepository handles database operations for instructor availability
type AvailabilityRepository struct {
	db *pgxpool.Pool
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{
		db: db,
	}
}

// GetByInstructor retrieves all availability rows owned by one instructor
func (r *AvailabilityRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]models.Availability, error) {
	query := `
		SELECT id, instructor_id, day_of_week, start_time::text, end_time::text
		FROM availability
		WHERE instructor_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error listing availability: %w", err)
	}
	defer rows.Close()

	entries := make([]models.Availability, 0)
	for rows.Next() {
		var entry models.Availability
		if err := rows.Scan(
			&entry.ID,
			&entry.InstructorID,
			&entry.DayOfWeek,
			&entry.StartTime,
			&entry.EndTime,
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

// CreateBatch inserts all entries within a single transaction, so a
// multi-day submission lands completely or not at all.
func (r *AvailabilityRepository) CreateBatch(ctx context.Context, entries []*models.Availability) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO availability (instructor_id, day_of_week, start_time, end_time)
		VALUES ($1, $2, $3::time, $4::time)
		RETURNING id
	`

	for _, entry := range entries {
		err := tx.QueryRow(ctx, query,
			entry.InstructorID, entry.DayOfWeek, entry.StartTime, entry.EndTime,
		).Scan(&entry.ID)
		if err != nil {
			return fmt.Errorf("error creating availability: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
