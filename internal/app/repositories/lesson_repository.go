package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrah/lessonhub/internal/app/models"
)

// LessonRepository handles database operations for lessons
type LessonRepository struct {
	db *pgxpool.Pool
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{
		db: db,
	}
}

const lessonColumns = `
	l.id, l.student_id, l.instructor_id,
	l.lesson_date::text, l.lesson_time::text, l.duration, l.instrument,
	l.reminder_enabled, COALESCE(l.notes, ''), s.name AS student_name
`

func scanLessons(rows pgx.Rows) ([]models.Lesson, error) {
	lessons := make([]models.Lesson, 0)
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(
			&lesson.ID,
			&lesson.StudentID,
			&lesson.InstructorID,
			&lesson.LessonDate,
			&lesson.LessonTime,
			&lesson.Duration,
			&lesson.Instrument,
			&lesson.ReminderEnabled,
			&lesson.Notes,
			&lesson.StudentName,
		); err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lessons, nil
}

// GetAll retrieves all lessons decorated with the student name
func (r *LessonRepository) GetAll(ctx context.Context) ([]models.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons l
		JOIN students s ON l.student_id = s.id
		ORDER BY l.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing lessons: %w", err)
	}
	defer rows.Close()

	return scanLessons(rows)
}

// GetByInstructor retrieves all lessons assigned to one instructor
func (r *LessonRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]models.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons l
		JOIN students s ON l.student_id = s.id
		WHERE l.instructor_id = $1
		ORDER BY l.id
	`

	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		return nil, fmt.Errorf("error listing instructor lessons: %w", err)
	}
	defer rows.Close()

	return scanLessons(rows)
}

// Create inserts a new lesson
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	query := `
		INSERT INTO lessons (student_id, instructor_id, lesson_date, lesson_time, duration, instrument, reminder_enabled)
		VALUES ($1, $2, $3::date, $4::time, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		lesson.StudentID,
		lesson.InstructorID,
		lesson.LessonDate,
		lesson.LessonTime,
		lesson.Duration,
		lesson.Instrument,
		lesson.ReminderEnabled,
	).Scan(&lesson.ID)
	if err != nil {
		return fmt.Errorf("error creating lesson: %w", err)
	}

	return nil
}

// UpdateNotes sets the notes of a lesson. The row-match predicate includes
// the instructor id, so updating a lesson owned by someone else affects
// zero rows; the returned count lets the caller report that uniformly.
func (r *LessonRepository) UpdateNotes(ctx context.Context, lessonID, instructorID int64, notes string) (int64, error) {
	query := `
		UPDATE lessons
		SET notes = $1
		WHERE id = $2 AND instructor_id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, notes, lessonID, instructorID)
	if err != nil {
		return 0, fmt.Errorf("error updating lesson notes: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
