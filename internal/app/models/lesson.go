package models

// Lesson defines the lesson model based on the 'lessons' table.
// Date and time fields travel as text on the wire; this layer enforces
// no calendar semantics on them.
type Lesson struct {
	ID              int64  `json:"id" db:"id"`
	StudentID       int64  `json:"student_id" db:"student_id"`
	InstructorID    int64  `json:"instructor_id" db:"instructor_id"`
	LessonDate      string `json:"lesson_date" db:"lesson_date"`
	LessonTime      string `json:"lesson_time" db:"lesson_time"`
	Duration        int    `json:"duration" db:"duration"`
	Instrument      string `json:"instrument" db:"instrument"`
	ReminderEnabled bool   `json:"reminder_enabled" db:"reminder_enabled"`
	Notes           string `json:"notes" db:"notes"`
	StudentName     string `json:"student_name" db:"student_name"` // joined from students
}
