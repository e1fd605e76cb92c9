package dto

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserRequest carries a new user submission (admin only)
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateStudentRequest carries a new student submission (admin only)
type CreateStudentRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Instrument string `json:"instrument"`
}

// CreateLessonRequest carries a new lesson submission (admin only)
type CreateLessonRequest struct {
	StudentID       int64  `json:"student_id"`
	InstructorID    int64  `json:"instructor_id"`
	LessonDate      string `json:"lesson_date"`
	LessonTime      string `json:"lesson_time"`
	Duration        int    `json:"duration"`
	Instrument      string `json:"instrument"`
	ReminderEnabled bool   `json:"reminder_enabled"`
}

// CreateAvailabilityRequest expands into one row per listed weekday
type CreateAvailabilityRequest struct {
	DaysOfWeek []string `json:"days_of_week"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time"`
}

// CreateTimeOffRequest carries a new time-off submission (instructor only)
type CreateTimeOffRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// CreateInstrumentRequest carries a new instructor instrument (instructor only)
type CreateInstrumentRequest struct {
	Instrument string `json:"instrument"`
}

// UpdateLessonNotesRequest updates the notes of a lesson owned by the caller
type UpdateLessonNotesRequest struct {
	LessonID int64  `json:"lesson_id"`
	Notes    string `json:"notes"`
}
