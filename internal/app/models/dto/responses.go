package dto

import "github.com/emrah/lessonhub/internal/app/models"

// MessageResponse is the standard success envelope
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the standard error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}

// AuthStatusResponse reports the current session state
type AuthStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	Username      string `json:"username,omitempty"`
}

// UsersResponse wraps the user listing; password hashes never leave the server
type UsersResponse struct {
	Users []models.User `json:"users"`
}

// StudentsResponse wraps the student listing
type StudentsResponse struct {
	Students []models.Student `json:"students"`
}

// LessonsResponse wraps a lesson listing
type LessonsResponse struct {
	Lessons []models.Lesson `json:"lessons"`
}

// AvailabilityResponse wraps an instructor's availability listing
type AvailabilityResponse struct {
	Availability []models.Availability `json:"availability"`
}

// TimeOffResponse wraps an instructor's time-off listing
type TimeOffResponse struct {
	TimeOff []models.TimeOff `json:"time_off"`
}

// InstrumentsResponse wraps an instructor's instrument listing
type InstrumentsResponse struct {
	Instruments []models.InstructorInstrument `json:"instruments"`
}
