package models

// Availability defines one weekly availability window of an instructor.
// A single submission may expand into several rows, one per weekday.
type Availability struct {
	ID           int64  `json:"id" db:"id"`
	InstructorID int64  `json:"-" db:"instructor_id"`
	DayOfWeek    string `json:"day_of_week" db:"day_of_week"`
	StartTime    string `json:"start_time" db:"start_time"`
	EndTime      string `json:"end_time" db:"end_time"`
}

// TimeOff defines an instructor's time-off period based on the 'time_off' table
type TimeOff struct {
	ID           int64  `json:"id" db:"id"`
	InstructorID int64  `json:"-" db:"instructor_id"`
	StartDate    string `json:"start_date" db:"start_date"`
	EndDate      string `json:"end_date" db:"end_date"`
}

// InstructorInstrument defines one instrument an instructor teaches
type InstructorInstrument struct {
	ID           int64  `json:"id" db:"id"`
	InstructorID int64  `json:"-" db:"instructor_id"`
	Instrument   string `json:"instrument" db:"instrument"`
}
