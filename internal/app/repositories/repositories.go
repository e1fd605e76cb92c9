package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	LessonRepository       *LessonRepository
	AvailabilityRepository *AvailabilityRepository
	TimeOffRepository      *TimeOffRepository
	InstrumentRepository   *InstrumentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		LessonRepository:       NewLessonRepository(db),
		AvailabilityRepository: NewAvailabilityRepository(db),
		TimeOffRepository:      NewTimeOffRepository(db),
		InstrumentRepository:   NewInstrumentRepository(db),
	}
}
