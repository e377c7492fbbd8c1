package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	User          *UserRepository
	ProgramCenter *ProgramCenterRepository
	Attendance    *AttendanceRepository
	Library       *LibraryRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		ProgramCenter: NewProgramCenterRepository(db),
		Attendance:    NewAttendanceRepository(db),
		Library:       NewLibraryRepository(db),
	}
}
