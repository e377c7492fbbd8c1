package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID              int64          `json:"id" db:"id"`
	Name            string         `json:"name" db:"name"`
	Email           string         `json:"email" db:"email"`
	Password        string         `json:"-" db:"password"` // hashed, excluded from JSON
	Role            Role           `json:"role" db:"role"`
	Phone           *string        `json:"phone,omitempty" db:"phone"`
	ProgramCenterID *int64         `json:"programCenterId,omitempty" db:"program_center_id"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
	ProgramCenter   *ProgramCenter `json:"programCenter,omitempty"` // Relation, no db tag
}
