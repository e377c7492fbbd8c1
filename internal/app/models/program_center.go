package models

import "time"

// ProgramCenter defines the program center model based on the 'program_centers' table
type ProgramCenter struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Location      string    `json:"location" db:"location"`
	CoordinatorID int64     `json:"coordinatorId" db:"coordinator_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	Coordinator   *User     `json:"coordinator,omitempty"` // Relation, no db tag
}
