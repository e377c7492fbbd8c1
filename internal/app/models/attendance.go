package models

import "time"

// Attendance defines one attendance row per volunteer per calendar date.
// The program center is a snapshot of the volunteer's center at mark time.
type Attendance struct {
	ID              int64            `json:"id" db:"id"`
	VolunteerID     int64            `json:"volunteerId" db:"volunteer_id"`
	ProgramCenterID int64            `json:"programCenterId" db:"program_center_id"`
	Date            time.Time        `json:"date" db:"date"`
	Status          AttendanceStatus `json:"status" db:"status"`
	MarkedByID      int64            `json:"markedById" db:"marked_by_id"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`

	Volunteer     *User          `json:"volunteer,omitempty"`     // Relation, no db tag
	ProgramCenter *ProgramCenter `json:"programCenter,omitempty"` // Relation, no db tag
	MarkedBy      *User          `json:"markedBy,omitempty"`      // Relation, no db tag
}
