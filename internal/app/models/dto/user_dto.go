package dto

// CreateVolunteerRequest represents a request to create a volunteer account
type CreateVolunteerRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=8"`
	Phone           *string `json:"phone,omitempty"`
	ProgramCenterID *int64  `json:"programCenterId,omitempty"`
}

// UpdateVolunteerRequest represents a partial volunteer update. A
// ProgramCenterID of 0 clears the assignment; nil leaves it untouched.
type UpdateVolunteerRequest struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	ProgramCenterID *int64  `json:"programCenterId,omitempty"`
}

// VolunteerStatsResponse reports the total number of volunteers
type VolunteerStatsResponse struct {
	TotalVolunteers int64 `json:"totalVolunteers"`
}
