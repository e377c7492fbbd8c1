package dto

// CreateProgramCenterRequest represents a request to create a program center
type CreateProgramCenterRequest struct {
	Name          string `json:"name" binding:"required"`
	Location      string `json:"location" binding:"required"`
	CoordinatorID int64  `json:"coordinatorId" binding:"required,min=1"`
}

// UpdateProgramCenterRequest represents a partial update; unset fields are left untouched
type UpdateProgramCenterRequest struct {
	Name          *string `json:"name,omitempty"`
	Location      *string `json:"location,omitempty"`
	CoordinatorID *int64  `json:"coordinatorId,omitempty"`
}

// ProgramCenterStatsResponse reports the total number of centers
type ProgramCenterStatsResponse struct {
	TotalCenters int64 `json:"totalCenters"`
}
