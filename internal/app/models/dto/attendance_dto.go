package dto

// MarkAttendanceRequest represents a request to record attendance for a day.
// VolunteerID defaults to the authenticated caller when omitted.
type MarkAttendanceRequest struct {
	VolunteerID *int64 `json:"volunteerId,omitempty" binding:"omitempty,min=1"`
	Date        string `json:"date" binding:"required"`
	Status      string `json:"status" binding:"required,oneof=present absent"`
}

// AttendanceFilterRequest carries the optional report filters. The date range
// is applied only when both bounds are present.
type AttendanceFilterRequest struct {
	ProgramCenterID int64  `form:"programCenterId"`
	StartDate       string `form:"startDate"`
	EndDate         string `form:"endDate"`
}

// AttendanceSummaryResponse reports per-status counts for one date and center
type AttendanceSummaryResponse struct {
	Date    string `json:"date"`
	Total   int64  `json:"total"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
}
