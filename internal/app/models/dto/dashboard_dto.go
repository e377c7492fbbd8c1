package dto

import "time"

// Activity is one entry of a recent-activity feed
type Activity struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
}

// AdminStatsResponse is the admin dashboard rollup
type AdminStatsResponse struct {
	TotalCenters     int64      `json:"totalCenters"`
	TotalVolunteers  int64      `json:"totalVolunteers"`
	TotalMaterials   int64      `json:"totalMaterials"`
	RecentActivities []Activity `json:"recentActivities"`
}

// CoordinatorContact is the coordinator block of a volunteer dashboard
type CoordinatorContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// VolunteerStatsDashboardResponse is the volunteer dashboard rollup.
// AssignedCenter is "Not Assigned" and Coordinator nil when the volunteer has
// no center; this is a defined non-error outcome.
type VolunteerStatsDashboardResponse struct {
	AssignedCenter   string              `json:"assignedCenter"`
	ProgramCenterID  *int64              `json:"programCenterId"`
	Location         string              `json:"location"`
	Coordinator      *CoordinatorContact `json:"coordinator"`
	TotalVolunteers  int64               `json:"totalVolunteers"`
	OperatingHours   string              `json:"operatingHours"`
	TotalAttendance  int                 `json:"totalAttendance"`
	PresentDays      int                 `json:"presentDays"`
	LibraryAccess    int64               `json:"libraryAccess"`
	RecentActivities []Activity          `json:"recentActivities"`
}
