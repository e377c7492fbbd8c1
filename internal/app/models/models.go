package models

// Role represents a user's role within the organization
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVolunteer Role = "volunteer"
)

// AttendanceStatus represents a recorded presence status
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

// MaterialType classifies an uploaded library material by its file extension
type MaterialType string

const (
	MaterialDocument     MaterialType = "document"
	MaterialSpreadsheet  MaterialType = "spreadsheet"
	MaterialImage        MaterialType = "image"
	MaterialPresentation MaterialType = "presentation"
)
