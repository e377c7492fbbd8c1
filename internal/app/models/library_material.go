package models

import "time"

// LibraryMaterial defines an uploaded document tracked in the 'library_materials' table
type LibraryMaterial struct {
	ID           int64        `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	Type         MaterialType `json:"type" db:"type"`
	FilePath     string       `json:"-" db:"file_path"` // storage location, not exposed
	OriginalName string       `json:"originalName" db:"original_name"`
	UploadedByID int64        `json:"uploadedById" db:"uploaded_by_id"`
	UploadDate   time.Time    `json:"uploadDate" db:"upload_date"`
	FileSize     int64        `json:"fileSize" db:"file_size"`

	UploadedBy *User `json:"uploadedBy,omitempty"` // Relation, no db tag
}
