package filestorage

import "mime/multipart"

// Storage defines the interface for stored-file operations
type Storage interface {
	// SaveFile saves an uploaded file and returns the path it was stored under
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// ReadFile reads the content of a stored file by its saved path
	ReadFile(filePath string) ([]byte, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error

	// GetFullPath returns the full filesystem path for a stored file path
	GetFullPath(filePath string) string
}
