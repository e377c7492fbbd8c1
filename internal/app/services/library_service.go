package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/repositories"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
	"github.com/prayaas/yuvasetu/internal/pkg/filestorage"
	"github.com/prayaas/yuvasetu/internal/pkg/logger"
)

// MaxUploadSize limits library uploads to 5 MB
const MaxUploadSize = 5 * 1024 * 1024

var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/csv":                     true,
	"image/png":                    true,
	"image/jpeg":                   true,
	"image/gif":                    true,
	"application/vnd.ms-powerpoint": true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
}

var extensionContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".csv":  "text/csv",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

var extensionTypes = map[string]models.MaterialType{
	".pdf":  models.MaterialDocument,
	".doc":  models.MaterialDocument,
	".docx": models.MaterialDocument,
	".xls":  models.MaterialSpreadsheet,
	".xlsx": models.MaterialSpreadsheet,
	".csv":  models.MaterialSpreadsheet,
	".png":  models.MaterialImage,
	".jpg":  models.MaterialImage,
	".jpeg": models.MaterialImage,
	".gif":  models.MaterialImage,
	".ppt":  models.MaterialPresentation,
	".pptx": models.MaterialPresentation,
}

// LibraryService handles the shared material library
type LibraryService struct {
	libraryRepo repositories.ILibraryRepository
	storage     filestorage.Storage
}

// NewLibraryService creates a new library service
func NewLibraryService(libraryRepo repositories.ILibraryRepository, storage filestorage.Storage) *LibraryService {
	return &LibraryService{
		libraryRepo: libraryRepo,
		storage:     storage,
	}
}

// UploadMaterial validates and stores an uploaded file, then records it.
// Validation rejects the upload before anything is written to disk.
func (s *LibraryService) UploadMaterial(ctx context.Context, name string, file *multipart.FileHeader, uploadedByID int64) (*models.LibraryMaterial, error) {
	if file.Size > MaxUploadSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		return nil, apperrors.ErrUnsupportedFileType
	}

	materialType, err := DeriveMaterialType(file.Filename)
	if err != nil {
		return nil, err
	}

	filePath, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = file.Filename
	}

	material := &models.LibraryMaterial{
		Name:         name,
		Type:         materialType,
		FilePath:     filePath,
		OriginalName: file.Filename,
		UploadedByID: uploadedByID,
		FileSize:     file.Size,
	}

	if err := s.libraryRepo.Create(ctx, material); err != nil {
		if delErr := s.storage.DeleteFile(filePath); delErr != nil {
			logger.Warn().Err(delErr).Str("path", filePath).Msg("Failed to remove orphaned upload")
		}
		return nil, err
	}

	logger.Info().
		Int64("material_id", material.ID).
		Str("type", string(materialType)).
		Int64("size", file.Size).
		Msg("Library material uploaded")

	return material, nil
}

// GetAllMaterials lists all materials, newest first
func (s *LibraryService) GetAllMaterials(ctx context.Context) ([]*models.LibraryMaterial, error) {
	return s.libraryRepo.GetAll(ctx)
}

// GetRecentMaterials lists the latest uploads
func (s *LibraryService) GetRecentMaterials(ctx context.Context, limit int) ([]*models.LibraryMaterial, error) {
	return s.libraryRepo.FindRecent(ctx, limit)
}

// GetMaterial retrieves one material's metadata
func (s *LibraryService) GetMaterial(ctx context.Context, id int64) (*models.LibraryMaterial, error) {
	material, err := s.libraryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, apperrors.ErrMaterialNotFound
	}
	return material, nil
}

// GetMaterialFile returns a material's metadata and file contents for download
func (s *LibraryService) GetMaterialFile(ctx context.Context, id int64) (*models.LibraryMaterial, []byte, error) {
	material, err := s.libraryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if material == nil {
		return nil, nil, apperrors.ErrMaterialNotFound
	}

	data, err := s.storage.ReadFile(material.FilePath)
	if err != nil {
		return nil, nil, err
	}

	return material, data, nil
}

// DeleteMaterial removes a material record and its stored file. A missing
// file on disk is logged, not surfaced; the record removal is what matters.
func (s *LibraryService) DeleteMaterial(ctx context.Context, id int64) error {
	material, err := s.libraryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if material == nil {
		return apperrors.ErrMaterialNotFound
	}

	if err := s.libraryRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(material.FilePath); err != nil {
		logger.Warn().Err(err).Str("path", material.FilePath).Msg("Failed to delete material file")
	}

	logger.Info().Int64("material_id", id).Msg("Library material deleted")
	return nil
}

// GetLibraryStats reports the total material count
func (s *LibraryService) GetLibraryStats(ctx context.Context) (*dto.LibraryStatsResponse, error) {
	count, err := s.libraryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.LibraryStatsResponse{TotalMaterials: count}, nil
}

// DeriveMaterialType classifies a filename by its extension
func DeriveMaterialType(filename string) (models.MaterialType, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	materialType, ok := extensionTypes[ext]
	if !ok {
		return "", apperrors.ErrUnsupportedFileType
	}
	return materialType, nil
}

// ContentTypeFor resolves a filename's download content type from its
// extension, falling back to a generic binary type.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if contentType, ok := extensionContentTypes[ext]; ok {
		return contentType
	}
	return "application/octet-stream"
}
