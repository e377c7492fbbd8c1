package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
)

// ILibraryRepository defines the interface for library material database operations
type ILibraryRepository interface {
	Create(ctx context.Context, material *models.LibraryMaterial) error
	GetByID(ctx context.Context, id int64) (*models.LibraryMaterial, error)
	GetAll(ctx context.Context) ([]*models.LibraryMaterial, error)
	FindRecent(ctx context.Context, limit int) ([]*models.LibraryMaterial, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// LibraryRepository handles database operations for library materials
type LibraryRepository struct {
	db *pgxpool.Pool
}

// NewLibraryRepository creates a new library repository
func NewLibraryRepository(db *pgxpool.Pool) *LibraryRepository {
	return &LibraryRepository{
		db: db,
	}
}

// Create inserts a new library material
func (r *LibraryRepository) Create(ctx context.Context, material *models.LibraryMaterial) error {
	query := `
		INSERT INTO library_materials (name, type, file_path, original_name, uploaded_by_id, file_size)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, upload_date
	`

	err := r.db.QueryRow(ctx, query,
		material.Name, material.Type, material.FilePath, material.OriginalName,
		material.UploadedByID, material.FileSize,
	).Scan(&material.ID, &material.UploadDate)
	if err != nil {
		return fmt.Errorf("error creating library material: %w", err)
	}

	return nil
}

// GetByID retrieves a material with its uploader relation, nil when absent
func (r *LibraryRepository) GetByID(ctx context.Context, id int64) (*models.LibraryMaterial, error) {
	query := libraryMaterialQuery + ` WHERE lm.id = $1`

	material, err := scanLibraryMaterial(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving library material: %w", err)
	}

	return material, nil
}

// GetAll retrieves all materials with uploader relations, newest upload first
func (r *LibraryRepository) GetAll(ctx context.Context) ([]*models.LibraryMaterial, error) {
	query := libraryMaterialQuery + ` ORDER BY lm.upload_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLibraryMaterials(rows)
}

// FindRecent retrieves the latest uploaded materials with uploader relations
func (r *LibraryRepository) FindRecent(ctx context.Context, limit int) ([]*models.LibraryMaterial, error) {
	query := libraryMaterialQuery + ` ORDER BY lm.upload_date DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectLibraryMaterials(rows)
}

// Delete removes a library material row
func (r *LibraryRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM library_materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting library material: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMaterialNotFound
	}

	return nil
}

// Count counts all library materials
func (r *LibraryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM library_materials`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting library materials: %w", err)
	}
	return count, nil
}

const libraryMaterialQuery = `
	SELECT lm.id, lm.name, lm.type, lm.file_path, lm.original_name,
	       lm.uploaded_by_id, lm.upload_date, lm.file_size,
	       u.name, u.email
	FROM library_materials lm
	JOIN users u ON u.id = lm.uploaded_by_id
`

func scanLibraryMaterial(row pgx.Row) (*models.LibraryMaterial, error) {
	var material models.LibraryMaterial
	var uploader models.User

	err := row.Scan(
		&material.ID, &material.Name, &material.Type, &material.FilePath,
		&material.OriginalName, &material.UploadedByID, &material.UploadDate, &material.FileSize,
		&uploader.Name, &uploader.Email,
	)
	if err != nil {
		return nil, err
	}

	uploader.ID = material.UploadedByID
	material.UploadedBy = &uploader
	return &material, nil
}

func collectLibraryMaterials(rows pgx.Rows) ([]*models.LibraryMaterial, error) {
	var materials []*models.LibraryMaterial
	for rows.Next() {
		material, err := scanLibraryMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, material)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materials, nil
}
