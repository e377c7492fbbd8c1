package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
	"github.com/prayaas/yuvasetu/internal/pkg/dberrors"
)

// IProgramCenterRepository defines the interface for program center database operations
type IProgramCenterRepository interface {
	Create(ctx context.Context, center *models.ProgramCenter) error
	GetByID(ctx context.Context, id int64) (*models.ProgramCenter, error)
	GetAll(ctx context.Context) ([]*models.ProgramCenter, error)
	NameExists(ctx context.Context, name string) (bool, error)
	NameExistsExcept(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, center *models.ProgramCenter) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// ProgramCenterRepository handles database operations for program centers
type ProgramCenterRepository struct {
	db *pgxpool.Pool
}

// NewProgramCenterRepository creates a new program center repository
func NewProgramCenterRepository(db *pgxpool.Pool) *ProgramCenterRepository {
	return &ProgramCenterRepository{
		db: db,
	}
}

// Create inserts a new program center
func (r *ProgramCenterRepository) Create(ctx context.Context, center *models.ProgramCenter) error {
	query := `
		INSERT INTO program_centers (name, location, coordinator_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		center.Name, center.Location, center.CoordinatorID,
	).Scan(&center.ID, &center.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "program_centers_name_key") {
			return apperrors.ErrProgramCenterExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCoordinatorNotFound
		}
		return fmt.Errorf("error creating program center: %w", err)
	}

	return nil
}

// GetByID retrieves a program center with its coordinator relation, nil when absent
func (r *ProgramCenterRepository) GetByID(ctx context.Context, id int64) (*models.ProgramCenter, error) {
	query := `
		SELECT pc.id, pc.name, pc.location, pc.coordinator_id, pc.created_at,
		       c.id, c.name, c.email, c.role, c.phone, c.created_at
		FROM program_centers pc
		JOIN users c ON c.id = pc.coordinator_id
		WHERE pc.id = $1
	`

	center, err := scanCenterWithCoordinator(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving program center: %w", err)
	}

	return center, nil
}

// GetAll retrieves all program centers with coordinator relations, name ascending
func (r *ProgramCenterRepository) GetAll(ctx context.Context) ([]*models.ProgramCenter, error) {
	query := `
		SELECT pc.id, pc.name, pc.location, pc.coordinator_id, pc.created_at,
		       c.id, c.name, c.email, c.role, c.phone, c.created_at
		FROM program_centers pc
		JOIN users c ON c.id = pc.coordinator_id
		ORDER BY pc.name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var centers []*models.ProgramCenter
	for rows.Next() {
		center, err := scanCenterWithCoordinator(rows)
		if err != nil {
			return nil, err
		}
		centers = append(centers, center)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return centers, nil
}

// NameExists checks if a center name is already taken
func (r *ProgramCenterRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM program_centers WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking center name existence: %w", err)
	}
	return exists, nil
}

// NameExistsExcept checks if a center name is used by a center other than excludeID
func (r *ProgramCenterRepository) NameExistsExcept(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM program_centers WHERE name = $1 AND id != $2)`,
		name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking center name existence: %w", err)
	}
	return exists, nil
}

// Update persists name, location and coordinator changes
func (r *ProgramCenterRepository) Update(ctx context.Context, center *models.ProgramCenter) error {
	query := `
		UPDATE program_centers
		SET name = $1, location = $2, coordinator_id = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		center.Name, center.Location, center.CoordinatorID, center.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "program_centers_name_key") {
			return apperrors.ErrProgramCenterExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCoordinatorNotFound
		}
		return fmt.Errorf("error updating program center: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramCenterNotFound
	}

	return nil
}

// Delete removes a program center row
func (r *ProgramCenterRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM program_centers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting program center: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramCenterNotFound
	}

	return nil
}

// Count counts all program centers
func (r *ProgramCenterRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM program_centers`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting program centers: %w", err)
	}
	return count, nil
}

func scanCenterWithCoordinator(row pgx.Row) (*models.ProgramCenter, error) {
	var center models.ProgramCenter
	var coordinator models.User
	var coordCreatedAt time.Time

	err := row.Scan(
		&center.ID, &center.Name, &center.Location, &center.CoordinatorID, &center.CreatedAt,
		&coordinator.ID, &coordinator.Name, &coordinator.Email, &coordinator.Role,
		&coordinator.Phone, &coordCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	coordinator.CreatedAt = coordCreatedAt
	center.Coordinator = &coordinator
	return &center, nil
}
