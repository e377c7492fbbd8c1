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

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByIDWithCenter(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	EmailExistsExcept(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, id int64, role models.Role) error
	FindAllVolunteers(ctx context.Context) ([]*models.User, error)
	FindVolunteerByID(ctx context.Context, id int64) (*models.User, error)
	DeleteVolunteer(ctx context.Context, id int64) error
	CountVolunteers(ctx context.Context) (int64, error)
	CountVolunteersByCenter(ctx context.Context, centerID int64) (int64, error)
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

const userColumns = `id, name, email, password, role, phone, program_center_id, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.Phone,
		&user.ProgramCenterID,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email, password, role, phone, program_center_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Password, user.Role, user.Phone, user.ProgramCenterID,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID, nil when absent
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByIDWithCenter retrieves a user along with the assigned program center relation
func (r *UserRepository) GetByIDWithCenter(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password, u.role, u.phone, u.program_center_id, u.created_at,
		       pc.id, pc.name, pc.location, pc.coordinator_id, pc.created_at
		FROM users u
		LEFT JOIN program_centers pc ON pc.id = u.program_center_id
		WHERE u.id = $1
	`

	var user models.User
	var center models.ProgramCenter
	var centerID *int64
	var centerName, centerLocation *string
	var coordinatorID *int64
	var centerCreatedAt *time.Time

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.Phone, &user.ProgramCenterID, &user.CreatedAt,
		&centerID, &centerName, &centerLocation, &coordinatorID, &centerCreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if centerID != nil {
		center.ID = *centerID
		center.Name = *centerName
		center.Location = *centerLocation
		center.CoordinatorID = *coordinatorID
		center.CreatedAt = *centerCreatedAt
		user.ProgramCenter = &center
	}

	return &user, nil
}

// GetByEmail retrieves a user by email, nil when absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// EmailExistsExcept checks if an email is used by a user other than excludeID
func (r *UserRepository) EmailExistsExcept(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id != $2)`, email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// Update persists name, email, phone and center assignment changes
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, phone = $3, program_center_id = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		user.Name, user.Email, user.Phone, user.ProgramCenterID, user.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateRole changes a user's role
func (r *UserRepository) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return fmt.Errorf("error updating role: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// FindAllVolunteers retrieves all volunteer users with their center relation, name ascending
func (r *UserRepository) FindAllVolunteers(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password, u.role, u.phone, u.program_center_id, u.created_at,
		       pc.id, pc.name, pc.location, pc.coordinator_id, pc.created_at
		FROM users u
		LEFT JOIN program_centers pc ON pc.id = u.program_center_id
		WHERE u.role = $1
		ORDER BY u.name ASC
	`

	rows, err := r.db.Query(ctx, query, models.RoleVolunteer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var volunteers []*models.User
	for rows.Next() {
		var user models.User
		var centerID *int64
		var centerName, centerLocation *string
		var coordinatorID *int64
		var centerCreatedAt *time.Time

		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
			&user.Phone, &user.ProgramCenterID, &user.CreatedAt,
			&centerID, &centerName, &centerLocation, &coordinatorID, &centerCreatedAt,
		); err != nil {
			return nil, err
		}

		if centerID != nil {
			user.ProgramCenter = &models.ProgramCenter{
				ID:            *centerID,
				Name:          *centerName,
				Location:      *centerLocation,
				CoordinatorID: *coordinatorID,
				CreatedAt:     *centerCreatedAt,
			}
		}

		volunteers = append(volunteers, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return volunteers, nil
}

// FindVolunteerByID retrieves a volunteer (role restricted) with center relation, nil when absent
func (r *UserRepository) FindVolunteerByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := r.GetByIDWithCenter(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != models.RoleVolunteer {
		return nil, nil
	}
	return user, nil
}

// DeleteVolunteer removes a volunteer row
func (r *UserRepository) DeleteVolunteer(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM users WHERE id = $1 AND role = $2`, id, models.RoleVolunteer)
	if err != nil {
		return fmt.Errorf("error deleting volunteer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrVolunteerNotFound
	}

	return nil
}

// CountVolunteers counts all users with the volunteer role
func (r *UserRepository) CountVolunteers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, models.RoleVolunteer).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting volunteers: %w", err)
	}
	return count, nil
}

// CountVolunteersByCenter counts volunteers assigned to a given center
func (r *UserRepository) CountVolunteersByCenter(ctx context.Context, centerID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1 AND program_center_id = $2`,
		models.RoleVolunteer, centerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting volunteers by center: %w", err)
	}
	return count, nil
}
