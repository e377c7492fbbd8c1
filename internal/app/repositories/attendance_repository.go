package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
	"github.com/prayaas/yuvasetu/internal/pkg/dberrors"
)

// AttendanceQuery collects the optional predicates a report query may carry.
// Zero-valued fields are not applied.
type AttendanceQuery struct {
	ProgramCenterID *int64
	StartDate       *time.Time
	EndDate         *time.Time
}

// IAttendanceRepository defines the interface for attendance database operations
type IAttendanceRepository interface {
	Upsert(ctx context.Context, attendance *models.Attendance) error
	FindByQuery(ctx context.Context, query AttendanceQuery) ([]*models.Attendance, error)
	FindByVolunteerBetween(ctx context.Context, volunteerID int64, start, end time.Time) ([]*models.Attendance, error)
	SummaryCounts(ctx context.Context, date time.Time, programCenterID *int64) (map[models.AttendanceStatus]int64, error)
	FindRecent(ctx context.Context, limit int) ([]*models.Attendance, error)
	FindRecentByVolunteer(ctx context.Context, volunteerID int64, limit int) ([]*models.Attendance, error)
	CountByVolunteer(ctx context.Context, volunteerID int64) (int64, error)
}

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

// Upsert records attendance for a volunteer on a date. A second mark for the
// same (volunteer, date) pair overwrites status and marked_by instead of
// inserting a duplicate; the unique constraint makes this race-safe.
func (r *AttendanceRepository) Upsert(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendances (volunteer_id, program_center_id, date, status, marked_by_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (volunteer_id, date)
		DO UPDATE SET status = EXCLUDED.status, marked_by_id = EXCLUDED.marked_by_id
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		attendance.VolunteerID, attendance.ProgramCenterID, attendance.Date,
		attendance.Status, attendance.MarkedByID,
	).Scan(&attendance.ID, &attendance.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrVolunteerNotFound
		}
		return fmt.Errorf("error recording attendance: %w", err)
	}

	return nil
}

// FindByQuery retrieves attendance records matching the query predicates,
// with volunteer, center and marker relations, most recent date first.
func (r *AttendanceRepository) FindByQuery(ctx context.Context, q AttendanceQuery) ([]*models.Attendance, error) {
	sql := `
		SELECT a.id, a.volunteer_id, a.program_center_id, a.date, a.status, a.marked_by_id, a.created_at,
		       v.name, v.email,
		       pc.name, pc.location,
		       m.name
		FROM attendances a
		JOIN users v ON v.id = a.volunteer_id
		JOIN program_centers pc ON pc.id = a.program_center_id
		JOIN users m ON m.id = a.marked_by_id
		WHERE 1=1
	`

	args := []interface{}{}
	argPos := 1

	if q.ProgramCenterID != nil {
		sql += fmt.Sprintf(" AND a.program_center_id = $%d", argPos)
		args = append(args, *q.ProgramCenterID)
		argPos++
	}
	if q.StartDate != nil {
		sql += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, *q.StartDate)
		argPos++
	}
	if q.EndDate != nil {
		sql += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, *q.EndDate)
		argPos++
	}

	sql += " ORDER BY a.date DESC, v.name ASC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		var volunteer models.User
		var center models.ProgramCenter
		var marker models.User

		if err := rows.Scan(
			&a.ID, &a.VolunteerID, &a.ProgramCenterID, &a.Date, &a.Status, &a.MarkedByID, &a.CreatedAt,
			&volunteer.Name, &volunteer.Email,
			&center.Name, &center.Location,
			&marker.Name,
		); err != nil {
			return nil, err
		}

		volunteer.ID = a.VolunteerID
		center.ID = a.ProgramCenterID
		marker.ID = a.MarkedByID
		a.Volunteer = &volunteer
		a.ProgramCenter = &center
		a.MarkedBy = &marker
		records = append(records, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// FindByVolunteerBetween retrieves a volunteer's records in [start, end],
// with the center relation, most recent date first.
func (r *AttendanceRepository) FindByVolunteerBetween(ctx context.Context, volunteerID int64, start, end time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.volunteer_id, a.program_center_id, a.date, a.status, a.marked_by_id, a.created_at,
		       pc.name, pc.location
		FROM attendances a
		JOIN program_centers pc ON pc.id = a.program_center_id
		WHERE a.volunteer_id = $1 AND a.date >= $2 AND a.date <= $3
		ORDER BY a.date DESC
	`

	rows, err := r.db.Query(ctx, query, volunteerID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendancesWithCenter(rows)
}

// SummaryCounts returns per-status record counts for a date, optionally
// restricted to one program center.
func (r *AttendanceRepository) SummaryCounts(ctx context.Context, date time.Time, programCenterID *int64) (map[models.AttendanceStatus]int64, error) {
	sql := `SELECT status, COUNT(*) FROM attendances WHERE date = $1`
	args := []interface{}{date}

	if programCenterID != nil {
		sql += ` AND program_center_id = $2`
		args = append(args, *programCenterID)
	}

	sql += ` GROUP BY status`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.AttendanceStatus]int64)
	for rows.Next() {
		var status models.AttendanceStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// FindRecent retrieves the latest recorded attendances across all centers,
// with volunteer and center relations.
func (r *AttendanceRepository) FindRecent(ctx context.Context, limit int) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.volunteer_id, a.program_center_id, a.date, a.status, a.marked_by_id, a.created_at,
		       v.name, pc.name
		FROM attendances a
		JOIN users v ON v.id = a.volunteer_id
		JOIN program_centers pc ON pc.id = a.program_center_id
		ORDER BY a.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		var volunteerName, centerName string

		if err := rows.Scan(
			&a.ID, &a.VolunteerID, &a.ProgramCenterID, &a.Date, &a.Status, &a.MarkedByID, &a.CreatedAt,
			&volunteerName, &centerName,
		); err != nil {
			return nil, err
		}

		a.Volunteer = &models.User{ID: a.VolunteerID, Name: volunteerName}
		a.ProgramCenter = &models.ProgramCenter{ID: a.ProgramCenterID, Name: centerName}
		records = append(records, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// FindRecentByVolunteer retrieves a volunteer's latest records with the
// center relation.
func (r *AttendanceRepository) FindRecentByVolunteer(ctx context.Context, volunteerID int64, limit int) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.volunteer_id, a.program_center_id, a.date, a.status, a.marked_by_id, a.created_at,
		       pc.name, pc.location
		FROM attendances a
		JOIN program_centers pc ON pc.id = a.program_center_id
		WHERE a.volunteer_id = $1
		ORDER BY a.date DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, volunteerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendancesWithCenter(rows)
}

// CountByVolunteer counts all attendance records for a volunteer
func (r *AttendanceRepository) CountByVolunteer(ctx context.Context, volunteerID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE volunteer_id = $1`, volunteerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting attendances: %w", err)
	}
	return count, nil
}

func scanAttendancesWithCenter(rows pgx.Rows) ([]*models.Attendance, error) {
	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		var center models.ProgramCenter

		if err := rows.Scan(
			&a.ID, &a.VolunteerID, &a.ProgramCenterID, &a.Date, &a.Status, &a.MarkedByID, &a.CreatedAt,
			&center.Name, &center.Location,
		); err != nil {
			return nil, err
		}

		center.ID = a.ProgramCenterID
		a.ProgramCenter = &center
		records = append(records, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
