package services

import (
	"context"
	"time"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/repositories"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
	"github.com/prayaas/yuvasetu/internal/pkg/helpers"
	"github.com/prayaas/yuvasetu/internal/pkg/logger"
)

const dateLayout = "2006-01-02"

// AttendanceService handles attendance marking and reporting
type AttendanceService struct {
	attendanceRepo repositories.IAttendanceRepository
	userRepo       repositories.IUserRepository
	now            func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo repositories.IAttendanceRepository, userRepo repositories.IUserRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

// MarkAttendance records a volunteer's attendance for a day on behalf of
// markedByID. Marking the same volunteer and date again overwrites the
// earlier status and marker.
func (s *AttendanceService) MarkAttendance(ctx context.Context, volunteerID int64, req dto.MarkAttendanceRequest, markedByID int64) (*models.Attendance, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format")
	}

	volunteer, err := s.userRepo.FindVolunteerByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, apperrors.ErrVolunteerNotFound
	}
	if volunteer.ProgramCenterID == nil {
		return nil, apperrors.ErrVolunteerNoCenter
	}
	if volunteer.ProgramCenter == nil {
		return nil, apperrors.ErrProgramCenterNotFound
	}

	marker, err := s.userRepo.GetByID(ctx, markedByID)
	if err != nil {
		return nil, err
	}
	if marker == nil {
		return nil, apperrors.ErrMarkingUserNotFound
	}

	attendance := &models.Attendance{
		VolunteerID:     volunteerID,
		ProgramCenterID: *volunteer.ProgramCenterID,
		Date:            date,
		Status:          models.AttendanceStatus(req.Status),
		MarkedByID:      markedByID,
	}

	if err := s.attendanceRepo.Upsert(ctx, attendance); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("volunteer_id", volunteerID).
		Str("date", req.Date).
		Str("status", req.Status).
		Int64("marked_by", markedByID).
		Msg("Attendance recorded")

	attendance.Volunteer = volunteer
	attendance.ProgramCenter = volunteer.ProgramCenter
	attendance.MarkedBy = marker
	return attendance, nil
}

// GetAttendanceReport retrieves records matching the given filters
func (s *AttendanceService) GetAttendanceReport(ctx context.Context, filter dto.AttendanceFilterRequest) ([]*models.Attendance, error) {
	query, err := buildAttendanceQuery(filter)
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.FindByQuery(ctx, query)
}

// GetVolunteerAttendance retrieves a volunteer's records for the current
// calendar month, most recent first
func (s *AttendanceService) GetVolunteerAttendance(ctx context.Context, volunteerID int64) ([]*models.Attendance, error) {
	volunteer, err := s.userRepo.FindVolunteerByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, apperrors.ErrVolunteerNotFound
	}

	start, end := helpers.MonthWindow(s.now())
	return s.attendanceRepo.FindByVolunteerBetween(ctx, volunteerID, start, end)
}

// GetAttendanceSummary reports per-status counts for a date, optionally
// restricted to one center. dateStr defaults to today when empty.
func (s *AttendanceService) GetAttendanceSummary(ctx context.Context, dateStr string, programCenterID *int64) (*dto.AttendanceSummaryResponse, error) {
	date := helpers.DateOnly(s.now())
	if dateStr != "" {
		parsed, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format")
		}
		date = parsed
	}

	counts, err := s.attendanceRepo.SummaryCounts(ctx, date, programCenterID)
	if err != nil {
		return nil, err
	}

	summary := &dto.AttendanceSummaryResponse{
		Date:    date.Format(dateLayout),
		Present: counts[models.StatusPresent],
		Absent:  counts[models.StatusAbsent],
	}
	for _, count := range counts {
		summary.Total += count
	}

	return summary, nil
}

// buildAttendanceQuery translates request filters into query predicates.
// The date range is applied only when both bounds parse; a one-sided range
// is ignored rather than rejected.
func buildAttendanceQuery(filter dto.AttendanceFilterRequest) (repositories.AttendanceQuery, error) {
	var query repositories.AttendanceQuery

	if filter.ProgramCenterID > 0 {
		id := filter.ProgramCenterID
		query.ProgramCenterID = &id
	}

	if filter.StartDate != "" && filter.EndDate != "" {
		start, err := time.Parse(dateLayout, filter.StartDate)
		if err != nil {
			return query, apperrors.NewBadRequestError("startDate must be in YYYY-MM-DD format")
		}
		end, err := time.Parse(dateLayout, filter.EndDate)
		if err != nil {
			return query, apperrors.NewBadRequestError("endDate must be in YYYY-MM-DD format")
		}
		if end.Before(start) {
			return query, apperrors.NewBadRequestError("endDate must not be before startDate")
		}
		query.StartDate = &start
		query.EndDate = &end
	}

	return query, nil
}
