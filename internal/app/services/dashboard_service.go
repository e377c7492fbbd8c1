package services

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/repositories"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
)

const activityFeedSize = 5

// recentAttendanceWindow is how many of a volunteer's latest attendance rows
// feed the present-day rollup.
const recentAttendanceWindow = 30

// operatingHours is organization-wide for now; centers do not carry their own
// schedule yet.
const operatingHours = "9:00 AM - 5:00 PM"

// DashboardService aggregates rollups for the admin and volunteer dashboards
type DashboardService struct {
	userRepo       repositories.IUserRepository
	centerRepo     repositories.IProgramCenterRepository
	attendanceRepo repositories.IAttendanceRepository
	libraryRepo    repositories.ILibraryRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	userRepo repositories.IUserRepository,
	centerRepo repositories.IProgramCenterRepository,
	attendanceRepo repositories.IAttendanceRepository,
	libraryRepo repositories.ILibraryRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:       userRepo,
		centerRepo:     centerRepo,
		attendanceRepo: attendanceRepo,
		libraryRepo:    libraryRepo,
	}
}

// GetAdminStats collects the organization-wide dashboard rollup. The counts
// and feeds are independent queries, fetched concurrently.
func (s *DashboardService) GetAdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	var (
		stats             dto.AdminStatsResponse
		recentAttendances []*models.Attendance
		recentMaterials   []*models.LibraryMaterial
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.centerRepo.Count(gctx)
		stats.TotalCenters = count
		return err
	})
	g.Go(func() error {
		count, err := s.userRepo.CountVolunteers(gctx)
		stats.TotalVolunteers = count
		return err
	})
	g.Go(func() error {
		count, err := s.libraryRepo.Count(gctx)
		stats.TotalMaterials = count
		return err
	})
	g.Go(func() error {
		records, err := s.attendanceRepo.FindRecent(gctx, activityFeedSize)
		recentAttendances = records
		return err
	})
	g.Go(func() error {
		materials, err := s.libraryRepo.FindRecent(gctx, activityFeedSize)
		recentMaterials = materials
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.RecentActivities = mergeActivities(recentAttendances, recentMaterials)
	return &stats, nil
}

// GetVolunteerStats collects a volunteer's own dashboard rollup. A volunteer
// without a center assignment gets a "Not Assigned" view, not an error.
func (s *DashboardService) GetVolunteerStats(ctx context.Context, volunteerID int64) (*dto.VolunteerStatsDashboardResponse, error) {
	volunteer, err := s.userRepo.FindVolunteerByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, apperrors.ErrVolunteerNotFound
	}

	stats := &dto.VolunteerStatsDashboardResponse{
		AssignedCenter: "Not Assigned",
		OperatingHours: operatingHours,
	}

	var recentAttendances []*models.Attendance

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.attendanceRepo.CountByVolunteer(gctx, volunteerID)
		stats.TotalAttendance = int(count)
		return err
	})
	g.Go(func() error {
		count, err := s.libraryRepo.Count(gctx)
		stats.LibraryAccess = count
		return err
	})
	g.Go(func() error {
		records, err := s.attendanceRepo.FindRecentByVolunteer(gctx, volunteerID, recentAttendanceWindow)
		recentAttendances = records
		return err
	})

	if volunteer.ProgramCenterID != nil {
		centerID := *volunteer.ProgramCenterID
		g.Go(func() error {
			center, err := s.centerRepo.GetByID(gctx, centerID)
			if err != nil {
				return err
			}
			if center == nil {
				return nil
			}
			stats.AssignedCenter = center.Name
			stats.ProgramCenterID = &center.ID
			stats.Location = center.Location
			if center.Coordinator != nil {
				contact := &dto.CoordinatorContact{
					Name:  center.Coordinator.Name,
					Email: center.Coordinator.Email,
				}
				if center.Coordinator.Phone != nil {
					contact.Phone = *center.Coordinator.Phone
				}
				stats.Coordinator = contact
			}
			return nil
		})
		g.Go(func() error {
			count, err := s.userRepo.CountVolunteersByCenter(gctx, centerID)
			stats.TotalVolunteers = count
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, a := range recentAttendances {
		if a.Status == models.StatusPresent {
			stats.PresentDays++
		}
	}

	feed := recentAttendances
	if len(feed) > activityFeedSize {
		feed = feed[:activityFeedSize]
	}
	stats.RecentActivities = volunteerActivities(feed)
	return stats, nil
}

// mergeActivities interleaves attendance and upload events into one feed,
// newest first, capped at the feed size.
func mergeActivities(attendances []*models.Attendance, materials []*models.LibraryMaterial) []dto.Activity {
	activities := make([]dto.Activity, 0, len(attendances)+len(materials))

	for _, a := range attendances {
		activities = append(activities, dto.Activity{
			Action:    fmt.Sprintf("Attendance marked %s for %s at %s", a.Status, a.Volunteer.Name, a.ProgramCenter.Name),
			Timestamp: a.CreatedAt,
			Type:      "attendance",
		})
	}
	for _, m := range materials {
		activities = append(activities, dto.Activity{
			Action:    fmt.Sprintf("%q added to the library", m.Name),
			Timestamp: m.UploadDate,
			Type:      "library",
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})

	if len(activities) > activityFeedSize {
		activities = activities[:activityFeedSize]
	}

	return activities
}

func volunteerActivities(attendances []*models.Attendance) []dto.Activity {
	activities := make([]dto.Activity, 0, len(attendances))
	for _, a := range attendances {
		activities = append(activities, dto.Activity{
			Action:    fmt.Sprintf("Marked %s at %s", a.Status, a.ProgramCenter.Name),
			Timestamp: a.CreatedAt,
			Type:      "attendance",
		})
	}
	return activities
}
