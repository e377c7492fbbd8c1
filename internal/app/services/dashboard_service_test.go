package services

import (
	"context"
	"testing"
	"time"

	"github.com/prayaas/yuvasetu/internal/app/models"
)

func attendanceAt(ts time.Time) *models.Attendance {
	return &models.Attendance{
		Status:        models.StatusPresent,
		CreatedAt:     ts,
		Volunteer:     &models.User{Name: "Asha"},
		ProgramCenter: &models.ProgramCenter{Name: "North Center"},
	}
}

func materialAt(ts time.Time) *models.LibraryMaterial {
	return &models.LibraryMaterial{
		Name:       "Handbook",
		UploadDate: ts,
	}
}

func TestMergeActivities(t *testing.T) {
	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	attendances := []*models.Attendance{
		attendanceAt(base.Add(4 * time.Hour)),
		attendanceAt(base.Add(1 * time.Hour)),
	}
	materials := []*models.LibraryMaterial{
		materialAt(base.Add(3 * time.Hour)),
		materialAt(base.Add(2 * time.Hour)),
	}

	feed := mergeActivities(attendances, materials)

	if len(feed) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(feed))
	}
	for i := 1; i < len(feed); i++ {
		if feed[i].Timestamp.After(feed[i-1].Timestamp) {
			t.Fatalf("feed not sorted newest first at index %d", i)
		}
	}
	if feed[0].Type != "attendance" {
		t.Errorf("expected newest entry to be the attendance event, got %s", feed[0].Type)
	}
	if feed[1].Type != "library" {
		t.Errorf("expected second entry to be an upload event, got %s", feed[1].Type)
	}
}

func TestMergeActivitiesTruncates(t *testing.T) {
	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)

	var attendances []*models.Attendance
	var materials []*models.LibraryMaterial
	for i := 0; i < 4; i++ {
		attendances = append(attendances, attendanceAt(base.Add(time.Duration(i)*time.Hour)))
		materials = append(materials, materialAt(base.Add(time.Duration(i)*time.Minute)))
	}

	feed := mergeActivities(attendances, materials)
	if len(feed) != activityFeedSize {
		t.Fatalf("expected feed capped at %d, got %d", activityFeedSize, len(feed))
	}
}

func TestGetAdminStats(t *testing.T) {
	centerRepo := &mockCenterRepo{
		countFn: func(ctx context.Context) (int64, error) { return 3, nil },
	}
	userRepo := &mockUserRepo{
		countVolunteersFn: func(ctx context.Context) (int64, error) { return 25, nil },
	}
	libraryRepo := &mockLibraryRepo{
		countFn: func(ctx context.Context) (int64, error) { return 8, nil },
	}
	attendanceRepo := &mockAttendanceRepo{
		findRecentFn: func(ctx context.Context, limit int) ([]*models.Attendance, error) {
			return []*models.Attendance{attendanceAt(time.Now())}, nil
		},
	}

	svc := NewDashboardService(userRepo, centerRepo, attendanceRepo, libraryRepo)
	stats, err := svc.GetAdminStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalCenters != 3 || stats.TotalVolunteers != 25 || stats.TotalMaterials != 8 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if len(stats.RecentActivities) != 1 {
		t.Errorf("expected 1 activity, got %d", len(stats.RecentActivities))
	}
}

func TestGetVolunteerStatsUnassigned(t *testing.T) {
	userRepo := &mockUserRepo{
		findVolunteerByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return &models.User{ID: id, Name: "Asha", Role: models.RoleVolunteer}, nil
		},
	}

	svc := NewDashboardService(userRepo, &mockCenterRepo{}, &mockAttendanceRepo{}, &mockLibraryRepo{})
	stats, err := svc.GetVolunteerStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("a volunteer without a center must still get a dashboard: %v", err)
	}

	if stats.AssignedCenter != "Not Assigned" {
		t.Errorf("expected Not Assigned, got %q", stats.AssignedCenter)
	}
	if stats.Coordinator != nil {
		t.Error("expected no coordinator contact")
	}
}

func TestGetVolunteerStatsAssigned(t *testing.T) {
	phone := "+91-9800000000"
	userRepo := &mockUserRepo{
		findVolunteerByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return assignedVolunteer(id), nil
		},
		countVolunteersByCenterFn: func(ctx context.Context, centerID int64) (int64, error) {
			return 12, nil
		},
	}
	centerRepo := &mockCenterRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.ProgramCenter, error) {
			return &models.ProgramCenter{
				ID:       id,
				Name:     "North Center",
				Location: "Delhi",
				Coordinator: &models.User{
					Name:  "Ravi",
					Email: "ravi@yuvasetu.org",
					Phone: &phone,
				},
			}, nil
		},
	}
	recent := make([]*models.Attendance, 8)
	for i := range recent {
		status := models.StatusPresent
		if i >= 6 {
			status = models.StatusAbsent
		}
		recent[i] = &models.Attendance{
			Status:        status,
			CreatedAt:     time.Date(2026, 2, 20-i, 10, 0, 0, 0, time.UTC),
			ProgramCenter: &models.ProgramCenter{Name: "North Center"},
		}
	}
	attendanceRepo := &mockAttendanceRepo{
		countByVolunteerFn: func(ctx context.Context, volunteerID int64) (int64, error) {
			return 18, nil
		},
		findRecentByVolunteerFn: func(ctx context.Context, volunteerID int64, limit int) ([]*models.Attendance, error) {
			if limit != 30 {
				t.Errorf("expected a 30-row window, got %d", limit)
			}
			return recent, nil
		},
	}

	svc := NewDashboardService(userRepo, centerRepo, attendanceRepo, &mockLibraryRepo{})
	stats, err := svc.GetVolunteerStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.AssignedCenter != "North Center" || stats.Location != "Delhi" {
		t.Errorf("unexpected center details: %+v", stats)
	}
	if stats.Coordinator == nil || stats.Coordinator.Phone != phone {
		t.Errorf("expected coordinator contact with phone, got %+v", stats.Coordinator)
	}
	if stats.TotalVolunteers != 12 {
		t.Errorf("expected 12 volunteers at center, got %d", stats.TotalVolunteers)
	}
	if stats.TotalAttendance != 18 {
		t.Errorf("expected 18 attendance records, got %d", stats.TotalAttendance)
	}
	if stats.PresentDays != 6 {
		t.Errorf("expected 6 present days in the recent window, got %d", stats.PresentDays)
	}
	if len(stats.RecentActivities) != 5 {
		t.Errorf("expected activity feed capped at 5, got %d", len(stats.RecentActivities))
	}
}
