package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/repositories"
)

func TestExportReportWorkbookLayout(t *testing.T) {
	attendanceRepo := &mockAttendanceRepo{
		findByQueryFn: func(ctx context.Context, query repositories.AttendanceQuery) ([]*models.Attendance, error) {
			return []*models.Attendance{
				{
					Date:          time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
					Status:        models.StatusPresent,
					Volunteer:     &models.User{Name: "Asha", Email: "asha@example.org"},
					ProgramCenter: &models.ProgramCenter{Name: "North Center", Location: "Delhi"},
					MarkedBy:      &models.User{Name: "Ravi"},
				},
				{
					Date:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
					Status:        models.StatusAbsent,
					Volunteer:     &models.User{Name: "Kiran"},
					ProgramCenter: &models.ProgramCenter{Name: "North Center"},
				},
			}, nil
		},
	}

	svc := NewAttendanceService(attendanceRepo, &mockUserRepo{})
	data, filename, err := svc.ExportReport(context.Background(), dto.AttendanceFilterRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filename != "attendance-report-2026-03-01-to-2026-03-31.xlsx" {
		t.Errorf("unexpected filename %q", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 records, got %d rows", len(rows))
	}

	wantHeaders := []string{"Date", "Volunteer Name", "Program Center", "Status", "Marked By"}
	if len(rows[0]) != len(wantHeaders) {
		t.Fatalf("expected %d columns, got %v", len(wantHeaders), rows[0])
	}
	for i, want := range wantHeaders {
		if rows[0][i] != want {
			t.Errorf("header %d = %q, want %q", i, rows[0][i], want)
		}
	}

	first := rows[1]
	if first[0] != "2026-03-02" || first[1] != "Asha" || first[2] != "North Center" {
		t.Errorf("unexpected first record: %v", first)
	}
	if first[3] != "Present" {
		t.Errorf("status cell = %q, want capitalized Present", first[3])
	}
	if first[4] != "Ravi" {
		t.Errorf("marked-by cell = %q, want Ravi", first[4])
	}

	second := rows[2]
	if second[3] != "Absent" {
		t.Errorf("status cell = %q, want capitalized Absent", second[3])
	}
	if second[4] != "Not Specified" {
		t.Errorf("marked-by cell = %q, want Not Specified fallback", second[4])
	}
}

func TestCapitalizeStatus(t *testing.T) {
	if got := capitalizeStatus(models.StatusPresent); got != "Present" {
		t.Errorf("got %q, want Present", got)
	}
	if got := capitalizeStatus(models.StatusAbsent); got != "Absent" {
		t.Errorf("got %q, want Absent", got)
	}
	if got := capitalizeStatus(""); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
