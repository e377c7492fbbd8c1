package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
)

const reportSheet = "Attendance"

var reportHeaders = []string{"Date", "Volunteer Name", "Program Center", "Status", "Marked By"}

// ExportReport builds an xlsx workbook of the records matching the filters
// and returns the file bytes together with a download filename.
func (s *AttendanceService) ExportReport(ctx context.Context, filter dto.AttendanceFilterRequest) ([]byte, string, error) {
	records, err := s.GetAttendanceReport(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F3864"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, "", err
	}

	presentStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E8F5E9"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", err
	}

	absentStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FCE7E7"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", err
	}

	for col, header := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(reportSheet, cell, header); err != nil {
			return nil, "", err
		}
		if err := f.SetCellStyle(reportSheet, cell, cell, headerStyle); err != nil {
			return nil, "", err
		}
	}

	for i, record := range records {
		row := i + 2
		markedBy := "Not Specified"
		if record.MarkedBy != nil {
			markedBy = record.MarkedBy.Name
		}
		values := []interface{}{
			record.Date.Format(dateLayout),
			record.Volunteer.Name,
			record.ProgramCenter.Name,
			capitalizeStatus(record.Status),
			markedBy,
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(reportSheet, cell, value); err != nil {
				return nil, "", err
			}
		}

		rowStyle := presentStyle
		if record.Status == models.StatusAbsent {
			rowStyle = absentStyle
		}

		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(reportHeaders), row)
		if err := f.SetCellStyle(reportSheet, first, last, rowStyle); err != nil {
			return nil, "", err
		}
	}

	if err := f.SetColWidth(reportSheet, "A", "E", 22); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), reportFilename(filter), nil
}

// capitalizeStatus renders a status value for the spreadsheet, e.g.
// "present" becomes "Present".
func capitalizeStatus(status models.AttendanceStatus) string {
	s := string(status)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func reportFilename(filter dto.AttendanceFilterRequest) string {
	if filter.StartDate != "" && filter.EndDate != "" {
		return fmt.Sprintf("attendance-report-%s-to-%s.xlsx", filter.StartDate, filter.EndDate)
	}
	return "attendance-report.xlsx"
}
