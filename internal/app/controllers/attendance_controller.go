package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/services"
	"github.com/prayaas/yuvasetu/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// Mark handles POST /attendance/mark. The authenticated caller is recorded
// as the marker; the target volunteer defaults to the caller when the body
// names none.
func (ctrl *AttendanceController) Mark(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	markedByID := middleware.GetUserID(c)
	volunteerID := markedByID
	if req.VolunteerID != nil {
		volunteerID = *req.VolunteerID
	}

	attendance, err := ctrl.attendanceService.MarkAttendance(c.Request.Context(), volunteerID, req, markedByID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondCreated(c, attendance)
}

// Report handles GET /attendance/report
func (ctrl *AttendanceController) Report(c *gin.Context) {
	var filter dto.AttendanceFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	records, err := ctrl.attendanceService.GetAttendanceReport(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, records)
}

// Export handles GET /attendance/report/download, streaming an xlsx workbook
func (ctrl *AttendanceController) Export(c *gin.Context) {
	var filter dto.AttendanceFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	data, filename, err := ctrl.attendanceService.ExportReport(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// MyAttendance handles GET /attendance/volunteer, the caller's current-month
// records
func (ctrl *AttendanceController) MyAttendance(c *gin.Context) {
	volunteerID := middleware.GetUserID(c)

	records, err := ctrl.attendanceService.GetVolunteerAttendance(c.Request.Context(), volunteerID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, records)
}

// Summary handles GET /attendance/summary
func (ctrl *AttendanceController) Summary(c *gin.Context) {
	var programCenterID *int64
	if raw := c.Query("programCenterId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			middleware.HandleValidationError(c, fmt.Errorf("invalid programCenterId parameter"))
			return
		}
		programCenterID = &id
	}

	summary, err := ctrl.attendanceService.GetAttendanceSummary(c.Request.Context(), c.Query("date"), programCenterID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, summary)
}
