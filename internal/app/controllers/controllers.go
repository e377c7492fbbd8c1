package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Auth          *AuthController
	User          *UserController
	ProgramCenter *ProgramCenterController
	Attendance    *AttendanceController
	Library       *LibraryController
	Dashboard     *DashboardController
}

// NewControllers wires all controllers onto the services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:          NewAuthController(svcs.Auth),
		User:          NewUserController(svcs.User),
		ProgramCenter: NewProgramCenterController(svcs.ProgramCenter),
		Attendance:    NewAttendanceController(svcs.Attendance),
		Library:       NewLibraryController(svcs.Library),
		Dashboard:     NewDashboardController(svcs.Dashboard),
	}
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	})
}

func respondOK(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, data)
}

func respondCreated(c *gin.Context, data interface{}) {
	respond(c, http.StatusCreated, data)
}
