package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/services"
	"github.com/prayaas/yuvasetu/internal/middleware"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
)

// UserController handles volunteer management endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Create handles POST /users/volunteers
func (ctrl *UserController) Create(c *gin.Context) {
	var req dto.CreateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	volunteer, err := ctrl.userService.CreateVolunteer(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondCreated(c, volunteer)
}

// GetAll handles GET /users/volunteers
func (ctrl *UserController) GetAll(c *gin.Context) {
	volunteers, err := ctrl.userService.GetAllVolunteers(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, volunteers)
}

// GetByID handles GET /users/volunteers/:id
func (ctrl *UserController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	volunteer, err := ctrl.userService.GetVolunteerByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, volunteer)
}

// Update handles PUT /users/volunteers/:id
func (ctrl *UserController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	volunteer, err := ctrl.userService.UpdateVolunteer(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, volunteer)
}

// Delete handles DELETE /users/volunteers/:id
func (ctrl *UserController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.userService.DeleteVolunteer(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, dto.SuccessResponse{Message: "Volunteer deleted successfully"})
}

// Stats handles GET /users/volunteers/stats
func (ctrl *UserController) Stats(c *gin.Context) {
	stats, err := ctrl.userService.GetVolunteerStats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, stats)
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
