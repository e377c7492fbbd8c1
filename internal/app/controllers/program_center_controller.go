package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/services"
	"github.com/prayaas/yuvasetu/internal/middleware"
)

// ProgramCenterController handles program center endpoints
type ProgramCenterController struct {
	centerService *services.ProgramCenterService
}

// NewProgramCenterController creates a new program center controller
func NewProgramCenterController(centerService *services.ProgramCenterService) *ProgramCenterController {
	return &ProgramCenterController{
		centerService: centerService,
	}
}

// Create handles POST /program-centers
func (ctrl *ProgramCenterController) Create(c *gin.Context) {
	var req dto.CreateProgramCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	center, err := ctrl.centerService.CreateCenter(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondCreated(c, center)
}

// GetAll handles GET /program-centers
func (ctrl *ProgramCenterController) GetAll(c *gin.Context) {
	centers, err := ctrl.centerService.GetAllCenters(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, centers)
}

// GetByID handles GET /program-centers/:id
func (ctrl *ProgramCenterController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	center, err := ctrl.centerService.GetCenterByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, center)
}

// Update handles PUT /program-centers/:id
func (ctrl *ProgramCenterController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProgramCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	center, err := ctrl.centerService.UpdateCenter(c.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, center)
}

// Delete handles DELETE /program-centers/:id
func (ctrl *ProgramCenterController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.centerService.DeleteCenter(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, dto.SuccessResponse{Message: "Program center deleted successfully"})
}

// Stats handles GET /program-centers/stats
func (ctrl *ProgramCenterController) Stats(c *gin.Context) {
	stats, err := ctrl.centerService.GetCenterStats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, stats)
}
