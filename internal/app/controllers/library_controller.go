package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/services"
	"github.com/prayaas/yuvasetu/internal/middleware"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
)

// LibraryController handles library material endpoints
type LibraryController struct {
	libraryService *services.LibraryService
}

// NewLibraryController creates a new library controller
func NewLibraryController(libraryService *services.LibraryService) *LibraryController {
	return &LibraryController{
		libraryService: libraryService,
	}
}

const recentMaterialsLimit = 5

// Upload handles POST /library/upload, a multipart form with a "file" part
// and an optional "name" field
func (ctrl *LibraryController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("file is required"))
		return
	}

	name := c.PostForm("name")
	uploadedByID := middleware.GetUserID(c)

	material, err := ctrl.libraryService.UploadMaterial(c.Request.Context(), name, file, uploadedByID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondCreated(c, material)
}

// GetAll handles GET /library
func (ctrl *LibraryController) GetAll(c *gin.Context) {
	materials, err := ctrl.libraryService.GetAllMaterials(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, materials)
}

// GetRecent handles GET /library/recent
func (ctrl *LibraryController) GetRecent(c *gin.Context) {
	materials, err := ctrl.libraryService.GetRecentMaterials(c.Request.Context(), recentMaterialsLimit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, materials)
}

// GetByID handles GET /library/:id
func (ctrl *LibraryController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	material, err := ctrl.libraryService.GetMaterial(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, material)
}

// Download handles GET /library/:id/download
func (ctrl *LibraryController) Download(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	material, data, err := ctrl.libraryService.GetMaterialFile(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", material.OriginalName))
	c.Data(http.StatusOK, services.ContentTypeFor(material.OriginalName), data)
}

// Delete handles DELETE /library/:id
func (ctrl *LibraryController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.libraryService.DeleteMaterial(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, dto.SuccessResponse{Message: "Material deleted successfully"})
}

// Stats handles GET /library/stats
func (ctrl *LibraryController) Stats(c *gin.Context) {
	stats, err := ctrl.libraryService.GetLibraryStats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, stats)
}
