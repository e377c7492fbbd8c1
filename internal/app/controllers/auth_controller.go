package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/services"
	"github.com/prayaas/yuvasetu/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.authService.Register(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondCreated(c, resp)
}

// Login handles POST /auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, resp)
}

// MakeAdmin handles PATCH /auth/make-admin/:id
func (ctrl *AuthController) MakeAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := ctrl.authService.MakeAdmin(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, user)
}

// Profile handles GET /auth/me
func (ctrl *AuthController) Profile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	resp, err := ctrl.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondOK(c, resp)
}
