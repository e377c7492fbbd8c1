package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
	"github.com/prayaas/yuvasetu/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Controllers call
// this with any service error; unrecognized errors become a generic 500 so
// internals never leak to the client.
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	var status int
	var detail *dto.ErrorDetail

	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrVolunteerNotFound,
		apperrors.ErrMarkingUserNotFound,
		apperrors.ErrProgramCenterNotFound,
		apperrors.ErrCoordinatorNotFound,
		apperrors.ErrMaterialNotFound):
		status = http.StatusNotFound
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)

	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrProgramCenterExists):
		status = http.StatusConflict
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)

	case apperrors.Is(err, apperrors.ErrValidationFailed):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)

	case apperrors.Is(err, apperrors.ErrBadRequest,
		apperrors.ErrVolunteerNoCenter,
		apperrors.ErrUnsupportedFileType,
		apperrors.ErrFileTooLarge):
		status = http.StatusBadRequest
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, message)

	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message)

	case apperrors.Is(err, apperrors.ErrTokenExpired):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeExpiredToken, message)

	case apperrors.Is(err, apperrors.ErrTokenInvalid):
		status = http.StatusUnauthorized
		detail = dto.NewErrorDetail(dto.ErrorCodeInvalidToken, message)

	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		status = http.StatusForbidden
		detail = dto.NewErrorDetail(dto.ErrorCodeForbidden, message).WithSeverity(dto.ErrorSeverityWarning)

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		status = http.StatusInternalServerError
		detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An internal server error occurred").
			WithSeverity(dto.ErrorSeverityCritical)
	}

	if customErr != nil && customErr.Details != nil {
		detail = detail.WithDetails(customErr.Details)
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// HandleValidationError maps a request binding failure to a 400 response
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
