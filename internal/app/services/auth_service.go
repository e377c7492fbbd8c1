package services

import (
	"context"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/repositories"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
	"github.com/prayaas/yuvasetu/internal/pkg/auth"
	"github.com/prayaas/yuvasetu/internal/pkg/logger"
)

// AuthService handles registration and credential verification
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a volunteer account and returns a signed token for it
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleVolunteer,
		Phone:    req.Phone,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("User registered")

	return s.buildAuthResponse(user)
}

// Login verifies credentials and returns a signed token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.Info().Int64("user_id", user.ID).Msg("User logged in")

	return s.buildAuthResponse(user)
}

// MakeAdmin promotes an existing user to the admin role
func (s *AuthService) MakeAdmin(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if user.Role != models.RoleAdmin {
		if err := s.userRepo.UpdateRole(ctx, userID, models.RoleAdmin); err != nil {
			return nil, err
		}
		user.Role = models.RoleAdmin
		logger.Info().Int64("user_id", userID).Msg("User promoted to admin")
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// GetProfile returns the authenticated user's own record
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: toUserResponse(user),
	}, nil
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            string(user.Role),
		Phone:           user.Phone,
		ProgramCenterID: user.ProgramCenterID,
	}
}
