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

// UserService handles volunteer account management
type UserService struct {
	userRepo   repositories.IUserRepository
	centerRepo repositories.IProgramCenterRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.IUserRepository, centerRepo repositories.IProgramCenterRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		centerRepo: centerRepo,
	}
}

// CreateVolunteer creates a volunteer account, optionally assigned to a center
func (s *UserService) CreateVolunteer(ctx context.Context, req dto.CreateVolunteerRequest) (*models.User, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	if req.ProgramCenterID != nil {
		if err := s.checkCenterExists(ctx, *req.ProgramCenterID); err != nil {
			return nil, err
		}
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:            req.Name,
		Email:           req.Email,
		Password:        hashedPassword,
		Role:            models.RoleVolunteer,
		Phone:           req.Phone,
		ProgramCenterID: req.ProgramCenterID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("volunteer_id", user.ID).Msg("Volunteer created")

	return user, nil
}

// GetAllVolunteers lists all volunteers with their center assignment
func (s *UserService) GetAllVolunteers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindAllVolunteers(ctx)
}

// GetVolunteerByID retrieves one volunteer
func (s *UserService) GetVolunteerByID(ctx context.Context, id int64) (*models.User, error) {
	volunteer, err := s.userRepo.FindVolunteerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, apperrors.ErrVolunteerNotFound
	}
	return volunteer, nil
}

// UpdateVolunteer applies a partial update. A ProgramCenterID of 0 clears the
// center assignment.
func (s *UserService) UpdateVolunteer(ctx context.Context, id int64, req dto.UpdateVolunteerRequest) (*models.User, error) {
	volunteer, err := s.userRepo.FindVolunteerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if volunteer == nil {
		return nil, apperrors.ErrVolunteerNotFound
	}

	if req.Name != nil {
		volunteer.Name = *req.Name
	}
	if req.Email != nil && *req.Email != volunteer.Email {
		taken, err := s.userRepo.EmailExistsExcept(ctx, *req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		volunteer.Email = *req.Email
	}
	if req.Phone != nil {
		volunteer.Phone = req.Phone
	}
	if req.ProgramCenterID != nil {
		if *req.ProgramCenterID == 0 {
			volunteer.ProgramCenterID = nil
			volunteer.ProgramCenter = nil
		} else {
			if err := s.checkCenterExists(ctx, *req.ProgramCenterID); err != nil {
				return nil, err
			}
			volunteer.ProgramCenterID = req.ProgramCenterID
		}
	}

	if err := s.userRepo.Update(ctx, volunteer); err != nil {
		return nil, err
	}

	return s.GetVolunteerByID(ctx, id)
}

// DeleteVolunteer removes a volunteer account
func (s *UserService) DeleteVolunteer(ctx context.Context, id int64) error {
	if err := s.userRepo.DeleteVolunteer(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("volunteer_id", id).Msg("Volunteer deleted")
	return nil
}

// GetVolunteerStats reports the total volunteer count
func (s *UserService) GetVolunteerStats(ctx context.Context) (*dto.VolunteerStatsResponse, error) {
	count, err := s.userRepo.CountVolunteers(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.VolunteerStatsResponse{TotalVolunteers: count}, nil
}

func (s *UserService) checkCenterExists(ctx context.Context, centerID int64) error {
	center, err := s.centerRepo.GetByID(ctx, centerID)
	if err != nil {
		return err
	}
	if center == nil {
		return apperrors.ErrProgramCenterNotFound
	}
	return nil
}
