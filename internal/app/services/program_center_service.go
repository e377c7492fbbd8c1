package services

import (
	"context"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/app/repositories"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
	"github.com/prayaas/yuvasetu/internal/pkg/logger"
)

// ProgramCenterService handles program center management
type ProgramCenterService struct {
	centerRepo repositories.IProgramCenterRepository
	userRepo   repositories.IUserRepository
}

// NewProgramCenterService creates a new program center service
func NewProgramCenterService(centerRepo repositories.IProgramCenterRepository, userRepo repositories.IUserRepository) *ProgramCenterService {
	return &ProgramCenterService{
		centerRepo: centerRepo,
		userRepo:   userRepo,
	}
}

// CreateCenter creates a program center after verifying the name is free and
// the coordinator exists
func (s *ProgramCenterService) CreateCenter(ctx context.Context, req dto.CreateProgramCenterRequest) (*models.ProgramCenter, error) {
	taken, err := s.centerRepo.NameExists(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrProgramCenterExists
	}

	coordinator, err := s.userRepo.GetByID(ctx, req.CoordinatorID)
	if err != nil {
		return nil, err
	}
	if coordinator == nil {
		return nil, apperrors.ErrCoordinatorNotFound
	}

	center := &models.ProgramCenter{
		Name:          req.Name,
		Location:      req.Location,
		CoordinatorID: req.CoordinatorID,
	}

	if err := s.centerRepo.Create(ctx, center); err != nil {
		return nil, err
	}

	logger.Info().Int64("center_id", center.ID).Str("name", center.Name).Msg("Program center created")

	return s.GetCenterByID(ctx, center.ID)
}

// GetAllCenters lists all program centers with coordinator details
func (s *ProgramCenterService) GetAllCenters(ctx context.Context) ([]*models.ProgramCenter, error) {
	return s.centerRepo.GetAll(ctx)
}

// GetCenterByID retrieves one program center
func (s *ProgramCenterService) GetCenterByID(ctx context.Context, id int64) (*models.ProgramCenter, error) {
	center, err := s.centerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, apperrors.ErrProgramCenterNotFound
	}
	return center, nil
}

// UpdateCenter applies a partial update to a program center
func (s *ProgramCenterService) UpdateCenter(ctx context.Context, id int64, req dto.UpdateProgramCenterRequest) (*models.ProgramCenter, error) {
	center, err := s.centerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, apperrors.ErrProgramCenterNotFound
	}

	if req.Name != nil && *req.Name != center.Name {
		taken, err := s.centerRepo.NameExistsExcept(ctx, *req.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrProgramCenterExists
		}
		center.Name = *req.Name
	}
	if req.Location != nil {
		center.Location = *req.Location
	}
	if req.CoordinatorID != nil {
		coordinator, err := s.userRepo.GetByID(ctx, *req.CoordinatorID)
		if err != nil {
			return nil, err
		}
		if coordinator == nil {
			return nil, apperrors.ErrCoordinatorNotFound
		}
		center.CoordinatorID = *req.CoordinatorID
	}

	if err := s.centerRepo.Update(ctx, center); err != nil {
		return nil, err
	}

	return s.GetCenterByID(ctx, id)
}

// DeleteCenter removes a program center
func (s *ProgramCenterService) DeleteCenter(ctx context.Context, id int64) error {
	if err := s.centerRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("center_id", id).Msg("Program center deleted")
	return nil
}

// GetCenterStats reports the total center count
func (s *ProgramCenterService) GetCenterStats(ctx context.Context) (*dto.ProgramCenterStatsResponse, error) {
	count, err := s.centerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProgramCenterStatsResponse{TotalCenters: count}, nil
}
