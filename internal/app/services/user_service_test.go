package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
)

func TestCreateVolunteerUnknownCenter(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, &mockCenterRepo{})

	req := dto.CreateVolunteerRequest{
		Name:            "Asha",
		Email:           "asha@example.org",
		Password:        "secret-password",
		ProgramCenterID: centerID(404),
	}

	_, err := svc.CreateVolunteer(context.Background(), req)
	if !errors.Is(err, apperrors.ErrProgramCenterNotFound) {
		t.Fatalf("expected ErrProgramCenterNotFound, got %v", err)
	}
}

func TestCreateVolunteerWithCenter(t *testing.T) {
	var created *models.User
	userRepo := &mockUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = 3
			created = user
			return nil
		},
	}
	centerRepo := &mockCenterRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.ProgramCenter, error) {
			return &models.ProgramCenter{ID: id, Name: "North Center"}, nil
		},
	}

	svc := NewUserService(userRepo, centerRepo)
	req := dto.CreateVolunteerRequest{
		Name:            "Asha",
		Email:           "asha@example.org",
		Password:        "secret-password",
		ProgramCenterID: centerID(7),
	}

	volunteer, err := svc.CreateVolunteer(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if volunteer.ID != 3 {
		t.Errorf("expected created ID 3, got %d", volunteer.ID)
	}
	if created.Role != models.RoleVolunteer {
		t.Errorf("expected volunteer role, got %s", created.Role)
	}
	if created.ProgramCenterID == nil || *created.ProgramCenterID != 7 {
		t.Errorf("expected center 7, got %v", created.ProgramCenterID)
	}
}

func TestUpdateVolunteerClearsCenter(t *testing.T) {
	var updated *models.User
	userRepo := &mockUserRepo{
		findVolunteerByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			if updated != nil {
				return updated, nil
			}
			return assignedVolunteer(id), nil
		},
		updateFn: func(ctx context.Context, user *models.User) error {
			updated = user
			return nil
		},
	}

	svc := NewUserService(userRepo, &mockCenterRepo{})
	clear := int64(0)
	if _, err := svc.UpdateVolunteer(context.Background(), 1, dto.UpdateVolunteerRequest{ProgramCenterID: &clear}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.ProgramCenterID != nil {
		t.Errorf("expected assignment cleared, got %v", updated.ProgramCenterID)
	}
}

func TestUpdateVolunteerEmailTaken(t *testing.T) {
	userRepo := &mockUserRepo{
		findVolunteerByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
			return assignedVolunteer(id), nil
		},
		emailExistsExceptFn: func(ctx context.Context, email string, excludeID int64) (bool, error) {
			return true, nil
		},
	}

	svc := NewUserService(userRepo, &mockCenterRepo{})
	taken := "taken@example.org"
	_, err := svc.UpdateVolunteer(context.Background(), 1, dto.UpdateVolunteerRequest{Email: &taken})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUpdateVolunteerNotFound(t *testing.T) {
	svc := NewUserService(&mockUserRepo{}, &mockCenterRepo{})

	name := "New Name"
	_, err := svc.UpdateVolunteer(context.Background(), 404, dto.UpdateVolunteerRequest{Name: &name})
	if !errors.Is(err, apperrors.ErrVolunteerNotFound) {
		t.Fatalf("expected ErrVolunteerNotFound, got %v", err)
	}
}
