package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
)

func TestCreateCenter(t *testing.T) {
	tests := []struct {
		name        string
		nameTaken   bool
		coordinator *models.User
		wantErr     error
	}{
		{
			name:        "creates center",
			coordinator: &models.User{ID: 2, Name: "Ravi"},
		},
		{
			name:      "rejects duplicate name",
			nameTaken: true,
			wantErr:   apperrors.ErrProgramCenterExists,
		},
		{
			name:    "rejects unknown coordinator",
			wantErr: apperrors.ErrCoordinatorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			centerRepo := &mockCenterRepo{
				nameExistsFn: func(ctx context.Context, name string) (bool, error) {
					return tt.nameTaken, nil
				},
				createFn: func(ctx context.Context, center *models.ProgramCenter) error {
					created = true
					center.ID = 10
					return nil
				},
				getByIDFn: func(ctx context.Context, id int64) (*models.ProgramCenter, error) {
					return &models.ProgramCenter{ID: id, Name: "East Center", Coordinator: tt.coordinator}, nil
				},
			}
			userRepo := &mockUserRepo{
				getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
					return tt.coordinator, nil
				},
			}

			svc := NewProgramCenterService(centerRepo, userRepo)
			req := dto.CreateProgramCenterRequest{Name: "East Center", Location: "Pune", CoordinatorID: 2}
			center, err := svc.CreateCenter(context.Background(), req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				if created {
					t.Fatal("center should not be created when validation fails")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if center.ID != 10 {
				t.Errorf("expected created center ID 10, got %d", center.ID)
			}
		})
	}
}

func TestUpdateCenterPartial(t *testing.T) {
	var updated *models.ProgramCenter
	centerRepo := &mockCenterRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.ProgramCenter, error) {
			if updated != nil {
				return updated, nil
			}
			return &models.ProgramCenter{ID: id, Name: "East Center", Location: "Pune", CoordinatorID: 2}, nil
		},
		updateFn: func(ctx context.Context, center *models.ProgramCenter) error {
			updated = center
			return nil
		},
	}

	svc := NewProgramCenterService(centerRepo, &mockUserRepo{})
	location := "Mumbai"
	if _, err := svc.UpdateCenter(context.Background(), 1, dto.UpdateProgramCenterRequest{Location: &location}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Location != "Mumbai" {
		t.Errorf("expected location updated, got %q", updated.Location)
	}
	if updated.Name != "East Center" {
		t.Errorf("unset fields must be left untouched, got name %q", updated.Name)
	}
}

func TestUpdateCenterUnknownCoordinator(t *testing.T) {
	centerRepo := &mockCenterRepo{
		getByIDFn: func(ctx context.Context, id int64) (*models.ProgramCenter, error) {
			return &models.ProgramCenter{ID: id, Name: "East Center", CoordinatorID: 2}, nil
		},
	}

	svc := NewProgramCenterService(centerRepo, &mockUserRepo{})
	badCoordinator := int64(404)
	_, err := svc.UpdateCenter(context.Background(), 1, dto.UpdateProgramCenterRequest{CoordinatorID: &badCoordinator})
	if !errors.Is(err, apperrors.ErrCoordinatorNotFound) {
		t.Fatalf("expected ErrCoordinatorNotFound, got %v", err)
	}
}

func TestGetCenterByIDNotFound(t *testing.T) {
	svc := NewProgramCenterService(&mockCenterRepo{}, &mockUserRepo{})

	_, err := svc.GetCenterByID(context.Background(), 404)
	if !errors.Is(err, apperrors.ErrProgramCenterNotFound) {
		t.Fatalf("expected ErrProgramCenterNotFound, got %v", err)
	}
}

func TestDeleteCenterNotFound(t *testing.T) {
	centerRepo := &mockCenterRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return apperrors.ErrProgramCenterNotFound
		},
	}

	svc := NewProgramCenterService(centerRepo, &mockUserRepo{})
	if err := svc.DeleteCenter(context.Background(), 404); !errors.Is(err, apperrors.ErrProgramCenterNotFound) {
		t.Fatalf("expected ErrProgramCenterNotFound, got %v", err)
	}
}
