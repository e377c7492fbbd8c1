package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/models/dto"
	"github.com/prayaas/yuvasetu/internal/pkg/apperrors"
	"github.com/prayaas/yuvasetu/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		TokenExpiration: time.Hour,
		TokenIssuer:     "test",
	})
}

func TestRegister(t *testing.T) {
	var created *models.User
	userRepo := &mockUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}

	svc := NewAuthService(userRepo, testJWTService())
	req := dto.RegisterRequest{Name: "Asha", Email: "asha@example.org", Password: "secret-password"}
	resp, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Role != models.RoleVolunteer {
		t.Errorf("registration must produce volunteer accounts, got %s", created.Role)
	}
	if created.Password == "secret-password" {
		t.Error("password must be stored hashed")
	}
	if !auth.CheckPassword(created.Password, "secret-password") {
		t.Error("stored hash does not match original password")
	}
	if resp.Token.AccessToken == "" {
		t.Error("expected a signed token")
	}
	if resp.User.ID != 1 || resp.User.Email != "asha@example.org" {
		t.Errorf("unexpected user payload: %+v", resp.User)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := &mockUserRepo{
		emailExistsFn: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	svc := NewAuthService(userRepo, testJWTService())
	req := dto.RegisterRequest{Name: "Asha", Email: "asha@example.org", Password: "secret-password"}
	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	hashed, err := auth.HashPassword("correct-password")
	if err != nil {
		t.Fatal(err)
	}

	stored := &models.User{ID: 1, Email: "asha@example.org", Password: hashed, Role: models.RoleVolunteer}

	tests := []struct {
		name     string
		user     *models.User
		password string
		wantErr  bool
	}{
		{name: "valid credentials", user: stored, password: "correct-password"},
		{name: "wrong password", user: stored, password: "wrong-password", wantErr: true},
		{name: "unknown email", password: "correct-password", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mockUserRepo{
				getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
					return tt.user, nil
				},
			}

			svc := NewAuthService(userRepo, testJWTService())
			resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "asha@example.org", Password: tt.password})

			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidCredentials) {
					t.Fatalf("expected ErrInvalidCredentials, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Token.AccessToken == "" {
				t.Error("expected a signed token")
			}
			if resp.Token.ExpiresIn != 3600 {
				t.Errorf("expected 3600s expiry, got %d", resp.Token.ExpiresIn)
			}
		})
	}
}

func TestMakeAdmin(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.User
		wantErr    error
		wantUpdate bool
	}{
		{
			name:       "promotes volunteer",
			user:       &models.User{ID: 3, Email: "v@example.org", Role: models.RoleVolunteer},
			wantUpdate: true,
		},
		{
			name: "already admin is a no-op",
			user: &models.User{ID: 4, Email: "a@example.org", Role: models.RoleAdmin},
		},
		{
			name:    "unknown user",
			wantErr: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := false
			userRepo := &mockUserRepo{
				getByIDFn: func(ctx context.Context, id int64) (*models.User, error) {
					return tt.user, nil
				},
				updateRoleFn: func(ctx context.Context, id int64, role models.Role) error {
					updated = true
					if role != models.RoleAdmin {
						t.Errorf("unexpected role %s", role)
					}
					return nil
				},
			}

			svc := NewAuthService(userRepo, testJWTService())
			resp, err := svc.MakeAdmin(context.Background(), 3)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
			if updated != tt.wantUpdate {
				t.Errorf("update called = %v, want %v", updated, tt.wantUpdate)
			}
			if tt.wantErr == nil && resp.Role != "admin" {
				t.Errorf("response role = %s, want admin", resp.Role)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testJWTService()
	user := &models.User{ID: 7, Email: "admin@example.org", Role: models.RoleAdmin}

	token, _, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.UserID != 7 || claims.Role != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}
