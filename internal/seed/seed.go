package seed

import (
	"context"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/repositories"
	"github.com/prayaas/yuvasetu/internal/pkg/auth"
	"github.com/prayaas/yuvasetu/internal/pkg/logger"
)

const (
	defaultAdminEmail    = "admin@yuvasetu.org"
	defaultAdminPassword = "ChangeMe123!"
)

// EnsureDefaultAdmin creates the initial admin account if no account with the
// default admin email exists yet. The password must be changed after first
// login.
func EnsureDefaultAdmin(ctx context.Context, userRepo repositories.IUserRepository) error {
	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashedPassword, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Administrator",
		Email:    defaultAdminEmail,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
