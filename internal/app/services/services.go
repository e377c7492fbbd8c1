package services

import (
	"github.com/prayaas/yuvasetu/internal/app/repositories"
	"github.com/prayaas/yuvasetu/internal/pkg/auth"
	"github.com/prayaas/yuvasetu/internal/pkg/filestorage"
)

// Services holds all service instances
type Services struct {
	Auth          *AuthService
	User          *UserService
	ProgramCenter *ProgramCenterService
	Attendance    *AttendanceService
	Library       *LibraryService
	Dashboard     *DashboardService
}

// NewServices wires all services onto the repositories and shared infrastructure
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.Storage) *Services {
	return &Services{
		Auth:          NewAuthService(repos.User, jwtService),
		User:          NewUserService(repos.User, repos.ProgramCenter),
		ProgramCenter: NewProgramCenterService(repos.ProgramCenter, repos.User),
		Attendance:    NewAttendanceService(repos.Attendance, repos.User),
		Library:       NewLibraryService(repos.Library, storage),
		Dashboard:     NewDashboardService(repos.User, repos.ProgramCenter, repos.Attendance, repos.Library),
	}
}
