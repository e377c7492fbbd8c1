package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/prayaas/yuvasetu/internal/app/models"
	"github.com/prayaas/yuvasetu/internal/app/repositories"
)

type mockUserRepo struct {
	createFn                  func(ctx context.Context, user *models.User) error
	getByIDFn                 func(ctx context.Context, id int64) (*models.User, error)
	getByEmailFn              func(ctx context.Context, email string) (*models.User, error)
	emailExistsFn             func(ctx context.Context, email string) (bool, error)
	emailExistsExceptFn       func(ctx context.Context, email string, excludeID int64) (bool, error)
	updateFn                  func(ctx context.Context, user *models.User) error
	updateRoleFn              func(ctx context.Context, id int64, role models.Role) error
	findAllVolunteersFn       func(ctx context.Context) ([]*models.User, error)
	findVolunteerByIDFn       func(ctx context.Context, id int64) (*models.User, error)
	deleteVolunteerFn         func(ctx context.Context, id int64) error
	countVolunteersFn         func(ctx context.Context) (int64, error)
	countVolunteersByCenterFn func(ctx context.Context, centerID int64) (int64, error)
}

var _ repositories.IUserRepository = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByIDWithCenter(ctx context.Context, id int64) (*models.User, error) {
	return m.GetByID(ctx, id)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepo) EmailExistsExcept(ctx context.Context, email string, excludeID int64) (bool, error) {
	if m.emailExistsExceptFn != nil {
		return m.emailExistsExceptFn(ctx, email, excludeID)
	}
	return false, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	if m.updateRoleFn != nil {
		return m.updateRoleFn(ctx, id, role)
	}
	return nil
}

func (m *mockUserRepo) FindAllVolunteers(ctx context.Context) ([]*models.User, error) {
	if m.findAllVolunteersFn != nil {
		return m.findAllVolunteersFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) FindVolunteerByID(ctx context.Context, id int64) (*models.User, error) {
	if m.findVolunteerByIDFn != nil {
		return m.findVolunteerByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) DeleteVolunteer(ctx context.Context, id int64) error {
	if m.deleteVolunteerFn != nil {
		return m.deleteVolunteerFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) CountVolunteers(ctx context.Context) (int64, error) {
	if m.countVolunteersFn != nil {
		return m.countVolunteersFn(ctx)
	}
	return 0, nil
}

func (m *mockUserRepo) CountVolunteersByCenter(ctx context.Context, centerID int64) (int64, error) {
	if m.countVolunteersByCenterFn != nil {
		return m.countVolunteersByCenterFn(ctx, centerID)
	}
	return 0, nil
}

type mockCenterRepo struct {
	createFn           func(ctx context.Context, center *models.ProgramCenter) error
	getByIDFn          func(ctx context.Context, id int64) (*models.ProgramCenter, error)
	getAllFn           func(ctx context.Context) ([]*models.ProgramCenter, error)
	nameExistsFn       func(ctx context.Context, name string) (bool, error)
	nameExistsExceptFn func(ctx context.Context, name string, excludeID int64) (bool, error)
	updateFn           func(ctx context.Context, center *models.ProgramCenter) error
	deleteFn           func(ctx context.Context, id int64) error
	countFn            func(ctx context.Context) (int64, error)
}

var _ repositories.IProgramCenterRepository = (*mockCenterRepo)(nil)

func (m *mockCenterRepo) Create(ctx context.Context, center *models.ProgramCenter) error {
	if m.createFn != nil {
		return m.createFn(ctx, center)
	}
	return nil
}

func (m *mockCenterRepo) GetByID(ctx context.Context, id int64) (*models.ProgramCenter, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCenterRepo) GetAll(ctx context.Context) ([]*models.ProgramCenter, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockCenterRepo) NameExists(ctx context.Context, name string) (bool, error) {
	if m.nameExistsFn != nil {
		return m.nameExistsFn(ctx, name)
	}
	return false, nil
}

func (m *mockCenterRepo) NameExistsExcept(ctx context.Context, name string, excludeID int64) (bool, error) {
	if m.nameExistsExceptFn != nil {
		return m.nameExistsExceptFn(ctx, name, excludeID)
	}
	return false, nil
}

func (m *mockCenterRepo) Update(ctx context.Context, center *models.ProgramCenter) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, center)
	}
	return nil
}

func (m *mockCenterRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockCenterRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockAttendanceRepo struct {
	upsertFn                 func(ctx context.Context, attendance *models.Attendance) error
	findByQueryFn            func(ctx context.Context, query repositories.AttendanceQuery) ([]*models.Attendance, error)
	findByVolunteerBetweenFn func(ctx context.Context, volunteerID int64, start, end time.Time) ([]*models.Attendance, error)
	summaryCountsFn          func(ctx context.Context, date time.Time, programCenterID *int64) (map[models.AttendanceStatus]int64, error)
	findRecentFn             func(ctx context.Context, limit int) ([]*models.Attendance, error)
	findRecentByVolunteerFn  func(ctx context.Context, volunteerID int64, limit int) ([]*models.Attendance, error)
	countByVolunteerFn       func(ctx context.Context, volunteerID int64) (int64, error)
}

var _ repositories.IAttendanceRepository = (*mockAttendanceRepo)(nil)

func (m *mockAttendanceRepo) Upsert(ctx context.Context, attendance *models.Attendance) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, attendance)
	}
	return nil
}

func (m *mockAttendanceRepo) FindByQuery(ctx context.Context, query repositories.AttendanceQuery) ([]*models.Attendance, error) {
	if m.findByQueryFn != nil {
		return m.findByQueryFn(ctx, query)
	}
	return nil, nil
}

func (m *mockAttendanceRepo) FindByVolunteerBetween(ctx context.Context, volunteerID int64, start, end time.Time) ([]*models.Attendance, error) {
	if m.findByVolunteerBetweenFn != nil {
		return m.findByVolunteerBetweenFn(ctx, volunteerID, start, end)
	}
	return nil, nil
}

func (m *mockAttendanceRepo) SummaryCounts(ctx context.Context, date time.Time, programCenterID *int64) (map[models.AttendanceStatus]int64, error) {
	if m.summaryCountsFn != nil {
		return m.summaryCountsFn(ctx, date, programCenterID)
	}
	return map[models.AttendanceStatus]int64{}, nil
}

func (m *mockAttendanceRepo) FindRecent(ctx context.Context, limit int) ([]*models.Attendance, error) {
	if m.findRecentFn != nil {
		return m.findRecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockAttendanceRepo) FindRecentByVolunteer(ctx context.Context, volunteerID int64, limit int) ([]*models.Attendance, error) {
	if m.findRecentByVolunteerFn != nil {
		return m.findRecentByVolunteerFn(ctx, volunteerID, limit)
	}
	return nil, nil
}

func (m *mockAttendanceRepo) CountByVolunteer(ctx context.Context, volunteerID int64) (int64, error) {
	if m.countByVolunteerFn != nil {
		return m.countByVolunteerFn(ctx, volunteerID)
	}
	return 0, nil
}

type mockLibraryRepo struct {
	createFn     func(ctx context.Context, material *models.LibraryMaterial) error
	getByIDFn    func(ctx context.Context, id int64) (*models.LibraryMaterial, error)
	getAllFn     func(ctx context.Context) ([]*models.LibraryMaterial, error)
	findRecentFn func(ctx context.Context, limit int) ([]*models.LibraryMaterial, error)
	deleteFn     func(ctx context.Context, id int64) error
	countFn      func(ctx context.Context) (int64, error)
}

var _ repositories.ILibraryRepository = (*mockLibraryRepo)(nil)

func (m *mockLibraryRepo) Create(ctx context.Context, material *models.LibraryMaterial) error {
	if m.createFn != nil {
		return m.createFn(ctx, material)
	}
	return nil
}

func (m *mockLibraryRepo) GetByID(ctx context.Context, id int64) (*models.LibraryMaterial, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockLibraryRepo) GetAll(ctx context.Context) ([]*models.LibraryMaterial, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockLibraryRepo) FindRecent(ctx context.Context, limit int) ([]*models.LibraryMaterial, error) {
	if m.findRecentFn != nil {
		return m.findRecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *mockLibraryRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockLibraryRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

type mockStorage struct {
	saveFn    func(fileHeader *multipart.FileHeader) (string, error)
	readFn    func(filePath string) ([]byte, error)
	deleteFn  func(filePath string) error
	deleted   []string
	saveCalls int
}

func (m *mockStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	m.saveCalls++
	if m.saveFn != nil {
		return m.saveFn(fileHeader)
	}
	return "uploads/stored-file", nil
}

func (m *mockStorage) ReadFile(filePath string) ([]byte, error) {
	if m.readFn != nil {
		return m.readFn(filePath)
	}
	return []byte("file-contents"), nil
}

func (m *mockStorage) DeleteFile(filePath string) error {
	m.deleted = append(m.deleted, filePath)
	if m.deleteFn != nil {
		return m.deleteFn(filePath)
	}
	return nil
}

func (m *mockStorage) GetFullPath(filePath string) string {
	return filePath
}
