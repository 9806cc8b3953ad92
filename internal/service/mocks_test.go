package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
)

type mockAccountRepo struct {
	mock.Mock
	AccountRepository
}

func (m *mockAccountRepo) CreateParent(ctx context.Context, parent domain.Parent) (domain.Parent, error) {
	args := m.Called(ctx, parent)
	return args.Get(0).(domain.Parent), args.Error(1)
}

func (m *mockAccountRepo) CreateHealthWorker(ctx context.Context, worker domain.HealthWorker) (domain.HealthWorker, error) {
	args := m.Called(ctx, worker)
	return args.Get(0).(domain.HealthWorker), args.Error(1)
}

func (m *mockAccountRepo) FindByUsername(ctx context.Context, role domain.Role, username string) (domain.Identity, string, error) {
	args := m.Called(ctx, role, username)
	identity, _ := args.Get(0).(domain.Identity)
	return identity, args.String(1), args.Error(2)
}

func (m *mockAccountRepo) FindByID(ctx context.Context, role domain.Role, id uint) (domain.Identity, error) {
	args := m.Called(ctx, role, id)
	identity, _ := args.Get(0).(domain.Identity)
	return identity, args.Error(1)
}

func (m *mockAccountRepo) FindHospitalByID(ctx context.Context, id uint) (domain.Hospital, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Hospital), args.Error(1)
}

func (m *mockAccountRepo) FindHealthWorkerByID(ctx context.Context, id uint) (domain.HealthWorker, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.HealthWorker), args.Error(1)
}

type mockChildRepo struct {
	mock.Mock
	ChildRepository
}

func (m *mockChildRepo) Create(ctx context.Context, child domain.Child) (domain.Child, error) {
	args := m.Called(ctx, child)
	return args.Get(0).(domain.Child), args.Error(1)
}

func (m *mockChildRepo) FindByID(ctx context.Context, id uint) (domain.Child, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Child), args.Error(1)
}

func (m *mockChildRepo) FindByParentID(ctx context.Context, parentID uint) ([]domain.Child, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]domain.Child), args.Error(1)
}

type mockVaccinationRepo struct {
	mock.Mock
	VaccinationRepository
}

func (m *mockVaccinationRepo) FindVaccines(ctx context.Context) ([]domain.Vaccine, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vaccine), args.Error(1)
}

func (m *mockVaccinationRepo) FindVaccineByID(ctx context.Context, id uint) (domain.Vaccine, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Vaccine), args.Error(1)
}

func (m *mockVaccinationRepo) CreateRecord(ctx context.Context, record domain.VaccineRecord) (domain.VaccineRecord, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(domain.VaccineRecord), args.Error(1)
}

func (m *mockVaccinationRepo) FindRecordByID(ctx context.Context, id uint) (domain.VaccineRecord, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.VaccineRecord), args.Error(1)
}

func (m *mockVaccinationRepo) FindRecordedPairs(ctx context.Context, childIDs []uint) (map[domain.ChildVaccine]bool, error) {
	args := m.Called(ctx, childIDs)
	return args.Get(0).(map[domain.ChildVaccine]bool), args.Error(1)
}

func (m *mockVaccinationRepo) FindHospitalAppointments(ctx context.Context, hospitalID uint) ([]domain.HospitalAppointment, error) {
	args := m.Called(ctx, hospitalID)
	return args.Get(0).([]domain.HospitalAppointment), args.Error(1)
}

func (m *mockVaccinationRepo) FindPaymentByRecordID(ctx context.Context, recordID uint) (domain.Payment, error) {
	args := m.Called(ctx, recordID)
	return args.Get(0).(domain.Payment), args.Error(1)
}

func (m *mockVaccinationRepo) CreatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(domain.Payment), args.Error(1)
}
