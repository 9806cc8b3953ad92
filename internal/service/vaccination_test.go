package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "2024-02-15"},
		{in: "2024-02-29"},
		{in: "2024-02-30", wantErr: true},
		{in: "2023-02-29", wantErr: true},
		{in: "not-a-date", wantErr: true},
		{in: "15/02/2024", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChildService_AddChild(t *testing.T) {
	ctx := context.Background()
	dob := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	m := &mockChildRepo{}
	m.On("Create", ctx, domain.Child{ParentID: 1, Name: "Bobby", DateOfBirth: dob}).
		Return(domain.Child{ID: 5, ParentID: 1, Name: "Bobby", DateOfBirth: dob}, nil)

	s := NewChildService(m)
	s.now = fixedClock

	child, err := s.AddChild(ctx, 1, "Bobby", "2023-01-01")
	require.NoError(t, err)
	assert.Equal(t, uint(5), child.ID)

	_, err = s.AddChild(ctx, 1, "Bobby", "2024-02-30")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = s.AddChild(ctx, 1, "Bobby", "2024-03-16")
	assert.ErrorIs(t, err, ErrDateOfBirthInFuture)

	m.AssertNumberOfCalls(t, "Create", 1)
}

func newTestVaccinationService() (*VaccinationService, *mockVaccinationRepo, *mockChildRepo, *mockAccountRepo) {
	records := &mockVaccinationRepo{}
	children := &mockChildRepo{}
	accounts := &mockAccountRepo{}

	s := NewVaccinationService(records, children, accounts, domain.DefaultFlatFeeCents)
	s.now = fixedClock

	return s, records, children, accounts
}

func TestVaccinationService_BookAppointment(t *testing.T) {
	ctx := context.Background()
	s, records, children, accounts := newTestVaccinationService()

	children.On("FindByID", ctx, uint(5)).Return(domain.Child{ID: 5, ParentID: 1, Name: "Bobby"}, nil)
	records.On("FindVaccineByID", ctx, uint(1)).Return(domain.Vaccine{ID: 1, Name: "DTP"}, nil)
	accounts.On("FindHospitalByID", ctx, uint(3)).Return(domain.Hospital{ID: 3, Name: "City Clinic"}, nil)

	want := domain.VaccineRecord{
		ChildID:    5,
		VaccineID:  1,
		HospitalID: 3,
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:     domain.RecordScheduled,
	}
	created := want
	created.ID = 10
	records.On("CreateRecord", ctx, want).Return(created, nil)

	got, err := s.BookAppointment(ctx, 1, 5, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(10), got.ID)
	assert.Equal(t, domain.RecordScheduled, got.Status)
	records.AssertExpectations(t)
}

func TestVaccinationService_BookAppointment_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("child of another parent", func(t *testing.T) {
		s, records, children, _ := newTestVaccinationService()
		children.On("FindByID", ctx, uint(5)).Return(domain.Child{ID: 5, ParentID: 2}, nil)

		_, err := s.BookAppointment(ctx, 1, 5, 1, 3)
		assert.ErrorIs(t, err, ErrChildNotFound)
		records.AssertNotCalled(t, "CreateRecord", mock.Anything, mock.Anything)
	})

	t.Run("unknown vaccine", func(t *testing.T) {
		s, records, children, _ := newTestVaccinationService()
		children.On("FindByID", ctx, uint(5)).Return(domain.Child{ID: 5, ParentID: 1}, nil)
		records.On("FindVaccineByID", ctx, uint(42)).Return(domain.Vaccine{}, repository.ErrVaccineNotFound)

		_, err := s.BookAppointment(ctx, 1, 5, 42, 3)
		assert.ErrorIs(t, err, ErrInvalidSelection)
		records.AssertNotCalled(t, "CreateRecord", mock.Anything, mock.Anything)
	})

	t.Run("unknown hospital", func(t *testing.T) {
		s, records, children, accounts := newTestVaccinationService()
		children.On("FindByID", ctx, uint(5)).Return(domain.Child{ID: 5, ParentID: 1}, nil)
		records.On("FindVaccineByID", ctx, uint(1)).Return(domain.Vaccine{ID: 1}, nil)
		accounts.On("FindHospitalByID", ctx, uint(42)).Return(domain.Hospital{}, repository.ErrHospitalNotFound)

		_, err := s.BookAppointment(ctx, 1, 5, 1, 42)
		assert.ErrorIs(t, err, ErrInvalidSelection)
		records.AssertNotCalled(t, "CreateRecord", mock.Anything, mock.Anything)
	})
}

func TestVaccinationService_Pay(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("first payment", func(t *testing.T) {
		s, records, children, _ := newTestVaccinationService()
		records.On("FindRecordByID", ctx, uint(10)).Return(domain.VaccineRecord{ID: 10, ChildID: 5}, nil)
		children.On("FindByID", ctx, uint(5)).Return(domain.Child{ID: 5, ParentID: 1}, nil)
		records.On("FindPaymentByRecordID", ctx, uint(10)).Return(domain.Payment{}, repository.ErrPaymentNotFound)

		want := domain.Payment{
			VaccineRecordID: 10,
			AmountCents:     5000,
			Status:          domain.PaymentPaid,
			DatePaid:        today,
		}
		stored := want
		stored.ID = 1
		records.On("CreatePayment", ctx, want).Return(stored, nil)

		payment, created, err := s.Pay(ctx, 1, 10)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "50.00", payment.Amount())
		records.AssertExpectations(t)
	})

	t.Run("already paid", func(t *testing.T) {
		s, records, children, _ := newTestVaccinationService()
		records.On("FindRecordByID", ctx, uint(10)).Return(domain.VaccineRecord{ID: 10, ChildID: 5}, nil)
		children.On("FindByID", ctx, uint(5)).Return(domain.Child{ID: 5, ParentID: 1}, nil)
		records.On("FindPaymentByRecordID", ctx, uint(10)).Return(domain.Payment{ID: 1, VaccineRecordID: 10, Status: domain.PaymentPaid}, nil)

		payment, created, err := s.Pay(ctx, 1, 10)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, uint(1), payment.ID)
		records.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})

	t.Run("lost race", func(t *testing.T) {
		s, records, children, _ := newTestVaccinationService()
		records.On("FindRecordByID", ctx, uint(10)).Return(domain.VaccineRecord{ID: 10, ChildID: 5}, nil)
		children.On("FindByID", ctx, uint(5)).Return(domain.Child{ID: 5, ParentID: 1}, nil)
		records.On("FindPaymentByRecordID", ctx, uint(10)).Return(domain.Payment{}, repository.ErrPaymentNotFound).Once()
		records.On("CreatePayment", ctx, mock.Anything).Return(domain.Payment{}, repository.ErrPaymentExists)
		records.On("FindPaymentByRecordID", ctx, uint(10)).Return(domain.Payment{ID: 7, VaccineRecordID: 10}, nil).Once()

		payment, created, err := s.Pay(ctx, 1, 10)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, uint(7), payment.ID)
	})

	t.Run("record of another parent", func(t *testing.T) {
		s, records, children, _ := newTestVaccinationService()
		records.On("FindRecordByID", ctx, uint(10)).Return(domain.VaccineRecord{ID: 10, ChildID: 5}, nil)
		children.On("FindByID", ctx, uint(5)).Return(domain.Child{ID: 5, ParentID: 2}, nil)

		_, _, err := s.Pay(ctx, 1, 10)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("unknown record", func(t *testing.T) {
		s, records, _, _ := newTestVaccinationService()
		records.On("FindRecordByID", ctx, uint(99)).Return(domain.VaccineRecord{}, repository.ErrRecordNotFound)

		_, _, err := s.Pay(ctx, 1, 99)
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestVaccinationService_ListHealthWorkerAppointments(t *testing.T) {
	ctx := context.Background()
	s, records, _, accounts := newTestVaccinationService()

	accounts.On("FindHealthWorkerByID", ctx, uint(4)).Return(domain.HealthWorker{ID: 4, HospitalID: 3}, nil)
	records.On("FindHospitalAppointments", ctx, uint(3)).Return([]domain.HospitalAppointment{
		{ID: 10, ChildName: "Bobby", VaccineName: "DTP", Status: domain.RecordScheduled},
	}, nil)

	got, err := s.ListHealthWorkerAppointments(ctx, 4)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bobby", got[0].ChildName)
}

func TestReminderService_DueReminders(t *testing.T) {
	ctx := context.Background()
	children := &mockChildRepo{}
	records := &mockVaccinationRepo{}

	children.On("FindByParentID", ctx, uint(1)).Return([]domain.Child{
		{ID: 5, ParentID: 1, Name: "Bobby", DateOfBirth: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)
	records.On("FindVaccines", ctx).Return([]domain.Vaccine{
		{ID: 1, Name: "DTP", RecommendedAgeMonths: 2},
		{ID: 2, Name: "Measles", RecommendedAgeMonths: 9},
	}, nil)
	records.On("FindRecordedPairs", ctx, []uint{5}).Return(map[domain.ChildVaccine]bool{
		{ChildID: 5, VaccineID: 1}: true,
	}, nil)

	s := NewReminderService(children, records)
	s.now = fixedClock

	got, err := s.DueReminders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Measles", got[0].VaccineName)
	assert.Equal(t, "Bobby is due for Measles (Recommended at 9 months)", got[0].Message())
}
