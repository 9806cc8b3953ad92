package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository"
)

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrRecordNotFound   = repository.ErrRecordNotFound
)

type VaccinationRepository interface {
	FindVaccines(ctx context.Context) ([]domain.Vaccine, error)
	FindVaccineByID(ctx context.Context, id uint) (domain.Vaccine, error)
	CreateRecord(ctx context.Context, record domain.VaccineRecord) (domain.VaccineRecord, error)
	FindRecordByID(ctx context.Context, id uint) (domain.VaccineRecord, error)
	FindRecordedPairs(ctx context.Context, childIDs []uint) (map[domain.ChildVaccine]bool, error)
	FindParentAppointments(ctx context.Context, parentID uint, flatFeeCents int64) ([]domain.ParentAppointment, error)
	FindHospitalAppointments(ctx context.Context, hospitalID uint) ([]domain.HospitalAppointment, error)
	FindPaymentByRecordID(ctx context.Context, recordID uint) (domain.Payment, error)
	CreatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error)
}

type VaccinationService struct {
	repo         VaccinationRepository
	childRepo    ChildRepository
	accountRepo  AccountRepository
	flatFeeCents int64
	now          func() time.Time
}

func NewVaccinationService(repo VaccinationRepository, childRepo ChildRepository, accountRepo AccountRepository, flatFeeCents int64) *VaccinationService {
	return &VaccinationService{
		repo:         repo,
		childRepo:    childRepo,
		accountRepo:  accountRepo,
		flatFeeCents: flatFeeCents,
		now:          time.Now,
	}
}

func (s *VaccinationService) ListVaccines(ctx context.Context) ([]domain.Vaccine, error) {
	vaccines, err := s.repo.FindVaccines(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindVaccines -> %w", err)
	}

	return vaccines, nil
}

func (s *VaccinationService) ListHospitals(ctx context.Context) ([]domain.Hospital, error) {
	hospitals, err := s.accountRepo.FindHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.accountRepo.FindHospitals -> %w", err)
	}

	return hospitals, nil
}

// BookAppointment schedules childID for vaccineID at hospitalID today. The
// same child may be booked for the same vaccine any number of times.
func (s *VaccinationService) BookAppointment(ctx context.Context, parentID, childID, vaccineID, hospitalID uint) (domain.VaccineRecord, error) {
	if _, err := s.parentChild(ctx, parentID, childID); err != nil {
		return domain.VaccineRecord{}, err
	}

	if _, err := s.repo.FindVaccineByID(ctx, vaccineID); err != nil {
		if errors.Is(err, repository.ErrVaccineNotFound) {
			return domain.VaccineRecord{}, fmt.Errorf("%w: unknown vaccine %d", ErrInvalidSelection, vaccineID)
		}

		return domain.VaccineRecord{}, fmt.Errorf("s.repo.FindVaccineByID -> %w", err)
	}

	if _, err := s.accountRepo.FindHospitalByID(ctx, hospitalID); err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return domain.VaccineRecord{}, fmt.Errorf("%w: unknown hospital %d", ErrInvalidSelection, hospitalID)
		}

		return domain.VaccineRecord{}, fmt.Errorf("s.accountRepo.FindHospitalByID -> %w", err)
	}

	created, err := s.repo.CreateRecord(ctx, domain.VaccineRecord{
		ChildID:    childID,
		VaccineID:  vaccineID,
		HospitalID: hospitalID,
		Date:       domain.CalendarDate(s.now()),
		Status:     domain.RecordScheduled,
	})
	if err != nil {
		return domain.VaccineRecord{}, fmt.Errorf("s.repo.CreateRecord -> %w", err)
	}

	return created, nil
}

func (s *VaccinationService) ListParentAppointments(ctx context.Context, parentID uint) ([]domain.ParentAppointment, error) {
	appointments, err := s.repo.FindParentAppointments(ctx, parentID, s.flatFeeCents)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindParentAppointments -> %w", err)
	}

	return appointments, nil
}

func (s *VaccinationService) ListHospitalAppointments(ctx context.Context, hospitalID uint) ([]domain.HospitalAppointment, error) {
	appointments, err := s.repo.FindHospitalAppointments(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindHospitalAppointments -> %w", err)
	}

	return appointments, nil
}

// ListHealthWorkerAppointments lists the appointments of the worker's hospital.
func (s *VaccinationService) ListHealthWorkerAppointments(ctx context.Context, workerID uint) ([]domain.HospitalAppointment, error) {
	worker, err := s.accountRepo.FindHealthWorkerByID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("s.accountRepo.FindHealthWorkerByID -> %w", err)
	}

	return s.ListHospitalAppointments(ctx, worker.HospitalID)
}

// Pay records the flat fee for an appointment. When the appointment is
// already paid nothing is written; the existing payment is returned with
// created set to false.
func (s *VaccinationService) Pay(ctx context.Context, parentID, recordID uint) (payment domain.Payment, created bool, err error) {
	record, err := s.repo.FindRecordByID(ctx, recordID)
	if err != nil {
		return domain.Payment{}, false, fmt.Errorf("s.repo.FindRecordByID -> %w", err)
	}

	if _, err = s.parentChild(ctx, parentID, record.ChildID); err != nil {
		if errors.Is(err, ErrChildNotFound) {
			return domain.Payment{}, false, ErrRecordNotFound
		}
		return domain.Payment{}, false, err
	}

	existing, err := s.repo.FindPaymentByRecordID(ctx, recordID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrPaymentNotFound) {
		return domain.Payment{}, false, fmt.Errorf("s.repo.FindPaymentByRecordID -> %w", err)
	}

	payment, err = s.repo.CreatePayment(ctx, domain.Payment{
		VaccineRecordID: recordID,
		AmountCents:     s.flatFeeCents,
		Status:          domain.PaymentPaid,
		DatePaid:        domain.CalendarDate(s.now()),
	})
	if err != nil {
		if errors.Is(err, repository.ErrPaymentExists) {
			existing, findErr := s.repo.FindPaymentByRecordID(ctx, recordID)
			if findErr != nil {
				return domain.Payment{}, false, fmt.Errorf("s.repo.FindPaymentByRecordID -> %w", findErr)
			}
			return existing, false, nil
		}

		return domain.Payment{}, false, fmt.Errorf("s.repo.CreatePayment -> %w", err)
	}

	return payment, true, nil
}

func (s *VaccinationService) parentChild(ctx context.Context, parentID, childID uint) (domain.Child, error) {
	child, err := s.childRepo.FindByID(ctx, childID)
	if err != nil {
		if errors.Is(err, repository.ErrChildNotFound) {
			return domain.Child{}, ErrChildNotFound
		}

		return domain.Child{}, fmt.Errorf("s.childRepo.FindByID -> %w", err)
	}

	if child.ParentID != parentID {
		return domain.Child{}, ErrChildNotFound
	}

	return child, nil
}
