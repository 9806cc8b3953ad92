package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/repository/dao"
)

var (
	ErrVaccineNotFound = dao.ErrVaccineNotFound
	ErrRecordNotFound  = dao.ErrRecordNotFound
	ErrPaymentNotFound = dao.ErrPaymentNotFound
	ErrPaymentExists   = dao.ErrPaymentExists
)

type VaccinationDAO interface {
	FindVaccines(ctx context.Context) ([]dao.Vaccine, error)
	FindVaccineByID(ctx context.Context, id uint) (dao.Vaccine, error)
	InsertRecord(ctx context.Context, record dao.VaccineRecord) (dao.VaccineRecord, error)
	FindRecordByID(ctx context.Context, id uint) (dao.VaccineRecord, error)
	FindRecordsByChildIDs(ctx context.Context, childIDs []uint) ([]dao.VaccineRecord, error)
	FindParentAppointments(ctx context.Context, parentID uint) ([]dao.ParentAppointmentRow, error)
	FindHospitalAppointments(ctx context.Context, hospitalID uint) ([]dao.HospitalAppointmentRow, error)
	FindPaymentByRecordID(ctx context.Context, recordID uint) (dao.Payment, error)
	InsertPayment(ctx context.Context, payment dao.Payment) (dao.Payment, error)
}

type VaccinationRepository struct {
	dao VaccinationDAO
}

func NewVaccinationRepository(dao VaccinationDAO) *VaccinationRepository {
	return &VaccinationRepository{
		dao: dao,
	}
}

func (r *VaccinationRepository) FindVaccines(ctx context.Context) ([]domain.Vaccine, error) {
	found, err := r.dao.FindVaccines(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindVaccines -> %w", err)
	}

	vaccines := make([]domain.Vaccine, 0, len(found))
	for _, v := range found {
		vaccines = append(vaccines, vaccineDaoToDomain(v))
	}

	return vaccines, nil
}

func (r *VaccinationRepository) FindVaccineByID(ctx context.Context, id uint) (domain.Vaccine, error) {
	found, err := r.dao.FindVaccineByID(ctx, id)
	if err != nil {
		return domain.Vaccine{}, fmt.Errorf("r.dao.FindVaccineByID -> %w", err)
	}

	return vaccineDaoToDomain(found), nil
}

func (r *VaccinationRepository) CreateRecord(ctx context.Context, record domain.VaccineRecord) (domain.VaccineRecord, error) {
	created, err := r.dao.InsertRecord(ctx, dao.VaccineRecord{
		ChildID:        record.ChildID,
		VaccineID:      record.VaccineID,
		HospitalID:     record.HospitalID,
		HealthWorkerID: record.HealthWorkerID,
		Date:           record.Date,
		Status:         string(record.Status),
	})
	if err != nil {
		return domain.VaccineRecord{}, fmt.Errorf("r.dao.InsertRecord -> %w", err)
	}

	return recordDaoToDomain(created), nil
}

func (r *VaccinationRepository) FindRecordByID(ctx context.Context, id uint) (domain.VaccineRecord, error) {
	found, err := r.dao.FindRecordByID(ctx, id)
	if err != nil {
		return domain.VaccineRecord{}, fmt.Errorf("r.dao.FindRecordByID -> %w", err)
	}

	return recordDaoToDomain(found), nil
}

// FindRecordedPairs returns the (child, vaccine) pairs that have at least one record.
func (r *VaccinationRepository) FindRecordedPairs(ctx context.Context, childIDs []uint) (map[domain.ChildVaccine]bool, error) {
	found, err := r.dao.FindRecordsByChildIDs(ctx, childIDs)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecordsByChildIDs -> %w", err)
	}

	pairs := make(map[domain.ChildVaccine]bool, len(found))
	for _, rec := range found {
		pairs[domain.ChildVaccine{ChildID: rec.ChildID, VaccineID: rec.VaccineID}] = true
	}

	return pairs, nil
}

// FindParentAppointments fills unpaid rows with flatFeeCents and PaymentPending.
func (r *VaccinationRepository) FindParentAppointments(ctx context.Context, parentID uint, flatFeeCents int64) ([]domain.ParentAppointment, error) {
	rows, err := r.dao.FindParentAppointments(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParentAppointments -> %w", err)
	}

	appointments := make([]domain.ParentAppointment, 0, len(rows))
	for _, row := range rows {
		appt := domain.ParentAppointment{
			ID:            row.ID,
			ChildName:     row.ChildName,
			VaccineName:   row.VaccineName,
			HospitalName:  row.HospitalName,
			Date:          domain.CalendarDate(row.Date),
			Status:        domain.RecordStatus(row.Status),
			AmountCents:   flatFeeCents,
			PaymentStatus: domain.PaymentPending,
		}
		if row.AmountCents != nil {
			appt.AmountCents = *row.AmountCents
		}
		if row.PaymentStatus != nil {
			appt.PaymentStatus = domain.PaymentStatus(*row.PaymentStatus)
		}

		appointments = append(appointments, appt)
	}

	return appointments, nil
}

func (r *VaccinationRepository) FindHospitalAppointments(ctx context.Context, hospitalID uint) ([]domain.HospitalAppointment, error) {
	rows, err := r.dao.FindHospitalAppointments(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindHospitalAppointments -> %w", err)
	}

	appointments := make([]domain.HospitalAppointment, 0, len(rows))
	for _, row := range rows {
		appointments = append(appointments, domain.HospitalAppointment{
			ID:          row.ID,
			ChildName:   row.ChildName,
			VaccineName: row.VaccineName,
			Date:        domain.CalendarDate(row.Date),
			Status:      domain.RecordStatus(row.Status),
		})
	}

	return appointments, nil
}

func (r *VaccinationRepository) FindPaymentByRecordID(ctx context.Context, recordID uint) (domain.Payment, error) {
	found, err := r.dao.FindPaymentByRecordID(ctx, recordID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindPaymentByRecordID -> %w", err)
	}

	return paymentDaoToDomain(found), nil
}

func (r *VaccinationRepository) CreatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.InsertPayment(ctx, dao.Payment{
		VaccineRecordID: payment.VaccineRecordID,
		AmountCents:     payment.AmountCents,
		Status:          string(payment.Status),
		DatePaid:        payment.DatePaid,
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.InsertPayment -> %w", err)
	}

	return paymentDaoToDomain(created), nil
}

func vaccineDaoToDomain(v dao.Vaccine) domain.Vaccine {
	return domain.Vaccine{
		ID:                   v.ID,
		Name:                 v.Name,
		RecommendedAgeMonths: v.RecommendedAgeMonths,
	}
}

func recordDaoToDomain(rec dao.VaccineRecord) domain.VaccineRecord {
	return domain.VaccineRecord{
		ID:             rec.ID,
		ChildID:        rec.ChildID,
		VaccineID:      rec.VaccineID,
		HospitalID:     rec.HospitalID,
		HealthWorkerID: rec.HealthWorkerID,
		Date:           domain.CalendarDate(rec.Date),
		Status:         domain.RecordStatus(rec.Status),
	}
}

func paymentDaoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:              p.ID,
		VaccineRecordID: p.VaccineRecordID,
		AmountCents:     p.AmountCents,
		Status:          domain.PaymentStatus(p.Status),
		DatePaid:        domain.CalendarDate(p.DatePaid),
	}
}
