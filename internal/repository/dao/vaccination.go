package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Vaccine struct {
	ID uint `gorm:"primaryKey"`

	Name                 string `gorm:"uniqueIndex;not null"`
	RecommendedAgeMonths int    `gorm:"not null"`
}

type VaccineRecord struct {
	ID uint `gorm:"primaryKey"`

	ChildID        uint          `gorm:"index;not null"`
	Child          Child         `gorm:"foreignKey:ChildID"`
	VaccineID      uint          `gorm:"index;not null"`
	Vaccine        Vaccine       `gorm:"foreignKey:VaccineID"`
	HospitalID     uint          `gorm:"index;not null"`
	Hospital       Hospital      `gorm:"foreignKey:HospitalID"`
	HealthWorkerID *uint         `gorm:"index"`
	HealthWorker   *HealthWorker `gorm:"foreignKey:HealthWorkerID"`
	Date           time.Time     `gorm:"type:date;not null"`
	Status         string        `gorm:"not null"` // "Scheduled" or "Administered"

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Payment struct {
	ID uint `gorm:"primaryKey"`

	VaccineRecordID uint          `gorm:"uniqueIndex;not null"`
	VaccineRecord   VaccineRecord `gorm:"foreignKey:VaccineRecordID"`
	AmountCents     int64         `gorm:"not null"`
	Status          string        `gorm:"not null"` // "Paid"
	DatePaid        time.Time     `gorm:"type:date;not null"`

	CreatedAt time.Time
}

// ParentAppointmentRow is one row of the parent's appointment list. Payment
// columns are nil when the appointment has not been paid.
type ParentAppointmentRow struct {
	ID            uint
	ChildName     string
	VaccineName   string
	HospitalName  string
	Date          time.Time
	Status        string
	AmountCents   *int64
	PaymentStatus *string
}

type HospitalAppointmentRow struct {
	ID          uint
	ChildName   string
	VaccineName string
	Date        time.Time
	Status      string
}

type VaccinationDAO struct {
	db *gorm.DB
}

func NewVaccinationDAO(db *gorm.DB) *VaccinationDAO {
	return &VaccinationDAO{
		db: db,
	}
}

func (d *VaccinationDAO) FindVaccines(ctx context.Context) ([]Vaccine, error) {
	var vaccines []Vaccine

	result := d.db.WithContext(ctx).Order("id").Find(&vaccines)
	if result.Error != nil {
		return nil, result.Error
	}

	return vaccines, nil
}

func (d *VaccinationDAO) FindVaccineByID(ctx context.Context, id uint) (Vaccine, error) {
	var vaccine Vaccine

	result := d.db.WithContext(ctx).First(&vaccine, id)
	if result.Error != nil {
		return Vaccine{}, notFound(result.Error, ErrVaccineNotFound)
	}

	return vaccine, nil
}

func (d *VaccinationDAO) InsertRecord(ctx context.Context, record VaccineRecord) (VaccineRecord, error) {
	result := d.db.WithContext(ctx).
		Omit("Child", "Vaccine", "Hospital", "HealthWorker").
		Create(&record)
	if result.Error != nil {
		return VaccineRecord{}, result.Error
	}

	return record, nil
}

func (d *VaccinationDAO) FindRecordByID(ctx context.Context, id uint) (VaccineRecord, error) {
	var record VaccineRecord

	result := d.db.WithContext(ctx).First(&record, id)
	if result.Error != nil {
		return VaccineRecord{}, notFound(result.Error, ErrRecordNotFound)
	}

	return record, nil
}

func (d *VaccinationDAO) FindRecordsByChildIDs(ctx context.Context, childIDs []uint) ([]VaccineRecord, error) {
	var records []VaccineRecord
	if len(childIDs) == 0 {
		return records, nil
	}

	result := d.db.WithContext(ctx).Where("child_id IN ?", childIDs).Order("id").Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func (d *VaccinationDAO) FindParentAppointments(ctx context.Context, parentID uint) ([]ParentAppointmentRow, error) {
	var rows []ParentAppointmentRow

	result := d.db.WithContext(ctx).
		Table("vaccine_records AS vr").
		Select(`vr.id AS id, c.name AS child_name, v.name AS vaccine_name, h.name AS hospital_name,
			vr.date AS date, vr.status AS status, p.amount_cents AS amount_cents, p.status AS payment_status`).
		Joins("JOIN children c ON vr.child_id = c.id").
		Joins("JOIN vaccines v ON vr.vaccine_id = v.id").
		Joins("JOIN hospitals h ON vr.hospital_id = h.id").
		Joins("LEFT JOIN payments p ON vr.id = p.vaccine_record_id").
		Where("c.parent_id = ?", parentID).
		Order("vr.id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *VaccinationDAO) FindHospitalAppointments(ctx context.Context, hospitalID uint) ([]HospitalAppointmentRow, error) {
	var rows []HospitalAppointmentRow

	result := d.db.WithContext(ctx).
		Table("vaccine_records AS vr").
		Select("vr.id AS id, c.name AS child_name, v.name AS vaccine_name, vr.date AS date, vr.status AS status").
		Joins("JOIN children c ON vr.child_id = c.id").
		Joins("JOIN vaccines v ON vr.vaccine_id = v.id").
		Where("vr.hospital_id = ?", hospitalID).
		Order("vr.id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *VaccinationDAO) FindPaymentByRecordID(ctx context.Context, recordID uint) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).First(&payment, "vaccine_record_id = ?", recordID)
	if result.Error != nil {
		return Payment{}, notFound(result.Error, ErrPaymentNotFound)
	}

	return payment, nil
}

func (d *VaccinationDAO) InsertPayment(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Omit("VaccineRecord").Create(&payment)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Payment{}, ErrPaymentExists
		}

		return Payment{}, result.Error
	}

	return payment, nil
}
