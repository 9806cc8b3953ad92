package domain

import "time"

type Vaccine struct {
	ID                   uint   `json:"id"`
	Name                 string `json:"name"`
	RecommendedAgeMonths int    `json:"recommended_age_months"`
}

// DefaultVaccines is the reference data seeded on startup.
var DefaultVaccines = []Vaccine{
	{Name: "DTP", RecommendedAgeMonths: 2},
	{Name: "Measles", RecommendedAgeMonths: 9},
}

type RecordStatus string

const (
	RecordScheduled RecordStatus = "Scheduled"
	// RecordAdministered is never written; no operation moves a record out of Scheduled.
	RecordAdministered RecordStatus = "Administered"
)

// VaccineRecord is one booked appointment.
type VaccineRecord struct {
	ID             uint         `json:"id"`
	ChildID        uint         `json:"child_id"`
	VaccineID      uint         `json:"vaccine_id"`
	HospitalID     uint         `json:"hospital_id"`
	HealthWorkerID *uint        `json:"health_worker_id"`
	Date           time.Time    `json:"date"`
	Status         RecordStatus `json:"status"`
}

// ParentAppointment is a row of the parent's appointment list.
type ParentAppointment struct {
	ID            uint
	ChildName     string
	VaccineName   string
	HospitalName  string
	Date          time.Time
	Status        RecordStatus
	AmountCents   int64
	PaymentStatus PaymentStatus
}

// HospitalAppointment is a row of the hospital and health worker appointment lists.
type HospitalAppointment struct {
	ID          uint
	ChildName   string
	VaccineName string
	Date        time.Time
	Status      RecordStatus
}
