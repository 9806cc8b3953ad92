package response

import (
	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
)

type LoginResponse struct {
	Token   string         `json:"token"`
	Session domain.Session `json:"session"`
}

type MeResponse struct {
	Session  domain.Session  `json:"session"`
	Identity domain.Identity `json:"identity"`
}

type ChildResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
}

func NewChildResponse(child domain.Child) ChildResponse {
	return ChildResponse{
		ID:          child.ID,
		Name:        child.Name,
		DateOfBirth: child.DateOfBirth.Format(domain.DateLayout),
	}
}

func NewChildrenResponse(children []domain.Child) []ChildResponse {
	resp := make([]ChildResponse, 0, len(children))
	for _, c := range children {
		resp = append(resp, NewChildResponse(c))
	}
	return resp
}

type AppointmentResponse struct {
	ID         uint                `json:"id"`
	ChildID    uint                `json:"child_id"`
	VaccineID  uint                `json:"vaccine_id"`
	HospitalID uint                `json:"hospital_id"`
	Date       string              `json:"date"`
	Status     domain.RecordStatus `json:"status"`
}

func NewAppointmentResponse(record domain.VaccineRecord) AppointmentResponse {
	return AppointmentResponse{
		ID:         record.ID,
		ChildID:    record.ChildID,
		VaccineID:  record.VaccineID,
		HospitalID: record.HospitalID,
		Date:       record.Date.Format(domain.DateLayout),
		Status:     record.Status,
	}
}

type ParentAppointmentResponse struct {
	ID            uint                 `json:"id"`
	ChildName     string               `json:"child_name"`
	VaccineName   string               `json:"vaccine_name"`
	HospitalName  string               `json:"hospital_name"`
	Date          string               `json:"date"`
	Status        domain.RecordStatus  `json:"status"`
	Amount        string               `json:"amount"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

func NewParentAppointmentsResponse(appointments []domain.ParentAppointment) []ParentAppointmentResponse {
	resp := make([]ParentAppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		resp = append(resp, ParentAppointmentResponse{
			ID:            a.ID,
			ChildName:     a.ChildName,
			VaccineName:   a.VaccineName,
			HospitalName:  a.HospitalName,
			Date:          a.Date.Format(domain.DateLayout),
			Status:        a.Status,
			Amount:        domain.FormatAmount(a.AmountCents),
			PaymentStatus: a.PaymentStatus,
		})
	}
	return resp
}

type HospitalAppointmentResponse struct {
	ID          uint                `json:"id"`
	ChildName   string              `json:"child_name"`
	VaccineName string              `json:"vaccine_name"`
	Date        string              `json:"date"`
	Status      domain.RecordStatus `json:"status"`
}

func NewHospitalAppointmentsResponse(appointments []domain.HospitalAppointment) []HospitalAppointmentResponse {
	resp := make([]HospitalAppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		resp = append(resp, HospitalAppointmentResponse{
			ID:          a.ID,
			ChildName:   a.ChildName,
			VaccineName: a.VaccineName,
			Date:        a.Date.Format(domain.DateLayout),
			Status:      a.Status,
		})
	}
	return resp
}

type PaymentResponse struct {
	Message       string               `json:"message"`
	ID            uint                 `json:"id"`
	AppointmentID uint                 `json:"appointment_id"`
	Amount        string               `json:"amount"`
	Status        domain.PaymentStatus `json:"status"`
	DatePaid      string               `json:"date_paid"`
}

func NewPaymentResponse(message string, payment domain.Payment) PaymentResponse {
	return PaymentResponse{
		Message:       message,
		ID:            payment.ID,
		AppointmentID: payment.VaccineRecordID,
		Amount:        payment.Amount(),
		Status:        payment.Status,
		DatePaid:      payment.DatePaid.Format(domain.DateLayout),
	}
}

type ReminderResponse struct {
	domain.Reminder
	Message string `json:"message"`
}

func NewRemindersResponse(reminders []domain.Reminder) []ReminderResponse {
	resp := make([]ReminderResponse, 0, len(reminders))
	for _, r := range reminders {
		resp = append(resp, ReminderResponse{
			Reminder: r,
			Message:  r.Message(),
		})
	}
	return resp
}

type HealthcheckResponse struct {
	Status string `json:"status"`
}
