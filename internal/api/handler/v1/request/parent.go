package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
)

type AddChildRequest struct {
	Name        string `json:"name" example:"Bobby"`
	DateOfBirth string `json:"date_of_birth" example:"2023-01-01"`
}

func (req *AddChildRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.DateOfBirth, validation.Required, validation.Date(domain.DateLayout).Error("invalid date format (use YYYY-MM-DD)")),
	)
}

type BookAppointmentRequest struct {
	ChildID    uint `json:"child_id" example:"1"`
	VaccineID  uint `json:"vaccine_id" example:"1"`
	HospitalID uint `json:"hospital_id" example:"1"`
}

func (req *BookAppointmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ChildID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.VaccineID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.HospitalID, validation.Required, validation.Min(uint(1))),
	)
}
