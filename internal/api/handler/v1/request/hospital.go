package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type AddHealthWorkerRequest struct {
	Name     string `json:"name" example:"Nurse Joy"`
	Username string `json:"username" example:"joy"`
	Password string `json:"password" example:"secret"`
}

func (req *AddHealthWorkerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Username, validation.Required, usernameRule),
		validation.Field(&req.Password, validation.Required, validation.Length(1, maxPasswordLength)),
	)
}
