package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/vaccination/internal/domain"
)

const (
	// Any printable text up to 64 characters, trimmed on both ends.
	usernameRegexPattern = `\A(?!\s)(?!.*\s\z)[^\x00-\x1F\x7F]{1,64}\z`
	maxPasswordLength    = 72
)

var (
	errInvalidUsername = errors.New("must be 1 to 64 characters without control characters or surrounding spaces")

	usernameExp = regexp2.MustCompile(usernameRegexPattern, regexp2.None)
)

var usernameRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	ok, err := usernameExp.MatchString(s)
	if err != nil || !ok {
		return errInvalidUsername
	}

	return nil
})

type SignupRequest struct {
	Role     string `json:"role" example:"parent"`
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"pass2"`
	Name     string `json:"name" example:"Alice Smith"`
	Contact  string `json:"contact,omitempty" example:"555-0100"`
}

func (req *SignupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Role, validation.Required, validation.In(string(domain.RoleParent), string(domain.RoleHospital))),
		validation.Field(&req.Username, validation.Required, usernameRule),
		validation.Field(&req.Password, validation.Required, validation.Length(1, maxPasswordLength)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Contact, validation.Length(0, 100)),
	)
}

type LoginRequest struct {
	Role     string `json:"role" example:"hospital"`
	Username string `json:"username" example:"CityClinic"`
	Password string `json:"password" example:"pass1"`
}

// Validate only checks the role. Empty credentials fall through to the
// service so they fail like any other mismatch.
func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Role, validation.Required, validation.In(string(domain.RoleParent), string(domain.RoleHospital), string(domain.RoleHealthWorker))),
	)
}
