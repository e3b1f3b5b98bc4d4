package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/clubverd/pos-api/internal/domain"
)

const (
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
)

var (
	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errInvalidRole     = errors.New("role must be one of ADMIN, INVENTORY, SALES")
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type SignupStaffRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (req *SignupStaffRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Role, validation.Required),
	)
	if err != nil {
		return err
	}

	if !domain.Role(req.Role).Valid() {
		return errInvalidRole
	}

	return validatePassword(req.Password)
}

type UpdateStaffRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (req *UpdateStaffRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Role, validation.Required),
	)
	if err != nil {
		return err
	}

	if !domain.Role(req.Role).Valid() {
		return errInvalidRole
	}

	// Password is optional on update. Empty means keep the current one.
	if req.Password == "" {
		return nil
	}

	return validatePassword(req.Password)
}

func validatePassword(password string) error {
	passwordExp := regexp2.MustCompile(passwordRegexPattern, regexp2.None)

	ok, err := passwordExp.MatchString(password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}
