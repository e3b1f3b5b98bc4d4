package request

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-ozzo/ozzo-validation/is"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/clubverd/pos-api/internal/domain"
)

var (
	dniRegexPattern      = regexp.MustCompile(`^\d{8}[A-Z]$`)
	nieRegexPattern      = regexp.MustCompile(`^[XYZ]\d{7}[A-Z]$`)
	passportRegexPattern = regexp.MustCompile(`^[A-Z0-9]{5,15}$`)

	errInvalidDocType   = errors.New("doc_type must be one of DNI, NIE, PASAPORTE")
	errInvalidDocNumber = errors.New("doc_number does not match the format of the given doc_type")
)

type RegisterMemberRequest struct {
	FullName    string `json:"full_name"`
	DocType     string `json:"doc_type"`
	DocNumber   string `json:"doc_number"`
	PhotoURL    string `json:"photo_url,omitempty"`
	DocPhotoURL string `json:"doc_photo_url,omitempty"`
}

func (req *RegisterMemberRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.DocType, validation.Required),
		validation.Field(&req.DocNumber, validation.Required),
		validation.Field(&req.PhotoURL, is.URL),
		validation.Field(&req.DocPhotoURL, is.URL),
	)
	if err != nil {
		return err
	}

	docNumber := strings.ToUpper(strings.TrimSpace(req.DocNumber))

	switch domain.DocType(req.DocType) {
	case domain.DocDNI:
		if !dniRegexPattern.MatchString(docNumber) {
			return errInvalidDocNumber
		}
	case domain.DocNIE:
		if !nieRegexPattern.MatchString(docNumber) {
			return errInvalidDocNumber
		}
	case domain.DocPassport:
		if !passportRegexPattern.MatchString(docNumber) {
			return errInvalidDocNumber
		}
	default:
		return errInvalidDocType
	}

	req.DocNumber = docNumber

	return nil
}

type SetMemberActiveRequest struct {
	Active *bool `json:"active"`
}

func (req *SetMemberActiveRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Active, validation.NotNil),
	)
}

type DepositRequest struct {
	// Amount stays a string so the engine owns the parse and rejects
	// anything that is not a positive decimal.
	Amount string `json:"amount"`
}

func (req *DepositRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.Required),
	)
}
