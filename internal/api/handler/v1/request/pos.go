package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type SelectMemberRequest struct {
	MemberID uint `json:"member_id"`
}

func (req *SelectMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.MemberID, validation.Required),
	)
}

type AddLineRequest struct {
	ProductID uint `json:"product_id"`
}

func (req *AddLineRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ProductID, validation.Required),
	)
}

type SetQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

func (req *SetQuantityRequest) Validate() error {
	// Zero and negative quantities are legal and remove the line.
	return nil
}

type CheckoutRequest struct {
	// Total is the amount the till displayed when the operator confirmed.
	// The engine recomputes the cart total and refuses to commit on a
	// mismatch, so a stale client can never charge the wrong price.
	Total decimal.Decimal `json:"total"`
}

func (req *CheckoutRequest) Validate() error {
	if req.Total.IsNegative() {
		return errNegativeAmount
	}

	return nil
}
