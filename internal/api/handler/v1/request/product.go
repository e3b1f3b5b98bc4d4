package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
)

var (
	errInvalidCategory = errors.New("category must be one of Flower, Extract, Edible, Accessory, Drink")
	errNegativeAmount  = errors.New("must not be negative")
)

type ProductRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	StrainType  string          `json:"strain_type,omitempty"`
	THCContent  float64         `json:"thc_content,omitempty"`
	CBDContent  float64         `json:"cbd_content,omitempty"`
	Stock       decimal.Decimal `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

func (req *ProductRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Category, validation.Required),
		validation.Field(&req.THCContent, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&req.CBDContent, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
	if err != nil {
		return err
	}

	if !domain.Category(req.Category).Valid() {
		return errInvalidCategory
	}

	if req.Stock.IsNegative() {
		return errNegativeAmount
	}
	if req.Price.IsNegative() {
		return errNegativeAmount
	}

	return nil
}

func (req *ProductRequest) ToDomain() domain.Product {
	return domain.Product{
		Name:        req.Name,
		Category:    domain.Category(req.Category),
		StrainType:  req.StrainType,
		THCContent:  req.THCContent,
		CBDContent:  req.CBDContent,
		Stock:       req.Stock,
		Price:       req.Price,
		Description: req.Description,
	}
}
