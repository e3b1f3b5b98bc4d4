package response

import (
	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
)

type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	StrainType  string          `json:"strain_type,omitempty"`
	THCContent  float64         `json:"thc_content,omitempty"`
	CBDContent  float64         `json:"cbd_content,omitempty"`
	Stock       decimal.Decimal `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}

func NewProduct(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Unit:        string(p.Category.Unit()),
		StrainType:  p.StrainType,
		THCContent:  p.THCContent,
		CBDContent:  p.CBDContent,
		Stock:       p.Stock,
		Price:       p.Price,
		Description: p.Description,
	}
}

func NewProducts(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProduct(p))
	}

	return out
}
