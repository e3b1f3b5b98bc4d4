package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryFlower    Category = "Flower"
	CategoryExtract   Category = "Extract"
	CategoryEdible    Category = "Edible"
	CategoryAccessory Category = "Accessory"
	CategoryDrink     Category = "Drink"
)

type UnitKind string

const (
	UnitGram UnitKind = "g"  // mass-based, fractional quantities
	UnitEach UnitKind = "ud" // count-based, whole units by convention
)

// Unit derives the unit kind from the category: flowers and extracts are
// weighed, everything else is counted.
func (c Category) Unit() UnitKind {
	switch c {
	case CategoryFlower, CategoryExtract:
		return UnitGram
	default:
		return UnitEach
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryFlower, CategoryExtract, CategoryEdible, CategoryAccessory, CategoryDrink:
		return true
	}
	return false
}

type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	StrainType  string          `json:"strain_type,omitempty"` // Indica, Sativa or Híbrida
	THCContent  float64         `json:"thc_content,omitempty"`
	CBDContent  float64         `json:"cbd_content,omitempty"`
	Stock       decimal.Decimal `json:"stock"` // grams or units, per Category.Unit
	Price       decimal.Decimal `json:"price"` // per gram or per unit
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
