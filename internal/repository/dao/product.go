package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID uint `gorm:"primaryKey"`

	Name        string          `gorm:"not null"`
	Category    string          `gorm:"not null;index"`
	StrainType  string
	THCContent  float64
	CBDContent  float64
	Stock       decimal.Decimal `gorm:"type:numeric(12,3);not null;default:0"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Description string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

func (d *ProductDAO) Insert(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Create(&product)
	if result.Error != nil {
		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) Update(ctx context.Context, product Product) (Product, error) {
	result := d.db.WithContext(ctx).Model(&Product{}).Where("id = ?", product.ID).Updates(map[string]any{
		"name":        product.Name,
		"category":    product.Category,
		"strain_type": product.StrainType,
		"thc_content": product.THCContent,
		"cbd_content": product.CBDContent,
		"stock":       product.Stock,
		"price":       product.Price,
		"description": product.Description,
	})
	if result.Error != nil {
		return Product{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Product{}, ErrProductNotFound
	}

	return d.FindByID(ctx, product.ID)
}

func (d *ProductDAO) FindByID(ctx context.Context, id uint) (Product, error) {
	var product Product
	result := d.db.WithContext(ctx).First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Product{}, ErrProductNotFound
		}

		return Product{}, result.Error
	}

	return product, nil
}

func (d *ProductDAO) List(ctx context.Context, category string) ([]Product, error) {
	var products []Product
	query := d.db.WithContext(ctx).Order("id")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	result := query.Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *ProductDAO) ListBelowStock(ctx context.Context, threshold decimal.Decimal) ([]Product, error) {
	var products []Product
	result := d.db.WithContext(ctx).Where("stock < ?", threshold).Order("stock").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (d *ProductDAO) TotalStock(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := d.db.WithContext(ctx).Model(&Product{}).Select("SUM(stock)").Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

func (d *ProductDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	result := d.db.WithContext(ctx).Model(&Product{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
