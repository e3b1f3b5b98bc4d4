package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/repository/dao"
)

var ErrProductNotFound = dao.ErrProductNotFound

type ProductDAO interface {
	Insert(ctx context.Context, product dao.Product) (dao.Product, error)
	Update(ctx context.Context, product dao.Product) (dao.Product, error)
	FindByID(ctx context.Context, id uint) (dao.Product, error)
	List(ctx context.Context, category string) ([]dao.Product, error)
	ListBelowStock(ctx context.Context, threshold decimal.Decimal) ([]dao.Product, error)
	TotalStock(ctx context.Context) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
}

type CatalogRepository struct {
	dao ProductDAO
}

func NewCatalogRepository(dao ProductDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CatalogRepository) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CatalogRepository) List(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	found, err := r.dao.List(ctx, string(category))
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CatalogRepository) ListBelowStock(ctx context.Context, threshold decimal.Decimal) ([]domain.Product, error) {
	found, err := r.dao.ListBelowStock(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListBelowStock -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *CatalogRepository) TotalStock(ctx context.Context) (decimal.Decimal, error) {
	total, err := r.dao.TotalStock(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("r.dao.TotalStock -> %w", err)
	}

	return total, nil
}

func (r *CatalogRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *CatalogRepository) domainToDao(p domain.Product) dao.Product {
	return dao.Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		StrainType:  p.StrainType,
		THCContent:  p.THCContent,
		CBDContent:  p.CBDContent,
		Stock:       p.Stock,
		Price:       p.Price,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *CatalogRepository) daoToDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Category:    domain.Category(p.Category),
		StrainType:  p.StrainType,
		THCContent:  p.THCContent,
		CBDContent:  p.CBDContent,
		Stock:       p.Stock,
		Price:       p.Price,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *CatalogRepository) daosToDomain(products []dao.Product) []domain.Product {
	result := make([]domain.Product, len(products))
	for i, p := range products {
		result[i] = r.daoToDomain(p)
	}

	return result
}
