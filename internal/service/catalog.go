package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
)

var ErrInvalidCategory = errors.New("invalid product category")

// lowStockThreshold mirrors the dashboard's "running low" cutoff.
var lowStockThreshold = decimal.NewFromInt(50)

type CatalogRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) (domain.Product, error)
	FindByID(ctx context.Context, id uint) (domain.Product, error)
	List(ctx context.Context, category domain.Category) ([]domain.Product, error)
	ListBelowStock(ctx context.Context, threshold decimal.Decimal) ([]domain.Product, error)
	TotalStock(ctx context.Context) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
}

// CatalogService covers inventory edits, the external write path into the
// catalog. Stock decrements from checkouts bypass it entirely.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if !product.Category.Valid() {
		return domain.Product{}, ErrInvalidCategory
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if !product.Category.Valid() {
		return domain.Product{}, ErrInvalidCategory
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	if category != "" && !category.Valid() {
		return nil, ErrInvalidCategory
	}

	products, err := s.repo.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return products, nil
}

func (s *CatalogService) LowStockProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.ListBelowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListBelowStock -> %w", err)
	}

	return products, nil
}
