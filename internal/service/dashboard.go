package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
)

// DashboardStats is the control-panel summary. Financial figures are only
// filled in for staff with the financials capability.
type DashboardStats struct {
	TotalMembers  int64            `json:"total_members"`
	TotalProducts int64            `json:"total_products"`
	TotalStock    decimal.Decimal  `json:"total_stock"`
	LowStock      []domain.Product `json:"low_stock"`
	TodaysSales   *decimal.Decimal `json:"todays_sales,omitempty"`
}

type DashboardService struct {
	memberRepo  MemberRepository
	catalogRepo CatalogRepository
	ledger      *LedgerService
}

func NewDashboardService(memberRepo MemberRepository, catalogRepo CatalogRepository, ledger *LedgerService) *DashboardService {
	return &DashboardService{
		memberRepo:  memberRepo,
		catalogRepo: catalogRepo,
		ledger:      ledger,
	}
}

func (s *DashboardService) Stats(ctx context.Context, includeFinancials bool) (DashboardStats, error) {
	members, err := s.memberRepo.Count(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("s.memberRepo.Count -> %w", err)
	}

	products, err := s.catalogRepo.Count(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("s.catalogRepo.Count -> %w", err)
	}

	totalStock, err := s.catalogRepo.TotalStock(ctx)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("s.catalogRepo.TotalStock -> %w", err)
	}

	lowStock, err := s.catalogRepo.ListBelowStock(ctx, lowStockThreshold)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("s.catalogRepo.ListBelowStock -> %w", err)
	}

	stats := DashboardStats{
		TotalMembers:  members,
		TotalProducts: products,
		TotalStock:    totalStock,
		LowStock:      lowStock,
	}

	if includeFinancials {
		sales, err := s.ledger.TodaysSales(ctx)
		if err != nil {
			return DashboardStats{}, fmt.Errorf("s.ledger.TodaysSales -> %w", err)
		}
		stats.TodaysSales = &sales
	}

	return stats, nil
}
