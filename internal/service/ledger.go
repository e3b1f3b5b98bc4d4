package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/repository"
)

var ErrTransactionNotFound = repository.ErrTransactionNotFound

type LedgerRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Transaction, error)
	Recent(ctx context.Context, n int) ([]domain.Transaction, error)
	ListByMember(ctx context.Context, memberID uint) ([]domain.Transaction, error)
	TotalForKind(ctx context.Context, kind domain.TransactionKind, since time.Time) (decimal.Decimal, error)
}

// LedgerService is the read side of the append-only transaction log.
type LedgerService struct {
	repo LedgerRepository
}

func NewLedgerService(repo LedgerRepository) *LedgerService {
	return &LedgerService{
		repo: repo,
	}
}

func (s *LedgerService) GetTransaction(ctx context.Context, id int64) (domain.Transaction, error) {
	transaction, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return transaction, nil
}

func (s *LedgerService) RecentTransactions(ctx context.Context, n int) ([]domain.Transaction, error) {
	if n <= 0 {
		n = 20
	}

	transactions, err := s.repo.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Recent -> %w", err)
	}

	return transactions, nil
}

func (s *LedgerService) MemberTransactions(ctx context.Context, memberID uint) ([]domain.Transaction, error) {
	transactions, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByMember -> %w", err)
	}

	return transactions, nil
}

// SalesSince sums PURCHASE amounts committed at or after since.
func (s *LedgerService) SalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	total, err := s.repo.TotalForKind(ctx, domain.KindPurchase, since)
	if err != nil {
		return decimal.Zero, fmt.Errorf("s.repo.TotalForKind -> %w", err)
	}

	return total, nil
}

// DepositsSince sums DEPOSIT amounts committed at or after since.
func (s *LedgerService) DepositsSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	total, err := s.repo.TotalForKind(ctx, domain.KindDeposit, since)
	if err != nil {
		return decimal.Zero, fmt.Errorf("s.repo.TotalForKind -> %w", err)
	}

	return total, nil
}

// TodaysSales aggregates purchases since local midnight, the dashboard's
// daily-sales figure.
func (s *LedgerService) TodaysSales(ctx context.Context) (decimal.Decimal, error) {
	return s.SalesSince(ctx, Midnight(time.Now()))
}

func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
