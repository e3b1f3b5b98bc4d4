package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/repository/dao"
)

var (
	ErrInsufficientBalance = dao.ErrInsufficientBalance
	ErrInsufficientStock   = dao.ErrInsufficientStock
	ErrTransactionNotFound = dao.ErrTransactionNotFound
)

type LedgerDAO interface {
	CommitPurchase(ctx context.Context, memberID uint, items []dao.TransactionItem, total decimal.Decimal) (dao.Transaction, error)
	CommitDeposit(ctx context.Context, memberID uint, amount decimal.Decimal) (dao.Transaction, error)
	FindByID(ctx context.Context, id int64) (dao.Transaction, error)
	Recent(ctx context.Context, n int) ([]dao.Transaction, error)
	ListByMember(ctx context.Context, memberID uint) ([]dao.Transaction, error)
	TotalForKind(ctx context.Context, kind string, since time.Time) (decimal.Decimal, error)
}

type LedgerRepository struct {
	dao LedgerDAO
}

func NewLedgerRepository(dao LedgerDAO) *LedgerRepository {
	return &LedgerRepository{
		dao: dao,
	}
}

func (r *LedgerRepository) CommitPurchase(ctx context.Context, memberID uint, lines []domain.CartLine, total decimal.Decimal) (domain.Transaction, error) {
	items := make([]dao.TransactionItem, len(lines))
	for i, line := range lines {
		items[i] = dao.TransactionItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			PriceAtSale: line.PriceAtSale,
			Subtotal:    line.Subtotal,
		}
	}

	created, err := r.dao.CommitPurchase(ctx, memberID, items, total)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.CommitPurchase -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *LedgerRepository) CommitDeposit(ctx context.Context, memberID uint, amount decimal.Decimal) (domain.Transaction, error) {
	created, err := r.dao.CommitDeposit(ctx, memberID, amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.CommitDeposit -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *LedgerRepository) FindByID(ctx context.Context, id int64) (domain.Transaction, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *LedgerRepository) Recent(ctx context.Context, n int) ([]domain.Transaction, error) {
	found, err := r.dao.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Recent -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *LedgerRepository) ListByMember(ctx context.Context, memberID uint) ([]domain.Transaction, error) {
	found, err := r.dao.ListByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByMember -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *LedgerRepository) TotalForKind(ctx context.Context, kind domain.TransactionKind, since time.Time) (decimal.Decimal, error) {
	total, err := r.dao.TotalForKind(ctx, string(kind), since)
	if err != nil {
		return decimal.Zero, fmt.Errorf("r.dao.TotalForKind -> %w", err)
	}

	return total, nil
}

func (r *LedgerRepository) daoToDomain(t dao.Transaction) domain.Transaction {
	var items []domain.CartLine
	if len(t.Items) > 0 {
		items = make([]domain.CartLine, len(t.Items))
		for i, item := range t.Items {
			items[i] = domain.CartLine{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				PriceAtSale: item.PriceAtSale,
				Subtotal:    item.Subtotal,
			}
		}
	}

	return domain.Transaction{
		ID:         t.ID,
		MemberID:   t.MemberID,
		MemberName: t.MemberName,
		Kind:       domain.TransactionKind(t.Kind),
		Amount:     t.Amount,
		Items:      items,
		Timestamp:  t.CreatedAt,
	}
}

func (r *LedgerRepository) daosToDomain(transactions []dao.Transaction) []domain.Transaction {
	result := make([]domain.Transaction, len(transactions))
	for i, t := range transactions {
		result[i] = r.daoToDomain(t)
	}

	return result
}
