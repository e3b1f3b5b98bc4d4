package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clubverd/pos-api/internal/pkg/idgen"
)

var (
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrInsufficientStock   = errors.New("insufficient stock at commit")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type Transaction struct {
	ID int64 `gorm:"primaryKey;autoIncrement:false"`

	MemberID   uint              `gorm:"not null;index"`
	MemberName string            `gorm:"not null"`
	Kind       string            `gorm:"not null;index"`
	Amount     decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Items      []TransactionItem `gorm:"foreignKey:TransactionID"`

	CreatedAt time.Time `gorm:"not null;index"`
}

type TransactionItem struct {
	ID            uint  `gorm:"primaryKey"`
	TransactionID int64 `gorm:"not null;index"`

	ProductID   uint            `gorm:"not null"`
	ProductName string          `gorm:"not null"`
	Quantity    decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	PriceAtSale decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

type LedgerDAO struct {
	db *gorm.DB
}

func NewLedgerDAO(db *gorm.DB) *LedgerDAO {
	return &LedgerDAO{
		db: db,
	}
}

// CommitPurchase applies a validated cart as one database transaction: debit
// the member's wallet, decrement stock for every line, append the PURCHASE
// entry. The member row and every product row are locked FOR UPDATE so two
// concurrent checkouts cannot both pass the balance or stock checks. Any
// failed precondition rolls everything back; no partial effect survives.
func (d *LedgerDAO) CommitPurchase(ctx context.Context, memberID uint, items []TransactionItem, total decimal.Decimal) (Transaction, error) {
	var created Transaction

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member Member
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&member, memberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		if member.Balance.LessThan(total) {
			return ErrInsufficientBalance
		}

		// Lock and re-check every product before touching anything. Stock
		// may have moved since the lines were added to the cart.
		products := make([]Product, len(items))
		for i, item := range items {
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&products[i], item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}
			if products[i].Stock.LessThan(item.Quantity) {
				return ErrInsufficientStock
			}
		}

		if err := tx.Model(&member).Update("balance", member.Balance.Sub(total)).Error; err != nil {
			return err
		}

		for i, item := range items {
			newStock := products[i].Stock.Sub(item.Quantity)
			if err := tx.Model(&products[i]).Update("stock", newStock).Error; err != nil {
				return err
			}
		}

		created = Transaction{
			ID:         idgen.Next(),
			MemberID:   member.ID,
			MemberName: member.FullName,
			Kind:       "PURCHASE",
			Amount:     total,
			Items:      items,
			CreatedAt:  time.Now(),
		}

		return tx.Create(&created).Error
	})
	if err != nil {
		return Transaction{}, err
	}

	return created, nil
}

// CommitDeposit credits the wallet and appends the matching DEPOSIT entry in
// one database transaction.
func (d *LedgerDAO) CommitDeposit(ctx context.Context, memberID uint, amount decimal.Decimal) (Transaction, error) {
	var created Transaction

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member Member
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&member, memberID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		if err := tx.Model(&member).Update("balance", member.Balance.Add(amount)).Error; err != nil {
			return err
		}

		created = Transaction{
			ID:         idgen.Next(),
			MemberID:   member.ID,
			MemberName: member.FullName,
			Kind:       "DEPOSIT",
			Amount:     amount,
			CreatedAt:  time.Now(),
		}

		return tx.Create(&created).Error
	})
	if err != nil {
		return Transaction{}, err
	}

	return created, nil
}

func (d *LedgerDAO) FindByID(ctx context.Context, id int64) (Transaction, error) {
	var transaction Transaction
	result := d.db.WithContext(ctx).Preload("Items").First(&transaction, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}

		return Transaction{}, result.Error
	}

	return transaction, nil
}

// Recent returns the n most recently appended entries, newest first.
func (d *LedgerDAO) Recent(ctx context.Context, n int) ([]Transaction, error) {
	var transactions []Transaction
	result := d.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC, id DESC").
		Limit(n).
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

func (d *LedgerDAO) ListByMember(ctx context.Context, memberID uint) ([]Transaction, error) {
	var transactions []Transaction
	result := d.db.WithContext(ctx).Preload("Items").
		Where("member_id = ?", memberID).
		Order("created_at DESC, id DESC").
		Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}

// TotalForKind sums entry amounts of one kind committed at or after since.
// A zero since sums the whole ledger.
func (d *LedgerDAO) TotalForKind(ctx context.Context, kind string, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	query := d.db.WithContext(ctx).Model(&Transaction{}).Select("SUM(amount)").Where("kind = ?", kind)
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	result := query.Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}
