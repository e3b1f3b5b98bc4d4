package service

import (
	"context"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/repository"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type purchaseCall struct {
	memberID uint
	lines    []domain.CartLine
	total    decimal.Decimal
}

// fixtureLedgerRepo stands in for the database commit. It either refuses
// with a configured error or fabricates the ledger entry the real commit
// would append.
type fixtureLedgerRepo struct {
	purchaseErr error
	depositErr  error

	purchases []purchaseCall
	deposits  []decimal.Decimal
}

func (f *fixtureLedgerRepo) CommitPurchase(_ context.Context, memberID uint, lines []domain.CartLine, total decimal.Decimal) (domain.Transaction, error) {
	if f.purchaseErr != nil {
		return domain.Transaction{}, f.purchaseErr
	}

	f.purchases = append(f.purchases, purchaseCall{memberID: memberID, lines: lines, total: total})

	return domain.Transaction{
		ID:        1,
		MemberID:  memberID,
		Kind:      domain.KindPurchase,
		Amount:    total,
		Items:     lines,
		Timestamp: time.Now(),
	}, nil
}

func (f *fixtureLedgerRepo) CommitDeposit(_ context.Context, memberID uint, amount decimal.Decimal) (domain.Transaction, error) {
	if f.depositErr != nil {
		return domain.Transaction{}, f.depositErr
	}

	f.deposits = append(f.deposits, amount)

	return domain.Transaction{
		ID:        2,
		MemberID:  memberID,
		Kind:      domain.KindDeposit,
		Amount:    amount,
		Timestamp: time.Now(),
	}, nil
}

func cartLines() []domain.CartLine {
	return []domain.CartLine{
		{ProductID: 1, ProductName: "Purple Haze", Quantity: dec("2"), PriceAtSale: dec("12.00"), Subtotal: dec("24.00")},
		{ProductID: 5, ProductName: "Brownie", Quantity: dec("1"), PriceAtSale: dec("5.50"), Subtotal: dec("5.50")},
	}
}

func TestPosService_Checkout(t *testing.T) {
	t.Run("commits and publishes a receipt event", func(t *testing.T) {
		repo := &fixtureLedgerRepo{}
		bus := EventBus.New()

		var published []domain.Transaction
		require.NoError(t, bus.Subscribe(TopicTransactionCommitted, func(tx domain.Transaction) {
			published = append(published, tx)
		}))

		svc := NewPosService(repo, bus)

		tx, err := svc.Checkout(context.Background(), 7, cartLines(), dec("29.50"))

		require.NoError(t, err)
		assert.Equal(t, domain.KindPurchase, tx.Kind)
		assert.True(t, tx.Amount.Equal(dec("29.50")))

		require.Len(t, repo.purchases, 1)
		assert.Equal(t, uint(7), repo.purchases[0].memberID)
		assert.True(t, repo.purchases[0].total.Equal(dec("29.50")))

		require.Len(t, published, 1)
		assert.Equal(t, tx.ID, published[0].ID)
	})

	t.Run("empty cart is refused before touching the repository", func(t *testing.T) {
		repo := &fixtureLedgerRepo{}
		svc := NewPosService(repo, nil)

		_, err := svc.Checkout(context.Background(), 7, nil, decimal.Zero)

		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Empty(t, repo.purchases)
	})

	t.Run("stated total must match the recomputed one", func(t *testing.T) {
		repo := &fixtureLedgerRepo{}
		svc := NewPosService(repo, nil)

		_, err := svc.Checkout(context.Background(), 7, cartLines(), dec("29.49"))

		assert.ErrorIs(t, err, ErrTotalMismatch)
		assert.Empty(t, repo.purchases)
	})

	t.Run("insufficient balance is passed through unchanged", func(t *testing.T) {
		repo := &fixtureLedgerRepo{purchaseErr: repository.ErrInsufficientBalance}
		bus := EventBus.New()

		var published int
		require.NoError(t, bus.Subscribe(TopicTransactionCommitted, func(domain.Transaction) {
			published++
		}))

		svc := NewPosService(repo, bus)

		_, err := svc.Checkout(context.Background(), 7, cartLines(), dec("29.50"))

		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Zero(t, published)
	})

	t.Run("stock raced away between cart and commit", func(t *testing.T) {
		repo := &fixtureLedgerRepo{purchaseErr: repository.ErrInsufficientStock}
		svc := NewPosService(repo, nil)

		_, err := svc.Checkout(context.Background(), 7, cartLines(), dec("29.50"))

		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("unknown product at commit", func(t *testing.T) {
		repo := &fixtureLedgerRepo{purchaseErr: repository.ErrProductNotFound}
		svc := NewPosService(repo, nil)

		_, err := svc.Checkout(context.Background(), 7, cartLines(), dec("29.50"))

		assert.ErrorIs(t, err, ErrUnknownProduct)
	})
}

func TestPosService_Deposit(t *testing.T) {
	t.Run("credits the wallet and publishes", func(t *testing.T) {
		repo := &fixtureLedgerRepo{}
		bus := EventBus.New()

		var published []domain.Transaction
		require.NoError(t, bus.Subscribe(TopicTransactionCommitted, func(tx domain.Transaction) {
			published = append(published, tx)
		}))

		svc := NewPosService(repo, bus)

		tx, err := svc.Deposit(context.Background(), 7, "25.50")

		require.NoError(t, err)
		assert.Equal(t, domain.KindDeposit, tx.Kind)
		assert.True(t, tx.Amount.Equal(dec("25.50")))

		require.Len(t, repo.deposits, 1)
		assert.True(t, repo.deposits[0].Equal(dec("25.50")))
		assert.Len(t, published, 1)
	})

	t.Run("rejects amounts that do not parse or are not positive", func(t *testing.T) {
		repo := &fixtureLedgerRepo{}
		svc := NewPosService(repo, nil)

		for _, raw := range []string{"", "abc", "12,50", "0", "-5", "-0.01"} {
			_, err := svc.Deposit(context.Background(), 7, raw)
			assert.ErrorIsf(t, err, ErrInvalidAmount, "amount %q", raw)
		}

		assert.Empty(t, repo.deposits)
	})

	t.Run("member not found is passed through", func(t *testing.T) {
		repo := &fixtureLedgerRepo{depositErr: repository.ErrMemberNotFound}
		svc := NewPosService(repo, nil)

		_, err := svc.Deposit(context.Background(), 99, "10")

		assert.ErrorIs(t, err, ErrMemberNotFound)
	})
}
