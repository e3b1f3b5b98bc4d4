package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/repository"
)

// TopicTransactionCommitted carries every committed ledger entry to receipt
// consumers. Subscribers get the immutable domain.Transaction snapshot.
const TopicTransactionCommitted = "pos.transaction.committed"

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInsufficientBalance = repository.ErrInsufficientBalance
	ErrInsufficientStock   = repository.ErrInsufficientStock
	ErrUnknownProduct      = repository.ErrProductNotFound
	ErrMemberNotFound      = repository.ErrMemberNotFound

	// ErrTotalMismatch means the caller's stated total disagrees with the
	// total recomputed from the cart lines. The engine never charges the
	// caller's figure; the stated total exists only to catch a stale
	// register display before money moves.
	ErrTotalMismatch = errors.New("stated total does not match cart lines")
)

type PosLedgerRepository interface {
	CommitPurchase(ctx context.Context, memberID uint, lines []domain.CartLine, total decimal.Decimal) (domain.Transaction, error)
	CommitDeposit(ctx context.Context, memberID uint, amount decimal.Decimal) (domain.Transaction, error)
}

// PosService is the checkout engine and the wallet top-up path. All state it
// mutates lives behind the injected repository; the atomic commit region is
// the repository's database transaction.
type PosService struct {
	ledgerRepo PosLedgerRepository
	bus        EventBus.Bus
}

func NewPosService(ledgerRepo PosLedgerRepository, bus EventBus.Bus) *PosService {
	return &PosService{
		ledgerRepo: ledgerRepo,
		bus:        bus,
	}
}

// Checkout validates the cart snapshot and commits the three-way state
// change: wallet debit, stock decrement per line, PURCHASE ledger append.
// Preconditions are checked in order and the first failure wins with no
// partial effect. The total is recomputed here from the line snapshots
// rather than trusted from the caller; the caller's figure is only compared
// to catch drift between what the register showed and what it sent.
func (s *PosService) Checkout(ctx context.Context, memberID uint, lines []domain.CartLine, statedTotal decimal.Decimal) (domain.Transaction, error) {
	if len(lines) == 0 {
		return domain.Transaction{}, ErrEmptyCart
	}

	total := domain.TotalOfLines(lines)
	if !total.Equal(statedTotal) {
		return domain.Transaction{}, ErrTotalMismatch
	}

	created, err := s.ledgerRepo.CommitPurchase(ctx, memberID, lines, total)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.ledgerRepo.CommitPurchase -> %w", err)
	}

	s.publish(created)

	return created, nil
}

// Deposit parses and validates the raw amount, then credits the wallet and
// appends the matching DEPOSIT entry. No upper bound is enforced.
func (s *PosService) Deposit(ctx context.Context, memberID uint, rawAmount string) (domain.Transaction, error) {
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return domain.Transaction{}, ErrInvalidAmount
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Transaction{}, ErrInvalidAmount
	}

	created, err := s.ledgerRepo.CommitDeposit(ctx, memberID, amount)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.ledgerRepo.CommitDeposit -> %w", err)
	}

	s.publish(created)

	return created, nil
}

func (s *PosService) publish(transaction domain.Transaction) {
	if s.bus != nil {
		s.bus.Publish(TopicTransactionCommitted, transaction)
	}
}
