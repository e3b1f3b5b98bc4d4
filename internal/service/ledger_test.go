package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubverd/pos-api/internal/domain"
)

type fixtureLedgerReads struct {
	recentLimit int
	totals      map[domain.TransactionKind]decimal.Decimal
	lastSince   time.Time
}

func (f *fixtureLedgerReads) FindByID(_ context.Context, id int64) (domain.Transaction, error) {
	return domain.Transaction{ID: id}, nil
}

func (f *fixtureLedgerReads) Recent(_ context.Context, n int) ([]domain.Transaction, error) {
	f.recentLimit = n
	return nil, nil
}

func (f *fixtureLedgerReads) ListByMember(_ context.Context, memberID uint) ([]domain.Transaction, error) {
	return []domain.Transaction{{MemberID: memberID}}, nil
}

func (f *fixtureLedgerReads) TotalForKind(_ context.Context, kind domain.TransactionKind, since time.Time) (decimal.Decimal, error) {
	f.lastSince = since
	return f.totals[kind], nil
}

func TestLedgerService_RecentTransactions(t *testing.T) {
	repo := &fixtureLedgerReads{}
	svc := NewLedgerService(repo)

	_, err := svc.RecentTransactions(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.recentLimit, "zero falls back to the default page size")

	_, err = svc.RecentTransactions(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.recentLimit)
}

func TestLedgerService_Totals(t *testing.T) {
	repo := &fixtureLedgerReads{totals: map[domain.TransactionKind]decimal.Decimal{
		domain.KindPurchase: dec("120.00"),
		domain.KindDeposit:  dec("300.00"),
	}}
	svc := NewLedgerService(repo)

	sales, err := svc.SalesSince(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.True(t, sales.Equal(dec("120.00")))

	deposits, err := svc.DepositsSince(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.True(t, deposits.Equal(dec("300.00")))

	_, err = svc.TodaysSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Midnight(time.Now()), repo.lastSince)
}

func TestMidnight(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2024, time.March, 15, 18, 42, 7, 123, loc)

	got := Midnight(in)

	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
