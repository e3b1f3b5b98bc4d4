package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/clubverd/pos-api/internal/pkg/idgen"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// setupTestDB starts a throwaway postgres container and returns a migrated
// connection. Needs a local Docker daemon; run with -short to skip.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	require.NoError(t, idgen.Init(1))

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=clubverd_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	require.NoError(t, resource.Expire(180))
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	var db *gorm.DB
	pool.MaxWait = 90 * time.Second
	require.NoError(t, pool.Retry(func() error {
		dsn := fmt.Sprintf("host=localhost port=%v user=postgres password=secret dbname=clubverd_test sslmode=disable",
			resource.GetPort("5432/tcp"))

		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if openErr != nil {
			return openErr
		}

		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}

		return sqlDB.Ping()
	}))

	require.NoError(t, InitTables(db))

	return db
}

func seedLedgerFixtures(t *testing.T, db *gorm.DB) (Member, Product, Product) {
	t.Helper()

	member := Member{
		FullName:  "María García",
		DocType:   "NIE",
		DocNumber: "X1234567Z",
		Balance:   dec("100.00"),
		JoinedAt:  time.Now(),
		Active:    true,
	}
	require.NoError(t, db.Create(&member).Error)

	flower := Product{
		Name:     "Purple Haze",
		Category: "Flower",
		Stock:    dec("50.000"),
		Price:    dec("12.00"),
	}
	require.NoError(t, db.Create(&flower).Error)

	brownie := Product{
		Name:     "Brownie",
		Category: "Edible",
		Stock:    dec("2.000"),
		Price:    dec("5.50"),
	}
	require.NoError(t, db.Create(&brownie).Error)

	return member, flower, brownie
}

func TestLedgerDAO_CommitPurchase(t *testing.T) {
	db := setupTestDB(t)
	member, flower, brownie := seedLedgerFixtures(t, db)
	d := NewLedgerDAO(db)
	ctx := context.Background()

	items := []TransactionItem{
		{ProductID: flower.ID, ProductName: flower.Name, Quantity: dec("2.5"), PriceAtSale: dec("12.00"), Subtotal: dec("30.00")},
		{ProductID: brownie.ID, ProductName: brownie.Name, Quantity: dec("1"), PriceAtSale: dec("5.50"), Subtotal: dec("5.50")},
	}

	created, err := d.CommitPurchase(ctx, member.ID, items, dec("35.50"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "PURCHASE", created.Kind)
	assert.True(t, created.Amount.Equal(dec("35.50")))

	var gotMember Member
	require.NoError(t, db.First(&gotMember, member.ID).Error)
	assert.True(t, gotMember.Balance.Equal(dec("64.50")))

	var gotFlower, gotBrownie Product
	require.NoError(t, db.First(&gotFlower, flower.ID).Error)
	require.NoError(t, db.First(&gotBrownie, brownie.ID).Error)
	assert.True(t, gotFlower.Stock.Equal(dec("47.5")))
	assert.True(t, gotBrownie.Stock.Equal(dec("1")))

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, found.Items, 2)
	assert.Equal(t, member.FullName, found.MemberName)
}

func TestLedgerDAO_CommitPurchase_Rejections(t *testing.T) {
	db := setupTestDB(t)
	member, flower, brownie := seedLedgerFixtures(t, db)
	d := NewLedgerDAO(db)
	ctx := context.Background()

	assertUntouched := func(t *testing.T) {
		t.Helper()

		var gotMember Member
		require.NoError(t, db.First(&gotMember, member.ID).Error)
		assert.True(t, gotMember.Balance.Equal(dec("100.00")), "balance must not move on a rejected commit")

		var gotFlower Product
		require.NoError(t, db.First(&gotFlower, flower.ID).Error)
		assert.True(t, gotFlower.Stock.Equal(dec("50")), "stock must not move on a rejected commit")

		var count int64
		require.NoError(t, db.Model(&Transaction{}).Count(&count).Error)
		assert.Zero(t, count, "no ledger entry may survive a rejected commit")
	}

	t.Run("insufficient balance", func(t *testing.T) {
		items := []TransactionItem{
			{ProductID: flower.ID, ProductName: flower.Name, Quantity: dec("10"), PriceAtSale: dec("12.00"), Subtotal: dec("120.00")},
		}

		_, err := d.CommitPurchase(ctx, member.ID, items, dec("120.00"))

		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assertUntouched(t)
	})

	t.Run("insufficient stock on one line rolls back the others", func(t *testing.T) {
		items := []TransactionItem{
			{ProductID: flower.ID, ProductName: flower.Name, Quantity: dec("1"), PriceAtSale: dec("12.00"), Subtotal: dec("12.00")},
			{ProductID: brownie.ID, ProductName: brownie.Name, Quantity: dec("3"), PriceAtSale: dec("5.50"), Subtotal: dec("16.50")},
		}

		_, err := d.CommitPurchase(ctx, member.ID, items, dec("28.50"))

		assert.ErrorIs(t, err, ErrInsufficientStock)
		assertUntouched(t)
	})

	t.Run("unknown product", func(t *testing.T) {
		items := []TransactionItem{
			{ProductID: 9999, ProductName: "ghost", Quantity: dec("1"), PriceAtSale: dec("1.00"), Subtotal: dec("1.00")},
		}

		_, err := d.CommitPurchase(ctx, member.ID, items, dec("1.00"))

		assert.ErrorIs(t, err, ErrProductNotFound)
		assertUntouched(t)
	})

	t.Run("unknown member", func(t *testing.T) {
		items := []TransactionItem{
			{ProductID: flower.ID, ProductName: flower.Name, Quantity: dec("1"), PriceAtSale: dec("12.00"), Subtotal: dec("12.00")},
		}

		_, err := d.CommitPurchase(ctx, 9999, items, dec("12.00"))

		assert.ErrorIs(t, err, ErrMemberNotFound)
		assertUntouched(t)
	})
}

func TestLedgerDAO_CommitDeposit(t *testing.T) {
	db := setupTestDB(t)
	member, _, _ := seedLedgerFixtures(t, db)
	d := NewLedgerDAO(db)
	ctx := context.Background()

	created, err := d.CommitDeposit(ctx, member.ID, dec("25.50"))
	require.NoError(t, err)
	assert.Equal(t, "DEPOSIT", created.Kind)
	assert.True(t, created.Amount.Equal(dec("25.50")))

	var gotMember Member
	require.NoError(t, db.First(&gotMember, member.ID).Error)
	assert.True(t, gotMember.Balance.Equal(dec("125.50")))

	_, err = d.CommitDeposit(ctx, 9999, dec("10.00"))
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestLedgerDAO_Queries(t *testing.T) {
	db := setupTestDB(t)
	member, flower, _ := seedLedgerFixtures(t, db)
	d := NewLedgerDAO(db)
	ctx := context.Background()

	_, err := d.CommitDeposit(ctx, member.ID, dec("50.00"))
	require.NoError(t, err)

	items := []TransactionItem{
		{ProductID: flower.ID, ProductName: flower.Name, Quantity: dec("1"), PriceAtSale: dec("12.00"), Subtotal: dec("12.00")},
	}
	purchase, err := d.CommitPurchase(ctx, member.ID, items, dec("12.00"))
	require.NoError(t, err)

	t.Run("recent is newest first", func(t *testing.T) {
		recent, err := d.Recent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, purchase.ID, recent[0].ID)
	})

	t.Run("list by member preloads items", func(t *testing.T) {
		txs, err := d.ListByMember(ctx, member.ID)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Len(t, txs[0].Items, 1)
	})

	t.Run("totals split by kind", func(t *testing.T) {
		sales, err := d.TotalForKind(ctx, "PURCHASE", time.Time{})
		require.NoError(t, err)
		assert.True(t, sales.Equal(dec("12.00")))

		deposits, err := d.TotalForKind(ctx, "DEPOSIT", time.Time{})
		require.NoError(t, err)
		assert.True(t, deposits.Equal(dec("50.00")))

		none, err := d.TotalForKind(ctx, "PURCHASE", time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, none.IsZero())
	})

	t.Run("find by id not found", func(t *testing.T) {
		_, err := d.FindByID(ctx, 42)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}
