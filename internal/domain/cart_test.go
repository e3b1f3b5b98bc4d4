package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func flower(id uint, name, price string) Product {
	return Product{
		ID:       id,
		Name:     name,
		Category: CategoryFlower,
		Stock:    dec("100"),
		Price:    dec(price),
	}
}

func TestCart_AddLine(t *testing.T) {
	t.Run("no member selected", func(t *testing.T) {
		cart := &Cart{}

		err := cart.AddLine(flower(1, "Purple Haze", "12.00"))

		assert.ErrorIs(t, err, ErrNoMemberSelected)
		assert.Empty(t, cart.Lines)
	})

	t.Run("new product starts a line at quantity one", func(t *testing.T) {
		cart := NewCart(7)

		err := cart.AddLine(flower(1, "Purple Haze", "12.00"))

		require.NoError(t, err)
		require.Len(t, cart.Lines, 1)
		assert.True(t, cart.Lines[0].Quantity.Equal(dec("1")))
		assert.True(t, cart.Lines[0].Subtotal.Equal(dec("12.00")))
	})

	t.Run("repeat add bumps quantity and keeps the price snapshot", func(t *testing.T) {
		cart := NewCart(7)
		product := flower(1, "Purple Haze", "12.00")

		require.NoError(t, cart.AddLine(product))

		// A catalog price edit between the two adds must not re-sync
		// into the open line.
		product.Price = dec("15.00")
		require.NoError(t, cart.AddLine(product))

		require.Len(t, cart.Lines, 1)
		assert.True(t, cart.Lines[0].Quantity.Equal(dec("2")))
		assert.True(t, cart.Lines[0].PriceAtSale.Equal(dec("12.00")))
		assert.True(t, cart.Lines[0].Subtotal.Equal(dec("24.00")))
	})

	t.Run("lines keep insertion order", func(t *testing.T) {
		cart := NewCart(7)

		require.NoError(t, cart.AddLine(flower(2, "Critical Kush", "10.00")))
		require.NoError(t, cart.AddLine(flower(1, "Purple Haze", "12.00")))
		require.NoError(t, cart.AddLine(flower(2, "Critical Kush", "10.00")))

		require.Len(t, cart.Lines, 2)
		assert.Equal(t, uint(2), cart.Lines[0].ProductID)
		assert.Equal(t, uint(1), cart.Lines[1].ProductID)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("fractional quantity reprices the line", func(t *testing.T) {
		cart := NewCart(7)
		require.NoError(t, cart.AddLine(flower(1, "Purple Haze", "12.00")))

		err := cart.SetQuantity(1, dec("3.5"), dec("100"))

		require.NoError(t, err)
		assert.True(t, cart.Lines[0].Quantity.Equal(dec("3.5")))
		assert.True(t, cart.Lines[0].Subtotal.Equal(dec("42.00")))
	})

	t.Run("quantity above stock is refused and the line untouched", func(t *testing.T) {
		cart := NewCart(7)
		require.NoError(t, cart.AddLine(flower(1, "Purple Haze", "12.00")))
		require.NoError(t, cart.SetQuantity(1, dec("2"), dec("100")))

		err := cart.SetQuantity(1, dec("101"), dec("100"))

		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.True(t, cart.Lines[0].Quantity.Equal(dec("2")))
		assert.True(t, cart.Lines[0].Subtotal.Equal(dec("24.00")))
	})

	t.Run("zero removes the line", func(t *testing.T) {
		cart := NewCart(7)
		require.NoError(t, cart.AddLine(flower(1, "Purple Haze", "12.00")))

		require.NoError(t, cart.SetQuantity(1, decimal.Zero, dec("100")))

		assert.Empty(t, cart.Lines)
	})

	t.Run("negative removes the line", func(t *testing.T) {
		cart := NewCart(7)
		require.NoError(t, cart.AddLine(flower(1, "Purple Haze", "12.00")))

		require.NoError(t, cart.SetQuantity(1, dec("-1"), dec("100")))

		assert.Empty(t, cart.Lines)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		cart := NewCart(7)
		require.NoError(t, cart.AddLine(flower(1, "Purple Haze", "12.00")))

		require.NoError(t, cart.SetQuantity(99, dec("2"), dec("100")))

		require.Len(t, cart.Lines, 1)
		assert.True(t, cart.Lines[0].Quantity.Equal(dec("1")))
	})
}

func TestCart_RemoveLine(t *testing.T) {
	cart := NewCart(7)
	require.NoError(t, cart.AddLine(flower(1, "Purple Haze", "12.00")))
	require.NoError(t, cart.AddLine(flower(2, "Critical Kush", "10.00")))

	cart.RemoveLine(1)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, uint(2), cart.Lines[0].ProductID)

	// Removing something not in the cart changes nothing.
	cart.RemoveLine(99)
	assert.Len(t, cart.Lines, 1)
}

func TestCart_Total(t *testing.T) {
	cart := NewCart(7)
	assert.True(t, cart.Total().IsZero())

	require.NoError(t, cart.AddLine(flower(1, "Purple Haze", "12.00")))
	require.NoError(t, cart.AddLine(flower(2, "Critical Kush", "10.00")))
	require.NoError(t, cart.SetQuantity(1, dec("2.5"), dec("100")))

	// 2.5 * 12.00 + 1 * 10.00
	assert.True(t, cart.Total().Equal(dec("40.00")))

	cart.RemoveLine(2)
	assert.True(t, cart.Total().Equal(dec("30.00")))
}

func TestTotalOfLines(t *testing.T) {
	assert.True(t, TotalOfLines(nil).IsZero())

	lines := []CartLine{
		{Subtotal: dec("12.00")},
		{Subtotal: dec("0.50")},
	}
	assert.True(t, TotalOfLines(lines).Equal(dec("12.50")))
}
