package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNoMemberSelected  = errors.New("no member selected for this cart")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CartLine snapshots the product name and unit price at the moment the line
// was created. Later catalog price edits do not re-sync into an open cart.
type CartLine struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Cart is the working set of one checkout session. It is bound to at most one
// member and holds one line per product, in insertion order. Nothing here
// touches storage; stock is only authoritative again at commit time.
type Cart struct {
	MemberID uint       `json:"member_id"`
	Lines    []CartLine `json:"lines"`
}

func NewCart(memberID uint) *Cart {
	return &Cart{MemberID: memberID}
}

// defaultIncrement is one gram or one unit depending on the product; the
// register adjusts granularity afterwards through SetQuantity.
var defaultIncrement = decimal.NewFromInt(1)

// AddLine puts the product in the cart with quantity 1, or bumps an existing
// line by the default increment. The existing line keeps its original price
// snapshot on repeat adds.
func (c *Cart) AddLine(p Product) error {
	if c.MemberID == 0 {
		return ErrNoMemberSelected
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity = c.Lines[i].Quantity.Add(defaultIncrement)
			c.Lines[i].Subtotal = c.Lines[i].Quantity.Mul(c.Lines[i].PriceAtSale)
			return nil
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    defaultIncrement,
		PriceAtSale: p.Price,
		Subtotal:    p.Price,
	})

	return nil
}

// SetQuantity replaces a line's quantity. A quantity of zero or less removes
// the line. The new quantity is checked against the catalog stock passed in
// by the caller; on violation the line is left untouched. Stock is not
// reserved here, so two open carts can both pass this check.
func (c *Cart) SetQuantity(productID uint, quantity, stock decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		c.RemoveLine(productID)
		return nil
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}
		if quantity.GreaterThan(stock) {
			return ErrInsufficientStock
		}
		c.Lines[i].Quantity = quantity
		c.Lines[i].Subtotal = quantity.Mul(c.Lines[i].PriceAtSale)
		return nil
	}

	return nil
}

func (c *Cart) RemoveLine(productID uint) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Total is recomputed from the lines on every call, never cached.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal)
	}

	return total
}

// TotalOfLines sums line subtotals outside a cart, e.g. when the checkout
// engine recomputes the amount from a snapshot it was handed.
func TotalOfLines(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal)
	}

	return total
}
