package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
)

type CartLineResponse struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	MemberID uint               `json:"member_id"`
	Lines    []CartLineResponse `json:"lines"`
	Total    decimal.Decimal    `json:"total"`
}

func NewCart(cart *domain.Cart) CartResponse {
	lines := make([]CartLineResponse, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, CartLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			PriceAtSale: l.PriceAtSale,
			Subtotal:    l.Subtotal,
		})
	}

	return CartResponse{
		MemberID: cart.MemberID,
		Lines:    lines,
		Total:    cart.Total(),
	}
}

type TransactionResponse struct {
	ID         int64              `json:"id"`
	MemberID   uint               `json:"member_id"`
	MemberName string             `json:"member_name"`
	Kind       string             `json:"kind"`
	Amount     decimal.Decimal    `json:"amount"`
	Items      []CartLineResponse `json:"items,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

func NewTransaction(tx domain.Transaction) TransactionResponse {
	var items []CartLineResponse
	for _, it := range tx.Items {
		items = append(items, CartLineResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			PriceAtSale: it.PriceAtSale,
			Subtotal:    it.Subtotal,
		})
	}

	return TransactionResponse{
		ID:         tx.ID,
		MemberID:   tx.MemberID,
		MemberName: tx.MemberName,
		Kind:       string(tx.Kind),
		Amount:     tx.Amount,
		Items:      items,
		Timestamp:  tx.Timestamp,
	}
}

func NewTransactions(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, NewTransaction(tx))
	}

	return out
}
