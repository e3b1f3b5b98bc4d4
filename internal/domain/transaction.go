package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit  TransactionKind = "DEPOSIT"
	KindPurchase TransactionKind = "PURCHASE"
)

// Transaction is one immutable ledger entry. It is created exactly once per
// committed checkout or deposit and never changes afterwards. The amount is
// always positive; the sign of the balance move is implied by the kind.
type Transaction struct {
	ID         int64           `json:"id"`
	MemberID   uint            `json:"member_id"`
	MemberName string          `json:"member_name"`
	Kind       TransactionKind `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Items      []CartLine      `json:"items,omitempty"` // purchases only
	Timestamp  time.Time       `json:"timestamp"`
}
