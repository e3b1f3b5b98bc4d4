package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DocType string

const (
	DocDNI      DocType = "DNI"
	DocNIE      DocType = "NIE"
	DocPassport DocType = "PASAPORTE"
)

// Member is a club member with a prepaid wallet. The balance only moves
// through checkout debits and deposit credits; each move is mirrored by
// exactly one ledger entry of the same magnitude.
type Member struct {
	ID          uint            `json:"id"`
	FullName    string          `json:"full_name"`
	DocType     DocType         `json:"doc_type"`
	DocNumber   string          `json:"doc_number"`
	PhotoURL    string          `json:"photo_url"`
	DocPhotoURL string          `json:"doc_photo_url"`
	Balance     decimal.Decimal `json:"balance"`
	JoinedAt    time.Time       `json:"joined_at"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
