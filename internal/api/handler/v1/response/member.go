package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
)

type MemberResponse struct {
	ID          uint            `json:"id"`
	FullName    string          `json:"full_name"`
	DocType     string          `json:"doc_type"`
	DocNumber   string          `json:"doc_number"`
	PhotoURL    string          `json:"photo_url,omitempty"`
	DocPhotoURL string          `json:"doc_photo_url,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
	JoinedAt    time.Time       `json:"joined_at"`
	Active      bool            `json:"active"`
}

func NewMember(m domain.Member) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		FullName:    m.FullName,
		DocType:     string(m.DocType),
		DocNumber:   m.DocNumber,
		PhotoURL:    m.PhotoURL,
		DocPhotoURL: m.DocPhotoURL,
		Balance:     m.Balance,
		JoinedAt:    m.JoinedAt,
		Active:      m.Active,
	}
}

func NewMembers(members []domain.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, NewMember(m))
	}

	return out
}
