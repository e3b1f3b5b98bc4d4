package response

import (
	"github.com/clubverd/pos-api/internal/domain"
)

type StaffResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func NewStaff(s domain.StaffUser) StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Role:      string(s.Role),
		AvatarURL: s.AvatarURL,
	}
}

func NewStaffList(staff []domain.StaffUser) []StaffResponse {
	out := make([]StaffResponse, 0, len(staff))
	for _, s := range staff {
		out = append(out, NewStaff(s))
	}

	return out
}

type LoginResponse struct {
	Token string        `json:"token"`
	Staff StaffResponse `json:"staff"`
}
