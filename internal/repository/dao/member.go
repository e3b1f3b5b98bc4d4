package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrMemberDocExists = errors.New("a member with this document already exists")
)

type Member struct {
	ID uint `gorm:"primaryKey"`

	FullName    string          `gorm:"not null"`
	DocType     string          `gorm:"not null"`
	DocNumber   string          `gorm:"unique;not null"`
	PhotoURL    string
	DocPhotoURL string
	Balance     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	JoinedAt    time.Time       `gorm:"not null"`
	Active      bool            `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type MemberDAO struct {
	db *gorm.DB
}

func NewMemberDAO(db *gorm.DB) *MemberDAO {
	return &MemberDAO{
		db: db,
	}
}

func (d *MemberDAO) Insert(ctx context.Context, member Member) (Member, error) {
	result := d.db.WithContext(ctx).Create(&member)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_members_doc_number"`) {
			return Member{}, ErrMemberDocExists
		}

		return Member{}, result.Error
	}

	return member, nil
}

func (d *MemberDAO) FindByID(ctx context.Context, id uint) (Member, error) {
	var member Member
	result := d.db.WithContext(ctx).First(&member, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Member{}, ErrMemberNotFound
		}

		return Member{}, result.Error
	}

	return member, nil
}

// Search matches the POS member picker: name or document number, case
// insensitive, capped so the dropdown stays short.
func (d *MemberDAO) Search(ctx context.Context, query string, limit int) ([]Member, error) {
	var members []Member
	pattern := "%" + strings.ToLower(query) + "%"
	result := d.db.WithContext(ctx).
		Where("LOWER(full_name) LIKE ? OR LOWER(doc_number) LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *MemberDAO) List(ctx context.Context) ([]Member, error) {
	var members []Member
	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}

	return members, nil
}

func (d *MemberDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	result := d.db.WithContext(ctx).Model(&Member{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *MemberDAO) SetActive(ctx context.Context, id uint, active bool) error {
	result := d.db.WithContext(ctx).Model(&Member{}).Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
