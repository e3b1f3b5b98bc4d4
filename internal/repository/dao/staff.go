package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrStaffEmailExists = errors.New("staff user already exists")
	ErrStaffNotFound    = errors.New("staff user not found")
	ErrLastStaffUser    = errors.New("cannot delete the last staff user")
)

type StaffUser struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	Name      string `gorm:"not null"`
	Role      string `gorm:"not null"` // "ADMIN", "INVENTORY" or "SALES"
	AvatarURL string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StaffDAO struct {
	db *gorm.DB
}

func NewStaffDAO(db *gorm.DB) *StaffDAO {
	return &StaffDAO{
		db: db,
	}
}

func (d *StaffDAO) Insert(ctx context.Context, staff StaffUser) (StaffUser, error) {
	result := d.db.WithContext(ctx).Create(&staff)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_staff_users_email"`) {
			return StaffUser{}, ErrStaffEmailExists
		}

		return StaffUser{}, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) FindByID(ctx context.Context, id uint) (StaffUser, error) {
	var staff StaffUser
	result := d.db.WithContext(ctx).First(&staff, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StaffUser{}, ErrStaffNotFound
		}

		return StaffUser{}, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) FindByEmail(ctx context.Context, email string) (StaffUser, error) {
	var staff StaffUser
	result := d.db.WithContext(ctx).Where("email = ?", email).First(&staff)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return StaffUser{}, ErrStaffNotFound
		}

		return StaffUser{}, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) List(ctx context.Context) ([]StaffUser, error) {
	var staff []StaffUser
	result := d.db.WithContext(ctx).Order("id").Find(&staff)
	if result.Error != nil {
		return nil, result.Error
	}

	return staff, nil
}

func (d *StaffDAO) Update(ctx context.Context, staff StaffUser) (StaffUser, error) {
	updates := map[string]any{
		"name":       staff.Name,
		"role":       staff.Role,
		"avatar_url": staff.AvatarURL,
	}
	if staff.Password != "" {
		updates["password"] = staff.Password
	}

	result := d.db.WithContext(ctx).Model(&StaffUser{}).Where("id = ?", staff.ID).Updates(updates)
	if result.Error != nil {
		return StaffUser{}, result.Error
	}
	if result.RowsAffected == 0 {
		return StaffUser{}, ErrStaffNotFound
	}

	return d.FindByID(ctx, staff.ID)
}

// Delete refuses to remove the last remaining account so the club can
// always log back in.
func (d *StaffDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&StaffUser{}).Count(&count).Error; err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastStaffUser
		}

		result := tx.Delete(&StaffUser{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStaffNotFound
		}

		return nil
	})
}
