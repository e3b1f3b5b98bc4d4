package repository

import (
	"context"
	"fmt"

	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/repository/dao"
)

var (
	ErrStaffEmailExists = dao.ErrStaffEmailExists
	ErrStaffNotFound    = dao.ErrStaffNotFound
	ErrLastStaffUser    = dao.ErrLastStaffUser
)

type StaffDAO interface {
	Insert(ctx context.Context, staff dao.StaffUser) (dao.StaffUser, error)
	FindByID(ctx context.Context, id uint) (dao.StaffUser, error)
	FindByEmail(ctx context.Context, email string) (dao.StaffUser, error)
	List(ctx context.Context) ([]dao.StaffUser, error)
	Update(ctx context.Context, staff dao.StaffUser) (dao.StaffUser, error)
	Delete(ctx context.Context, id uint) error
}

type StaffRepository struct {
	dao StaffDAO
}

func NewStaffRepository(dao StaffDAO) *StaffRepository {
	return &StaffRepository{
		dao: dao,
	}
}

func (r *StaffRepository) Create(ctx context.Context, staff domain.StaffUser) (domain.StaffUser, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(staff))
	if err != nil {
		return domain.StaffUser{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id uint) (domain.StaffUser, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.StaffUser{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (domain.StaffUser, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.StaffUser{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StaffRepository) List(ctx context.Context) ([]domain.StaffUser, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	result := make([]domain.StaffUser, len(found))
	for i, s := range found {
		result[i] = r.daoToDomain(s)
	}

	return result, nil
}

func (r *StaffRepository) Update(ctx context.Context, staff domain.StaffUser) (domain.StaffUser, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(staff))
	if err != nil {
		return domain.StaffUser{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StaffRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *StaffRepository) domainToDao(s domain.StaffUser) dao.StaffUser {
	return dao.StaffUser{
		ID:        s.ID,
		Email:     s.Email,
		Password:  s.Password,
		Name:      s.Name,
		Role:      string(s.Role),
		AvatarURL: s.AvatarURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (r *StaffRepository) daoToDomain(s dao.StaffUser) domain.StaffUser {
	return domain.StaffUser{
		ID:        s.ID,
		Email:     s.Email,
		Password:  s.Password,
		Name:      s.Name,
		Role:      domain.Role(s.Role),
		AvatarURL: s.AvatarURL,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
