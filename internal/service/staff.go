package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/repository"
)

var ErrLastStaffUser = repository.ErrLastStaffUser

type StaffRepository interface {
	FindByID(ctx context.Context, id uint) (domain.StaffUser, error)
	List(ctx context.Context) ([]domain.StaffUser, error)
	Update(ctx context.Context, staff domain.StaffUser) (domain.StaffUser, error)
	Delete(ctx context.Context, id uint) error
}

type StaffService struct {
	repo StaffRepository
}

func NewStaffService(repo StaffRepository) *StaffService {
	return &StaffService{
		repo: repo,
	}
}

func (s *StaffService) GetStaff(ctx context.Context, id uint) (domain.StaffUser, error) {
	staff, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.StaffUser{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return staff, nil
}

func (s *StaffService) ListStaff(ctx context.Context) ([]domain.StaffUser, error) {
	staff, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return staff, nil
}

// UpdateStaff rehashes the password only when a new one was supplied; an
// empty password leaves the stored hash alone.
func (s *StaffService) UpdateStaff(ctx context.Context, staff domain.StaffUser) (domain.StaffUser, error) {
	if staff.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(staff.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.StaffUser{}, err
		}
		staff.Password = string(hash)
	}

	updated, err := s.repo.Update(ctx, staff)
	if err != nil {
		return domain.StaffUser{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
