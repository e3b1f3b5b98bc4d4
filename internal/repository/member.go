package repository

import (
	"context"
	"fmt"

	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/repository/dao"
)

var (
	ErrMemberNotFound  = dao.ErrMemberNotFound
	ErrMemberDocExists = dao.ErrMemberDocExists
)

type MemberDAO interface {
	Insert(ctx context.Context, member dao.Member) (dao.Member, error)
	FindByID(ctx context.Context, id uint) (dao.Member, error)
	Search(ctx context.Context, query string, limit int) ([]dao.Member, error)
	List(ctx context.Context) ([]dao.Member, error)
	Count(ctx context.Context) (int64, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

type MemberRepository struct {
	dao MemberDAO
}

func NewMemberRepository(dao MemberDAO) *MemberRepository {
	return &MemberRepository{
		dao: dao,
	}
}

func (r *MemberRepository) Create(ctx context.Context, member domain.Member) (domain.Member, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(member))
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id uint) (domain.Member, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MemberRepository) Search(ctx context.Context, query string, limit int) ([]domain.Member, error) {
	found, err := r.dao.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.Search -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *MemberRepository) List(ctx context.Context) ([]domain.Member, error) {
	found, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *MemberRepository) SetActive(ctx context.Context, id uint, active bool) error {
	if err := r.dao.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("r.dao.SetActive -> %w", err)
	}

	return nil
}

func (r *MemberRepository) domainToDao(m domain.Member) dao.Member {
	return dao.Member{
		ID:          m.ID,
		FullName:    m.FullName,
		DocType:     string(m.DocType),
		DocNumber:   m.DocNumber,
		PhotoURL:    m.PhotoURL,
		DocPhotoURL: m.DocPhotoURL,
		Balance:     m.Balance,
		JoinedAt:    m.JoinedAt,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *MemberRepository) daoToDomain(m dao.Member) domain.Member {
	return domain.Member{
		ID:          m.ID,
		FullName:    m.FullName,
		DocType:     domain.DocType(m.DocType),
		DocNumber:   m.DocNumber,
		PhotoURL:    m.PhotoURL,
		DocPhotoURL: m.DocPhotoURL,
		Balance:     m.Balance,
		JoinedAt:    m.JoinedAt,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *MemberRepository) daosToDomain(members []dao.Member) []domain.Member {
	result := make([]domain.Member, len(members))
	for i, m := range members {
		result[i] = r.daoToDomain(m)
	}

	return result
}
