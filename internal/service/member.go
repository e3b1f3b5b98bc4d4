package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/repository"
)

var ErrMemberDocExists = repository.ErrMemberDocExists

type MemberRepository interface {
	Create(ctx context.Context, member domain.Member) (domain.Member, error)
	FindByID(ctx context.Context, id uint) (domain.Member, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Count(ctx context.Context) (int64, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

type MemberService struct {
	repo MemberRepository
}

func NewMemberService(repo MemberRepository) *MemberService {
	return &MemberService{
		repo: repo,
	}
}

func (s *MemberService) Register(ctx context.Context, member domain.Member) (domain.Member, error) {
	member.JoinedAt = time.Now()
	member.Active = true

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *MemberService) GetMember(ctx context.Context, id uint) (domain.Member, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return member, nil
}

func (s *MemberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return members, nil
}

// SearchMembers backs the register's member picker.
func (s *MemberService) SearchMembers(ctx context.Context, query string, limit int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 5
	}

	members, err := s.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.Search -> %w", err)
	}

	return members, nil
}

func (s *MemberService) SetActive(ctx context.Context, id uint, active bool) (domain.Member, error) {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.SetActive -> %w", err)
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Member{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return member, nil
}
