package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/clubverd/pos-api/internal/domain"
)

var (
	ErrNoMemberSelected = domain.ErrNoMemberSelected
	ErrMemberInactive   = errors.New("member is not active")
)

type CartMemberRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Member, error)
}

type CartCatalogRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Product, error)
}

// CartService keeps one open cart per staff session, in memory only. A cart
// exists from the moment a member is selected until checkout or member
// switch; nothing here reserves stock or touches the ledger.
type CartService struct {
	memberRepo  CartMemberRepository
	catalogRepo CartCatalogRepository

	mu    sync.Mutex
	carts map[uint]*domain.Cart // keyed by staff id
}

func NewCartService(memberRepo CartMemberRepository, catalogRepo CartCatalogRepository) *CartService {
	return &CartService{
		memberRepo:  memberRepo,
		catalogRepo: catalogRepo,
		carts:       make(map[uint]*domain.Cart),
	}
}

// SelectMember binds a member to the staff session, discarding any cart that
// was open for a previous member.
func (s *CartService) SelectMember(ctx context.Context, staffID, memberID uint) (domain.Cart, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("s.memberRepo.FindByID -> %w", err)
	}
	if !member.Active {
		return domain.Cart{}, ErrMemberInactive
	}

	cart := domain.NewCart(member.ID)

	s.mu.Lock()
	s.carts[staffID] = cart
	s.mu.Unlock()

	return snapshot(cart), nil
}

func (s *CartService) AddProduct(ctx context.Context, staffID, productID uint) (domain.Cart, error) {
	product, err := s.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("s.catalogRepo.FindByID -> %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[staffID]
	if !ok {
		return domain.Cart{}, ErrNoMemberSelected
	}

	if err := cart.AddLine(product); err != nil {
		return domain.Cart{}, err
	}

	return snapshot(cart), nil
}

// SetQuantity checks the requested quantity against current catalog stock,
// not against any reservation; two open carts can both pass here and the
// loser finds out at commit.
func (s *CartService) SetQuantity(ctx context.Context, staffID, productID uint, quantity decimal.Decimal) (domain.Cart, error) {
	product, err := s.catalogRepo.FindByID(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("s.catalogRepo.FindByID -> %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[staffID]
	if !ok {
		return domain.Cart{}, ErrNoMemberSelected
	}

	if err := cart.SetQuantity(productID, quantity, product.Stock); err != nil {
		return domain.Cart{}, err
	}

	return snapshot(cart), nil
}

func (s *CartService) RemoveProduct(staffID, productID uint) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[staffID]
	if !ok {
		return domain.Cart{}, ErrNoMemberSelected
	}

	cart.RemoveLine(productID)

	return snapshot(cart), nil
}

func (s *CartService) Get(staffID uint) (domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[staffID]
	if !ok {
		return domain.Cart{}, ErrNoMemberSelected
	}

	return snapshot(cart), nil
}

// Clear drops the session cart, e.g. after a successful checkout.
func (s *CartService) Clear(staffID uint) {
	s.mu.Lock()
	delete(s.carts, staffID)
	s.mu.Unlock()
}

// snapshot copies the cart so callers never share line slices with the
// session state guarded by the mutex.
func snapshot(cart *domain.Cart) domain.Cart {
	copied := domain.Cart{
		MemberID: cart.MemberID,
		Lines:    make([]domain.CartLine, len(cart.Lines)),
	}
	copy(copied.Lines, cart.Lines)

	return copied
}
