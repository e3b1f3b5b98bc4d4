package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubverd/pos-api/internal/api/middleware"
	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/service"
)

type fixtureCartSvc struct {
	cart    domain.Cart
	getErr  error
	cleared []uint
}

func (f *fixtureCartSvc) SelectMember(_ context.Context, _, memberID uint) (domain.Cart, error) {
	return domain.Cart{MemberID: memberID}, nil
}

func (f *fixtureCartSvc) AddProduct(_ context.Context, _, _ uint) (domain.Cart, error) {
	return f.cart, nil
}

func (f *fixtureCartSvc) SetQuantity(_ context.Context, _, _ uint, _ decimal.Decimal) (domain.Cart, error) {
	return f.cart, nil
}

func (f *fixtureCartSvc) RemoveProduct(_, _ uint) (domain.Cart, error) {
	return f.cart, nil
}

func (f *fixtureCartSvc) Get(_ uint) (domain.Cart, error) {
	if f.getErr != nil {
		return domain.Cart{}, f.getErr
	}

	return f.cart, nil
}

func (f *fixtureCartSvc) Clear(staffID uint) {
	f.cleared = append(f.cleared, staffID)
}

type fixtureCheckoutSvc struct {
	err error
}

func (f *fixtureCheckoutSvc) Checkout(_ context.Context, memberID uint, lines []domain.CartLine, statedTotal decimal.Decimal) (domain.Transaction, error) {
	if f.err != nil {
		return domain.Transaction{}, f.err
	}

	return domain.Transaction{
		ID:       1,
		MemberID: memberID,
		Kind:     domain.KindPurchase,
		Amount:   statedTotal,
		Items:    lines,
	}, nil
}

func newCheckoutRouter(role domain.Role, cartSvc *fixtureCartSvc, posSvc *fixtureCheckoutSvc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.CtxKeyStaffID, uint(42))
		ctx.Set(middleware.CtxKeyStaffRole, string(role))
	})

	handler := NewPosHandler(cartSvc, posSvc)
	router.POST("/pos/checkout", handler.HandleCheckout)

	return router
}

func postCheckout(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/pos/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func testCart() domain.Cart {
	return domain.Cart{
		MemberID: 7,
		Lines: []domain.CartLine{
			{ProductID: 1, ProductName: "Purple Haze", Quantity: decimal.NewFromInt(2), PriceAtSale: decimal.RequireFromString("12.00"), Subtotal: decimal.RequireFromString("24.00")},
		},
	}
}

func TestPosHandler_HandleCheckout(t *testing.T) {
	t.Run("success clears the session cart", func(t *testing.T) {
		cartSvc := &fixtureCartSvc{cart: testCart()}
		router := newCheckoutRouter(domain.RoleSales, cartSvc, &fixtureCheckoutSvc{})

		recorder := postCheckout(router, `{"total":"24.00"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"kind":"PURCHASE"`)
		require.Len(t, cartSvc.cleared, 1)
		assert.Equal(t, uint(42), cartSvc.cleared[0])
	})

	t.Run("inventory role may not use the till", func(t *testing.T) {
		cartSvc := &fixtureCartSvc{cart: testCart()}
		router := newCheckoutRouter(domain.RoleInventory, cartSvc, &fixtureCheckoutSvc{})

		recorder := postCheckout(router, `{"total":"24.00"}`)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("no member selected", func(t *testing.T) {
		cartSvc := &fixtureCartSvc{getErr: service.ErrNoMemberSelected}
		router := newCheckoutRouter(domain.RoleSales, cartSvc, &fixtureCheckoutSvc{})

		recorder := postCheckout(router, `{"total":"24.00"}`)

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("business rejections map to conflict and keep the cart", func(t *testing.T) {
		rejections := []error{
			service.ErrEmptyCart,
			service.ErrTotalMismatch,
			service.ErrInsufficientBalance,
			service.ErrInsufficientStock,
			service.ErrUnknownProduct,
		}

		for _, rejection := range rejections {
			cartSvc := &fixtureCartSvc{cart: testCart()}
			router := newCheckoutRouter(domain.RoleSales, cartSvc, &fixtureCheckoutSvc{err: rejection})

			recorder := postCheckout(router, `{"total":"24.00"}`)

			if assert.Containsf(t, []int{http.StatusBadRequest, http.StatusConflict}, recorder.Code, "error %v", rejection) {
				assert.Emptyf(t, cartSvc.cleared, "cart must survive a failed checkout (%v)", rejection)
			}
		}
	})

	t.Run("negative total is a bad request", func(t *testing.T) {
		cartSvc := &fixtureCartSvc{cart: testCart()}
		router := newCheckoutRouter(domain.RoleSales, cartSvc, &fixtureCheckoutSvc{})

		recorder := postCheckout(router, `{"total":"-1"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
