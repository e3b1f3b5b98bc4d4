package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/clubverd/pos-api/internal/api/handler/v1/request"
	"github.com/clubverd/pos-api/internal/api/handler/v1/response"
	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/service"
)

type CartSessionService interface {
	SelectMember(ctx context.Context, staffID, memberID uint) (domain.Cart, error)
	AddProduct(ctx context.Context, staffID, productID uint) (domain.Cart, error)
	SetQuantity(ctx context.Context, staffID, productID uint, quantity decimal.Decimal) (domain.Cart, error)
	RemoveProduct(staffID, productID uint) (domain.Cart, error)
	Get(staffID uint) (domain.Cart, error)
	Clear(staffID uint)
}

type CheckoutService interface {
	Checkout(ctx context.Context, memberID uint, lines []domain.CartLine, statedTotal decimal.Decimal) (domain.Transaction, error)
}

type PosHandler struct {
	cartSvc CartSessionService
	posSvc  CheckoutService
}

func NewPosHandler(cartSvc CartSessionService, posSvc CheckoutService) *PosHandler {
	return &PosHandler{
		cartSvc: cartSvc,
		posSvc:  posSvc,
	}
}

// HandleSelectMember godoc
// @Summary      Bind a member to the till session, starting an empty cart
// @Tags         pos
// @Produce      json
// @Param        request   body      request.SelectMemberRequest true "request body"
// @Success      200  {object}  response.CartResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /pos/cart/member [put]
func (h *PosHandler) HandleSelectMember(ctx *gin.Context) {
	staffID, _, ok := requireCapability(ctx, domain.CapUsePOS)
	if !ok {
		return
	}

	req := request.SelectMemberRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	cart, err := h.cartSvc.SelectMember(ctx.Request.Context(), staffID, req.MemberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", req.MemberID))

			return
		}
		if errors.Is(err, service.ErrMemberInactive) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrMemberInactive))

			return
		}

		err = fmt.Errorf("v1.HandleSelectMember -> h.cartSvc.SelectMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewCart(&cart))
}

// HandleGetCart godoc
// @Summary      Get the till session's open cart
// @Tags         pos
// @Produce      json
// @Success      200  {object}  response.CartResponse
// @Failure      409  {object}  response.Err
// @Security     BearerAuth
// @Router       /pos/cart [get]
func (h *PosHandler) HandleGetCart(ctx *gin.Context) {
	staffID, _, ok := requireCapability(ctx, domain.CapUsePOS)
	if !ok {
		return
	}

	cart, err := h.cartSvc.Get(staffID)
	if err != nil {
		response.RenderErr(ctx, response.ErrConflict(service.ErrNoMemberSelected))

		return
	}

	ctx.JSON(http.StatusOK, response.NewCart(&cart))
}

// HandleAddLine godoc
// @Summary      Add one unit of a product to the cart
// @Description  Adding a product already in the cart bumps its quantity by
// @Description  one; the line keeps the price captured when it was first
// @Description  added.
// @Tags         pos
// @Produce      json
// @Param        request   body      request.AddLineRequest true "request body"
// @Success      200  {object}  response.CartResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /pos/cart/lines [post]
func (h *PosHandler) HandleAddLine(ctx *gin.Context) {
	staffID, _, ok := requireCapability(ctx, domain.CapUsePOS)
	if !ok {
		return
	}

	req := request.AddLineRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	cart, err := h.cartSvc.AddProduct(ctx.Request.Context(), staffID, req.ProductID)
	if err != nil {
		h.renderCartErr(ctx, err, req.ProductID)

		return
	}

	ctx.JSON(http.StatusOK, response.NewCart(&cart))
}

// HandleSetQuantity godoc
// @Summary      Set the quantity of a cart line
// @Description  Zero or negative removes the line. A quantity above current
// @Description  stock is refused and the line keeps its previous value.
// @Tags         pos
// @Produce      json
// @Param        productID   path      int  true  "product ID"
// @Param        request     body      request.SetQuantityRequest true "request body"
// @Success      200  {object}  response.CartResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /pos/cart/lines/{productID} [put]
func (h *PosHandler) HandleSetQuantity(ctx *gin.Context) {
	staffID, _, ok := requireCapability(ctx, domain.CapUsePOS)
	if !ok {
		return
	}

	productID, ok := h.cartProductIDFromPath(ctx)
	if !ok {
		return
	}

	req := request.SetQuantityRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	cart, err := h.cartSvc.SetQuantity(ctx.Request.Context(), staffID, productID, req.Quantity)
	if err != nil {
		h.renderCartErr(ctx, err, productID)

		return
	}

	ctx.JSON(http.StatusOK, response.NewCart(&cart))
}

// HandleRemoveLine godoc
// @Summary      Remove a product from the cart
// @Tags         pos
// @Produce      json
// @Param        productID   path      int  true  "product ID"
// @Success      200  {object}  response.CartResponse
// @Failure      409  {object}  response.Err
// @Security     BearerAuth
// @Router       /pos/cart/lines/{productID} [delete]
func (h *PosHandler) HandleRemoveLine(ctx *gin.Context) {
	staffID, _, ok := requireCapability(ctx, domain.CapUsePOS)
	if !ok {
		return
	}

	productID, ok := h.cartProductIDFromPath(ctx)
	if !ok {
		return
	}

	cart, err := h.cartSvc.RemoveProduct(staffID, productID)
	if err != nil {
		response.RenderErr(ctx, response.ErrConflict(service.ErrNoMemberSelected))

		return
	}

	ctx.JSON(http.StatusOK, response.NewCart(&cart))
}

// HandleClearCart godoc
// @Summary      Abandon the till session's cart
// @Tags         pos
// @Success      204  "no content"
// @Security     BearerAuth
// @Router       /pos/cart [delete]
func (h *PosHandler) HandleClearCart(ctx *gin.Context) {
	staffID, _, ok := requireCapability(ctx, domain.CapUsePOS)
	if !ok {
		return
	}

	h.cartSvc.Clear(staffID)

	ctx.Status(http.StatusNoContent)
}

// HandleCheckout godoc
// @Summary      Commit the cart: debit wallet, decrement stock, append ledger entry
// @Description  The request carries the total the till displayed; the engine
// @Description  recomputes the cart total and refuses to commit on mismatch.
// @Description  On success the session cart is cleared and the PURCHASE
// @Description  ledger entry is returned as the receipt.
// @Tags         pos
// @Produce      json
// @Param        request   body      request.CheckoutRequest true "request body"
// @Success      201  {object}  response.TransactionResponse
// @Failure      400  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /pos/checkout [post]
func (h *PosHandler) HandleCheckout(ctx *gin.Context) {
	staffID, _, ok := requireCapability(ctx, domain.CapUsePOS)
	if !ok {
		return
	}

	req := request.CheckoutRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	cart, err := h.cartSvc.Get(staffID)
	if err != nil {
		response.RenderErr(ctx, response.ErrConflict(service.ErrNoMemberSelected))

		return
	}

	tx, err := h.posSvc.Checkout(ctx.Request.Context(), cart.MemberID, cart.Lines, req.Total)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrEmptyCart))
		case errors.Is(err, service.ErrTotalMismatch):
			response.RenderErr(ctx, response.ErrConflict(service.ErrTotalMismatch))
		case errors.Is(err, service.ErrInsufficientBalance):
			response.RenderErr(ctx, response.ErrConflict(service.ErrInsufficientBalance))
		case errors.Is(err, service.ErrInsufficientStock):
			response.RenderErr(ctx, response.ErrConflict(service.ErrInsufficientStock))
		case errors.Is(err, service.ErrUnknownProduct):
			response.RenderErr(ctx, response.ErrConflict(service.ErrUnknownProduct))
		case errors.Is(err, service.ErrMemberNotFound):
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", cart.MemberID))
		default:
			err = fmt.Errorf("v1.HandleCheckout -> h.posSvc.Checkout -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	// The cart is gone only once the commit stuck.
	h.cartSvc.Clear(staffID)

	ctx.JSON(http.StatusCreated, response.NewTransaction(tx))
}

func (h *PosHandler) renderCartErr(ctx *gin.Context, err error, productID uint) {
	switch {
	case errors.Is(err, service.ErrNoMemberSelected):
		response.RenderErr(ctx, response.ErrConflict(service.ErrNoMemberSelected))
	case errors.Is(err, service.ErrUnknownProduct):
		response.RenderErr(ctx, response.ErrNotFound("product", "ID", productID))
	case errors.Is(err, domain.ErrInsufficientStock):
		response.RenderErr(ctx, response.ErrConflict(domain.ErrInsufficientStock))
	default:
		err = fmt.Errorf("v1.PosHandler -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func (h *PosHandler) cartProductIDFromPath(ctx *gin.Context) (uint, bool) {
	rawID := ctx.Param("productID")

	productID := cast.ToUint(rawID)
	if productID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid product ID %q", rawID)))

		return 0, false
	}

	return productID, true
}
