package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/clubverd/pos-api/internal/api/handler/v1/request"
	"github.com/clubverd/pos-api/internal/api/handler/v1/response"
	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/service"
)

type MemberService interface {
	Register(ctx context.Context, member domain.Member) (domain.Member, error)
	GetMember(ctx context.Context, id uint) (domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
	SearchMembers(ctx context.Context, query string, limit int) ([]domain.Member, error)
	SetActive(ctx context.Context, id uint, active bool) (domain.Member, error)
}

type WalletService interface {
	Deposit(ctx context.Context, memberID uint, rawAmount string) (domain.Transaction, error)
}

type MemberLedgerService interface {
	MemberTransactions(ctx context.Context, memberID uint) ([]domain.Transaction, error)
}

type MemberHandler struct {
	svc       MemberService
	walletSvc WalletService
	ledgerSvc MemberLedgerService
}

func NewMemberHandler(svc MemberService, walletSvc WalletService, ledgerSvc MemberLedgerService) *MemberHandler {
	return &MemberHandler{
		svc:       svc,
		walletSvc: walletSvc,
		ledgerSvc: ledgerSvc,
	}
}

// HandleRegisterMember godoc
// @Summary      Register a new club member
// @Tags         members
// @Produce      json
// @Param        request   body      request.RegisterMemberRequest true "request body"
// @Success      201  {object}  response.MemberResponse
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /members [post]
func (h *MemberHandler) HandleRegisterMember(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageMembers); !ok {
		return
	}

	req := request.RegisterMemberRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	member, err := h.svc.Register(ctx.Request.Context(), domain.Member{
		FullName:    req.FullName,
		DocType:     domain.DocType(req.DocType),
		DocNumber:   req.DocNumber,
		PhotoURL:    req.PhotoURL,
		DocPhotoURL: req.DocPhotoURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrMemberDocExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrMemberDocExists))

			return
		}

		err = fmt.Errorf("v1.HandleRegisterMember -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewMember(member))
}

// HandleListMembers godoc
// @Summary      List all members
// @Tags         members
// @Produce      json
// @Success      200  {object}  []response.MemberResponse
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /members [get]
func (h *MemberHandler) HandleListMembers(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageMembers); !ok {
		return
	}

	members, err := h.svc.ListMembers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListMembers -> h.svc.ListMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewMembers(members))
}

// HandleSearchMembers godoc
// @Summary      Search members by name or document number
// @Tags         members
// @Produce      json
// @Param        q      query     string  true   "search text"
// @Param        limit  query     int     false  "max results (default 5)"
// @Success      200  {object}  []response.MemberResponse
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /members/search [get]
func (h *MemberHandler) HandleSearchMembers(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageMembers); !ok {
		return
	}

	query := ctx.Query("q")
	limit := cast.ToInt(ctx.Query("limit"))

	members, err := h.svc.SearchMembers(ctx.Request.Context(), query, limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchMembers -> h.svc.SearchMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewMembers(members))
}

// HandleGetMember godoc
// @Summary      Get a member by ID
// @Tags         members
// @Produce      json
// @Param        memberID   path      int  true  "member ID"
// @Success      200  {object}  response.MemberResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /members/{memberID} [get]
func (h *MemberHandler) HandleGetMember(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageMembers); !ok {
		return
	}

	memberID, ok := h.memberIDFromPath(ctx)
	if !ok {
		return
	}

	member, err := h.svc.GetMember(ctx.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", memberID))

			return
		}

		err = fmt.Errorf("v1.HandleGetMember -> h.svc.GetMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewMember(member))
}

// HandleSetMemberActive godoc
// @Summary      Activate or deactivate a member
// @Tags         members
// @Produce      json
// @Param        memberID   path      int  true  "member ID"
// @Param        request    body      request.SetMemberActiveRequest true "request body"
// @Success      200  {object}  response.MemberResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /members/{memberID}/active [patch]
func (h *MemberHandler) HandleSetMemberActive(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageMembers); !ok {
		return
	}

	memberID, ok := h.memberIDFromPath(ctx)
	if !ok {
		return
	}

	req := request.SetMemberActiveRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	member, err := h.svc.SetActive(ctx.Request.Context(), memberID, *req.Active)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", memberID))

			return
		}

		err = fmt.Errorf("v1.HandleSetMemberActive -> h.svc.SetActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewMember(member))
}

// HandleDeposit godoc
// @Summary      Top up a member's prepaid balance
// @Tags         members
// @Produce      json
// @Param        memberID   path      int  true  "member ID"
// @Param        request    body      request.DepositRequest true "request body"
// @Success      201  {object}  response.TransactionResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /members/{memberID}/deposit [post]
func (h *MemberHandler) HandleDeposit(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapUsePOS); !ok {
		return
	}

	memberID, ok := h.memberIDFromPath(ctx)
	if !ok {
		return
	}

	req := request.DepositRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tx, err := h.walletSvc.Deposit(ctx.Request.Context(), memberID, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidAmount))

			return
		}
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", memberID))

			return
		}

		err = fmt.Errorf("v1.HandleDeposit -> h.walletSvc.Deposit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewTransaction(tx))
}

// HandleMemberTransactions godoc
// @Summary      List a member's ledger entries, newest first
// @Tags         members
// @Produce      json
// @Param        memberID   path      int  true  "member ID"
// @Success      200  {object}  []response.TransactionResponse
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /members/{memberID}/transactions [get]
func (h *MemberHandler) HandleMemberTransactions(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageMembers); !ok {
		return
	}

	memberID, ok := h.memberIDFromPath(ctx)
	if !ok {
		return
	}

	txs, err := h.ledgerSvc.MemberTransactions(ctx.Request.Context(), memberID)
	if err != nil {
		err = fmt.Errorf("v1.HandleMemberTransactions -> h.ledgerSvc.MemberTransactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewTransactions(txs))
}

func (h *MemberHandler) memberIDFromPath(ctx *gin.Context) (uint, bool) {
	rawID := ctx.Param("memberID")

	memberID := cast.ToUint(rawID)
	if memberID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid member ID %q", rawID)))

		return 0, false
	}

	return memberID, true
}
