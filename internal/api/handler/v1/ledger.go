package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/clubverd/pos-api/internal/api/handler/v1/response"
	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/service"
)

type LedgerService interface {
	GetTransaction(ctx context.Context, id int64) (domain.Transaction, error)
	RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
}

type DashboardService interface {
	Stats(ctx context.Context, includeFinancials bool) (service.DashboardStats, error)
}

type LedgerHandler struct {
	svc          LedgerService
	dashboardSvc DashboardService
}

func NewLedgerHandler(svc LedgerService, dashboardSvc DashboardService) *LedgerHandler {
	return &LedgerHandler{
		svc:          svc,
		dashboardSvc: dashboardSvc,
	}
}

// HandleRecentTransactions godoc
// @Summary      List recent ledger entries, newest first
// @Tags         ledger
// @Produce      json
// @Param        limit  query     int  false  "max results (default 20)"
// @Success      200  {object}  []response.TransactionResponse
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /transactions [get]
func (h *LedgerHandler) HandleRecentTransactions(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapSeeFinancials); !ok {
		return
	}

	limit := cast.ToInt(ctx.Query("limit"))

	txs, err := h.svc.RecentTransactions(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleRecentTransactions -> h.svc.RecentTransactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewTransactions(txs))
}

// HandleGetTransaction godoc
// @Summary      Get a ledger entry by ID
// @Tags         ledger
// @Produce      json
// @Param        transactionID   path      int  true  "transaction ID"
// @Success      200  {object}  response.TransactionResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /transactions/{transactionID} [get]
func (h *LedgerHandler) HandleGetTransaction(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapSeeFinancials); !ok {
		return
	}

	rawID := ctx.Param("transactionID")
	transactionID := cast.ToInt64(rawID)
	if transactionID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid transaction ID %q", rawID)))

		return
	}

	tx, err := h.svc.GetTransaction(ctx.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("transaction", "ID", transactionID))

			return
		}

		err = fmt.Errorf("v1.HandleGetTransaction -> h.svc.GetTransaction -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewTransaction(tx))
}

// HandleDashboard godoc
// @Summary      Club dashboard stats
// @Description  Financial figures are included only for roles that may see
// @Description  them; other roles get member and stock counts.
// @Tags         ledger
// @Produce      json
// @Success      200  {object}  service.DashboardStats
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *LedgerHandler) HandleDashboard(ctx *gin.Context) {
	_, role, ok := staffFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotPermitted))

		return
	}

	stats, err := h.dashboardSvc.Stats(ctx.Request.Context(), role.Can(domain.CapSeeFinancials))
	if err != nil {
		err = fmt.Errorf("v1.HandleDashboard -> h.dashboardSvc.Stats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, stats)
}
