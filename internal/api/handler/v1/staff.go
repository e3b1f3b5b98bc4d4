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

type StaffService interface {
	GetStaff(ctx context.Context, id uint) (domain.StaffUser, error)
	ListStaff(ctx context.Context) ([]domain.StaffUser, error)
	UpdateStaff(ctx context.Context, staff domain.StaffUser) (domain.StaffUser, error)
	DeleteStaff(ctx context.Context, id uint) error
}

type StaffHandler struct {
	svc StaffService
}

func NewStaffHandler(svc StaffService) *StaffHandler {
	return &StaffHandler{
		svc: svc,
	}
}

// HandleListStaff godoc
// @Summary      List all staff users
// @Tags         staff
// @Produce      json
// @Success      200  {object}  []response.StaffResponse
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /staff [get]
func (h *StaffHandler) HandleListStaff(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageStaff); !ok {
		return
	}

	staff, err := h.svc.ListStaff(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListStaff -> h.svc.ListStaff -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewStaffList(staff))
}

// HandleGetStaff godoc
// @Summary      Get a staff user by ID
// @Tags         staff
// @Produce      json
// @Param        staffID   path      int  true  "staff ID"
// @Success      200  {object}  response.StaffResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /staff/{staffID} [get]
func (h *StaffHandler) HandleGetStaff(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageStaff); !ok {
		return
	}

	rawID := ctx.Param("staffID")
	staffID := cast.ToUint(rawID)
	if staffID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid staff ID %q", rawID)))

		return
	}

	staff, err := h.svc.GetStaff(ctx.Request.Context(), staffID)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("staff", "ID", staffID))

			return
		}

		err = fmt.Errorf("v1.HandleGetStaff -> h.svc.GetStaff -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewStaff(staff))
}

// HandleUpdateStaff godoc
// @Summary      Update a staff user
// @Tags         staff
// @Produce      json
// @Param        staffID   path      int  true  "staff ID"
// @Param        request   body      request.UpdateStaffRequest true "request body"
// @Success      200  {object}  response.StaffResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /staff/{staffID} [put]
func (h *StaffHandler) HandleUpdateStaff(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageStaff); !ok {
		return
	}

	rawID := ctx.Param("staffID")
	staffID := cast.ToUint(rawID)
	if staffID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid staff ID %q", rawID)))

		return
	}

	req := request.UpdateStaffRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	staff, err := h.svc.UpdateStaff(ctx.Request.Context(), domain.StaffUser{
		ID:        staffID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      domain.Role(req.Role),
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("staff", "ID", staffID))

			return
		}
		if errors.Is(err, service.ErrStaffEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrStaffEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateStaff -> h.svc.UpdateStaff -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewStaff(staff))
}

// HandleDeleteStaff godoc
// @Summary      Delete a staff user
// @Tags         staff
// @Produce      json
// @Param        staffID   path      int  true  "staff ID"
// @Success      204  "no content"
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerAuth
// @Router       /staff/{staffID} [delete]
func (h *StaffHandler) HandleDeleteStaff(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageStaff); !ok {
		return
	}

	rawID := ctx.Param("staffID")
	staffID := cast.ToUint(rawID)
	if staffID == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid staff ID %q", rawID)))

		return
	}

	if err := h.svc.DeleteStaff(ctx.Request.Context(), staffID); err != nil {
		if errors.Is(err, service.ErrStaffNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("staff", "ID", staffID))

			return
		}
		if errors.Is(err, service.ErrLastStaffUser) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrLastStaffUser))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteStaff -> h.svc.DeleteStaff -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
