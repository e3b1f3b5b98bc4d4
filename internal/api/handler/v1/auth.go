package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubverd/pos-api/internal/api/handler/v1/request"
	"github.com/clubverd/pos-api/internal/api/handler/v1/response"
	"github.com/clubverd/pos-api/internal/config"
	"github.com/clubverd/pos-api/internal/domain"
	"github.com/clubverd/pos-api/internal/pkg/jwthelper"
	"github.com/clubverd/pos-api/internal/service"
)

const tokenTTL = 12 * time.Hour

type AuthService interface {
	Signup(ctx context.Context, staff domain.StaffUser) (domain.StaffUser, error)
	Login(ctx context.Context, email, password string) (domain.StaffUser, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login a staff user
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	staff, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrStaffNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken(h.conf.JWTSigningKey, staff.ID, string(staff.Role), tokenTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		Staff: response.NewStaff(staff),
	})
}

// HandleSignup godoc
// @Summary      Create a new staff user (admin only)
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupStaffRequest true "request body"
// @Success      201      {object}   response.StaffResponse
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	if _, _, ok := requireCapability(ctx, domain.CapManageStaff); !ok {
		return
	}

	req := request.SignupStaffRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	staff, err := h.svc.Signup(ctx.Request.Context(), domain.StaffUser{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      domain.Role(req.Role),
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrStaffEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrStaffEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewStaff(staff))
}
