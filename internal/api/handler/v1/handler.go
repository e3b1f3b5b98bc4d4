package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubverd/pos-api/internal/api/handler/v1/response"
	"github.com/clubverd/pos-api/internal/api/middleware"
	"github.com/clubverd/pos-api/internal/domain"
)

var errNotPermitted = errors.New("this action is not permitted for your role")

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// staffFromContext reads the identity the JWT middleware stored.
func staffFromContext(ctx *gin.Context) (uint, domain.Role, bool) {
	id, ok := ctx.Get(middleware.CtxKeyStaffID)
	if !ok {
		return 0, "", false
	}

	staffID, ok := id.(uint)
	if !ok {
		return 0, "", false
	}

	role, ok := ctx.Get(middleware.CtxKeyStaffRole)
	if !ok {
		return 0, "", false
	}

	roleStr, ok := role.(string)
	if !ok {
		return 0, "", false
	}

	return staffID, domain.Role(roleStr), true
}

// requireCapability renders a 403 and returns false when the caller's
// role does not grant the capability.
func requireCapability(ctx *gin.Context, c domain.Capability) (uint, domain.Role, bool) {
	staffID, role, ok := staffFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNotPermitted))

		return 0, "", false
	}

	if !role.Can(c) {
		response.RenderErr(ctx, response.ErrPermissionDenied(errNotPermitted))

		return 0, "", false
	}

	return staffID, role, true
}
