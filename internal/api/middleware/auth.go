package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clubverd/pos-api/internal/api/handler/v1/response"
	"github.com/clubverd/pos-api/internal/pkg/jwthelper"
)

const (
	CtxKeyStaffID   = "staff_id"
	CtxKeyStaffRole = "staff_role"
)

var errMissingToken = errors.New("missing or malformed authorization header")

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))

			return
		}

		ctx.Set(CtxKeyStaffID, claims.StaffID)
		ctx.Set(CtxKeyStaffRole, claims.Role)

		ctx.Next()
	}
}
