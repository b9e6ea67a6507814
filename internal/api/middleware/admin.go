package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduka/eduka-api/internal/domain"
)

type AdminUserReader interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
}

// RequireAdmin must run after VerifyJWT; it rejects non-admin callers.
func RequireAdmin(users AdminUserReader) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, err := users.FindByID(ctx.Request.Context(), GetUserID(ctx))
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)

			return
		}

		if !user.IsAdmin() {
			ctx.AbortWithStatus(http.StatusForbidden)

			return
		}

		ctx.Next()
	}
}
