package middlewares

import (
	"strings"

	"pos-backend/entity"
	"pos-backend/pkg/resp"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	msgAccessDenied = "Access denied"
	msgForbidden    = "Forbidden"
)

// AuthMiddleware checks the bearer token and, when roles are given, that the caller
// holds one of them.
func AuthMiddleware(secret string, roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, msgAccessDenied)
			return
		}
		authenticate(c, strings.TrimPrefix(h, "Bearer "), secret, roles)
	}
}

func authenticate(c *gin.Context, tokenStr, secret string, roles []entity.Role) {
	if tokenStr == "" {
		resp.Unauthorized(c, msgAccessDenied)
		return
	}
	claims, role, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		resp.Unauthorized(c, msgAccessDenied)
		return
	}

	c.Set(utils.CtxUserID, claims.UserID)
	c.Set(utils.CtxRole, role)

	if len(roles) > 0 && !hasRole(roles, role) {
		resp.Forbidden(c, msgForbidden)
		return
	}
	c.Next()
}

func hasRole(allowed []entity.Role, role entity.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
