package middlewares

import (
	"strings"

	"pos-backend/entity"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware reads the token from ?token= first, since browsers cannot set
// headers on a websocket handshake, then falls back to the Authorization header.
func WSAuthMiddleware(secret string, roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		authenticate(c, tokenStr, secret, roles)
	}
}
