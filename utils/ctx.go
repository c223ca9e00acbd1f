package utils

import (
	"pos-backend/entity"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID    = "userId"
	CtxRole      = "role"
	CtxRequestID = "requestId"
)

func CurrentUserID(c *gin.Context) string {
	return c.GetString(CtxUserID)
}

func CurrentRole(c *gin.Context) entity.Role {
	if v, ok := c.Get(CtxRole); ok {
		if r, ok := v.(entity.Role); ok {
			return r
		}
	}
	return ""
}

func RequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}
