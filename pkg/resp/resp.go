package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every failure body is a single {"error": msg} object.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}
func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, msg)
}
func Forbidden(c *gin.Context, msg string) {
	Error(c, http.StatusForbidden, msg)
}
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}
func Conflict(c *gin.Context, msg string) {
	Error(c, http.StatusConflict, msg)
}
func ServerError(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, msg)
}
