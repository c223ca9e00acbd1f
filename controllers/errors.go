package controllers

import (
	"errors"

	"pos-backend/entity"
	"pos-backend/pkg/logger"
	"pos-backend/pkg/resp"
	"pos-backend/services"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

const (
	MsgRequiredFields = "Please fill in the required fields"
	MsgInvalidID      = "ID not valid"
)

// failure maps a service error onto the HTTP response. subject names the entity
// for "<Subject> not find"; serverMsg is what a 500 says.
func failure(c *gin.Context, log *logger.Logger, action string, err error, subject, serverMsg string) {
	var miss *services.CatalogMissError
	switch {
	case errors.Is(err, services.ErrInvalidID):
		resp.BadRequest(c, MsgInvalidID)
	case errors.As(err, &miss):
		name := "Product"
		if miss.Kind == entity.ItemKindMenu {
			name = "Menu"
		}
		resp.NotFound(c, name+" not find")
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, subject+" not find")
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, MsgRequiredFields)
	default:
		log.Error(action, utils.RequestID(c), serverMsg, err)
		resp.ServerError(c, serverMsg)
	}
}
