package controllers

import (
	"pos-backend/pkg/logger"
	"pos-backend/pkg/resp"
	"pos-backend/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	svc *services.MenuService
	log *logger.Logger
}

func NewMenuController(svc *services.MenuService, log *logger.Logger) *MenuController {
	return &MenuController{svc: svc, log: log}
}

// GET /api/menus
func (mc *MenuController) List(c *gin.Context) {
	menus, err := mc.svc.List(c.Request.Context())
	if err != nil {
		failure(c, mc.log, "list_menus", err, "Menu", "An error occurred while fetching the menus")
		return
	}
	resp.OK(c, menus)
}

// GET /api/menus/:id
func (mc *MenuController) Get(c *gin.Context) {
	m, err := mc.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failure(c, mc.log, "get_menu", err, "Menu", "An error occurred while fetching the menu")
		return
	}
	resp.OK(c, m)
}

// POST /api/menus
func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, MsgRequiredFields)
		return
	}
	m, err := mc.svc.Create(c.Request.Context(), &in)
	if err != nil {
		failure(c, mc.log, "create_menu", err, "Menu", "An error occurred while create the menu")
		return
	}
	resp.OK(c, m)
}

// PUT /api/menus/:id
func (mc *MenuController) Update(c *gin.Context) {
	var in services.MenuInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, MsgRequiredFields)
		return
	}
	m, err := mc.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		failure(c, mc.log, "update_menu", err, "Menu", "An error occurred while edit the menu")
		return
	}
	resp.OK(c, m)
}

// DELETE /api/menus/:id
func (mc *MenuController) Delete(c *gin.Context) {
	if err := mc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failure(c, mc.log, "delete_menu", err, "Menu", "An error occurred while delete the menu")
		return
	}
	resp.OK(c, gin.H{"message": "Menu deleted"})
}
