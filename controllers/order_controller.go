package controllers

import (
	"context"
	"errors"
	"fmt"

	"pos-backend/entity"
	"pos-backend/pkg/logger"
	"pos-backend/pkg/resp"
	"pos-backend/services"
	"pos-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	svc *services.OrderService
	log *logger.Logger
}

func NewOrderController(svc *services.OrderService, log *logger.Logger) *OrderController {
	return &OrderController{svc: svc, log: log}
}

// GET /api/orders (scoped by the caller's role)
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.svc.List(c.Request.Context(), utils.CurrentRole(c))
	if err != nil {
		failure(c, oc.log, "list_orders", err, "Order", "An error occurred while fetching the orders")
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	o, err := oc.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failure(c, oc.log, "get_order", err, "Order", "An error occurred while fetching the order")
		return
	}
	resp.OK(c, o)
}

// GET /api/orders/:id/items
func (oc *OrderController) Items(c *gin.Context) {
	items, err := oc.svc.Items(c.Request.Context(), c.Param("id"))
	if err != nil {
		failure(c, oc.log, "get_order_items", err, "Order", "An error occurred while fetching the order items")
		return
	}
	resp.OK(c, items)
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, MsgRequiredFields)
		return
	}

	o, err := oc.svc.Create(c.Request.Context(), utils.CurrentUserID(c), &req)
	if err != nil {
		failure(c, oc.log, "create_order", err, "Order", "An error occurred while create the order")
		return
	}
	oc.log.Info("create_order", utils.RequestID(c), "order created: "+o.ID)
	resp.OK(c, o)
}

// ----- Status actions -----

type transitionFunc func(ctx context.Context, id string) (*entity.Order, error)

// PUT /api/orders/:id/prepare
func (oc *OrderController) Prepare(c *gin.Context) {
	oc.transition(c, oc.svc.Prepare, "prepare", "preparing")
}

// PUT /api/orders/:id/finish
func (oc *OrderController) Finish(c *gin.Context) {
	oc.transition(c, oc.svc.Finish, "finish", "finishing")
}

// PUT /api/orders/:id/deliver
func (oc *OrderController) Deliver(c *gin.Context) {
	oc.transition(c, oc.svc.Deliver, "deliver", "delivering")
}

func (oc *OrderController) transition(c *gin.Context, fn transitionFunc, verb, gerund string) {
	o, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		var te *services.TransitionError
		if errors.As(err, &te) {
			resp.Conflict(c, fmt.Sprintf("Cannot %s an order with status %s", verb, te.From))
			return
		}
		failure(c, oc.log, verb+"_order", err, "Order", "An error occurred while "+gerund+" the order")
		return
	}
	oc.log.Info(verb+"_order", utils.RequestID(c), "order "+o.ID+" is now "+o.Status.String())
	resp.OK(c, o)
}
