package controllers

import (
	"pos-backend/pkg/logger"
	"pos-backend/pkg/resp"
	"pos-backend/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	svc *services.ProductService
	log *logger.Logger
}

func NewProductController(svc *services.ProductService, log *logger.Logger) *ProductController {
	return &ProductController{svc: svc, log: log}
}

// GET /api/products
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.svc.List(c.Request.Context())
	if err != nil {
		failure(c, pc.log, "list_products", err, "Product", "An error occurred while fetching the products")
		return
	}
	resp.OK(c, products)
}

// GET /api/products/:id
func (pc *ProductController) Get(c *gin.Context) {
	p, err := pc.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failure(c, pc.log, "get_product", err, "Product", "An error occurred while fetching the product")
		return
	}
	resp.OK(c, p)
}

// POST /api/products
func (pc *ProductController) Create(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, MsgRequiredFields)
		return
	}
	p, err := pc.svc.Create(c.Request.Context(), &in)
	if err != nil {
		failure(c, pc.log, "create_product", err, "Product", "An error occurred while create the product")
		return
	}
	resp.OK(c, p)
}

// PUT /api/products/:id
func (pc *ProductController) Update(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, MsgRequiredFields)
		return
	}
	p, err := pc.svc.Update(c.Request.Context(), c.Param("id"), &in)
	if err != nil {
		failure(c, pc.log, "update_product", err, "Product", "An error occurred while edit the product")
		return
	}
	resp.OK(c, p)
}

// DELETE /api/products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	if err := pc.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failure(c, pc.log, "delete_product", err, "Product", "An error occurred while delete the product")
		return
	}
	resp.OK(c, gin.H{"message": "Product deleted"})
}
