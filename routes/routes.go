package routes

import (
	"net/http"

	"pos-backend/configs"
	"pos-backend/controllers"
	"pos-backend/entity"
	"pos-backend/middlewares"
	"pos-backend/pkg/logger"
	"pos-backend/repository"
	"pos-backend/services"
	"pos-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps is what the HTTP layer needs from main. Hub may be nil, in which case
// order events are dropped and the websocket route is not mounted.
type Deps struct {
	DB     *gorm.DB
	Config *configs.Config
	Log    *logger.Logger
	Hub    *ws.OrderHub
}

// NewRouter builds the engine with the shared middleware chain and all routes.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(d.Log))
	r.Use(middlewares.CORSMiddleware())

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	cfg := d.Config
	auth := func(roles ...entity.Role) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}
	anyRole := []entity.Role{entity.RoleUser, entity.RolePreparer, entity.RoleAdmin}

	// Repositories
	orderRepo := repository.NewOrderRepository(d.DB)
	menuRepo := repository.NewMenuRepository(d.DB)
	productRepo := repository.NewProductRepository(d.DB)
	userRepo := repository.NewUserRepository(d.DB)

	opts := services.OrderOptions{
		Prices:            services.PriceSource(cfg.PriceSource),
		StrictTransitions: cfg.StrictTransitions,
	}
	if d.Hub != nil {
		opts.Events = d.Hub
	}

	// Controllers
	orderCtrl := controllers.NewOrderController(
		services.NewOrderService(d.DB, orderRepo, menuRepo, productRepo, opts), d.Log)
	productCtrl := controllers.NewProductController(services.NewProductService(productRepo), d.Log)
	menuCtrl := controllers.NewMenuController(services.NewMenuService(menuRepo), d.Log)
	userCtrl := controllers.NewUserController(
		services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL), d.Log)

	api := r.Group("/api")

	// Users
	users := api.Group("/users")
	{
		users.POST("/register", userCtrl.Register)
		users.POST("/login", userCtrl.Login)
		users.GET("", auth(entity.RoleAdmin), userCtrl.List)
		users.POST("", auth(entity.RoleAdmin), userCtrl.Create)
	}

	// Orders
	orders := api.Group("/orders")
	{
		orders.GET("", auth(entity.RolePreparer, entity.RoleAdmin), orderCtrl.List)
		orders.POST("", auth(entity.RoleUser), orderCtrl.Create)
		orders.GET("/:id", auth(entity.RoleAdmin), orderCtrl.Detail)
		orders.GET("/:id/items", auth(entity.RoleAdmin), orderCtrl.Items)

		orders.PUT("/:id/prepare", auth(entity.RoleAdmin), orderCtrl.Prepare)
		orders.PUT("/:id/finish", auth(entity.RolePreparer), orderCtrl.Finish)
		orders.PUT("/:id/deliver", auth(entity.RolePreparer), orderCtrl.Deliver)
	}

	// Products
	products := api.Group("/products")
	{
		products.GET("", auth(anyRole...), productCtrl.List)
		products.GET("/:id", auth(anyRole...), productCtrl.Get)
		products.POST("", auth(entity.RoleAdmin), productCtrl.Create)
		products.PUT("/:id", auth(entity.RoleAdmin), productCtrl.Update)
		products.DELETE("/:id", auth(entity.RoleAdmin), productCtrl.Delete)
	}

	// Menus
	menus := api.Group("/menus")
	{
		menus.GET("", auth(anyRole...), menuCtrl.List)
		menus.GET("/:id", auth(anyRole...), menuCtrl.Get)
		menus.POST("", auth(entity.RoleAdmin), menuCtrl.Create)
		menus.PUT("/:id", auth(entity.RoleAdmin), menuCtrl.Update)
		menus.DELETE("/:id", auth(entity.RoleAdmin), menuCtrl.Delete)
	}

	// Order board
	if d.Hub != nil {
		api.GET("/ws/orders",
			middlewares.WSAuthMiddleware(cfg.JWTSecret, entity.RolePreparer, entity.RoleAdmin),
			d.Hub.HandleWebSocket)
	}
}
