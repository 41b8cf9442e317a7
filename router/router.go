package router

import (
	"github.com/ShakirChaya0/IPP-Prototype/config"
	"github.com/ShakirChaya0/IPP-Prototype/controllers"
	"github.com/ShakirChaya0/IPP-Prototype/middlewares"
	"github.com/ShakirChaya0/IPP-Prototype/models"
	"github.com/ShakirChaya0/IPP-Prototype/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func SetupRouter(cfg *config.Config, app *services.App) *gin.Engine {
	r := gin.New()
	metrics := middlewares.NewServerMetrics()
	limiter := middlewares.NewRateLimiter(rate.Limit(cfg.RequestRate), cfg.RequestRate)

	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigins))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(limiter.RateLimit())

	userCtrl := controllers.NewUserController(app)
	menuCtrl := controllers.NewMenuController(app)
	cartCtrl := controllers.NewCartController(app)
	orderCtrl := controllers.NewOrderController(app)
	adminCtrl := controllers.NewAdminController(app)
	navCtrl := controllers.NewNavigationController(app)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter(cfg.LoginRatePerMinute).RateLimit())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	r.GET("/navigate", middlewares.OptionalAuthMiddleware(app.Tokens), navCtrl.Navigate)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware(app.Tokens))

	auth.POST("/logout", userCtrl.Logout)
	auth.GET("/profile", userCtrl.Profile)
	auth.GET("/notifications/current", navCtrl.GetCurrentNotification)
	auth.DELETE("/notifications/current", navCtrl.DismissNotification)

	auth.GET("/menu/categories", menuCtrl.GetCategories)
	auth.GET("/menu/products", menuCtrl.GetProducts)
	auth.GET("/menu/products/:product_id", menuCtrl.GetProductByID)

	receipts := auth.Group("/orders")
	receipts.Use(middlewares.ReceiptLoggerMiddleware())
	{
		receipts.GET("/:order_id/receipt", orderCtrl.DownloadReceipt)
	}

	// Client
	client := auth.Group("/")
	client.Use(middlewares.RequireRole(models.RoleClient))
	{
		client.GET("/cart", cartCtrl.GetCart)
		client.POST("/cart/items", cartCtrl.AddItem)
		client.PATCH("/cart/items/:line_id", cartCtrl.UpdateItem)
		client.DELETE("/cart/items/:line_id", cartCtrl.RemoveItem)
		client.POST("/orders", orderCtrl.CreateOrder)
		client.GET("/orders/history", orderCtrl.GetOrderHistory)
	}

	// Staff
	staff := auth.Group("/staff")
	staff.Use(middlewares.RequireRole(models.RoleStaff))
	{
		staff.GET("/orders", orderCtrl.GetPendingOrders)
		staff.POST("/orders/:order_id/complete", orderCtrl.CompleteOrder)
	}

	// Admin
	admin := auth.Group("/admin")
	admin.Use(middlewares.RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.GetDashboardStats)
		admin.GET("/orders", adminCtrl.GetOrders)
		admin.GET("/reports/orders.xlsx", adminCtrl.ExportOrders)
		admin.GET("/reports/sales-chart.png", adminCtrl.SalesChart)
		admin.GET("/products", menuCtrl.GetProducts)
		admin.POST("/products", menuCtrl.CreateProduct)
		admin.PUT("/products/:product_id", menuCtrl.UpdateProduct)
		admin.GET("/extras", menuCtrl.GetExtras)
	}

	return r
}
