package routes

import (
	"os"
	"strings"

	"bazar_back_end/internal/handlers"
	"bazar_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(corsConfig()))

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit())

	// --- Vitrine publique ---
	api.GET("/products", handlers.GetProducts)
	api.GET("/products/search", handlers.SearchProducts)
	api.GET("/products/:id", handlers.GetProduct)
	api.GET("/slides", handlers.GetSlides)

	// --- Panier (session anonyme via X-Session-ID) ---
	panier := api.Group("/cart")
	panier.Use(middleware.CartSession())
	{
		panier.GET("", handlers.GetCart)
		panier.POST("/items", middleware.CartRateLimit(), handlers.AddToCart)
		panier.PATCH("/items/:productId", handlers.UpdateCartQuantity)
		panier.DELETE("/items/:productId", handlers.RemoveFromCart)
		panier.DELETE("", handlers.ClearCart)
	}

	// --- Commandes ---
	commandes := api.Group("/orders")
	{
		commandes.POST("", middleware.CartSession(), handlers.PlaceOrder)
		commandes.GET("/:id", handlers.GetOrder)
		commandes.GET("/:id/qr", handlers.GetOrderQR)
	}

	// --- Administration ---
	api.POST("/admin/login", middleware.LoginRateLimit(), handlers.AdminLogin)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	{
		admin.POST("/products", handlers.CreateProduct)
		admin.PUT("/products/:id", handlers.UpdateProduct)
		admin.DELETE("/products/:id", handlers.DeleteProduct)

		admin.POST("/slides", handlers.CreateSlide)
		admin.PUT("/slides/:id", handlers.UpdateSlide)
		admin.DELETE("/slides/:id", handlers.DeleteSlide)

		admin.GET("/orders", handlers.ListOrders)
		admin.PATCH("/orders/:id/status", handlers.UpdateOrderStatus)
		admin.GET("/orders/ws", handlers.OrdersWebSocket)

		admin.POST("/images", handlers.UploadImage)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}

	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.SessionHeader)
	cfg.ExposeHeaders = append(cfg.ExposeHeaders, middleware.SessionHeader)
	return cfg
}
