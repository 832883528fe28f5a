package routes

import (
	"freshfold/handlers"
	"freshfold/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPricingRoutes registers the pricing page endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.GET("/plans", hb.GetPricingPlans)
		api.POST("/quote", hb.QuoteTotal)
	}
}

// RegisterPaymentRoutes registers the checkout payment endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payment")
	{
		api.POST("/intent", hb.CreatePaymentIntent)
	}
}

// RegisterProxyRoutes registers the platform proxy endpoints.
func RegisterProxyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/saas")
	{
		api.POST("/proxy", hb.ProxyForward)
		api.GET("/key", hb.GetAPIKey)
	}
}

// RegisterIdentityRoutes registers sign-in endpoints.
func RegisterIdentityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Authenticate)
		api.POST("/magic-link", hb.RequestMagicLink)
		api.POST("/magic-link/verify", hb.VerifyMagicLink)
	}
}

// RegisterOrderRoutes registers the order history endpoints.
func RegisterOrderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/orders")
	{
		api.Use(middleware.CustomerAuthMiddleware())
		api.GET("/mine", hb.ListMyOrders)
	}
}

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)

	RegisterBookingRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterProxyRoutes(r, hb)
	RegisterIdentityRoutes(r, hb)
	RegisterOrderRoutes(r, hb)
}
