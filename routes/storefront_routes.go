package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/controllers/storefront"
)

func SetupStorefrontRoutes(router *gin.RouterGroup, h *storefront.Handlers) {
	// Page routes (public)
	router.GET("/", h.Home)

	products := router.Group("/products")
	{
		products.GET("/:id", h.ProductDetail)

		// Local, optimistic toggles — no auth, no network
		products.POST("/:id/like", h.ToggleLike)
		products.POST("/:id/cart", h.ToggleCart)

		// Proxied to the catalog service
		products.POST("/:id/order", h.PlaceOrder)
		products.POST("/:id/comments", h.AddComment)
		products.GET("/:id/messages", h.ListMessages)
		products.POST("/:id/messages", h.SendMessage)
	}
}
