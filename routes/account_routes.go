package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khmiq/ecommerce/controllers/account"
	"github.com/khmiq/ecommerce/middleware"
	"github.com/redis/go-redis/v9"
)

func SetupAccountRoutes(router *gin.RouterGroup, h *account.Handlers, rdb *redis.Client) {
	router.GET("/login", h.LoginPage)

	// Auth form posts get the fixed-window limiter; everything else is
	// already throttled by the outbound client.
	limited := router.Group("")
	limited.Use(middleware.RateLimiter(rdb, 20, time.Minute))
	{
		limited.POST("/login", h.Login)
		limited.POST("/register/email", h.SendOTP)
		limited.POST("/register/verify", h.VerifyOTP)
		limited.POST("/register", h.Register)
	}

	router.POST("/upload", h.Upload)
	router.POST("/logout", h.Logout)

	profile := router.Group("/profile")
	profile.Use(middleware.RequireSession())
	{
		profile.GET("", h.Profile)
	}
}
