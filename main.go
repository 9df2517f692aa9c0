package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/khmiq/ecommerce/cache/catalog_cache"
	"github.com/khmiq/ecommerce/catalog"
	"github.com/khmiq/ecommerce/config"
	"github.com/khmiq/ecommerce/controllers/account"
	"github.com/khmiq/ecommerce/controllers/storefront"
	"github.com/khmiq/ecommerce/middleware"
	"github.com/khmiq/ecommerce/routes"
	"github.com/khmiq/ecommerce/store"
	"github.com/khmiq/ecommerce/utils"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	cfg := config.Load()

	// Redis connection (optional, backs the auth rate limiter)
	rdb := config.ConnectRedis(cfg.RedisURL)

	// Catalog client + query cache
	client := catalog.New(catalog.Config{
		BaseURL:           cfg.CatalogBaseURL,
		HTTPClient:        cfg.HTTPClient(),
		RequestsPerSecond: cfg.OutboundRPS,
	})
	cache := catalog_cache.New(client, cfg.TTL())

	// Session store: hydrate the durable slot before serving anything
	sessions := store.NewSessions(cfg.SessionFile)
	if err := sessions.Init(); err != nil {
		log.Fatalf("❌ Failed to load session slot: %v", err)
	}
	log.Println("✅ Session store ready")

	// Client-only like/cart state, reset on every start
	prefs := store.NewPrefs()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.RequestID())
	router.Use(middleware.CurrentSession(sessions))
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	storefrontHandlers := storefront.New(client, cache, sessions, prefs)
	accountHandlers := account.New(client, sessions, utils.NewOTPTracker(60*time.Second))

	root := router.Group("/")
	routes.SetupStorefrontRoutes(root, storefrontHandlers)
	routes.SetupAccountRoutes(root, accountHandlers, rdb)
	log.Println("✅ Storefront routes registered")

	fmt.Println("🚀 Storefront is running on http://localhost" + cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
