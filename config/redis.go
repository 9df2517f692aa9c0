package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ConnectRedis connects when a Redis URL is configured. Redis only backs
// the auth-route rate limiter, so a missing or unreachable instance
// degrades to no limiting instead of failing startup.
func ConnectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, auth rate limiting disabled")
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, rate limiting disabled: %v", err)
		return nil
	}

	client := redis.NewClient(opt)
	if res, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("❌ failed to connect to Redis, rate limiting disabled: %v", err)
		return nil
	} else {
		log.Println("✅ Connected to Redis:", res)
	}
	return client
}
