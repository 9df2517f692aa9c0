package config

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration of the storefront. Values come
// from an optional config.yaml overridden by environment variables (the
// .env file is loaded by main before this runs).
type Config struct {
	Addr           string  `yaml:"addr"`
	CatalogBaseURL string  `yaml:"catalog_base_url"`
	SessionFile    string  `yaml:"session_file"`
	CacheTTL       int     `yaml:"cache_ttl_seconds"`
	RequestTimeout int     `yaml:"request_timeout_seconds"`
	OutboundRPS    float64 `yaml:"outbound_rps"`
	RedisURL       string  `yaml:"redis_url"`
}

// Load reads config.yaml when present (path from CONFIG_FILE, default
// ./config.yaml), then applies env overrides and defaults.
func Load() Config {
	cfg := Config{}

	path := getEnv("CONFIG_FILE", "config.yaml")
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.Printf("⚠️  invalid %s, ignoring: %v", path, err)
			cfg = Config{}
		}
	}

	cfg.Addr = getEnv("ADDR", defaultStr(cfg.Addr, ":8080"))
	cfg.CatalogBaseURL = getEnv("CATALOG_BASE_URL", defaultStr(cfg.CatalogBaseURL, "https://keldibekov.online"))
	cfg.SessionFile = getEnv("SESSION_FILE", defaultStr(cfg.SessionFile, "user-storage.json"))
	cfg.CacheTTL = getEnvInt("CACHE_TTL_SECONDS", defaultInt(cfg.CacheTTL, 60))
	cfg.RequestTimeout = getEnvInt("REQUEST_TIMEOUT_SECONDS", defaultInt(cfg.RequestTimeout, 15))
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	if v := os.Getenv("OUTBOUND_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.OutboundRPS = f
		}
	}
	return cfg
}

// HTTPClient is the shared outbound client for the catalog service.
func (c Config) HTTPClient() *http.Client {
	return &http.Client{Timeout: time.Duration(c.RequestTimeout) * time.Second}
}

func (c Config) TTL() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

func defaultStr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func defaultInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
