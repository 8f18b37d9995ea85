package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer        string        // Optional: issuer claim for tokens (default: api-gateway)
	AccessSecret  string        // Required: HS256 secret for access tokens
	RefreshSecret string        // Required: HS256 secret for refresh tokens
	ServiceSecret string        // Required: HS256 secret for service tokens
	AccessTTL     time.Duration // Optional: access token lifetime (default: 15m)
	RefreshTTL    time.Duration // Optional: refresh token lifetime (default: 168h)
	ServiceTTL    time.Duration // Optional: service token lifetime (default: 1h)

	RedisAddr     string // Redis address (default: localhost:6379)
	RedisPassword string // Optional: Redis password
	RedisDB       int    // Optional: Redis database number (default: 0)

	UsersAddr    string // Users directory gRPC address (default: localhost:50051)
	ProductsAddr string // Products backend gRPC address (default: localhost:50052)
	OrdersAddr   string // Orders backend gRPC address (default: localhost:50053)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:        getEnvOrDefault("JWT_ISSUER", "api-gateway"),
		AccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		ServiceSecret: os.Getenv("JWT_SERVICE_SECRET"),
		AccessTTL:     getEnvDurationOrDefault("JWT_ACCESS_TTL", 0),
		RefreshTTL:    getEnvDurationOrDefault("JWT_REFRESH_TTL", 0),
		ServiceTTL:    getEnvDurationOrDefault("JWT_SERVICE_TTL", 0),

		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvIntOrDefault("REDIS_DB", 0),

		UsersAddr:    getEnvOrDefault("USERS_GRPC_ADDR", "localhost:50051"),
		ProductsAddr: getEnvOrDefault("PRODUCTS_GRPC_ADDR", "localhost:50052"),
		OrdersAddr:   getEnvOrDefault("ORDERS_GRPC_ADDR", "localhost:50053"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate catches missing required settings before anything is dialed.
func (c Config) Validate() error {
	if c.AccessSecret == "" {
		return errors.New("JWT_ACCESS_SECRET is required")
	}
	if c.RefreshSecret == "" {
		return errors.New("JWT_REFRESH_SECRET is required")
	}
	if c.ServiceSecret == "" {
		return errors.New("JWT_SERVICE_SECRET is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
