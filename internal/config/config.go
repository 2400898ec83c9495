package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string
	HTTPAddr string

	// memory | postgres | redis
	StorageBackend string
	DatabaseURL    string
	RedisAddr      string

	PaymentDelay time.Duration

	SessionIssuer   string
	SessionSecret   string
	SessionTTLHours int
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		LogLevel: get("LOG_LEVEL", "info"),
		HTTPAddr: get("HTTP_ADDR", ":8080"),

		StorageBackend: get("STORAGE_BACKEND", "memory"),
		DatabaseURL:    get("DATABASE_URL", ""),
		RedisAddr:      get("REDIS_ADDR", "localhost:6379"),

		PaymentDelay: time.Duration(getInt("PAYMENT_DELAY_MS", 2000)) * time.Millisecond,

		SessionIssuer:   get("SESSION_ISSUER", "vitmart"),
		SessionSecret:   get("SESSION_SECRET", "dev-only-secret"),
		SessionTTLHours: getInt("SESSION_TTL_HOURS", 24),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
