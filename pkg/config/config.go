package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Store selection: memory (default), postgres or redis.
	StoreBackend string
	DatabaseURL  string
	PgMaxConns   int32
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	// JobTTL applies to the redis backend only; zero means no expiry.
	JobTTL time.Duration

	// Upload validation.
	MaxUploadBytes int64
	SniffContent   bool

	// Extraction gateway.
	ExtractTimeout time.Duration
	ExtractWorkers int
	QueueSize      int
	RetryMax       int

	// OpenRouter client.
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string
	OpenRouterTitle   string
	OpenRouterReferer string

	LogLevel string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port: getEnv("PORT", "8080"),

		StoreBackend: getEnv("STORE_BACKEND", "memory"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		PgMaxConns:   int32(getEnvInt("PG_MAX_CONNS", 8)),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		JobTTL:       time.Duration(getEnvInt("JOB_TTL_HOURS", 0)) * time.Hour,

		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		SniffContent:   getEnvBool("SNIFF_CONTENT", false),

		ExtractTimeout: time.Duration(getEnvInt("EXTRACT_TIMEOUT_SECONDS", 60)) * time.Second,
		ExtractWorkers: getEnvInt("EXTRACT_WORKERS", 4),
		QueueSize:      getEnvInt("EXTRACT_QUEUE_SIZE", 128),
		RetryMax:       getEnvInt("EXTRACT_RETRY_MAX", 2),

		OpenRouterAPIKey:  os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		OpenRouterModel:   getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		OpenRouterTitle:   getEnv("OPENROUTER_APP_TITLE", "resume-screening"),
		OpenRouterReferer: os.Getenv("OPENROUTER_REFERER"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
