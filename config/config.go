package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// JWT Configuration
	JWTSecret    string
	JWTExpiresIn time.Duration
	FrontendURL  string
	// Redis Configuration (optional; the external-jobs cache falls back to
	// an in-memory store when unset)
	RedisURL      string
	RedisPassword string
	// External job providers
	RapidAPIKey    string
	AdzunaAppID    string
	AdzunaAppKey   string
	AdzunaCountry  string
	ExternalJobTTL time.Duration
	// External-jobs cache capacity for the in-memory fallback
	ExternalCacheCapacity int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored elsewhere.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "5000"),
		DBUrl:                 getEnv("DATABASE_URL", ""),
		JWTSecret:             getEnv("JWT_SECRET", ""),
		JWTExpiresIn:          getEnvDuration("JWT_EXPIRES_IN", 30*24*time.Hour),
		FrontendURL:           getEnv("FRONTEND_URL", "http://localhost:5173"),
		RedisURL:              getEnv("REDIS_URL", ""),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		RapidAPIKey:           getEnv("RAPIDAPI_KEY", ""),
		AdzunaAppID:           getEnv("ADZUNA_APP_ID", ""),
		AdzunaAppKey:          getEnv("ADZUNA_APP_KEY", ""),
		AdzunaCountry:         getEnv("ADZUNA_COUNTRY", "gb"),
		ExternalJobTTL:        getEnvDuration("EXTERNAL_JOBS_CACHE_TTL", 30*time.Minute),
		ExternalCacheCapacity: getEnvInt("EXTERNAL_JOBS_CACHE_CAPACITY", 512),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Tokens cannot be issued or verified.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. External-jobs cache will use the in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvDuration returns a duration environment variable (Go duration syntax,
// e.g. "720h") or fallback if not set/invalid
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
