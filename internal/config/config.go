package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Every field maps to one environment
// variable; a .env file in the working directory is merged in when present.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisHost string
	RedisPort string

	// LockTTL is the window a seat lock stays valid before the lock store
	// expires it. Must stay much larger than booking-commit latency.
	LockTTL time.Duration

	// ReportInterval controls how often booking totals are sampled.
	ReportInterval time.Duration
}

// Load reads configuration from the environment, falling back to local
// development defaults. Missing .env files are not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPPort:       getenv("HTTP_PORT", "8080"),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         getenv("DB_PORT", "5432"),
		DBUser:         getenv("DB_USER", "postgres"),
		DBPassword:     getenv("DB_PASSWORD", ""),
		DBName:         getenv("DB_NAME", "seatbooking"),
		RedisHost:      getenv("REDIS_HOST", "localhost"),
		RedisPort:      getenv("REDIS_PORT", "6379"),
		LockTTL:        time.Duration(getenvInt("LOCK_TTL_SECONDS", 600)) * time.Second,
		ReportInterval: time.Duration(getenvInt("REPORT_INTERVAL_SECONDS", 60)) * time.Second,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
