package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tair/packing-checklist/pkg/database"
)

// Config holds runtime configuration for the checklist service
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	HTTPPort       string
	GRPCPort       string
	StoreDriver    string
	RequestTimeout time.Duration

	Database database.Config
	Tx       database.TxOptions

	JWTSecret string
	JWTTTL    time.Duration

	KafkaEnabled bool
	KafkaBrokers []string
	KafkaGroupID string

	RedisAddr         string
	RedisPassword     string
	FavoriteRateLimit int
	FavoriteRateWin   time.Duration
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Load reads an optional .env file and then the process environment
func Load(files ...string) *Config {
	// a missing .env is normal outside local development
	_ = godotenv.Load(files...)

	return &Config{
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "checklist-service"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		GRPCPort:       getEnv("GRPC_PORT", "9090"),
		StoreDriver:    getEnv("STORE_DRIVER", "postgres"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "checklistdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Tx: database.TxOptions{
			MaxAttempts: getInt("TX_MAX_ATTEMPTS", 3),
			Backoff:     getDuration("TX_RETRY_BACKOFF", 20*time.Millisecond),
		},
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		JWTTTL:            getDuration("JWT_TTL", 24*time.Hour),
		KafkaEnabled:      getBool("KAFKA_ENABLED", false),
		KafkaBrokers:      strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaGroupID:      getEnv("KAFKA_GROUP_ID", "checklist-audit"),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		FavoriteRateLimit: getInt("FAVORITE_RATE_LIMIT", 30),
		FavoriteRateWin:   getDuration("FAVORITE_RATE_WINDOW", time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
