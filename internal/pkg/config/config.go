package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/tradepost/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "tradepost")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "postgres")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://127.0.0.1:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Store config
	configs.Store.Driver = GetEnv("STORE_DRIVER", "memory")

	// Rail config
	configs.Rail.Transport = GetEnv("RAIL_TRANSPORT", "nats")
	configs.Rail.HTTPURL = GetEnv("RAIL_HTTP_URL", "")
	configs.Rail.HTTPAPIKey = GetEnv("RAIL_HTTP_API_KEY", "")
	configs.Rail.HTTPTimeout = GetEnvAsDuration("RAIL_HTTP_TIMEOUT", 5*time.Second)
	configs.Rail.HTTPRetries = GetEnvAsInt("RAIL_HTTP_RETRIES", 2)
	configs.Rail.HTTPRetryWait = GetEnvAsDuration("RAIL_HTTP_RETRY_WAIT", 200*time.Millisecond)
	configs.Rail.Timeout = GetEnvAsDuration("RAIL_TIMEOUT", 10*time.Minute)
	configs.Rail.ConfirmTTL = GetEnvAsDuration("RAIL_CONFIRM_TTL", 30*time.Minute)
	configs.Rail.SweepInterval = GetEnvAsDuration("RAIL_SWEEP_INTERVAL", 30*time.Second)
	configs.Rail.Breaker.MaxRequests = uint32(GetEnvAsInt("RAIL_BREAKER_MAX_REQUESTS", 3))
	configs.Rail.Breaker.Interval = GetEnvAsDuration("RAIL_BREAKER_INTERVAL", 15*time.Second)
	configs.Rail.Breaker.Timeout = GetEnvAsDuration("RAIL_BREAKER_TIMEOUT", 30*time.Second)
	configs.Rail.Breaker.MinRequests = uint32(GetEnvAsInt("RAIL_BREAKER_MIN_REQUESTS", 3))
	configs.Rail.Breaker.FailureRatio = GetEnvAsFloat("RAIL_BREAKER_FAILURE_RATIO", 0.6)

	// Sandbox rail config
	configs.Sandbox.Delay = GetEnvAsDuration("SANDBOX_DELAY", 2*time.Second)
	configs.Sandbox.FailDomain = GetEnv("SANDBOX_FAIL_DOMAIN", "fail.test")
	configs.Sandbox.MaxAmount = GetEnvAsFloat("SANDBOX_MAX_AMOUNT", 1000)

	// Seed config
	configs.Seed.File = GetEnv("SEED_FILE", "")

	// Rate limit config
	configs.Limits.Writes = GetEnvAsInt("RATE_LIMIT_WRITES", 30)
	configs.Limits.Period = GetEnvAsDuration("RATE_LIMIT_PERIOD", time.Minute)

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
