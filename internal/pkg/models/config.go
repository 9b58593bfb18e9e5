package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Store    StoreConfig
	Rail     RailConfig
	Sandbox  SandboxConfig
	Seed     SeedConfig
	Limits   RateLimitConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains the settings used to check identity tokens
type JWTConfig struct {
	Secret string
	Issuer string
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// StoreConfig selects the persistence backend: memory or postgres
type StoreConfig struct {
	Driver string
}

// RailConfig controls how payment attempts reach the rail and when they expire
type RailConfig struct {
	Transport     string // nats or http
	HTTPURL       string
	HTTPAPIKey    string
	HTTPTimeout   time.Duration
	HTTPRetries   int // retries of 5xx and network failures per dispatch
	HTTPRetryWait time.Duration
	Timeout       time.Duration // processing attempts older than this fail
	ConfirmTTL    time.Duration // confirm attempts older than this fail
	SweepInterval time.Duration
	Breaker       BreakerConfig
}

// BreakerConfig tunes the circuit breaker around rail dispatch
type BreakerConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64
}

// SandboxConfig drives the stand-in payment rail
type SandboxConfig struct {
	Delay      time.Duration
	FailDomain string
	MaxAmount  float64
}

// SeedConfig points at an optional seed file
type SeedConfig struct {
	File string
}

// RateLimitConfig bounds marketplace writes per handle. Zero disables it.
type RateLimitConfig struct {
	Writes int
	Period time.Duration
}
