package models

import "time"

// Runtime environments recognised by the service
const (
	EnvDevelopment = "development"
	EnvMock        = "mock"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Auth store modes
const (
	StoreModePostgres = "postgres"
	StoreModeMemory   = "memory"
)

// Rate ledger backends
const (
	RateStoreDefault = "store"
	RateStoreRedis   = "redis"
)

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Password  PasswordConfig
	AuthStore AuthStoreConfig
	Seed      SeedConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name           string
	Environment    string
	Version        string
	PrimaryEnvFile string
	LoadedEnvFiles []string
}

// IsMock reports whether the service runs in mock mode
func (a AppConfig) IsMock() bool {
	return a.Environment == EnvMock
}

// IsProductionLike reports whether the environment must never disclose debug material
func (a AppConfig) IsProductionLike() bool {
	return a.Environment == EnvStaging || a.Environment == EnvProduction
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	URL               string
	MaxConns          int
	IdleConns         int
	ConnectRetries    int
	ConnectRetryDelay time.Duration
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains bearer token configuration
type JWTConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	Expiration time.Duration
}

// OTPConfig contains the OTP and rate limiting policy
type OTPConfig struct {
	TTL                  time.Duration
	VerificationTokenTTL time.Duration
	MaxVerifyAttempts    int
	MaxRequestsPerWindow int
	RateLimitWindow      time.Duration
}

// PasswordConfig contains password hashing configuration
type PasswordConfig struct {
	Cost int
}

// AuthStoreConfig selects the backing stores
type AuthStoreConfig struct {
	Mode      string
	RateStore string
}

// UsesDatabase reports whether the credential store is Postgres
func (a AuthStoreConfig) UsesDatabase() bool {
	return a.Mode == StoreModePostgres
}

// SeedConfig describes the optional non-production test user
type SeedConfig struct {
	Enabled   bool
	Mobile    string
	Password  string
	Overwrite bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
