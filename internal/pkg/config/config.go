package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/masarify/authsvc/internal/pkg/models"
	"github.com/masarify/authsvc/internal/utils"
	"github.com/spf13/viper"
)

var placeholderSecrets = map[string]struct{}{
	"dev-only-insecure-secret-change-me": {},
	"change-me-in-production":            {},
	"replace-with-strong-random-secret":  {},
	"<generate_at_least_24_char_secret>": {},
}

// InitConfig loads the dotenv files found in dir, then builds and validates the configuration
// from the process environment. Variables already set in the environment always win.
func InitConfig(dir string) (*models.Config, error) {
	env := resolveEnvironment()
	primary, loaded := loadEnvFiles(dir, env)

	v := viper.New()
	v.AutomaticEnv()
	defaults := defaultsFor(env)
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	configs, err := loadConfigFromEnv(&envReader{v: v, defaults: defaults}, env)
	if err != nil {
		return nil, err
	}
	configs.App.PrimaryEnvFile = primary
	configs.App.LoadedEnvFiles = loaded

	return configs, nil
}

func resolveEnvironment() string {
	switch env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV"))); env {
	case models.EnvDevelopment, models.EnvMock, models.EnvStaging, models.EnvProduction:
		return env
	}
	if strings.TrimSpace(os.Getenv("GO_ENV")) == models.EnvProduction {
		return models.EnvProduction
	}
	return models.EnvDevelopment
}

// loadEnvFiles loads mode-specific values first, then fallbacks
func loadEnvFiles(dir, env string) (string, []string) {
	primary := ".env." + env
	files := []string{primary}
	switch env {
	case models.EnvMock:
		files = append(files, ".env.development")
	case models.EnvStaging:
		files = append(files, ".env.production")
	}
	files = append(files, ".env")

	loaded := make([]string, 0, len(files))
	for _, name := range files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			continue
		}
		loaded = append(loaded, name)
	}
	return primary, loaded
}

func defaultsFor(env string) map[string]interface{} {
	authStore := models.StoreModePostgres
	if env == models.EnvMock {
		authStore = models.StoreModeMemory
	}

	return map[string]interface{}{
		"APP_NAME":                    "masarify-auth",
		"APP_VERSION":                 "dev",
		"SERVER_HOST":                 "0.0.0.0",
		"PORT":                        4000,
		"SERVER_READ_TIMEOUT":         15,
		"SERVER_WRITE_TIMEOUT":        15,
		"SERVER_SHUTDOWN_TIMEOUT":     10,
		"DB_MAX_CONNS":                10,
		"DB_IDLE_CONNS":               5,
		"DB_CONNECT_RETRIES":          3,
		"DB_CONNECT_RETRY_DELAY_MS":   500,
		"REDIS_HOST":                  "localhost",
		"REDIS_PORT":                  6379,
		"REDIS_DB":                    0,
		"REDIS_POOL_SIZE":             10,
		"JWT_ISSUER":                  "masarify-auth",
		"JWT_AUDIENCE":                "masarify-mobile-app",
		"JWT_EXPIRATION_HOURS":        7 * 24,
		"OTP_TTL_MS":                  5 * 60 * 1000,
		"OTP_VERIFICATION_TTL_MS":     10 * 60 * 1000,
		"OTP_MAX_VERIFY_ATTEMPTS":     5,
		"OTP_MAX_REQUESTS_PER_WINDOW": 5,
		"OTP_RATE_LIMIT_WINDOW_MS":    10 * 60 * 1000,
		"PASSWORD_HASH_COST":          10,
		"AUTH_STORE":                  authStore,
		"RATE_LIMIT_STORE":            models.RateStoreDefault,
		"LOG_LEVEL":                   "info",
		"LOG_FILE_PATH":               "",
	}
}

func loadConfigFromEnv(r *envReader, env string) (*models.Config, error) {
	configs := &models.Config{}

	// App config
	configs.App.Name = r.String("APP_NAME")
	configs.App.Environment = env
	configs.App.Version = r.String("APP_VERSION")

	// Server config
	configs.Server.Host = r.String("SERVER_HOST")
	configs.Server.Port = r.PositiveInt("PORT")
	configs.Server.ReadTimeout = time.Duration(r.PositiveInt("SERVER_READ_TIMEOUT")) * time.Second
	configs.Server.WriteTimeout = time.Duration(r.PositiveInt("SERVER_WRITE_TIMEOUT")) * time.Second
	configs.Server.ShutdownTimeout = time.Duration(r.PositiveInt("SERVER_SHUTDOWN_TIMEOUT")) * time.Second

	// Store selection
	configs.AuthStore.Mode = strings.ToLower(r.String("AUTH_STORE"))
	if configs.AuthStore.Mode != models.StoreModePostgres && configs.AuthStore.Mode != models.StoreModeMemory {
		configs.AuthStore.Mode = r.defaults["AUTH_STORE"].(string)
	}
	configs.AuthStore.RateStore = strings.ToLower(r.String("RATE_LIMIT_STORE"))
	if configs.AuthStore.RateStore != models.RateStoreDefault && configs.AuthStore.RateStore != models.RateStoreRedis {
		configs.AuthStore.RateStore = models.RateStoreDefault
	}

	// Database config
	configs.Database.MaxConns = r.PositiveInt("DB_MAX_CONNS")
	configs.Database.IdleConns = r.PositiveInt("DB_IDLE_CONNS")
	configs.Database.ConnectRetries = r.v.GetInt("DB_CONNECT_RETRIES")
	if configs.Database.ConnectRetries < 0 {
		configs.Database.ConnectRetries = 0
	}
	configs.Database.ConnectRetryDelay = time.Duration(r.PositiveInt("DB_CONNECT_RETRY_DELAY_MS")) * time.Millisecond
	if configs.AuthStore.UsesDatabase() {
		dbURL, err := r.Required("DATABASE_URL")
		if err != nil {
			return nil, err
		}
		if err := validateDatabaseURL(dbURL, isProductionLike(env)); err != nil {
			return nil, err
		}
		configs.Database.URL = dbURL
	}

	// Redis config
	configs.Redis.Host = r.String("REDIS_HOST")
	configs.Redis.Port = r.PositiveInt("REDIS_PORT")
	configs.Redis.Password = r.String("REDIS_PASSWORD")
	configs.Redis.DB = r.v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = r.PositiveInt("REDIS_POOL_SIZE")

	// JWT config
	secret, err := r.Required("JWT_SECRET")
	if err != nil {
		return nil, err
	}
	if err := validateJWTSecret(secret, isProductionLike(env)); err != nil {
		return nil, err
	}
	configs.JWT.Secret = secret
	configs.JWT.Issuer = r.String("JWT_ISSUER")
	configs.JWT.Audience = r.String("JWT_AUDIENCE")
	configs.JWT.Expiration = time.Duration(r.PositiveInt("JWT_EXPIRATION_HOURS")) * time.Hour

	// OTP config
	configs.OTP.TTL = time.Duration(r.PositiveInt("OTP_TTL_MS")) * time.Millisecond
	configs.OTP.VerificationTokenTTL = time.Duration(r.PositiveInt("OTP_VERIFICATION_TTL_MS")) * time.Millisecond
	configs.OTP.MaxVerifyAttempts = r.PositiveInt("OTP_MAX_VERIFY_ATTEMPTS")
	configs.OTP.MaxRequestsPerWindow = r.PositiveInt("OTP_MAX_REQUESTS_PER_WINDOW")
	configs.OTP.RateLimitWindow = time.Duration(r.PositiveInt("OTP_RATE_LIMIT_WINDOW_MS")) * time.Millisecond

	// Password config
	configs.Password.Cost = r.PositiveInt("PASSWORD_HASH_COST")

	// Seed user config
	seedEnabled := r.Bool("APP_SEED_TEST_USER", env == models.EnvMock)
	if seedEnabled {
		mobile := r.String("TEST_LOGIN_MOBILE")
		password := r.String("TEST_LOGIN_PASSWORD")
		if err := validateSeedUser(mobile, password, isProductionLike(env)); err != nil {
			return nil, err
		}
		configs.Seed = models.SeedConfig{
			Enabled:   true,
			Mobile:    mobile,
			Password:  password,
			Overwrite: r.Bool("APP_SEED_TEST_USER_OVERWRITE", false),
		}
	}

	// Logger config
	configs.Logger.Level = r.String("LOG_LEVEL")
	configs.Logger.FilePath = r.String("LOG_FILE_PATH")

	return configs, nil
}

func isProductionLike(env string) bool {
	return models.AppConfig{Environment: env}.IsProductionLike()
}

func validateDatabaseURL(value string, productionLike bool) error {
	parsed, err := url.Parse(value)
	if err != nil || parsed.Scheme == "" {
		return errors.New("DATABASE_URL is invalid. Expected a full postgres connection URL")
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "postgres" && scheme != "postgresql" {
		return errors.New("DATABASE_URL must use postgres:// or postgresql://")
	}

	username := strings.ToLower(parsed.User.Username())
	password, _ := parsed.User.Password()
	password = strings.ToLower(password)
	host := strings.ToLower(parsed.Hostname())

	placeholder := username == "username" ||
		username == "db_user" ||
		password == "password" ||
		password == "db_password" ||
		host == "host" ||
		strings.Contains(value, "<")

	if placeholder && productionLike {
		return errors.New("DATABASE_URL contains placeholder values, which is not allowed in staging/production")
	}
	return nil
}

func validateJWTSecret(secret string, productionLike bool) error {
	if _, weak := placeholderSecrets[strings.ToLower(secret)]; weak {
		return errors.New("JWT_SECRET is using a default/placeholder value. Set a strong unique secret")
	}
	if productionLike && len(secret) < 24 {
		return errors.New("JWT_SECRET is too weak for staging/production (minimum 24 characters)")
	}
	if !productionLike && len(secret) < 16 {
		return errors.New("JWT_SECRET is too weak for development/mock (minimum 16 characters)")
	}
	return nil
}

func validateSeedUser(mobile, password string, productionLike bool) error {
	if productionLike {
		return errors.New("APP_SEED_TEST_USER cannot be enabled in staging/production")
	}
	if mobile == "" || password == "" {
		return errors.New("TEST_LOGIN_MOBILE and TEST_LOGIN_PASSWORD are required when APP_SEED_TEST_USER=true")
	}
	if !utils.ValidateMobile(mobile) {
		return errors.New("TEST_LOGIN_MOBILE must be a valid Egyptian mobile number")
	}
	if len(password) < 8 {
		return errors.New("TEST_LOGIN_PASSWORD must be at least 8 characters")
	}
	return nil
}

// envReader reads environment values through viper, falling back to defaults on bad input
type envReader struct {
	v        *viper.Viper
	defaults map[string]interface{}
}

func (r *envReader) String(key string) string {
	return strings.TrimSpace(r.v.GetString(key))
}

func (r *envReader) Required(key string) (string, error) {
	value := r.String(key)
	if value == "" {
		return "", fmt.Errorf("%s is required for backend startup", key)
	}
	return value, nil
}

// PositiveInt returns the configured value, or the default when it is missing, malformed or not positive
func (r *envReader) PositiveInt(key string) int {
	fallback, _ := r.defaults[key].(int)
	n, err := strconv.Atoi(r.String(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (r *envReader) Bool(key string, fallback bool) bool {
	switch strings.ToLower(r.String(key)) {
	case "true":
		return true
	case "false":
		return false
	default:
		return fallback
	}
}
