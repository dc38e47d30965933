package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Tracking     TrackingConfig
	OAuth2Google OAuth2GoogleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	OrgName  string
}

// TrackingConfig holds the time-accounting knobs consumed by the core
// services. The values are threaded into each service at construction.
type TrackingConfig struct {
	// ShiftHours is the length of one working day; used for generated
	// leave entries and the check-out recommendation.
	ShiftHours float64
	// AllowBackfillDays governs the auto-approval window for backfilled
	// work entries.
	AllowBackfillDays int
	// PeriodLockDays, when > 0, makes the period-close job lock approved
	// work entries older than this many days.
	PeriodLockDays int
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

func Load() (*Config, error) {
	// Missing .env is fine in production, env vars may come from the host.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeflow"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		OrgName:  getEnv("ORG_NAME", "Your Organization"),
	}

	shiftHours, err := strconv.ParseFloat(getEnv("SHIFT_HOURS", "8.0"), 64)
	if err != nil || shiftHours <= 0 {
		return nil, fmt.Errorf("invalid SHIFT_HOURS: %q", getEnv("SHIFT_HOURS", "8.0"))
	}

	allowBackfillDays, err := strconv.Atoi(getEnv("ALLOW_BACKFILL_DAYS", "1"))
	if err != nil || allowBackfillDays < 0 {
		return nil, fmt.Errorf("invalid ALLOW_BACKFILL_DAYS: %q", getEnv("ALLOW_BACKFILL_DAYS", "1"))
	}

	periodLockDays, err := strconv.Atoi(getEnv("PERIOD_LOCK_DAYS", "0"))
	if err != nil || periodLockDays < 0 {
		return nil, fmt.Errorf("invalid PERIOD_LOCK_DAYS: %q", getEnv("PERIOD_LOCK_DAYS", "0"))
	}

	config.Tracking = TrackingConfig{
		ShiftHours:        shiftHours,
		AllowBackfillDays: allowBackfillDays,
		PeriodLockDays:    periodLockDays,
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
