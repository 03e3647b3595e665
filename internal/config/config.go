package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Premises  PremisesConfig
	Reconcile ReconcileConfig
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
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PremisesConfig holds the restaurant geofence used for on-premises
// verification.
type PremisesConfig struct {
	LocationID   string
	LocationName string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// ReconcileConfig holds the reconciliation engine cadences.
type ReconcileConfig struct {
	SweepInterval    time.Duration // nudge detection sweeps
	PresenceInterval time.Duration // presence signal refresh
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; env vars win anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "resto-timeclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Premises geofence
	lat, err := strconv.ParseFloat(getEnv("PREMISES_LATITUDE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PREMISES_LATITUDE: %w", err)
	}
	lon, err := strconv.ParseFloat(getEnv("PREMISES_LONGITUDE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PREMISES_LONGITUDE: %w", err)
	}
	radius, err := strconv.ParseFloat(getEnv("PREMISES_RADIUS_METERS", "150"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid PREMISES_RADIUS_METERS: %w", err)
	}

	config.Premises = PremisesConfig{
		LocationID:   getEnv("PREMISES_LOCATION_ID", "restaurant-general"),
		LocationName: getEnv("PREMISES_LOCATION_NAME", "Restaurant"),
		Latitude:     lat,
		Longitude:    lon,
		RadiusMeters: radius,
	}

	// Reconciliation cadences
	sweep, err := time.ParseDuration(getEnv("RECONCILE_SWEEP_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILE_SWEEP_INTERVAL: %w", err)
	}
	presenceInterval, err := time.ParseDuration(getEnv("RECONCILE_PRESENCE_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECONCILE_PRESENCE_INTERVAL: %w", err)
	}

	config.Reconcile = ReconcileConfig{
		SweepInterval:    sweep,
		PresenceInterval: presenceInterval,
	}

	// Validate required fields
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
