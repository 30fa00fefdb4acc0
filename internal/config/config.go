package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	NodeEnv   string
	Port      string
	JWTSecret string
	Database  DatabaseConfig
	GRT       GRTConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Alter    bool
}

// GRTConfig holds GRT API synchronization configuration.
// APIURL and APIKey are bootstrap defaults only: the persisted config
// parameters (grt.api_url, grt.api_key) are consulted at run time, with
// GRT_API_KEY from the environment taking precedence over the persisted key.
type GRTConfig struct {
	APIURL       string
	APIKey       string
	SyncInterval int // in minutes
	SyncOnStart  bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		NodeEnv:   getEnv("NODE_ENV", "development"),
		Port:      getEnv("PORT", "3310"),
		JWTSecret: jwtSecret,
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "ougrt"),
			Alter:    getBoolEnv("DB_ALTER", false),
		},
		GRT: GRTConfig{
			APIURL:       os.Getenv("GRT_API_URL"),
			APIKey:       os.Getenv("GRT_API_KEY"),
			SyncInterval: getIntEnv("GRT_SYNC_INTERVAL", 1440),
			SyncOnStart:  getBoolEnv("GRT_SYNC_ON_STARTUP", false),
		},
	}, nil
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
