package config

import (
	"fmt"
	"os"
)

// Config holds everything the server reads from the environment at startup.
// It is loaded once in main and passed down explicitly; nothing else in the
// codebase touches os.Getenv.
type Config struct {
	APIPrefix string
	Port      string
	JWTSecret string
	UploadDir string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// Load reads the configuration from the environment. The JWT secret has no
// safe default, so a missing one is an error the caller should treat as fatal.
func Load() (*Config, error) {
	cfg := &Config{
		APIPrefix:  getEnv("API_URL", "/api/v1"),
		Port:       getEnv("PORT", "3001"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		UploadDir:  getEnv("UPLOAD_DIR", "./public/uploads"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "stylehive"),
		DBPort:     getEnv("DB_PORT", "5432"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set in the environment")
	}

	return cfg, nil
}

// DSN builds the Postgres connection string from the individual DB_* values.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
