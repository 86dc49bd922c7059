package config

import (
	"os" // For environment variables

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort    string // Application port
	DBUser     string // Database user (MySQL)
	DBPassword string // Database password (MySQL)
	DBHost     string // Database host; when empty the SQLite file is used
	DBPort     string // Database port (MySQL)
	DBName     string // Database name (MySQL)
	SQLitePath string // SQLite database file, the default backend
	JWTSecret  string // JWT secret key
	IsProd     bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:    getEnv("APP_PORT", "8080"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     os.Getenv("DB_NAME"),
		SQLitePath: getEnv("SQLITE_PATH", "data.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		IsProd:     os.Getenv("IS_PROD") == "true",
	}
}

// getEnv returns the environment variable or a fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
