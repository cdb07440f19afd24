package config

import (
	"strconv"

	"gym_crm_backend/pkg/utils"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	DBSchemaPath string

	ServerPort string
	JWTSecret  string

	CORSAllowedOrigins string

	// ExpiringThresholdDays is the authoritative "expiring soon" window in
	// calendar days. The reference behaviour showed both 5 and 7; a single
	// configured value is applied everywhere.
	ExpiringThresholdDays int

	// CheckInRevenueRate is the flat revenue estimate per check-in, in
	// currency minor units. An estimate, not a price lookup.
	CheckInRevenueRate float64
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		DBHost:       utils.Getenv("DB_HOST", "localhost"),
		DBPort:       utils.Getenv("DB_PORT", "5432"),
		DBUser:       utils.Getenv("DB_USER", "gym_crm_user"),
		DBPassword:   utils.Getenv("DB_PASSWORD", "gym_crm_password"),
		DBName:       utils.Getenv("DB_NAME", "gym_crm_db"),
		DBSSLMode:    utils.Getenv("DB_SSLMODE", "disable"),
		DBSchemaPath: utils.Getenv("DB_SCHEMA_PATH", ""),

		ServerPort: utils.Getenv("PORT", "8080"),
		JWTSecret:  utils.Getenv("JWT_SECRET", "change-me-gym-crm-jwt-secret"),

		CORSAllowedOrigins: utils.Getenv("CORS_ALLOWED_ORIGINS", ""),

		ExpiringThresholdDays: getEnvInt("EXPIRING_THRESHOLD_DAYS", 7),
		CheckInRevenueRate:    getEnvFloat("CHECKIN_REVENUE_RATE", 25000),
	}
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(utils.Getenv(key, "")); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(utils.Getenv(key, ""), 64); err == nil && v >= 0 {
		return v
	}
	return fallback
}
