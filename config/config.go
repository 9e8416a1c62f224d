package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	PayoutApiURL     string // Base URL of the remote payout backend
	PayoutApiVersion string
	PayoutApiTimeout int // seconds

	// Transfer mode policy bounds. These are deployment policy values,
	// not business law; revisit per environment.
	IMPSMaxAmount float64
	RTGSMinAmount float64

	UploadDir string

	EmailSender string
	Password    string // SMTP Password

	StatusPollSpec string // cron spec for the pending payout poller
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "paydash"),
		DBPort:     getEnv("DB_PORT", "5432"),

		PayoutApiURL:     getEnv("PAYOUT_API_URL", "https://www.khaofit.xyz"),
		PayoutApiVersion: getEnv("PAYOUT_API_VERSION", "v1"),
		PayoutApiTimeout: getEnvInt("PAYOUT_API_TIMEOUT", 30),

		IMPSMaxAmount: getEnvFloat("IMPS_MAX_AMOUNT", 500000),
		RTGSMinAmount: getEnvFloat("RTGS_MIN_AMOUNT", 200000),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),

		StatusPollSpec: getEnv("STATUS_POLL_SPEC", "@every 2m"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvFloat retrieves an environment variable as a float or returns the default float value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to float: %v", key, err)
		return defaultValue
	}
	return floatValue
}
