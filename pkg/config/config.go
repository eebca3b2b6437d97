package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	Environment string

	// JWT
	JWTSecret    string
	JWTExpiresIn string

	// Geographic subdivision API (PSGC)
	PSGCBaseURL string

	// AI assistant
	AssistantAPIURL string
	AssistantAPIKey string

	// Outbound HTTP
	HTTPClientTimeoutSeconds int

	// Allowed Origins
	AllowedOrigins string
}

var AppConfig *Config

// LoadConfig loads environment variables into Config struct
func LoadConfig() {
	// Load .env file if it exists (optional in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:                     getEnv("PORT", "5500"),
		Environment:              getEnv("APP_ENV", "development"),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		JWTExpiresIn:             getEnv("JWT_EXPIRES_IN", "7d"),
		PSGCBaseURL:              getEnv("PSGC_API_URL", "https://psgc.gitlab.io/api"),
		AssistantAPIURL:          getEnv("ASSISTANT_API_URL", ""),
		AssistantAPIKey:          getEnv("ASSISTANT_API_KEY", ""),
		HTTPClientTimeoutSeconds: getEnvInt("HTTP_CLIENT_TIMEOUT_SECONDS", 15),
		AllowedOrigins:           getEnv("ALLOWED_ORIGINS", ""),
	}

	// Validate required config
	if AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	log.Println("Configuration loaded successfully")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// IsProduction returns true if running in production mode
func IsProduction() bool {
	return AppConfig.Environment == "production"
}

// IsDevelopment returns true if running in development mode
func IsDevelopment() bool {
	return AppConfig.Environment == "development" || AppConfig.Environment == ""
}
