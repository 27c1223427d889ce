package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Single admin identity. The password is checked against
	// AdminPasswordHash (bcrypt) when set, otherwise against AdminPassword.
	AdminEmail        string
	AdminPasswordHash string
	AdminPassword     string

	// Upload destinations, served read-only under /uploads.
	PhotoDir    string
	DocumentDir string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "5000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "morya"),

		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@gmail.com"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),

		PhotoDir:    getEnv("PHOTO_DIR", "uploads/photos"),
		DocumentDir: getEnv("DOCUMENT_DIR", "uploads/documents"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.AdminPasswordHash == "" && AppConfig.AdminPassword == "" {
		log.Println("Warning: No admin password configured. Login will always fail.")
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
