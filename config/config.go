package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver    string // postgres, mysql or sqlite
	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string
	DBLogLevel  string

	JWTKey         string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration
	SaltRound      int

	AllowOrigins string
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
		Port: getEnv("PORT", "5000"),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "classroom"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBLogLevel:  strings.ToLower(getEnv("DB_LOG_LEVEL", "warn")),

		JWTKey:         getEnv("JWT_SECRET_KEY", "defaultSecret"),
		JWTAlgorithm:   strings.ToUpper(getEnv("JWT_ALGORITHM", "HS256")),
		AccessTokenTTL: time.Duration(getEnvInt("JWT_ACCESS_TOKEN_EXPIRES", 1)) * time.Hour,
		SaltRound:      getEnvInt("SALT_ROUND", 10),

		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	switch AppConfig.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		log.Printf("Warning: unsupported JWT_ALGORITHM %q, falling back to HS256.", AppConfig.JWTAlgorithm)
		AppConfig.JWTAlgorithm = "HS256"
	}
	if AppConfig.AccessTokenTTL <= 0 {
		log.Println("Warning: JWT_ACCESS_TOKEN_EXPIRES must be positive, falling back to 1 hour.")
		AppConfig.AccessTokenTTL = time.Hour
	}
}

// DSN returns the datastore connection string. DATABASE_URL wins; otherwise the
// postgres DSN is assembled from the discrete DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBDriver == "sqlite" {
		return c.DBName + ".db"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
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
