package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string // HTTP listen port
	RedisURL    string
	SecretKey   string // Secret key for JWT token signing
	JWTTTL      int    // JWT token expiration time in hours
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("PORT", "3333"),
		RedisURL:    getEnv("REDIS_URL", ""),
		SecretKey:   getEnv("SECRET_KEY", ""),
		JWTTTL:      getEnvInt("JWT_TTL_HOURS", 48), // tokens are valid for 2 days
	}
}

// Validate checks that the configuration required to boot is present.
// The process must not start without a datastore and a signing secret.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("required environment variable DATABASE_URL is not set")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("required environment variable SECRET_KEY is not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
