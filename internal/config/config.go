// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Mongo       MongoConfig
	SeedData    bool
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type MongoConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	// TimeoutSeconds bounds server selection when connecting.
	TimeoutSeconds int
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Mongo: MongoConfig{
			Host:           getEnv("MONGO_HOST", "localhost"),
			Port:           getEnv("MONGO_PORT", "27017"),
			User:           getEnv("MONGO_USER", "admin"),
			Password:       getEnv("MONGO_PASS", "secret"),
			Database:       getEnv("MONGO_DB", "bier"),
			TimeoutSeconds: getEnvAsInt("MONGO_TIMEOUT", 5),
		},
		SeedData: getEnvAsBool("SEED_DATA", false),
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Mongo.Password == "secret" && c.Environment == "production" {
		return fmt.Errorf("MongoDB password must be changed in production")
	}
	return nil
}

// URI builds the mongodb:// connection string.
func (c MongoConfig) URI() string {
	if c.User == "" {
		return fmt.Sprintf("mongodb://%s:%s/", c.Host, c.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/", c.User, c.Password, c.Host, c.Port)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
