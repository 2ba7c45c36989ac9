package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is the single source of truth for runtime parameters.
type Config struct {
	Port string
	Env  string

	Mongo MongoConfig
}

// MongoConfig contains MongoDB connection parameters.
type MongoConfig struct {
	URI      string
	Database string
}

// Load reads configuration from environment variables. An env file is loaded
// first when present: ENV_FILE takes precedence, then ENVIRONMENT=staging
// selects .env.staging, otherwise the default .env. Missing files are ignored
// so environments relying solely on real environment variables keep working.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{}

	cfg.Port = getEnv("PORT", "8000")
	cfg.Env = getEnv("ENV", "development")

	cfg.Mongo = MongoConfig{
		URI:      getEnv("MONGO_URI", ""),
		Database: getEnv("MONGO_DB", "inventory_demo"),
	}

	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGO_URI environment variable is required")
	}

	return cfg, nil
}

func loadEnvFile() {
	if path := os.Getenv("ENV_FILE"); path != "" {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
	if env := getEnv("ENVIRONMENT", ""); strings.EqualFold(env, "staging") {
		if _, err := os.Stat(".env.staging"); err == nil {
			_ = godotenv.Load(".env.staging")
			return
		}
	}
	_ = godotenv.Load()
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
