package config

import (
	"os"
	"strconv"
)

// Config holds the process-level settings. Database settings live in DBConfig.
type Config struct {
	Server ServerConfig
}

type ServerConfig struct {
	Port        string
	Mode        string
	AutoMigrate bool
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			Mode:        getEnv("APP_MODE", "development"),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
