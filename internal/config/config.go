package config

import (
	"os"
)

// Config holds application configuration
type Config struct {
	Port        string
	LogLevel    string
	CatalogPath string
	SlabsPath   string
}

// NewConfig loads configuration from environment variables. Empty
// reference-data paths mean the compiled-in defaults are used.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		SlabsPath:   getEnv("TAX_SLABS_PATH", ""),
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
