package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Export ExportConfig
	Batch  BatchConfig
}

// ExportConfig holds output-related configuration
type ExportConfig struct {
	OutputPath string
	HistoryDSN string
}

// BatchConfig holds batch-processing configuration
type BatchConfig struct {
	Workers int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Export: ExportConfig{
			OutputPath: getEnv("KN_OUTPUT", "KN_Invoice_Summary.xlsx"),
			HistoryDSN: getEnv("KN_DB_PATH", ""),
		},
		Batch: BatchConfig{
			Workers: getEnvAsInt("KN_WORKERS", 4),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
