package config

import (
	"os"
	"strings"
)

// defaultVersion is used when no VERSION file or APP_VERSION override exists
const defaultVersion = "0.1.0"

// GetVersion returns version from environment variable or the VERSION file
func GetVersion() string {
	// Version set by CI/CD wins
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	if content, err := os.ReadFile("VERSION"); err == nil {
		if v := strings.TrimSpace(string(content)); v != "" {
			return v
		}
	}

	return defaultVersion
}
