package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the farm dashboard service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8900"`

	// Dataset configuration
	DataFile   string `env:"DATA_FILE,default=agriculture.csv"`
	DataDir    string `env:"DATA_DIR,default=."`
	DatasetURL string `env:"DATASET_URL"`

	// GCP configuration (optional, for bucket-hosted datasets)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// OpenAI configuration (optional, rule-based advisor is the fallback)
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL,default=gpt-4o-mini"`

	// Dashboard defaults
	DefaultFarm     string `env:"DEFAULT_FARM,default=Green Valley Farm"`
	ForecastHorizon int    `env:"FORECAST_HORIZON,default=30"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
