package storage

import (
	"context"
	"fmt"

	"agridash/internal/config"
)

// NewClient creates a storage client from configuration: a GCS client when a
// bucket is configured, otherwise a local client rooted at the data directory.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	if cfg.GCSBucket != "" {
		gcsClient, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return gcsClient, nil
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	localClient, err := NewLocalClient(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
	}
	return localClient, nil
}
