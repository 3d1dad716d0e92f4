package storage

import (
	"context"
)

// Client defines the storage operations the dashboard needs: reading the
// optional backing dataset file and persisting rendered chart images.
type Client interface {
	// Close closes the storage client
	Close() error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// StoreFile stores a file at the specified path
	StoreFile(ctx context.Context, filePath string, fileData []byte) error

	// FileExists checks if a file exists at the specified path
	FileExists(ctx context.Context, filePath string) (bool, error)
}
