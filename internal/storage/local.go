package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalClient handles local file system storage operations
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a new local storage client rooted at baseDir
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalClient{
		baseDir: baseDir,
	}, nil
}

// Close is a no-op for local storage (implements the same interface as GCSClient)
func (l *LocalClient) Close() error {
	return nil
}

// GetFile retrieves a file relative to the base directory
func (l *LocalClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}

// StoreFile stores a file relative to the base directory
func (l *LocalClient) StoreFile(ctx context.Context, filePath string, fileData []byte) error {
	fullPath := filepath.Join(l.baseDir, filePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filePath, err)
	}
	if err := os.WriteFile(fullPath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}

	return nil
}

// FileExists checks whether a file exists relative to the base directory
func (l *LocalClient) FileExists(ctx context.Context, filePath string) (bool, error) {
	_, err := os.Stat(filepath.Join(l.baseDir, filePath))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat file %s: %w", filePath, err)
}
