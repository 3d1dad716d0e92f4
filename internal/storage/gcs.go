package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"

	gcs "cloud.google.com/go/storage"

	"agridash/internal/logger"
)

// GCSClient handles Google Cloud Storage operations for bucket-hosted datasets
type GCSClient struct {
	client *gcs.Client
	bucket string
}

// NewGCSClient creates a new GCS client
func NewGCSClient(ctx context.Context, bucketName string) (*GCSClient, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSClient{
		client: client,
		bucket: bucketName,
	}, nil
}

// Close closes the GCS client
func (g *GCSClient) Close() error {
	return g.client.Close()
}

// GetFile retrieves an object from the bucket
func (g *GCSClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	obj := g.client.Bucket(g.bucket).Object(filePath)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %s: %w", filePath, err)
	}
	defer reader.Close()

	fileData, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", filePath, err)
	}

	return fileData, nil
}

// StoreFile stores an object in the bucket
func (g *GCSClient) StoreFile(ctx context.Context, filePath string, fileData []byte) error {
	logger.Debugf("Storing file to GCS: gs://%s/%s", g.bucket, filePath)

	obj := g.client.Bucket(g.bucket).Object(filePath)
	writer := obj.NewWriter(ctx)
	writer.ContentType = contentTypeFor(filePath)

	if _, err := writer.Write(fileData); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write object %s: %w", filePath, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize upload of %s: %w", filePath, err)
	}

	return nil
}

// FileExists checks whether an object exists in the bucket
func (g *GCSClient) FileExists(ctx context.Context, filePath string) (bool, error) {
	obj := g.client.Bucket(g.bucket).Object(filePath)

	_, err := obj.Attrs(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat object %s: %w", filePath, err)
}

// contentTypeFor guesses a content type from the file extension
func contentTypeFor(filePath string) string {
	if ct := mime.TypeByExtension(filepath.Ext(filePath)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
