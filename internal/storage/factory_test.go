package storage

import (
	"context"
	"testing"

	"agridash/internal/config"
)

func TestNewClientLocal(t *testing.T) {
	cfg := &config.Config{DataDir: t.TempDir()}

	client, err := NewClient(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if _, ok := client.(*LocalClient); !ok {
		t.Errorf("expected *LocalClient without GCS bucket, got %T", client)
	}
}

func TestNewClientLocalDefaultsDataDir(t *testing.T) {
	cfg := &config.Config{}

	client, err := NewClient(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	if _, ok := client.(*LocalClient); !ok {
		t.Errorf("expected *LocalClient, got %T", client)
	}
}
