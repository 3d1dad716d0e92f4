package dataset

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// download fetches the remote dataset and stores it as the backing file.
// One attempt only: a failed download falls back to synthesis, not a retry.
func (p *Provider) download(ctx context.Context) error {
	client := resty.New()
	client.SetTimeout(30 * time.Second)

	p.log.Info("downloading dataset", map[string]interface{}{"url": p.remoteURL})

	resp, err := client.R().SetContext(ctx).Get(p.remoteURL)
	if err != nil {
		return fmt.Errorf("failed to download dataset: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("dataset download returned status %d", resp.StatusCode())
	}

	if err := p.store.StoreFile(ctx, p.file, resp.Body()); err != nil {
		return fmt.Errorf("failed to store downloaded dataset: %w", err)
	}
	return nil
}
