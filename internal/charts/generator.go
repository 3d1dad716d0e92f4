package charts

import (
	"context"
	"os"
	"path/filepath"

	"agridash/internal/analytics"
	"agridash/internal/dataset"
	"agridash/internal/logger"
	"agridash/internal/storage"
)

// ChartGenerator renders static PNG chart images for reports
type ChartGenerator struct {
	outputDir string
	log       *logger.Logger
}

// NewChartGenerator creates a generator writing under outputDir
func NewChartGenerator(outputDir string) *ChartGenerator {
	return &ChartGenerator{
		outputDir: outputDir,
		log:       logger.GetGlobalLogger().WithComponent("charts"),
	}
}

// GenerateCharts renders the full report chart set and returns the paths of
// the images that rendered successfully. A failed chart is logged and
// skipped, never fatal.
func (cg *ChartGenerator) GenerateCharts(ds dataset.Dataset, aggs []analytics.FieldAggregate, forecast []float64) ([]string, error) {
	if err := os.MkdirAll(cg.outputDir, 0o755); err != nil {
		return nil, err
	}

	var chartFiles []string

	if path, err := cg.generateYieldTrendChart(ds); err == nil {
		chartFiles = append(chartFiles, path)
	} else {
		cg.log.Warnf("yield trend chart failed: %v", err)
	}

	if path, err := cg.generateFieldComparisonChart(aggs); err == nil {
		chartFiles = append(chartFiles, path)
	} else {
		cg.log.Warnf("field comparison chart failed: %v", err)
	}

	if path, err := cg.generateForecastChart(ds, forecast); err == nil {
		chartFiles = append(chartFiles, path)
	} else {
		cg.log.Warnf("forecast chart failed: %v", err)
	}

	if path, err := cg.generateEmissionsChart(aggs); err == nil {
		chartFiles = append(chartFiles, path)
	} else {
		cg.log.Warnf("emissions chart failed: %v", err)
	}

	return chartFiles, nil
}

// Persist uploads rendered chart files through the storage client, keyed by
// base filename under the given prefix.
func (cg *ChartGenerator) Persist(ctx context.Context, store storage.Client, prefix string, chartFiles []string) error {
	for _, path := range chartFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		key := filepath.Join(prefix, filepath.Base(path))
		if err := store.StoreFile(ctx, key, data); err != nil {
			return err
		}
		cg.log.Debugf("persisted chart %s (%d bytes)", key, len(data))
	}
	return nil
}
