package charts

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"agridash/internal/analytics"
	"agridash/internal/dataset"
	"agridash/internal/storage"
)

func testInputs(t *testing.T) (dataset.Dataset, []analytics.FieldAggregate, []float64) {
	t.Helper()
	ds := dataset.Synthesize("Green Valley Farm")
	aggs, err := analytics.AggregateByField(ds)
	if err != nil {
		t.Fatalf("aggregation failed: %v", err)
	}
	forecast := []float64{1200, 1210, 1195, 1220, 1230, 1215, 1240}
	return ds, aggs, forecast
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("chart file unreadable: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("%s is not a PNG image", path)
	}
}

func TestGenerateCharts(t *testing.T) {
	ds, aggs, forecast := testInputs(t)
	cg := NewChartGenerator(t.TempDir())

	chartFiles, err := cg.GenerateCharts(ds, aggs, forecast)
	if err != nil {
		t.Fatalf("GenerateCharts failed: %v", err)
	}
	if len(chartFiles) != 4 {
		t.Fatalf("expected 4 charts, got %d: %v", len(chartFiles), chartFiles)
	}
	for _, path := range chartFiles {
		assertPNG(t, path)
	}
}

func TestGenerateChartsEmptyDataset(t *testing.T) {
	cg := NewChartGenerator(t.TempDir())

	chartFiles, err := cg.GenerateCharts(dataset.Dataset{}, nil, nil)
	if err != nil {
		t.Fatalf("GenerateCharts should not fail outright: %v", err)
	}
	if len(chartFiles) != 0 {
		t.Errorf("expected no charts for empty input, got %v", chartFiles)
	}
}

func TestGenerateYieldTrendChart(t *testing.T) {
	ds, _, _ := testInputs(t)
	cg := NewChartGenerator(t.TempDir())

	path, err := cg.generateYieldTrendChart(ds)
	if err != nil {
		t.Fatalf("yield trend chart failed: %v", err)
	}
	if filepath.Base(path) != "yield_trend.png" {
		t.Errorf("unexpected filename %s", path)
	}
	assertPNG(t, path)
}

func TestGenerateForecastChartRequiresForecast(t *testing.T) {
	ds, _, _ := testInputs(t)
	cg := NewChartGenerator(t.TempDir())

	if _, err := cg.generateForecastChart(ds, nil); err == nil {
		t.Error("expected error without forecast values")
	}
}

func TestPersistUploadsCharts(t *testing.T) {
	ds, aggs, forecast := testInputs(t)
	cg := NewChartGenerator(t.TempDir())

	chartFiles, err := cg.GenerateCharts(ds, aggs, forecast)
	if err != nil {
		t.Fatalf("GenerateCharts failed: %v", err)
	}

	storeDir := t.TempDir()
	store, err := storage.NewLocalClient(storeDir)
	if err != nil {
		t.Fatalf("local storage client failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := cg.Persist(ctx, store, "reports/latest", chartFiles); err != nil {
		t.Fatalf("Persist failed: %v", err)
	}

	for _, path := range chartFiles {
		key := filepath.Join("reports/latest", filepath.Base(path))
		exists, err := store.FileExists(ctx, key)
		if err != nil {
			t.Fatalf("FileExists failed: %v", err)
		}
		if !exists {
			t.Errorf("chart %s not persisted", key)
		}
	}
}
