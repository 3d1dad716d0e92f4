package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"agridash/internal/analytics"
	"agridash/internal/dataset"
)

func sampleDataset() dataset.Dataset {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return dataset.Dataset{
		{Date: day, Field: "Field B", Crop: "Corn", Temperature: 20, SoilMoisture: 60, Rainfall: 4, CropYield: 1000, CO2Emission: 20, NDVI: 0.8},
		{Date: day.AddDate(0, 0, 1), Field: "Field A", Crop: "Corn", Temperature: 30, SoilMoisture: 80, Rainfall: 6, CropYield: 1500, CO2Emission: 30, NDVI: 0.6},
		{Date: day.AddDate(0, 0, 2), Field: "Field B", Crop: "Wheat", Temperature: 25, SoilMoisture: 70, Rainfall: 2, CropYield: 1200, CO2Emission: 25, NDVI: 0.7},
	}
}

func TestBuildKPIFormatting(t *testing.T) {
	kpi := BuildKPI(sampleDataset())

	if kpi.TotalYield != "3,700 kg" {
		t.Errorf("total yield: got %q", kpi.TotalYield)
	}
	if kpi.AvgTemp != "25.0 °C" {
		t.Errorf("avg temp: got %q", kpi.AvgTemp)
	}
	if kpi.AvgSoilMoisture != "70%" {
		t.Errorf("avg soil moisture: got %q", kpi.AvgSoilMoisture)
	}
	if kpi.TotalRainfall != "12 mm" {
		t.Errorf("total rainfall: got %q", kpi.TotalRainfall)
	}
	if kpi.CO2Footprint != "25.0 kg/ha" {
		t.Errorf("co2 footprint: got %q", kpi.CO2Footprint)
	}
}

func TestYieldChartOneTracePerField(t *testing.T) {
	payload := YieldChart(sampleDataset())

	if len(payload.Data) != 2 {
		t.Fatalf("expected 2 traces, got %d", len(payload.Data))
	}
	// first-seen order
	if payload.Data[0].Name != "Field B" || payload.Data[1].Name != "Field A" {
		t.Errorf("unexpected trace order: %q, %q", payload.Data[0].Name, payload.Data[1].Name)
	}
	if len(payload.Data[0].X) != 2 || len(payload.Data[0].Y) != 2 {
		t.Errorf("Field B trace should hold 2 points, got %d/%d", len(payload.Data[0].X), len(payload.Data[0].Y))
	}
	if payload.Data[0].X[0] != "2024-01-01" {
		t.Errorf("unexpected date label %q", payload.Data[0].X[0])
	}
	if payload.Layout.Title != "Yield Over Time" {
		t.Errorf("unexpected title %q", payload.Layout.Title)
	}
	for _, trace := range payload.Data {
		if trace.Type != "scatter" || trace.Mode != "lines" {
			t.Errorf("trace %q is not a line trace: %q/%q", trace.Name, trace.Type, trace.Mode)
		}
	}
}

func TestAnomalyBarChartColors(t *testing.T) {
	flags := []analytics.AnomalyFlag{
		{Field: "Field A", Score: 0.12},
		{Field: "Field B", Score: -0.04, Anomalous: true},
	}
	payload := AnomalyBarChart(flags)

	if len(payload.Data) != 1 {
		t.Fatalf("expected a single bar trace, got %d", len(payload.Data))
	}
	trace := payload.Data[0]
	if trace.Type != "bar" {
		t.Errorf("expected bar trace, got %q", trace.Type)
	}
	colors, ok := trace.Marker.Color.([]string)
	if !ok {
		t.Fatalf("marker color should be a color list, got %T", trace.Marker.Color)
	}
	if colors[0] != "green" || colors[1] != "red" {
		t.Errorf("unexpected colors %v", colors)
	}
}

func TestSatelliteDataGrid(t *testing.T) {
	grid := SatelliteData(sampleDataset())

	if len(grid.X) != 2 || len(grid.Z) != 2 {
		t.Fatalf("expected 2x2 grid for 2 fields, got %dx%d", len(grid.X), len(grid.Z))
	}
	// diagonal reads the field's own mean NDVI
	if grid.Z[0][0] != 0.75 {
		t.Errorf("Field B diagonal: expected 0.75, got %v", grid.Z[0][0])
	}
	if grid.Z[1][1] != 0.6 {
		t.Errorf("Field A diagonal: expected 0.6, got %v", grid.Z[1][1])
	}
	if grid.Z[0][1] != grid.Z[1][0] {
		t.Errorf("grid should be symmetric: %v vs %v", grid.Z[0][1], grid.Z[1][0])
	}
}

func TestSatelliteDataEmptyFallback(t *testing.T) {
	grid := SatelliteData(dataset.Dataset{})

	if len(grid.X) != len(dataset.FieldNames) {
		t.Fatalf("expected fallback grid over %d fields, got %d", len(dataset.FieldNames), len(grid.X))
	}
	for i := range grid.Z {
		for j := range grid.Z[i] {
			if grid.Z[i][j] != 0.7 {
				t.Errorf("fallback cell (%d,%d) = %v, want 0.7", i, j, grid.Z[i][j])
			}
		}
	}
}

func TestErrorPayloadSerialization(t *testing.T) {
	raw, err := json.Marshal(ErrorPayload("forecast unavailable"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"error":"forecast unavailable"`) {
		t.Errorf("missing error field: %s", raw)
	}
	if !strings.Contains(string(raw), `"data":[]`) {
		t.Errorf("degraded payload should carry an empty trace list: %s", raw)
	}
}
