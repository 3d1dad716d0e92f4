package analytics

import (
	"errors"
	"testing"

	"agridash/internal/dataset"
)

func TestClusterFieldsLabels(t *testing.T) {
	ds := dataset.Synthesize("Green Valley Farm")
	aggs, err := AggregateByField(ds)
	if err != nil {
		t.Fatalf("aggregation failed: %v", err)
	}
	if len(aggs) < NumClusters {
		t.Skipf("synthetic dataset produced %d fields, need %d", len(aggs), NumClusters)
	}

	assignments, err := ClusterFields(aggs)
	if err != nil {
		t.Fatalf("ClusterFields failed: %v", err)
	}
	if len(assignments) != len(aggs) {
		t.Fatalf("expected %d assignments, got %d", len(aggs), len(assignments))
	}
	for _, a := range assignments {
		if a.Cluster < 0 || a.Cluster >= NumClusters {
			t.Errorf("field %q assigned to invalid cluster %d", a.Field, a.Cluster)
		}
	}
}

func TestClusterFieldsDegenerate(t *testing.T) {
	aggs := []FieldAggregate{
		{Field: "Field A", Temperature: 25, Humidity: 65, SoilMoisture: 70, CropYield: 1200},
		{Field: "Field B", Temperature: 20, Humidity: 60, SoilMoisture: 50, CropYield: 900},
	}

	assignments, err := ClusterFields(aggs)
	if err != nil {
		t.Fatalf("ClusterFields failed on degenerate input: %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(assignments))
	}
	for i, a := range assignments {
		if a.Cluster != i {
			t.Errorf("degenerate assignment %d: expected label %d, got %d", i, i, a.Cluster)
		}
	}
}

func TestClusterFieldsEmpty(t *testing.T) {
	_, err := ClusterFields(nil)
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestStandardizeZeroVariance(t *testing.T) {
	cols := standardize([][]float64{{5, 5, 5}})
	for _, v := range cols[0] {
		if v != 0 {
			t.Errorf("zero-variance column should standardize to zeros, got %v", cols[0])
			break
		}
	}
}
