package analytics

import (
	"fmt"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"gonum.org/v1/gonum/stat"
)

// NumClusters is the fixed cluster cardinality of the segmentation operator
const NumClusters = 3

// ClusterAssignment maps a field identifier to an integer cluster label.
// Labels are stable within one partition call only; the underlying data may
// be regenerated between requests.
type ClusterAssignment struct {
	Field   string `json:"field"`
	Cluster int    `json:"cluster"`
}

// ClusterFields segments fields into NumClusters groups by their aggregate
// temperature, humidity, soil moisture and yield profile. Attributes are
// standardized to zero mean and unit variance before partitioning.
//
// With fewer than NumClusters rows a k-means partition is undefined; the
// operator still produces a valid assignment by labeling each row with its
// own index. Degenerate clusters are accepted, not corrected.
func ClusterFields(aggs []FieldAggregate) ([]ClusterAssignment, error) {
	if len(aggs) == 0 {
		return nil, ErrEmptyDataset
	}

	assignments := make([]ClusterAssignment, len(aggs))
	for i, agg := range aggs {
		assignments[i] = ClusterAssignment{Field: agg.Field, Cluster: i % NumClusters}
	}
	if len(aggs) < NumClusters {
		return assignments, nil
	}

	matrix := standardize([][]float64{
		column(aggs, func(a FieldAggregate) float64 { return a.Temperature }),
		column(aggs, func(a FieldAggregate) float64 { return a.Humidity }),
		column(aggs, func(a FieldAggregate) float64 { return a.SoilMoisture }),
		column(aggs, func(a FieldAggregate) float64 { return a.CropYield }),
	})

	observations := make(clusters.Observations, len(aggs))
	for i := range aggs {
		point := make(clusters.Coordinates, len(matrix))
		for j := range matrix {
			point[j] = matrix[j][i]
		}
		observations[i] = point
	}

	km := kmeans.New()
	partition, err := km.Partition(observations, NumClusters)
	if err != nil {
		return nil, fmt.Errorf("k-means partition failed: %w", err)
	}

	for i := range aggs {
		assignments[i].Cluster = partition.Nearest(observations[i])
	}
	return assignments, nil
}

// standardize scales each column to zero mean and unit variance. Columns
// with zero variance are mapped to all zeros.
func standardize(columns [][]float64) [][]float64 {
	out := make([][]float64, len(columns))
	for i, col := range columns {
		m := stat.Mean(col, nil)
		sd := stat.StdDev(col, nil)

		scaled := make([]float64, len(col))
		if sd > 0 {
			for j, v := range col {
				scaled[j] = (v - m) / sd
			}
		}
		out[i] = scaled
	}
	return out
}

func column(aggs []FieldAggregate, pick func(FieldAggregate) float64) []float64 {
	col := make([]float64, len(aggs))
	for i, agg := range aggs {
		col[i] = pick(agg)
	}
	return col
}
