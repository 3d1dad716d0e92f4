package analytics

import (
	"math"
	"math/rand"
	"sort"
)

// Contamination is the fixed fraction of fields the outlier operator is
// expected to flag as anomalous.
const Contamination = 0.2

// outlierSeed fixes the forest construction so scores are reproducible
// within a process run.
const outlierSeed = 42

const outlierTrees = 100

// AnomalyFlag marks whether a field's aggregate operational profile diverges
// from the majority. A negative decision score means anomalous.
type AnomalyFlag struct {
	Field     string  `json:"field"`
	Score     float64 `json:"score"`
	Anomalous bool    `json:"anomalous"`
}

// DetectOutliers scores each field aggregate with an isolation forest over
// temperature, humidity, soil moisture, yield and equipment hours, then
// flags the round(Contamination*N) highest-scoring rows (minimum one).
func DetectOutliers(aggs []FieldAggregate) ([]AnomalyFlag, error) {
	n := len(aggs)
	if n == 0 {
		return nil, ErrEmptyDataset
	}

	rows := make([][]float64, n)
	for i, agg := range aggs {
		rows[i] = []float64{agg.Temperature, agg.Humidity, agg.SoilMoisture, agg.CropYield, agg.EquipmentHours}
	}
	scores := isolationScores(rows)

	flagCount := int(math.Round(Contamination * float64(n)))
	if flagCount < 1 {
		flagCount = 1
	}
	if flagCount > n {
		flagCount = n
	}

	// Rank rows by isolation score, most anomalous first
	ranked := make([]int, n)
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return scores[ranked[a]] > scores[ranked[b]]
	})

	// Decision offset sits between the last flagged and first unflagged
	// score, so flagged rows land below zero.
	var offset float64
	if flagCount == n {
		offset = scores[ranked[n-1]] - 1e-9
	} else {
		offset = (scores[ranked[flagCount-1]] + scores[ranked[flagCount]]) / 2
	}

	flags := make([]AnomalyFlag, n)
	for i, agg := range aggs {
		flags[i] = AnomalyFlag{
			Field: agg.Field,
			Score: offset - scores[i],
		}
	}
	for rank := 0; rank < flagCount; rank++ {
		flags[ranked[rank]].Anomalous = true
	}
	return flags, nil
}

// isolationScores computes the standard isolation-forest anomaly score for
// each row: 2^(-E[pathLength]/c(sampleSize)), in (0, 1], higher means more
// isolated.
func isolationScores(rows [][]float64) []float64 {
	n := len(rows)
	rng := rand.New(rand.NewSource(outlierSeed))

	sampleSize := n
	if sampleSize > 256 {
		sampleSize = 256
	}
	heightLimit := int(math.Ceil(math.Log2(float64(sampleSize)))) + 1

	totals := make([]float64, n)
	for t := 0; t < outlierTrees; t++ {
		sample := subsample(rows, sampleSize, rng)
		tree := buildIsolationTree(sample, 0, heightLimit, rng)
		for i, row := range rows {
			totals[i] += tree.pathLength(row, 0)
		}
	}

	norm := avgPathLength(float64(sampleSize))
	scores := make([]float64, n)
	for i := range scores {
		mean := totals[i] / float64(outlierTrees)
		scores[i] = math.Pow(2, -mean/norm)
	}
	return scores
}

func subsample(rows [][]float64, size int, rng *rand.Rand) [][]float64 {
	if size >= len(rows) {
		return rows
	}
	perm := rng.Perm(len(rows))
	sample := make([][]float64, size)
	for i := 0; i < size; i++ {
		sample[i] = rows[perm[i]]
	}
	return sample
}

type isoNode struct {
	feature  int
	split    float64
	left     *isoNode
	right    *isoNode
	size     int
	terminal bool
}

func buildIsolationTree(rows [][]float64, depth, heightLimit int, rng *rand.Rand) *isoNode {
	if len(rows) <= 1 || depth >= heightLimit {
		return &isoNode{size: len(rows), terminal: true}
	}

	// Pick a random feature with spread; all-constant data is terminal
	dims := len(rows[0])
	candidates := make([]int, 0, dims)
	for j := 0; j < dims; j++ {
		lo, hi := columnRange(rows, j)
		if hi > lo {
			candidates = append(candidates, j)
		}
	}
	if len(candidates) == 0 {
		return &isoNode{size: len(rows), terminal: true}
	}

	feature := candidates[rng.Intn(len(candidates))]
	lo, hi := columnRange(rows, feature)
	split := lo + rng.Float64()*(hi-lo)

	var left, right [][]float64
	for _, row := range rows {
		if row[feature] < split {
			left = append(left, row)
		} else {
			right = append(right, row)
		}
	}

	return &isoNode{
		feature: feature,
		split:   split,
		left:    buildIsolationTree(left, depth+1, heightLimit, rng),
		right:   buildIsolationTree(right, depth+1, heightLimit, rng),
	}
}

func (n *isoNode) pathLength(row []float64, depth int) float64 {
	if n.terminal {
		if n.size > 1 {
			return float64(depth) + avgPathLength(float64(n.size))
		}
		return float64(depth)
	}
	if row[n.feature] < n.split {
		return n.left.pathLength(row, depth+1)
	}
	return n.right.pathLength(row, depth+1)
}

// avgPathLength is c(n), the average path length of an unsuccessful BST
// search, used to normalize isolation depths.
func avgPathLength(n float64) float64 {
	if n <= 1 {
		return 1
	}
	const eulerMascheroni = 0.5772156649
	harmonic := math.Log(n-1) + eulerMascheroni
	return 2*harmonic - 2*(n-1)/n
}

func columnRange(rows [][]float64, j int) (float64, float64) {
	lo, hi := rows[0][j], rows[0][j]
	for _, row := range rows[1:] {
		if row[j] < lo {
			lo = row[j]
		}
		if row[j] > hi {
			hi = row[j]
		}
	}
	return lo, hi
}
