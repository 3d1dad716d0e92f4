package dataset

import (
	"sort"
	"time"
)

// Dataset is an ordered collection of observations. Filtering never mutates
// the receiver; every filter returns a new view.
type Dataset []Observation

// Empty reports whether the dataset has no rows
func (d Dataset) Empty() bool {
	return len(d) == 0
}

// FilterCrops keeps rows whose crop type is in the given set. An empty set
// keeps everything. Unrecognized crop names simply match nothing.
func (d Dataset) FilterCrops(crops []string) Dataset {
	if len(crops) == 0 {
		return d
	}
	allowed := make(map[string]bool, len(crops))
	for _, c := range crops {
		allowed[c] = true
	}

	out := make(Dataset, 0, len(d))
	for _, obs := range d {
		if allowed[obs.Crop] {
			out = append(out, obs)
		}
	}
	return out
}

// FilterFarm keeps rows belonging to the given farm. Rows without a farm
// value (synthetic data has none) are kept, matching the lenient behavior of
// datasets that carry no farm column.
func (d Dataset) FilterFarm(farm string) Dataset {
	if farm == "" {
		return d
	}

	out := make(Dataset, 0, len(d))
	for _, obs := range d {
		if obs.Farm == "" || obs.Farm == farm {
			out = append(out, obs)
		}
	}
	return out
}

// FilterDateRange keeps rows with start <= date <= end. Zero bounds are open.
func (d Dataset) FilterDateRange(start, end time.Time) Dataset {
	if start.IsZero() && end.IsZero() {
		return d
	}

	out := make(Dataset, 0, len(d))
	for _, obs := range d {
		if !start.IsZero() && obs.Date.Before(start) {
			continue
		}
		if !end.IsZero() && obs.Date.After(end) {
			continue
		}
		out = append(out, obs)
	}
	return out
}

// Fields returns the distinct field identifiers in first-seen order
func (d Dataset) Fields() []string {
	seen := make(map[string]bool)
	var fields []string
	for _, obs := range d {
		if !seen[obs.Field] {
			seen[obs.Field] = true
			fields = append(fields, obs.Field)
		}
	}
	return fields
}

// Crops returns the distinct crop types in first-seen order
func (d Dataset) Crops() []string {
	seen := make(map[string]bool)
	var crops []string
	for _, obs := range d {
		if !seen[obs.Crop] {
			seen[obs.Crop] = true
			crops = append(crops, obs.Crop)
		}
	}
	return crops
}

// YieldSeries returns crop-yield values across all fields ordered by date,
// the input shape the forecasting operator expects.
func (d Dataset) YieldSeries() []float64 {
	ordered := make(Dataset, len(d))
	copy(ordered, d)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	series := make([]float64, len(ordered))
	for i, obs := range ordered {
		series[i] = obs.CropYield
	}
	return series
}
