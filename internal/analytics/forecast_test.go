package analytics

import (
	"errors"
	"math"
	"testing"

	"agridash/internal/dataset"
)

func trendingSeries(n int) []float64 {
	series := make([]float64, n)
	for i := range series {
		series[i] = 1000 + 5*float64(i) + 30*math.Sin(float64(i)/3)
	}
	return series
}

func TestForecastYieldHorizonLength(t *testing.T) {
	for _, horizon := range []int{1, 7, 30, 90} {
		forecast, err := ForecastYield(trendingSeries(90), horizon)
		if err != nil {
			t.Fatalf("horizon %d: ForecastYield failed: %v", horizon, err)
		}
		if len(forecast) != horizon {
			t.Errorf("horizon %d: expected %d values, got %d", horizon, horizon, len(forecast))
		}
		for i, v := range forecast {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("horizon %d: non-finite forecast value at %d: %v", horizon, i, v)
			}
		}
	}
}

func TestForecastYieldZeroHorizon(t *testing.T) {
	forecast, err := ForecastYield(trendingSeries(90), 0)
	if err != nil {
		t.Fatalf("ForecastYield failed: %v", err)
	}
	if len(forecast) != 0 {
		t.Errorf("expected empty forecast for horizon 0, got %d values", len(forecast))
	}
}

func TestForecastYieldShortSeries(t *testing.T) {
	_, err := ForecastYield(trendingSeries(5), 30)
	if !errors.Is(err, ErrForecastUnavailable) {
		t.Errorf("expected ErrForecastUnavailable for short series, got %v", err)
	}
}

func TestForecastYieldConstantSeries(t *testing.T) {
	constant := make([]float64, 50)
	for i := range constant {
		constant[i] = 1200
	}
	_, err := ForecastYield(constant, 30)
	if !errors.Is(err, ErrForecastUnavailable) {
		t.Errorf("expected ErrForecastUnavailable for constant series, got %v", err)
	}
}

func TestForecastYieldPlausibleRange(t *testing.T) {
	series := trendingSeries(90)
	forecast, err := ForecastYield(series, 30)
	if err != nil {
		t.Fatalf("ForecastYield failed: %v", err)
	}

	last := series[len(series)-1]
	for i, v := range forecast {
		// AR/MA coefficients are bounded, so projections cannot run away
		if math.Abs(v-last) > 10*math.Abs(last) {
			t.Fatalf("forecast step %d diverged: %v from level %v", i, v, last)
		}
	}
}

func TestForecastYieldSyntheticDataset(t *testing.T) {
	ds := dataset.Synthesize("Green Valley Farm")
	forecast, err := ForecastYield(ds.YieldSeries(), 30)
	if err != nil {
		t.Fatalf("ForecastYield on synthetic series failed: %v", err)
	}
	if len(forecast) != 30 {
		t.Errorf("expected 30 forecast values, got %d", len(forecast))
	}
}
