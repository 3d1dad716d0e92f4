package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"agridash/internal/dataset"
)

// generateForecastChart renders the recent yield history with the projected
// values appended after the last observed date.
func (cg *ChartGenerator) generateForecastChart(ds dataset.Dataset, forecast []float64) (string, error) {
	filename := filepath.Join(cg.outputDir, "forecast.png")

	history := ds.YieldSeries()
	if len(history) < 2 || len(forecast) == 0 {
		return "", fmt.Errorf("not enough data for a forecast chart")
	}

	lastDate := dataset.SyntheticEnd
	if len(ds) > 0 {
		lastDate = ds[0].Date
		for _, obs := range ds {
			if obs.Date.After(lastDate) {
				lastDate = obs.Date
			}
		}
	}

	historyX := make([]time.Time, len(history))
	for i := range history {
		historyX[i] = lastDate.AddDate(0, 0, i-len(history)+1)
	}
	forecastX := make([]time.Time, len(forecast))
	for i := range forecast {
		forecastX[i] = lastDate.AddDate(0, 0, i+1)
	}

	graph := chart.Chart{
		Title:  "Yield Forecast",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Yield (kg/ha)",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Observed",
				XValues: historyX,
				YValues: history,
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 1, G: 91, B: 49, A: 255},
					StrokeWidth: 2,
				},
			},
			chart.TimeSeries{
				Name:    "Projected",
				XValues: forecastX,
				YValues: forecast,
				Style: chart.Style{
					StrokeColor:     drawing.Color{R: 255, G: 183, B: 77, A: 255},
					StrokeWidth:     2,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create forecast chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render forecast chart: %w", err)
	}
	return filename, nil
}
