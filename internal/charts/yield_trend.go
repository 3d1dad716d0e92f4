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

var fieldPalette = []drawing.Color{
	{R: 1, G: 183, B: 99, A: 255},
	{R: 255, G: 183, B: 77, A: 255},
	{R: 231, G: 76, B: 60, A: 255},
	{R: 102, G: 187, B: 106, A: 255},
}

// generateYieldTrendChart renders one yield time series per field
func (cg *ChartGenerator) generateYieldTrendChart(ds dataset.Dataset) (string, error) {
	filename := filepath.Join(cg.outputDir, "yield_trend.png")

	fields := ds.Fields()
	if len(fields) == 0 {
		return "", fmt.Errorf("no fields to chart")
	}

	series := make([]chart.Series, 0, len(fields))
	for i, field := range fields {
		var xs []time.Time
		var ys []float64
		for _, obs := range ds {
			if obs.Field != field {
				continue
			}
			xs = append(xs, obs.Date)
			ys = append(ys, obs.CropYield)
		}
		if len(xs) < 2 {
			continue
		}
		series = append(series, chart.TimeSeries{
			Name:    field,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: fieldPalette[i%len(fieldPalette)],
				StrokeWidth: 2,
			},
		})
	}
	if len(series) == 0 {
		return "", fmt.Errorf("not enough points for a trend chart")
	}

	graph := chart.Chart{
		Title:  "Crop Yield Over Time",
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
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create yield trend file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render yield trend chart: %w", err)
	}
	return filename, nil
}
