package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"agridash/internal/analytics"
)

// generateFieldComparisonChart renders mean yield per field as bars
func (cg *ChartGenerator) generateFieldComparisonChart(aggs []analytics.FieldAggregate) (string, error) {
	filename := filepath.Join(cg.outputDir, "field_comparison.png")

	if len(aggs) == 0 {
		return "", fmt.Errorf("no field aggregates to chart")
	}

	bars := make([]chart.Value, 0, len(aggs))
	for i, agg := range aggs {
		bars = append(bars, chart.Value{
			Value: agg.CropYield,
			Label: fmt.Sprintf("%s\n%.0f kg/ha", agg.Field, agg.CropYield),
			Style: chart.Style{
				FillColor:   fieldPalette[i%len(fieldPalette)],
				StrokeColor: drawing.Color{R: 52, G: 58, B: 64, A: 255},
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:  "Mean Yield by Field",
		Width:  700,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 60, Right: 40, Bottom: 60},
		},
		BarWidth: 90,
		YAxis: chart.YAxis{
			Name: "Yield (kg/ha)",
		},
		Bars: bars,
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create field comparison file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render field comparison chart: %w", err)
	}
	return filename, nil
}

// generateEmissionsChart renders mean CO2 emission per field as bars
func (cg *ChartGenerator) generateEmissionsChart(aggs []analytics.FieldAggregate) (string, error) {
	filename := filepath.Join(cg.outputDir, "emissions.png")

	if len(aggs) == 0 {
		return "", fmt.Errorf("no field aggregates to chart")
	}

	bars := make([]chart.Value, 0, len(aggs))
	for _, agg := range aggs {
		bars = append(bars, chart.Value{
			Value: agg.CO2Emission,
			Label: fmt.Sprintf("%s\n%.1f kg/ha", agg.Field, agg.CO2Emission),
			Style: chart.Style{
				FillColor:   emissionColor(agg.CO2Emission),
				StrokeColor: drawing.Color{R: 52, G: 58, B: 64, A: 255},
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:  "CO2 Emissions by Field",
		Width:  700,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 60, Right: 40, Bottom: 60},
		},
		BarWidth: 90,
		YAxis: chart.YAxis{
			Name: "Emission (kg/ha)",
		},
		Bars: bars,
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create emissions file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("failed to render emissions chart: %w", err)
	}
	return filename, nil
}

// emissionColor shades heavier emitters toward red
func emissionColor(emission float64) drawing.Color {
	switch {
	case emission >= 40:
		return drawing.Color{R: 220, G: 53, B: 69, A: 255}
	case emission >= 30:
		return drawing.Color{R: 253, G: 126, B: 20, A: 255}
	default:
		return drawing.Color{R: 40, G: 167, B: 69, A: 255}
	}
}
