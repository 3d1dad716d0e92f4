// Command chart-preview renders the report chart set from synthetic data so
// the images can be inspected without running the service.
package main

import (
	"log"
	"os"

	"agridash/internal/analytics"
	"agridash/internal/charts"
	"agridash/internal/dataset"
)

func main() {
	outputDir := "chart_preview_output"
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}

	ds := dataset.Synthesize("Green Valley Farm")

	aggs, err := analytics.AggregateByField(ds)
	if err != nil {
		log.Fatalf("Aggregation failed: %v", err)
	}

	forecast, err := analytics.ForecastYield(ds.YieldSeries(), 30)
	if err != nil {
		log.Printf("Forecast unavailable, skipping projection chart: %v", err)
	}

	log.Printf("Rendering charts into %s", outputDir)

	chartGen := charts.NewChartGenerator(outputDir)
	chartFiles, err := chartGen.GenerateCharts(ds, aggs, forecast)
	if err != nil {
		log.Fatalf("Chart generation failed: %v", err)
	}

	log.Printf("Generated %d charts:", len(chartFiles))
	for _, file := range chartFiles {
		info, err := os.Stat(file)
		if err != nil {
			log.Printf("  %s (unreadable: %v)", file, err)
			continue
		}
		log.Printf("  %s (%d bytes)", file, info.Size())
	}
}
