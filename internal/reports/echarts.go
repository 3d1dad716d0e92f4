package reports

import (
	"fmt"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"agridash/internal/analytics"
	"agridash/internal/dataset"
)

// yieldLineChart plots one yield series per field over the observed dates
func yieldLineChart(ds dataset.Dataset) *echarts.Line {
	fields := ds.Fields()
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var dates []string
	for _, obs := range ds {
		d := obs.Date.Format("2006-01-02")
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}

	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Crop Yield Over Time"}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)
	line.SetXAxis(dates)

	for _, field := range fields {
		byDate := make(map[string]float64)
		for _, obs := range ds {
			if obs.Field == field {
				byDate[obs.Date.Format("2006-01-02")] = obs.CropYield
			}
		}
		points := make([]opts.LineData, len(dates))
		for i, d := range dates {
			points[i] = opts.LineData{Value: byDate[d]}
		}
		line.AddSeries(field, points)
	}
	return line
}

// fieldYieldBarChart plots the per-field mean yield
func fieldYieldBarChart(aggs []analytics.FieldAggregate) *echarts.Bar {
	if len(aggs) == 0 {
		return nil
	}

	fields := make([]string, len(aggs))
	values := make([]opts.BarData, len(aggs))
	for i, agg := range aggs {
		fields[i] = agg.Field
		values[i] = opts.BarData{Value: agg.CropYield}
	}

	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Mean Yield by Field"}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(fields)
	bar.AddSeries("Yield (kg/ha)", values)
	return bar
}

// forecastLineChart plots the projected yield steps
func forecastLineChart(forecast []float64) *echarts.Line {
	if len(forecast) == 0 {
		return nil
	}

	days := make([]string, len(forecast))
	points := make([]opts.LineData, len(forecast))
	for i, v := range forecast {
		days[i] = fmt.Sprintf("Day %d", i+1)
		points[i] = opts.LineData{Value: v}
	}

	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithTitleOpts(opts.Title{Title: "Yield Forecast"}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(days)
	line.AddSeries("Projected", points)
	return line
}
