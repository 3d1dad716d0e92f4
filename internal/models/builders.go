package models

import (
	"github.com/montanaflynn/stats"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"agridash/internal/analytics"
	"agridash/internal/dataset"
)

var kpiPrinter = message.NewPrinter(language.English)

// BuildKPI computes the headline card values over the filtered dataset.
// Yield and rainfall totals are grouped with thousands separators.
func BuildKPI(ds dataset.Dataset) KPI {
	var yield, temp, soil, rain, co2 []float64
	for _, obs := range ds {
		yield = append(yield, obs.CropYield)
		temp = append(temp, obs.Temperature)
		soil = append(soil, obs.SoilMoisture)
		rain = append(rain, obs.Rainfall)
		co2 = append(co2, obs.CO2Emission)
	}

	totalYield, _ := stats.Sum(yield)
	avgTemp, _ := stats.Mean(temp)
	avgSoil, _ := stats.Mean(soil)
	totalRain, _ := stats.Sum(rain)
	avgCO2, _ := stats.Mean(co2)

	return KPI{
		TotalYield:      kpiPrinter.Sprintf("%.0f kg", totalYield),
		AvgTemp:         kpiPrinter.Sprintf("%.1f °C", avgTemp),
		AvgSoilMoisture: kpiPrinter.Sprintf("%.0f%%", avgSoil),
		TotalRainfall:   kpiPrinter.Sprintf("%.0f mm", totalRain),
		CO2Footprint:    kpiPrinter.Sprintf("%.1f kg/ha", avgCO2),
	}
}

// YieldChart builds the yield-over-time chart with one line trace per field,
// in first-seen field order.
func YieldChart(ds dataset.Dataset) ChartPayload {
	payload := ChartPayload{
		Data: []Trace{},
		Layout: Layout{
			Title: "Yield Over Time",
			XAxis: &Axis{Title: "date"},
			YAxis: &Axis{Title: "crop_yield"},
		},
	}

	for _, field := range ds.Fields() {
		trace := Trace{
			Type: "scatter",
			Mode: "lines",
			Name: field,
		}
		for _, obs := range ds {
			if obs.Field != field {
				continue
			}
			trace.X = append(trace.X, obs.Date.Format("2006-01-02"))
			trace.Y = append(trace.Y, obs.CropYield)
		}
		payload.Data = append(payload.Data, trace)
	}
	return payload
}

// AnomalyBarChart builds a bar chart of per-field decision scores, flagged
// fields colored red and the rest green.
func AnomalyBarChart(flags []analytics.AnomalyFlag) ChartPayload {
	trace := Trace{Type: "bar", X: []string{}, Y: []float64{}}
	colors := make([]string, 0, len(flags))
	for _, f := range flags {
		trace.X = append(trace.X, f.Field)
		trace.Y = append(trace.Y, f.Score)
		if f.Anomalous {
			colors = append(colors, "red")
		} else {
			colors = append(colors, "green")
		}
	}
	trace.Marker = &Marker{Color: colors}

	return ChartPayload{
		Data:   []Trace{trace},
		Layout: Layout{Title: "Anomaly Scores"},
	}
}

// SatelliteData derives the 4x4 vegetation heatmap from per-field mean NDVI.
// Cell (i,j) averages the NDVI of fields i and j so the diagonal reads each
// field directly. Empty input falls back to a neutral grid.
func SatelliteData(ds dataset.Dataset) SatelliteGrid {
	fields := ds.Fields()
	if len(fields) == 0 {
		fields = dataset.FieldNames
	}

	ndvi := make([]float64, len(fields))
	for i, field := range fields {
		var values []float64
		for _, obs := range ds {
			if obs.Field == field {
				values = append(values, obs.NDVI)
			}
		}
		if len(values) == 0 {
			ndvi[i] = 0.7
			continue
		}
		ndvi[i], _ = stats.Mean(values)
	}

	z := make([][]float64, len(fields))
	for i := range fields {
		z[i] = make([]float64, len(fields))
		for j := range fields {
			cell, _ := stats.Round((ndvi[i]+ndvi[j])/2, 2)
			z[i][j] = cell
		}
	}
	return SatelliteGrid{Z: z, X: fields, Y: fields}
}

// ErrorPayload is the degraded chart returned when an operator fails
func ErrorPayload(msg string) ChartPayload {
	return ChartPayload{Data: []Trace{}, Error: msg}
}
