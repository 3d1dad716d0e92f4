package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"agridash/internal/advisor"
	"agridash/internal/analytics"
	"agridash/internal/config"
	"agridash/internal/dataset"
	"agridash/internal/models"
)

// handleHealth reports service liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   config.GetVersion(),
	})
}

// handleReport serves the rendered overview page
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	ds := s.provider.Load(r.Context(), dataset.Filters{Farm: s.cfg.DefaultFarm})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderOverview(w, ds); err != nil {
		s.log.Errorf("report rendering failed: %v", err)
	}
}

// detect runs the aggregation and outlier pipeline, degrading to nil on
// operator errors.
func (s *Server) detect(ds dataset.Dataset) ([]analytics.FieldAggregate, []analytics.AnomalyFlag) {
	aggs, err := analytics.AggregateByField(ds)
	if err != nil {
		s.log.Warnf("aggregation unavailable: %v", err)
		return nil, nil
	}
	flags, err := analytics.DetectOutliers(aggs)
	if err != nil {
		s.log.Warnf("outlier detection unavailable: %v", err)
		return aggs, nil
	}
	return aggs, flags
}

// handleDashboardData serves the combined dashboard refresh payload
func (s *Server) handleDashboardData(w http.ResponseWriter, r *http.Request) {
	ds := s.provider.Load(r.Context(), s.parseFilters(r))
	_, flags := s.detect(ds)

	s.writeJSON(w, http.StatusOK, models.DashboardData{
		KPI:           models.BuildKPI(ds),
		AIMessage:     s.advisor.Recommendation(r.Context(), flags),
		YieldChart:    models.YieldChart(ds),
		SatelliteData: models.SatelliteData(ds),
	})
}

// handleClusteringData serves per-field cluster assignments with mean profiles
func (s *Server) handleClusteringData(w http.ResponseWriter, r *http.Request) {
	ds := s.provider.Load(r.Context(), s.parseFilters(r))

	records := []models.ClusterRecord{}
	aggs, err := analytics.AggregateByField(ds)
	if err == nil {
		assignments, cerr := analytics.ClusterFields(aggs)
		if cerr == nil {
			for i, agg := range aggs {
				records = append(records, models.ClusterRecord{
					Field:        agg.Field,
					Cluster:      assignments[i].Cluster,
					Temperature:  agg.Temperature,
					Humidity:     agg.Humidity,
					SoilMoisture: agg.SoilMoisture,
					CropYield:    agg.CropYield,
				})
			}
		} else {
			s.log.Warnf("clustering unavailable: %v", cerr)
		}
	} else {
		s.log.Warnf("aggregation unavailable: %v", err)
	}

	s.writeJSON(w, http.StatusOK, records)
}

// handleAnomalyChartData serves the per-field decision score bar chart
func (s *Server) handleAnomalyChartData(w http.ResponseWriter, r *http.Request) {
	ds := s.provider.Load(r.Context(), s.parseFilters(r))
	_, flags := s.detect(ds)

	if flags == nil {
		s.writeJSON(w, http.StatusOK, models.ErrorPayload("anomaly detection unavailable"))
		return
	}
	s.writeJSON(w, http.StatusOK, models.AnomalyBarChart(flags))
}

// handleForecastData serves the paged yield projection. Page p rescales the
// projection by 1+(p-1)*0.05 and shifts the day labels by 30 per page.
func (s *Server) handleForecastData(w http.ResponseWriter, r *http.Request) {
	ds := s.provider.Load(r.Context(), s.parseFilters(r))
	page := parsePage(r)

	horizon := s.cfg.ForecastHorizon
	forecast, err := analytics.ForecastYield(ds.YieldSeries(), horizon)
	if err != nil {
		s.log.Warnf("forecast unavailable: %v", err)
		s.writeJSON(w, http.StatusOK, models.ForecastData{
			Days:     []string{},
			Forecast: []float64{},
			Error:    "forecast unavailable for the selected data",
		})
		return
	}

	if page > 1 {
		scale := 1 + float64(page-1)*0.05
		for i := range forecast {
			forecast[i] *= scale
		}
	}

	days := make([]string, len(forecast))
	for i := range forecast {
		days[i] = fmt.Sprintf("Day %d", i+1+(page-1)*30)
	}

	s.writeJSON(w, http.StatusOK, models.ForecastData{Days: days, Forecast: forecast})
}

// handleMaintenanceData serves fresh equipment service predictions
func (s *Server) handleMaintenanceData(w http.ResponseWriter, r *http.Request) {
	fields := dataset.FieldNames
	hours := make([]int, len(fields))
	entries := make([]models.MaintenanceEntry, len(fields))
	for i := range fields {
		hours[i] = randBetween(200, 500)
		status := "OK"
		if hours[i] > 400 {
			status = "Due soon"
		}
		entries[i] = models.MaintenanceEntry{Hours: hours[i], Status: status}
	}

	s.writeJSON(w, http.StatusOK, models.MaintenanceData{
		Fields:      fields,
		Hours:       hours,
		Maintenance: entries,
	})
}

// handleCarbonData serves fresh per-field emission estimates
func (s *Server) handleCarbonData(w http.ResponseWriter, r *http.Request) {
	emissions := make([]float64, len(dataset.FieldNames))
	for i := range emissions {
		emissions[i] = round1(uniform(15, 30))
	}

	s.writeJSON(w, http.StatusOK, models.CarbonData{
		Fields:    dataset.FieldNames,
		Emissions: emissions,
		Offset:    randBetween(40, 80),
	})
}

// handleSensorData serves a fresh live sensor snapshot
func (s *Server) handleSensorData(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, models.SensorSnapshot{
		SoilMoisture: round1(uniform(60, 85)),
		Temperature:  round1(uniform(18, 32)),
		Humidity:     round1(uniform(50, 80)),
		Light:        randBetween(800, 1000),
	})
}

// handleAnomalies lists the currently flagged fields
func (s *Server) handleAnomalies(w http.ResponseWriter, r *http.Request) {
	ds := s.provider.Load(r.Context(), dataset.Filters{Farm: s.cfg.DefaultFarm})
	_, flags := s.detect(ds)

	anomalous := advisor.AnomalousFields(flags)
	if anomalous == nil {
		anomalous = []string{}
	}
	s.writeJSON(w, http.StatusOK, models.AnomalyList{Anomalies: anomalous})
}

// handleChartData serves the yield chart for the default filter set
func (s *Server) handleChartData(w http.ResponseWriter, r *http.Request) {
	ds := s.provider.Load(r.Context(), dataset.Filters{Farm: s.cfg.DefaultFarm})
	s.writeJSON(w, http.StatusOK, models.YieldChart(ds))
}

// handleNDVIData serves the vegetation index widget values
func (s *Server) handleNDVIData(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"fields": dataset.FieldNames,
		"ndvi":   []float64{0.82, 0.75, 0.68, 0.79},
		"colors": []string{"#01B763", "#ffb74d", "#E74C3C", "#66bb6a"},
	})
}

// handleRadarData serves the field health radar values
func (s *Server) handleRadarData(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"metrics": []string{"NDVI", "Pest", "Disease", "Water", "Nutrient"},
		"values":  []float64{0.8, 0.6, 0.3, 0.4, 0.7},
	})
}

// handleWaterUsage serves the weekly irrigation volumes
func (s *Server) handleWaterUsage(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"days":  []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		"usage": []int{120, 135, 110, 145, 130, 155, 140},
	})
}

// handleGaugeData serves a fresh soil moisture gauge reading
func (s *Server) handleGaugeData(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"soil_moisture": randBetween(60, 85),
	})
}

// handleWeatherForecast serves the weekly temperature outlook
func (s *Server) handleWeatherForecast(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"days": []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		"temp": []int{23, 25, 22, 21, 24, 26, 27},
	})
}

// handlePricePrediction serves the commodity price outlook
func (s *Server) handlePricePrediction(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"dates":  []string{"Week1", "Week2", "Week3", "Week4"},
		"prices": []float64{4.85, 4.92, 5.01, 5.10},
	})
}

// handleWeatherImpact serves the temperature/yield correlation curve
func (s *Server) handleWeatherImpact(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"temp":  []int{20, 22, 24, 26, 28, 30},
		"yield": []int{1100, 1200, 1300, 1250, 1150, 1000},
	})
}

// handleActivateValves acknowledges a bulk valve activation request
func (s *Server) handleActivateValves(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, models.Message{Message: "All valves activated successfully!"})
}

// handleToggleValve acknowledges a single valve toggle
func (s *Server) handleToggleValve(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Field string `json:"field"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, models.Message{Message: "invalid request body"})
		return
	}
	s.writeJSON(w, http.StatusOK, models.Message{
		Message: fmt.Sprintf("Valve for Field %s toggled.", body.Field),
	})
}

// handleSaveSettings accepts and logs a settings blob without persisting it
func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		s.writeJSON(w, http.StatusBadRequest, models.Message{Message: "invalid request body"})
		return
	}
	s.log.Info("settings saved", map[string]interface{}{"settings": settings})
	s.writeJSON(w, http.StatusOK, models.Message{Message: "Settings saved successfully!"})
}
