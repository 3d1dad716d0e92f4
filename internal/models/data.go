package models

// KPI holds the pre-formatted headline numbers for the dashboard cards
type KPI struct {
	TotalYield      string `json:"total_yield"`
	AvgTemp         string `json:"avg_temp"`
	AvgSoilMoisture string `json:"avg_soil_moisture"`
	TotalRainfall   string `json:"total_rainfall"`
	CO2Footprint    string `json:"co2_footprint"`
}

// SatelliteGrid is the heatmap structure for the satellite view widget
type SatelliteGrid struct {
	Z [][]float64 `json:"z"`
	X []string    `json:"x"`
	Y []string    `json:"y"`
}

// DashboardData is the combined payload behind the main dashboard refresh
type DashboardData struct {
	KPI           KPI           `json:"kpi"`
	AIMessage     string        `json:"ai_message"`
	YieldChart    ChartPayload  `json:"yield_chart"`
	SatelliteData SatelliteGrid `json:"satellite_data"`
}

// ClusterRecord is one field's cluster assignment with its mean profile
type ClusterRecord struct {
	Field        string  `json:"field"`
	Cluster      int     `json:"cluster"`
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	SoilMoisture float64 `json:"soil_moisture"`
	CropYield    float64 `json:"crop_yield"`
}

// ForecastData carries the paged yield projection
type ForecastData struct {
	Days     []string  `json:"days"`
	Forecast []float64 `json:"forecast"`
	Error    string    `json:"error,omitempty"`
}

// MaintenanceEntry is one field's equipment usage and service status
type MaintenanceEntry struct {
	Hours  int    `json:"hours"`
	Status string `json:"status"`
}

// MaintenanceData is the equipment maintenance overview payload
type MaintenanceData struct {
	Fields      []string           `json:"fields"`
	Hours       []int              `json:"hours"`
	Maintenance []MaintenanceEntry `json:"maintenance"`
}

// CarbonData is the emissions overview payload
type CarbonData struct {
	Fields    []string  `json:"fields"`
	Emissions []float64 `json:"emissions"`
	Offset    int       `json:"offset"`
}

// SensorSnapshot is one live sensor reading set
type SensorSnapshot struct {
	SoilMoisture float64 `json:"soil_moisture"`
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	Light        int     `json:"light"`
}

// AnomalyList names the fields currently flagged as anomalous
type AnomalyList struct {
	Anomalies []string `json:"anomalies"`
}

// Message is a simple acknowledgement payload
type Message struct {
	Message string `json:"message"`
}
