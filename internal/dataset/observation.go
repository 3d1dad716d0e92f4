package dataset

import (
	"time"
)

// Observation is one row of sensor/yield data for a single field and crop.
// Numeric values are not clamped to physically valid ranges: synthetic
// generation can produce negative rainfall or yield and that is accepted.
type Observation struct {
	Date           time.Time `json:"date"`
	Farm           string    `json:"farm,omitempty"`
	Field          string    `json:"field"`
	Crop           string    `json:"crop_type"`
	Temperature    float64   `json:"temperature"`
	Humidity       float64   `json:"humidity"`
	SoilMoisture   float64   `json:"soil_moisture"`
	Rainfall       float64   `json:"rainfall"`
	CropYield      float64   `json:"crop_yield"`
	NDVI           float64   `json:"ndvi"`
	PestRisk       float64   `json:"pest_risk"`
	DiseaseRisk    float64   `json:"disease_risk"`
	WaterStress    float64   `json:"water_stress"`
	EquipmentHours float64   `json:"equipment_hours"`
	CO2Emission    float64   `json:"co2_emission"`
}

// RequiredColumns is the exact column set a backing CSV file must carry.
// A file missing any of these is treated as absent and synthesis kicks in.
var RequiredColumns = []string{
	"date", "temperature", "humidity", "soil_moisture", "rainfall",
	"crop_yield", "field", "crop_type", "ndvi", "pest_risk",
	"disease_risk", "water_stress", "equipment_hours", "co2_emission",
}

// FieldNames is the fixed set of field identifiers used by synthesis.
var FieldNames = []string{"Field A", "Field B", "Field C", "Field D"}

// CropTypes is the fixed set of crop types used by synthesis.
var CropTypes = []string{"Corn", "Wheat", "Soybeans"}

// Synthetic generation window (inclusive).
var (
	SyntheticStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	SyntheticEnd   = time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
)
