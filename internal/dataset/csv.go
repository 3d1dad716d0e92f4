package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// ParseCSV parses a backing dataset file. The header must carry every column
// in RequiredColumns (extra columns, such as farm, are allowed); otherwise
// the file is treated as absent. Malformed content yields ErrDataUnavailable.
func ParseCSV(raw []byte) (Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%w: empty file", ErrDataUnavailable)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, required := range RequiredColumns {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrDataUnavailable, required)
		}
	}
	farmIdx, hasFarm := col["farm"]

	ds := make(Dataset, 0, len(records)-1)
	for line, record := range records[1:] {
		obs, err := parseRow(record, col)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrDataUnavailable, line+2, err)
		}
		if hasFarm && farmIdx < len(record) {
			obs.Farm = record[farmIdx]
		}
		ds = append(ds, obs)
	}
	return ds, nil
}

func parseRow(record []string, col map[string]int) (Observation, error) {
	var obs Observation

	date, err := time.Parse("2006-01-02", record[col["date"]])
	if err != nil {
		return obs, fmt.Errorf("bad date: %v", err)
	}
	obs.Date = date
	obs.Field = record[col["field"]]
	obs.Crop = record[col["crop_type"]]

	numeric := []struct {
		name string
		dst  *float64
	}{
		{"temperature", &obs.Temperature},
		{"humidity", &obs.Humidity},
		{"soil_moisture", &obs.SoilMoisture},
		{"rainfall", &obs.Rainfall},
		{"crop_yield", &obs.CropYield},
		{"ndvi", &obs.NDVI},
		{"pest_risk", &obs.PestRisk},
		{"disease_risk", &obs.DiseaseRisk},
		{"water_stress", &obs.WaterStress},
		{"equipment_hours", &obs.EquipmentHours},
		{"co2_emission", &obs.CO2Emission},
	}
	for _, field := range numeric {
		v, err := strconv.ParseFloat(record[col[field.name]], 64)
		if err != nil {
			return obs, fmt.Errorf("bad %s: %v", field.name, err)
		}
		*field.dst = v
	}
	return obs, nil
}
