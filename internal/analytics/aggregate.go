package analytics

import (
	"github.com/montanaflynn/stats"

	"agridash/internal/dataset"
)

// FieldAggregate holds the arithmetic mean of each numeric observation
// attribute across all rows of a single field. Computed fresh per request.
type FieldAggregate struct {
	Field          string  `json:"field"`
	Temperature    float64 `json:"temperature"`
	Humidity       float64 `json:"humidity"`
	SoilMoisture   float64 `json:"soil_moisture"`
	Rainfall       float64 `json:"rainfall"`
	CropYield      float64 `json:"crop_yield"`
	NDVI           float64 `json:"ndvi"`
	EquipmentHours float64 `json:"equipment_hours"`
	CO2Emission    float64 `json:"co2_emission"`
}

// AggregateByField groups the dataset by field identifier and computes the
// per-field mean of every numeric attribute. Output order is the first-seen
// order of field identifiers in the input.
func AggregateByField(ds dataset.Dataset) ([]FieldAggregate, error) {
	if ds.Empty() {
		return nil, ErrEmptyDataset
	}

	groups := make(map[string]dataset.Dataset)
	order := ds.Fields()
	for _, obs := range ds {
		groups[obs.Field] = append(groups[obs.Field], obs)
	}

	aggs := make([]FieldAggregate, 0, len(order))
	for _, field := range order {
		rows := groups[field]
		aggs = append(aggs, FieldAggregate{
			Field:          field,
			Temperature:    mean(rows, func(o dataset.Observation) float64 { return o.Temperature }),
			Humidity:       mean(rows, func(o dataset.Observation) float64 { return o.Humidity }),
			SoilMoisture:   mean(rows, func(o dataset.Observation) float64 { return o.SoilMoisture }),
			Rainfall:       mean(rows, func(o dataset.Observation) float64 { return o.Rainfall }),
			CropYield:      mean(rows, func(o dataset.Observation) float64 { return o.CropYield }),
			NDVI:           mean(rows, func(o dataset.Observation) float64 { return o.NDVI }),
			EquipmentHours: mean(rows, func(o dataset.Observation) float64 { return o.EquipmentHours }),
			CO2Emission:    mean(rows, func(o dataset.Observation) float64 { return o.CO2Emission }),
		})
	}
	return aggs, nil
}

func mean(rows dataset.Dataset, pick func(dataset.Observation) float64) float64 {
	values := make([]float64, len(rows))
	for i, obs := range rows {
		values[i] = pick(obs)
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}
