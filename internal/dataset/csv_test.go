package dataset

import (
	"errors"
	"strings"
	"testing"
)

const validCSV = `date,temperature,humidity,soil_moisture,rainfall,crop_yield,field,crop_type,ndvi,pest_risk,disease_risk,water_stress,equipment_hours,co2_emission
2024-01-01,25.5,60.0,72.0,3.2,1250.0,Field A,Corn,0.82,0.1,0.2,0.3,120,22.5
2024-01-02,24.0,62.5,68.5,0.0,1180.0,Field B,Wheat,0.75,0.4,0.1,0.5,340,18.0
2024-01-03,26.1,58.0,70.2,1.5,1310.0,Field A,Soybeans,0.68,0.2,0.3,0.2,95,30.1
`

func TestParseCSV(t *testing.T) {
	ds, err := ParseCSV([]byte(validCSV))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(ds) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(ds))
	}

	first := ds[0]
	if first.Field != "Field A" || first.Crop != "Corn" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Temperature != 25.5 {
		t.Errorf("expected temperature 25.5, got %v", first.Temperature)
	}
	if first.Date.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("unexpected date %v", first.Date)
	}
	if first.EquipmentHours != 120 {
		t.Errorf("expected equipment hours 120, got %v", first.EquipmentHours)
	}
}

func TestParseCSVOptionalFarmColumn(t *testing.T) {
	withFarm := `date,farm,temperature,humidity,soil_moisture,rainfall,crop_yield,field,crop_type,ndvi,pest_risk,disease_risk,water_stress,equipment_hours,co2_emission
2024-01-01,Green Valley Farm,25.5,60.0,72.0,3.2,1250.0,Field A,Corn,0.82,0.1,0.2,0.3,120,22.5
`
	ds, err := ParseCSV([]byte(withFarm))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if ds[0].Farm != "Green Valley Farm" {
		t.Errorf("expected farm column to be read, got %q", ds[0].Farm)
	}
}

func TestParseCSVMissingColumn(t *testing.T) {
	// drop the ndvi column
	broken := strings.ReplaceAll(validCSV, ",ndvi", "")
	_, err := ParseCSV([]byte(broken))
	if err == nil {
		t.Fatal("expected error for missing required column")
	}
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestParseCSVMalformedRow(t *testing.T) {
	broken := validCSV + "not-a-date,x,x,x,x,x,Field A,Corn,x,x,x,x,x,x\n"
	_, err := ParseCSV([]byte(broken))
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable for malformed row, got %v", err)
	}
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := ParseCSV([]byte(""))
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable for empty file, got %v", err)
	}
}
