package dataset

import (
	"context"
	"testing"
	"time"

	"agridash/internal/storage"
)

func TestSeedDerivation(t *testing.T) {
	if Seed("") != 42 {
		t.Errorf("expected bare seed 42, got %d", Seed(""))
	}

	a := Seed("Green Valley Farm")
	b := Seed("Green Valley Farm")
	if a != b {
		t.Errorf("seed not stable for same farm: %d vs %d", a, b)
	}
	if a < 42 || a > 141 {
		t.Errorf("seed %d outside 42+[0,100) range", a)
	}
}

func TestSynthesizeShape(t *testing.T) {
	ds := Synthesize("")

	// 2024-01-01 .. 2024-03-31 inclusive
	if len(ds) != 91 {
		t.Fatalf("expected 91 daily observations, got %d", len(ds))
	}
	for _, obs := range ds {
		if obs.Date.Before(SyntheticStart) || obs.Date.After(SyntheticEnd) {
			t.Fatalf("observation date %v outside synthesis window", obs.Date)
		}
		if !contains(FieldNames, obs.Field) {
			t.Fatalf("unexpected field %q", obs.Field)
		}
		if !contains(CropTypes, obs.Crop) {
			t.Fatalf("unexpected crop %q", obs.Crop)
		}
		if obs.NDVI < 0.5 || obs.NDVI > 0.9 {
			t.Fatalf("NDVI %v outside [0.5, 0.9]", obs.NDVI)
		}
		if obs.EquipmentHours < 0 || obs.EquipmentHours >= 500 {
			t.Fatalf("equipment hours %v outside [0, 500)", obs.EquipmentHours)
		}
		if obs.Rainfall < 0 {
			t.Fatalf("rainfall %v negative", obs.Rainfall)
		}
	}
}

func TestSynthesizeDeterministicPerFarm(t *testing.T) {
	first := Synthesize("Green Valley Farm")
	second := Synthesize("Green Valley Farm")

	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs between identical-seed runs", i)
		}
	}
}

func TestProviderLoadSyntheticFallback(t *testing.T) {
	store, err := storage.NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("storage setup failed: %v", err)
	}
	provider := NewProvider(store, "agriculture.csv", "")

	ds := provider.Load(context.Background(), Filters{Farm: "Green Valley Farm"})
	if ds.Empty() {
		t.Fatal("expected synthetic dataset, got empty")
	}
	if len(ds) != 91 {
		t.Errorf("expected 91 synthetic rows, got %d", len(ds))
	}
}

func TestProviderLoadBackingFile(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("storage setup failed: %v", err)
	}
	if err := store.StoreFile(ctx, "agriculture.csv", []byte(validCSV)); err != nil {
		t.Fatalf("failed to seed backing file: %v", err)
	}

	provider := NewProvider(store, "agriculture.csv", "")
	ds := provider.Load(ctx, Filters{})
	if len(ds) != 3 {
		t.Fatalf("expected 3 rows from backing file, got %d", len(ds))
	}
}

func TestProviderLoadCorruptBackingFile(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocalClient(t.TempDir())
	if err != nil {
		t.Fatalf("storage setup failed: %v", err)
	}
	if err := store.StoreFile(ctx, "agriculture.csv", []byte("garbage\nwith,no,schema\n")); err != nil {
		t.Fatalf("failed to seed backing file: %v", err)
	}

	provider := NewProvider(store, "agriculture.csv", "")
	ds := provider.Load(ctx, Filters{})

	// corrupt file degrades to synthesis, never an error
	if len(ds) != 91 {
		t.Errorf("expected synthetic fallback of 91 rows, got %d", len(ds))
	}
}

func TestFilterCrops(t *testing.T) {
	ds := Synthesize("")

	corn := ds.FilterCrops([]string{"Corn"})
	for _, obs := range corn {
		if obs.Crop != "Corn" {
			t.Fatalf("crop filter leaked %q", obs.Crop)
		}
	}

	if got := ds.FilterCrops([]string{"Dragonfruit"}); len(got) != 0 {
		t.Errorf("unknown crop should match nothing, got %d rows", len(got))
	}
	if got := ds.FilterCrops(nil); len(got) != len(ds) {
		t.Errorf("empty crop set should keep all rows, got %d", len(got))
	}
}

func TestFilterDateRange(t *testing.T) {
	ds := Synthesize("")
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)

	feb := ds.FilterDateRange(start, end)
	if len(feb) != 29 {
		t.Errorf("expected 29 February rows, got %d", len(feb))
	}
	for _, obs := range feb {
		if obs.Date.Before(start) || obs.Date.After(end) {
			t.Fatalf("date filter leaked %v", obs.Date)
		}
	}
}

func TestFieldsFirstSeenOrder(t *testing.T) {
	ds := Dataset{
		{Field: "Field C"},
		{Field: "Field A"},
		{Field: "Field C"},
		{Field: "Field B"},
	}
	fields := ds.Fields()
	want := []string{"Field C", "Field A", "Field B"}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], fields[i])
		}
	}
}

func TestYieldSeriesOrdering(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	ds := Dataset{
		{Date: d2, CropYield: 2},
		{Date: d1, CropYield: 1},
	}
	series := ds.YieldSeries()
	if len(series) != 2 || series[0] != 1 || series[1] != 2 {
		t.Errorf("expected date-ordered series [1 2], got %v", series)
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
