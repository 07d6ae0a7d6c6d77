package charts

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"energy-dashboard/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func sampleSummary() []models.FuelCapacity {
	return []models.FuelCapacity{
		{Fuel: "Coal", TotalMW: 130},
		{Fuel: "Solar", TotalMW: 50},
	}
}

func TestCapacityBarRendersPNG(t *testing.T) {
	data, err := CapacityBar("India", sampleSummary())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, pngMagic) {
		t.Error("output is not a PNG image")
	}
}

func TestCapacityBarEmptySummary(t *testing.T) {
	_, err := CapacityBar("India", nil)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestSaveCapacityBar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := SaveCapacityBar("India", sampleSummary(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("saved file is not a PNG image")
	}
}
