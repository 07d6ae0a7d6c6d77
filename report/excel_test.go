package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"energy-dashboard/models"
)

func reportFixtures() (models.ViewMetrics, []models.FuelCapacity, []*models.Plant) {
	metrics := models.ViewMetrics{TotalMW: 180, PlantCount: 3, TopFuel: "Coal"}
	summary := []models.FuelCapacity{
		{Fuel: "Coal", TotalMW: 130},
		{Fuel: "Solar", TotalMW: 50},
	}
	plants := []*models.Plant{
		{Name: "A", Country: "India", Fuel: "Coal", CapacityMW: 100, Latitude: 20, Longitude: 70},
		{Name: "B", Country: "India", Fuel: "Solar", CapacityMW: 50, Latitude: 10, Longitude: 80},
		{Name: "C", Country: "India", Fuel: "Coal", CapacityMW: 30, Latitude: 30, Longitude: 90},
	}
	return metrics, summary, plants
}

func TestBuildWorkbookSheets(t *testing.T) {
	metrics, summary, plants := reportFixtures()
	f, err := BuildWorkbook("India", metrics, summary, plants)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Overview", "Capacity_by_Fuel", "Plants"} {
		if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
			t.Errorf("sheet %q missing (idx %d, err %v)", sheet, idx, err)
		}
	}

	count, err := f.GetCellValue("Overview", "B4")
	if err != nil {
		t.Fatal(err)
	}
	if count != "3" {
		t.Errorf("plant count cell: got %q, want 3", count)
	}

	topFuel, _ := f.GetCellValue("Capacity_by_Fuel", "A2")
	if topFuel != "Coal" {
		t.Errorf("first fuel row: got %q, want Coal", topFuel)
	}

	// Plant rows are capacity-descending.
	first, _ := f.GetCellValue("Plants", "A2")
	if first != "A" {
		t.Errorf("first plant row: got %q, want A", first)
	}
}

func TestBytesProducesWorkbook(t *testing.T) {
	metrics, summary, plants := reportFixtures()
	data, err := Bytes("India", metrics, summary, plants)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("bytes are not a readable workbook: %v", err)
	}
	defer f.Close()

	got, _ := f.GetCellValue("Overview", "B5")
	if got != "Coal" {
		t.Errorf("main source cell: got %q, want Coal", got)
	}
}
