// Package report builds the downloadable Excel workbook for a filtered view.
package report

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"energy-dashboard/models"
)

// BuildWorkbook assembles a three-sheet workbook: KPI overview, capacity by
// fuel, and the plant list sorted by capacity descending.
func BuildWorkbook(country string, metrics models.ViewMetrics, summary []models.FuelCapacity, plants []*models.Plant) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Overview")

	f.SetCellValue("Overview", "A1", fmt.Sprintf("Energy Infrastructure: %s", country))
	f.SetCellValue("Overview", "A3", "Total Capacity (MW)")
	f.SetCellValue("Overview", "B3", metrics.TotalMW)
	f.SetCellValue("Overview", "A4", "Plant Count")
	f.SetCellValue("Overview", "B4", metrics.PlantCount)
	f.SetCellValue("Overview", "A5", "Main Source")
	f.SetCellValue("Overview", "B5", metrics.TopFuel)
	f.SetColWidth("Overview", "A", "A", 24)
	f.SetColWidth("Overview", "B", "B", 18)

	if _, err := f.NewSheet("Capacity_by_Fuel"); err != nil {
		return nil, fmt.Errorf("report: new sheet: %w", err)
	}
	fuelHeaders := []string{"Fuel", "Total Capacity (MW)"}
	for i, header := range fuelHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Capacity_by_Fuel", cell, header)
	}
	f.SetColWidth("Capacity_by_Fuel", "A", "B", 22)
	for i, fc := range summary {
		row := i + 2
		f.SetCellValue("Capacity_by_Fuel", fmt.Sprintf("A%d", row), fc.Fuel)
		f.SetCellValue("Capacity_by_Fuel", fmt.Sprintf("B%d", row), fc.TotalMW)
	}

	if _, err := f.NewSheet("Plants"); err != nil {
		return nil, fmt.Errorf("report: new sheet: %w", err)
	}
	plantHeaders := []string{"Name", "Country", "Fuel", "Capacity (MW)", "Latitude", "Longitude"}
	for i, header := range plantHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Plants", cell, header)
	}
	f.SetColWidth("Plants", "A", "A", 36)
	f.SetColWidth("Plants", "B", "F", 16)

	sorted := append([]*models.Plant(nil), plants...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CapacityMW > sorted[j].CapacityMW
	})
	for i, p := range sorted {
		row := i + 2
		f.SetCellValue("Plants", fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue("Plants", fmt.Sprintf("B%d", row), p.Country)
		f.SetCellValue("Plants", fmt.Sprintf("C%d", row), p.Fuel)
		f.SetCellValue("Plants", fmt.Sprintf("D%d", row), p.CapacityMW)
		f.SetCellValue("Plants", fmt.Sprintf("E%d", row), p.Latitude)
		f.SetCellValue("Plants", fmt.Sprintf("F%d", row), p.Longitude)
	}

	return f, nil
}

// Bytes renders the workbook for download.
func Bytes(country string, metrics models.ViewMetrics, summary []models.FuelCapacity, plants []*models.Plant) ([]byte, error) {
	f, err := BuildWorkbook(country, metrics, summary, plants)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("report: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
